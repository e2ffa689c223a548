package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/twocngdagz/lush-sub001/internal/database"
	"github.com/twocngdagz/lush-sub001/internal/dto"
)

type HealthHandler struct {
	connectorID string
}

func NewHealthHandler(connectorID string) *HealthHandler {
	return &HealthHandler{connectorID: connectorID}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Connector: h.connectorID,
	})
}
