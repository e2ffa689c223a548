package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

// SettingsHandler is the admin surface for per-account connector settings.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// Get returns the account's connector settings. The API key is never echoed
// back; json tags on the model strip it.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)

	var settings models.AccountConnectorSettings
	err := h.db.Scopes(account.ForAccount(accountID)).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Connector settings not configured for this account",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}
	return c.JSON(settings)
}

// Put creates or replaces the account's connector settings.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)

	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.APIURL == "" || req.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "api_url and api_key are required",
		})
	}

	var settings models.AccountConnectorSettings
	err := h.db.Scopes(account.ForAccount(accountID)).First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.AccountConnectorSettings{
			ID:        uuid.New(),
			AccountID: accountID,
		}
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}

	settings.APIURL = req.APIURL
	settings.APIKey = req.APIKey
	settings.TestPlayerID = req.TestPlayerID

	if err := h.db.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save settings",
		})
	}
	return c.JSON(settings)
}
