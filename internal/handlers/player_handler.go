package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

func (h *PlayerHandler) List(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 25)

	players, total, err := h.playerService.List(accountID, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list players",
		})
	}

	return c.JSON(fiber.Map{
		"players": players,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *PlayerHandler) Get(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player id",
		})
	}

	player, err := h.playerService.Get(accountID, id)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load player",
		})
	}
	return c.JSON(player)
}

func (h *PlayerHandler) Create(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	var req dto.PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	player, err := h.playerService.Create(accountID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

func (h *PlayerHandler) Update(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player id",
		})
	}

	var req dto.PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	player, err := h.playerService.Update(accountID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(player)
}

func (h *PlayerHandler) Delete(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid player id",
		})
	}

	if err := h.playerService.Delete(accountID, id); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete player",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Export returns the canonical transformed players for reporting.
func (h *PlayerHandler) Export(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	players, err := h.playerService.Export(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to export players",
		})
	}
	return c.JSON(fiber.Map{"players": players})
}
