package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/services"
)

type RankHandler struct {
	rankService *services.RankService
}

func NewRankHandler(rankService *services.RankService) *RankHandler {
	return &RankHandler{rankService: rankService}
}

func (h *RankHandler) List(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	ranks, err := h.rankService.List(accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list ranks",
		})
	}
	return c.JSON(fiber.Map{"ranks": ranks})
}

func (h *RankHandler) Create(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	var req dto.RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	rank, err := h.rankService.Create(accountID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(rank)
}

func (h *RankHandler) Update(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid rank id",
		})
	}

	var req dto.RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	rank, err := h.rankService.Update(accountID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrRankNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(rank)
}

func (h *RankHandler) Delete(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid rank id",
		})
	}

	if err := h.rankService.Delete(accountID, id); err != nil {
		switch {
		case errors.Is(err, services.ErrRankNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrRankInUse):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to delete rank",
			})
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
