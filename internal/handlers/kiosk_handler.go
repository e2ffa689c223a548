package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/twocngdagz/lush-sub001/internal/account"
	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/services"
)

// KioskHandler exposes the connector-backed kiosk operations. Connector
// failures map to HTTP statuses by error kind so operators see "unable to
// connect" for transient vendor trouble rather than a generic 500.
type KioskHandler struct {
	kioskService *services.KioskService
}

func NewKioskHandler(kioskService *services.KioskService) *KioskHandler {
	return &KioskHandler{kioskService: kioskService}
}

func connectorStatus(err error) (int, string) {
	var ce *connector.Error
	if !errors.As(err, &ce) {
		return fiber.StatusInternalServerError, "Internal server error"
	}
	switch ce.Kind {
	case connector.KindConnection:
		return fiber.StatusBadGateway, "Unable to connect to the loyalty origin"
	case connector.KindConfiguration:
		return fiber.StatusServiceUnavailable, ce.Message
	case connector.KindNotFound:
		return fiber.StatusNotFound, "Requested origin record was not found"
	case connector.KindValidation:
		return fiber.StatusBadGateway, "Origin returned an unreadable response"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

func (h *KioskHandler) connectorError(c *fiber.Ctx, op string, err error) error {
	status, message := connectorStatus(err)
	slog.Error("connector operation failed", "account_id", account.GetAccountID(c),
		"action", op, "error", err.Error())
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func (h *KioskHandler) ValidateConnection(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	player, err := h.kioskService.ValidateConnection(c.Context(), accountID)
	if err != nil {
		return h.connectorError(c, "validate_connection", err)
	}
	return c.JSON(fiber.Map{
		"player_id":  player.PlayerID,
		"first_name": player.FirstName,
		"last_name":  player.LastName,
	})
}

func (h *KioskHandler) Groups(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	groups, err := h.kioskService.Groups(c.Context(), accountID)
	if err != nil {
		return h.connectorError(c, "kiosk_groups", err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

func (h *KioskHandler) EnrollPlayer(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	var req dto.EnrollGroupRequest
	if err := c.BodyParser(&req); err != nil || req.PlayerID == "" || req.GroupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "player_id and group_id are required",
		})
	}

	enrolled, err := h.kioskService.EnrollPlayer(c.Context(), accountID, req.PlayerID, req.GroupID)
	if err != nil {
		return h.connectorError(c, "kiosk_group_player", err)
	}
	return c.JSON(fiber.Map{"enrolled": enrolled})
}

func (h *KioskHandler) Methods(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	methods, err := h.kioskService.Methods(c.Context(), accountID)
	if err != nil {
		return h.connectorError(c, "kiosk_methods", err)
	}
	return c.JSON(fiber.Map{"methods": methods})
}

func (h *KioskHandler) InvokeMethod(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	var req dto.InvokeMethodRequest
	if err := c.BodyParser(&req); err != nil || req.PlayerID == "" || req.MethodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "player_id and method_id are required",
		})
	}

	code, err := h.kioskService.InvokeMethod(c.Context(), accountID, req.PlayerID, req.MethodID)
	if err != nil {
		return h.connectorError(c, "kiosk_method_player", err)
	}
	return c.JSON(dto.ResultCodeResponse{ResultCode: code})
}

func (h *KioskHandler) PlayerOffers(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	playerID := c.Params("player_id")

	offers, err := h.kioskService.PlayerOffers(c.Context(), accountID, playerID)
	if err != nil {
		return h.connectorError(c, "kiosk_offers", err)
	}
	return c.JSON(fiber.Map{"offers": offers})
}

func (h *KioskHandler) RedeemOffer(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	var req dto.RedeemOfferRequest
	if err := c.BodyParser(&req); err != nil || req.GUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "guid is required",
		})
	}

	code, err := h.kioskService.RedeemOffer(c.Context(), accountID, req.GUID)
	if err != nil {
		return h.connectorError(c, "kiosk_offer_redeem", err)
	}
	return c.JSON(dto.ResultCodeResponse{ResultCode: code})
}

func (h *KioskHandler) PlayerScore(c *fiber.Ctx) error {
	accountID := account.GetAccountID(c)
	playerID := c.Params("player_id")

	score, err := h.kioskService.PlayerScore(c.Context(), accountID, playerID)
	if err != nil {
		return h.connectorError(c, "player_score", err)
	}
	return c.JSON(fiber.Map{"score": score})
}
