package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/twocngdagz/lush-sub001/internal/dto"
	"github.com/twocngdagz/lush-sub001/internal/models"
)

// Paths that don't require account identification.
var accountSkipPaths = []string{
	"/api/health",
}

// AccountMiddleware resolves the tenant account from JWT claims or the
// X-Account-ID header and stores it in context locals.
func AccountMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, skip := range accountSkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		// 1. Try JWT claim (already authenticated)
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if id, ok := claims["account_id"].(float64); ok && id > 0 {
					c.Locals("account_id", uint(id))
					return c.Next()
				}
			}
		}

		// 2. Try X-Account-ID header
		header := c.Get("X-Account-ID")
		if header == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "X-Account-ID header is required",
			})
		}

		id, err := strconv.ParseUint(header, 10, 32)
		if err != nil || id == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Invalid X-Account-ID: " + header,
			})
		}

		var acct models.Account
		if err := db.First(&acct, "id = ? AND active = true", uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Unknown account: " + header,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Account lookup failed",
			})
		}

		c.Locals("account_id", acct.ID)
		return c.Next()
	}
}
