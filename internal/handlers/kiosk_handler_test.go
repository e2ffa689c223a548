package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/twocngdagz/lush-sub001/internal/connector"
)

func TestConnectorStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"connection", connector.ConnectionError("op", 502, errors.New("down")), fiber.StatusBadGateway},
		{"configuration", connector.ConfigurationError("settings missing"), fiber.StatusServiceUnavailable},
		{"not found", connector.NotFoundError("op", "gone"), fiber.StatusNotFound},
		{"validation", connector.ValidationError("op", "bad payload"), fiber.StatusBadGateway},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"wrapped", fmt.Errorf("account 1: %w", connector.NotFoundError("op", "gone")), fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := connectorStatus(tc.err)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
			if message == "" {
				t.Error("message must never be empty")
			}
		})
	}
}

func TestConnectorStatusConfigurationDetail(t *testing.T) {
	_, message := connectorStatus(connector.ConfigurationError("account settings missing API URL or key"))
	if message != "account settings missing API URL or key" {
		t.Errorf("configuration errors should surface the operator-facing detail, got %q", message)
	}
}
