package middleware

import (
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"salary_ledger/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantApp(cfg TenantConfig) *fiber.App {
	app := fiber.New()
	app.Use(ResolveTenant(cfg))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatInt(int64(Tenant(c)), 10))
	})
	return app
}

func TestResolveTenant(t *testing.T) {
	multi := TenantConfig{MultiTenant: true, Header: "X-Telegram-ID", Default: models.DefaultTenantID}
	single := TenantConfig{MultiTenant: false, Header: "X-Telegram-ID", Default: models.DefaultTenantID}

	tests := []struct {
		name   string
		cfg    TenantConfig
		header string
		want   string
	}{
		{"numeric header", multi, "123456789", "123456789"},
		{"padded header", multi, " 42 ", "42"},
		{"missing header", multi, "", "1"},
		{"non numeric header", multi, "abc", "1"},
		{"float header", multi, "4.5", "1"},
		{"single tenant ignores header", single, "123", "1"},
		{"custom default", TenantConfig{MultiTenant: true, Header: "X-User", Default: 7}, "", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := tenantApp(tt.cfg)
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(tt.cfg.Header, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestTenantWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, models.DefaultTenantID, Tenant(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
