package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"salary_ledger/config"
	"salary_ledger/middleware"
	"salary_ledger/models"
	"salary_ledger/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const tenantHeader = "X-Telegram-ID"

func SetupTest(t *testing.T, multiTenant bool) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := config.OpenDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })

	app := fiber.New()
	app.Use(middleware.ResolveTenant(middleware.TenantConfig{
		MultiTenant: multiTenant,
		Header:      tenantHeader,
		Default:     models.DefaultTenantID,
	}))
	NewHandler(services.NewSettingsStore(db), services.NewLedger(db), multiTenant).RegisterRoutes(app)
	return app, db
}

// doRequest sends body as JSON (unless it is nil) on behalf of tenant (0 sends no header).
func doRequest(t *testing.T, app *fiber.App, method, path string, tenant int64, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenant != 0 {
		req.Header.Set(tenantHeader, fmt.Sprint(tenant))
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
