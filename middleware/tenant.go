package middleware

import (
	"strconv"
	"strings"

	"salary_ledger/models"

	"github.com/gofiber/fiber/v2"
)

const tenantKey = "tenant_id"

// TenantConfig controls how requests are mapped to a tenant.
type TenantConfig struct {
	// MultiTenant off pins every request to Default.
	MultiTenant bool
	Header      string
	Default     models.TenantID
}

// The header value is trusted as is; nothing verifies that the caller owns the id.
func extractTenant(c *fiber.Ctx, cfg TenantConfig) models.TenantID {
	if !cfg.MultiTenant {
		return cfg.Default
	}

	raw := strings.TrimSpace(c.Get(cfg.Header))
	if raw == "" {
		return cfg.Default
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return cfg.Default
	}
	return models.TenantID(id)
}

// ResolveTenant stores the caller's tenant in the request locals.
func ResolveTenant(cfg TenantConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(tenantKey, extractTenant(c, cfg))
		return c.Next()
	}
}

// Tenant returns the tenant set by ResolveTenant, or the default tenant.
func Tenant(c *fiber.Ctx) models.TenantID {
	if id, ok := c.Locals(tenantKey).(models.TenantID); ok {
		return id
	}
	return models.DefaultTenantID
}
