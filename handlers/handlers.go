package handlers

import (
	"salary_ledger/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Settings *services.SettingsStore
	Ledger   *services.Ledger
	// MultiTenant turns a delete of a missing entry into 404 instead of a no-op.
	MultiTenant bool

	validate *validator.Validate
}

func NewHandler(settings *services.SettingsStore, ledger *services.Ledger, multiTenant bool) *Handler {
	return &Handler{
		Settings:    settings,
		Ledger:      ledger,
		MultiTenant: multiTenant,
		validate:    newValidator(),
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	api := router.Group("/api")

	api.Get("/settings", h.GetSettings)
	api.Put("/settings", h.UpdateSettings)

	api.Post("/days", h.CreateDay)
	api.Delete("/days/:id", h.DeleteDay)

	api.Get("/stats/:year/:month", h.GetMonthStats)
	api.Get("/stats/:year/:month/export", h.ExportMonthStats)

	api.Delete("/wipe", h.WipeData)
}
