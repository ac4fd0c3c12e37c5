package handlers

import (
	"salary_ledger/middleware"
	"salary_ledger/services"
	"salary_ledger/types"
	"salary_ledger/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UpdateSettingsRequest struct {
	CostPerPoint *float64 `json:"cost_per_point" validate:"required,whole"`
	DepartureFee *float64 `json:"departure_fee" validate:"required,whole"`
	PricePerTone *float64 `json:"price_per_tone" validate:"required"`
}

// GetSettings returns the caller's tariff, creating a zero one on first access.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	tenant := middleware.Tenant(c)

	settings, err := h.Settings.GetOrCreate(c.UserContext(), tenant)
	if err != nil {
		utils.Logger.Error("Failed to fetch settings", zap.Int64("tenant_id", int64(tenant)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
	}
	return c.JSON(settings)
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	var req UpdateSettingsRequest
	if ok, err := h.parseBody(c, &req); !ok {
		return err
	}

	tenant := middleware.Tenant(c)
	_, err := h.Settings.Update(c.UserContext(), tenant, services.TariffUpdate{
		CostPerPoint: int(*req.CostPerPoint),
		DepartureFee: int(*req.DepartureFee),
		PricePerTone: *req.PricePerTone,
	})
	if err != nil {
		utils.Logger.Error("Failed to update settings", zap.Int64("tenant_id", int64(tenant)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
	}
	return c.JSON(types.StatusResponse{Status: types.StatusOK})
}
