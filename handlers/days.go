package handlers

import (
	"strconv"

	"salary_ledger/middleware"
	"salary_ledger/models"
	"salary_ledger/services"
	"salary_ledger/types"
	"salary_ledger/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateDayRequest is a work day submission. Which optional fields matter
// depends on record_type, but all of them are stored as sent. record_type
// must be present; any string, empty included, is accepted.
type CreateDayRequest struct {
	Date             *models.Date       `json:"date" validate:"required"`
	RecordType       *models.RecordType `json:"record_type" validate:"required"`
	Points           float64            `json:"points" validate:"whole"`
	AdditionalPoints float64            `json:"additional_points" validate:"whole"`
	Weight           float64            `json:"weight"`
	ManualPayment    float64            `json:"manual_payment"`
	DistanceKm       float64            `json:"distance_km"`
	PricePerKm       float64            `json:"price_per_km"`
}

func (h *Handler) CreateDay(c *fiber.Ctx) error {
	var req CreateDayRequest
	if ok, err := h.parseBody(c, &req); !ok {
		return err
	}

	tenant := middleware.Tenant(c)
	day, err := h.Ledger.CreateEntry(c.UserContext(), tenant, services.EntryInput{
		Date:             *req.Date,
		RecordType:       *req.RecordType,
		Points:           int(req.Points),
		AdditionalPoints: int(req.AdditionalPoints),
		Weight:           req.Weight,
		ManualPayment:    req.ManualPayment,
		DistanceKm:       req.DistanceKm,
		PricePerKm:       req.PricePerKm,
	})
	if err != nil {
		utils.Logger.Error("Failed to save work day", zap.Int64("tenant_id", int64(tenant)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
	}

	salary := day.TotalSalary
	return c.JSON(types.StatusResponse{Status: types.StatusSaved, Salary: &salary})
}

func (h *Handler) DeleteDay(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return validationError(c, types.FieldError{Field: "id", Message: "must be an integer"})
	}

	tenant := middleware.Tenant(c)
	deleted := false
	// ids start at 1, so anything lower cannot match a row
	if id > 0 {
		deleted, err = h.Ledger.DeleteEntry(c.UserContext(), tenant, uint(id))
		if err != nil {
			utils.Logger.Error("Failed to delete work day",
				zap.Int64("tenant_id", int64(tenant)), zap.Int64("id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
		}
	}
	if !deleted && h.MultiTenant {
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{Detail: types.DetailNotFound})
	}
	return c.JSON(types.StatusResponse{Status: types.StatusDeleted})
}

// WipeData drops every work day and the settings of the caller. There is no undo.
func (h *Handler) WipeData(c *fiber.Ctx) error {
	tenant := middleware.Tenant(c)
	if err := h.Ledger.WipeTenant(c.UserContext(), tenant); err != nil {
		utils.Logger.Error("Failed to wipe tenant data", zap.Int64("tenant_id", int64(tenant)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
	}
	utils.Logger.Info("Tenant data wiped", zap.Int64("tenant_id", int64(tenant)))
	return c.JSON(types.StatusResponse{Status: types.StatusWiped})
}
