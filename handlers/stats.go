package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"salary_ledger/middleware"
	"salary_ledger/services"
	"salary_ledger/types"
	"salary_ledger/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) GetMonthStats(c *fiber.Ctx) error {
	stats, err := h.monthStats(c)
	if err != nil || stats == nil {
		return err
	}
	return c.JSON(stats)
}

// ExportMonthStats sends the month as an xlsx attachment.
func (h *Handler) ExportMonthStats(c *fiber.Ctx) error {
	stats, err := h.monthStats(c)
	if err != nil || stats == nil {
		return err
	}

	data, err := services.ExportMonth(stats)
	if err != nil {
		utils.Logger.Error("Failed to export month", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailUnexpected})
	}

	c.Attachment(fmt.Sprintf("salary-%04d-%02d.xlsx", stats.Year, int(stats.Month)))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// monthStats returns nil stats when a response has already been written.
func (h *Handler) monthStats(c *fiber.Ctx) (*services.MonthStats, error) {
	year, yerr := strconv.Atoi(c.Params("year"))
	month, merr := strconv.Atoi(c.Params("month"))
	var fields []types.FieldError
	if yerr != nil {
		fields = append(fields, types.FieldError{Field: "year", Message: "must be an integer"})
	}
	if merr != nil {
		fields = append(fields, types.FieldError{Field: "month", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		return nil, validationError(c, fields...)
	}

	tenant := middleware.Tenant(c)
	stats, err := h.Ledger.QueryMonth(c.UserContext(), tenant, year, month)
	if errors.Is(err, services.ErrInvalidMonth) {
		return nil, validationError(c, types.FieldError{Field: "month", Message: err.Error()})
	}
	if err != nil {
		utils.Logger.Error("Failed to fetch month stats",
			zap.Int64("tenant_id", int64(tenant)), zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Detail: types.DetailStorageFailure})
	}
	return stats, nil
}
