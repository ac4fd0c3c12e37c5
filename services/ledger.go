package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salary_ledger/models"
	"salary_ledger/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// EntryInput describes one submitted work day.
type EntryInput struct {
	Date             models.Date
	RecordType       models.RecordType
	Points           int
	AdditionalPoints int
	Weight           float64
	ManualPayment    float64
	DistanceKm       float64
	PricePerKm       float64
}

func (in EntryInput) salaryInput() SalaryInput {
	return SalaryInput{
		RecordType:       in.RecordType,
		Points:           in.Points,
		AdditionalPoints: in.AdditionalPoints,
		Weight:           in.Weight,
		ManualPayment:    in.ManualPayment,
		DistanceKm:       in.DistanceKm,
		PricePerKm:       in.PricePerKm,
	}
}

type MonthStats struct {
	Year        int              `json:"-"`
	Month       time.Month       `json:"-"`
	Entries     []models.WorkDay `json:"history"`
	TotalSalary float64          `json:"total_salary"`
	TotalKm     float64          `json:"total_km"`
	TotalPoints int              `json:"total_points"`
	TotalWeight float64          `json:"total_weight"`
	Count       int              `json:"total_days"`
}

// CreateEntry prices the work day against the tenant's current tariff and stores it.
func (l *Ledger) CreateEntry(ctx context.Context, tenant models.TenantID, in EntryInput) (*models.WorkDay, error) {
	if !in.RecordType.Known() {
		utils.Logger.Warn("Unknown record type, salary will be zero",
			zap.Int64("tenant_id", int64(tenant)),
			zap.String("record_type", string(in.RecordType)))
	}

	var day *models.WorkDay
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := findOrInsertSettings(tx, tenant)
		if err != nil {
			return err
		}

		salary := CalculateSalary(*settings, in.salaryInput())
		day = &models.WorkDay{
			TenantID:         tenant,
			Date:             in.Date,
			RecordType:       in.RecordType,
			Points:           in.Points,
			AdditionalPoints: in.AdditionalPoints,
			Weight:           in.Weight,
			FixedPayment:     salary.FixedPart,
			DistanceKm:       in.DistanceKm,
			PricePerKm:       in.PricePerKm,
			TotalSalary:      salary.Total,
		}
		if err := tx.Create(day).Error; err != nil {
			return fmt.Errorf("failed to save work day: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

// QueryMonth returns the tenant's entries of one calendar month, newest first, with totals.
func (l *Ledger) QueryMonth(ctx context.Context, tenant models.TenantID, year, month int) (*MonthStats, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	start, end := models.MonthRange(year, time.Month(month))

	var days []models.WorkDay
	err := l.db.WithContext(ctx).
		Where("tenant_id = ? AND date >= ? AND date < ?", tenant, start, end).
		Order("date DESC").
		Order("id ASC").
		Find(&days).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query work days: %w", err)
	}
	if days == nil {
		days = []models.WorkDay{}
	}

	stats := &MonthStats{
		Year:    year,
		Month:   time.Month(month),
		Entries: days,
		Count:   len(days),
	}
	salary, km, weight := decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range days {
		salary = salary.Add(decimal.NewFromFloat(d.TotalSalary))
		km = km.Add(decimal.NewFromFloat(d.DistanceKm))
		weight = weight.Add(decimal.NewFromFloat(d.Weight))
		stats.TotalPoints += d.Points + d.AdditionalPoints
	}
	stats.TotalSalary = salary.InexactFloat64()
	stats.TotalKm = km.InexactFloat64()
	stats.TotalWeight = weight.InexactFloat64()
	return stats, nil
}

// DeleteEntry removes the entry only if it belongs to tenant and reports whether it existed.
func (l *Ledger) DeleteEntry(ctx context.Context, tenant models.TenantID, id uint) (bool, error) {
	res := l.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenant).
		Delete(&models.WorkDay{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete work day %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// WipeTenant irreversibly removes every work day and the settings of tenant.
func (l *Ledger) WipeTenant(ctx context.Context, tenant models.TenantID) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenant).Delete(&models.WorkDay{}).Error; err != nil {
			return fmt.Errorf("failed to delete work days of tenant %d: %w", tenant, err)
		}
		if err := tx.Where("tenant_id = ?", tenant).Delete(&models.Settings{}).Error; err != nil {
			return fmt.Errorf("failed to delete settings of tenant %d: %w", tenant, err)
		}
		return nil
	})
}
