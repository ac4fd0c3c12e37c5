package services

import (
	"context"
	"fmt"

	"salary_ledger/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// TariffUpdate replaces all three tariff values of a tenant.
type TariffUpdate struct {
	CostPerPoint int
	DepartureFee int
	PricePerTone float64
}

// GetOrCreate returns the tenant's settings, inserting zero values on first access.
func (s *SettingsStore) GetOrCreate(ctx context.Context, tenant models.TenantID) (*models.Settings, error) {
	var settings *models.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = findOrInsertSettings(tx, tenant)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update overwrites every tariff field, creating the row if needed. Values are not range checked.
func (s *SettingsStore) Update(ctx context.Context, tenant models.TenantID, upd TariffUpdate) (*models.Settings, error) {
	var settings *models.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = findOrInsertSettings(tx, tenant)
		if err != nil {
			return err
		}

		// a map keeps zero values in the UPDATE
		err = tx.Model(settings).Updates(map[string]interface{}{
			"cost_per_point": upd.CostPerPoint,
			"departure_fee":  upd.DepartureFee,
			"price_per_tone": upd.PricePerTone,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update settings for tenant %d: %w", tenant, err)
		}

		settings.CostPerPoint = upd.CostPerPoint
		settings.DepartureFee = upd.DepartureFee
		settings.PricePerTone = upd.PricePerTone
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// findOrInsertSettings must run inside a transaction. The unique index on
// tenant_id turns a concurrent first insert into a no-op.
func findOrInsertSettings(tx *gorm.DB, tenant models.TenantID) (*models.Settings, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoNothing: true,
	}).Create(&models.Settings{TenantID: tenant}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to insert settings for tenant %d: %w", tenant, err)
	}

	var settings models.Settings
	if err := tx.Where("tenant_id = ?", tenant).First(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings for tenant %d: %w", tenant, err)
	}
	return &settings, nil
}
