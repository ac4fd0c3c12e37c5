package models

type TenantID int64

// DefaultTenantID is used when the caller does not identify itself.
const DefaultTenantID TenantID = 1

type RecordType string

const (
	RecordCityMain  RecordType = "CITY_MAIN"  // city, main shift: departure fee from settings
	RecordCityExtra RecordType = "CITY_EXTRA" // city, extra shift: fixed part entered by hand
	RecordIntercity RecordType = "INTERCITY"  // distance * price per km
)

// Known reports whether the salary formula understands the record type.
func (r RecordType) Known() bool {
	switch r {
	case RecordCityMain, RecordCityExtra, RecordIntercity:
		return true
	}
	return false
}

// Settings holds the tariff of a single tenant. There is at most one row per tenant.
type Settings struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	TenantID     TenantID `gorm:"uniqueIndex;not null" json:"tenant_id"`
	CostPerPoint int      `gorm:"not null;default:0" json:"cost_per_point"`
	DepartureFee int      `gorm:"not null;default:0" json:"departure_fee"`
	PricePerTone float64  `gorm:"not null;default:0" json:"price_per_tone"`
}

// WorkDay is one day of work. FixedPayment and TotalSalary are computed
// once on creation and never recomputed.
type WorkDay struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	TenantID         TenantID   `gorm:"index;not null" json:"tenant_id"`
	Date             Date       `gorm:"type:date;index;not null" json:"date"`
	RecordType       RecordType `gorm:"not null" json:"record_type"`
	Points           int        `gorm:"not null;default:0" json:"points"`
	AdditionalPoints int        `gorm:"not null;default:0" json:"additional_points"`
	Weight           float64    `gorm:"not null;default:0" json:"weight"`
	FixedPayment     float64    `gorm:"not null;default:0" json:"fixed_payment"`
	DistanceKm       float64    `gorm:"not null;default:0" json:"distance_km"`
	PricePerKm       float64    `gorm:"not null;default:0" json:"price_per_km"`
	TotalSalary      float64    `gorm:"not null;default:0" json:"total_salary"`
}

func (WorkDay) TableName() string {
	return "work_days"
}

// All lists every model that has to be migrated on startup.
func All() []interface{} {
	return []interface{}{&Settings{}, &WorkDay{}}
}
