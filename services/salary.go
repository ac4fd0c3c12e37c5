package services

import (
	"salary_ledger/models"

	"github.com/shopspring/decimal"
)

// SalaryInput is the part of a work day submission the formula depends on.
type SalaryInput struct {
	RecordType       models.RecordType
	Points           int
	AdditionalPoints int
	Weight           float64
	ManualPayment    float64
	DistanceKm       float64
	PricePerKm       float64
}

// Salary is the outcome of the formula: the fixed part that was applied and the total.
type Salary struct {
	FixedPart float64
	Total     float64
}

// CalculateSalary applies the tariff to one work day.
//
//	CITY_MAIN:  departure_fee  + cost_per_point*(points+additional) + weight*price_per_tone
//	CITY_EXTRA: manual_payment + cost_per_point*(points+additional) + weight*price_per_tone
//	INTERCITY:  distance_km * price_per_km
//
// Unknown record types earn nothing.
func CalculateSalary(settings models.Settings, in SalaryInput) Salary {
	var fixed, total decimal.Decimal

	switch in.RecordType {
	case models.RecordCityMain:
		fixed = decimal.NewFromInt(int64(settings.DepartureFee))
		total = citySalary(settings, fixed, in)
	case models.RecordCityExtra:
		fixed = decimal.NewFromFloat(in.ManualPayment)
		total = citySalary(settings, fixed, in)
	case models.RecordIntercity:
		total = decimal.NewFromFloat(in.DistanceKm).Mul(decimal.NewFromFloat(in.PricePerKm))
	}

	return Salary{
		FixedPart: fixed.InexactFloat64(),
		Total:     total.InexactFloat64(),
	}
}

func citySalary(settings models.Settings, fixed decimal.Decimal, in SalaryInput) decimal.Decimal {
	points := decimal.NewFromInt(int64(in.Points) + int64(in.AdditionalPoints))
	byPoints := decimal.NewFromInt(int64(settings.CostPerPoint)).Mul(points)
	byWeight := decimal.NewFromFloat(in.Weight).Mul(decimal.NewFromFloat(settings.PricePerTone))
	return fixed.Add(byPoints).Add(byWeight)
}
