package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []interface{}{
	"Date", "Type", "Points", "Additional points", "Weight",
	"Fixed payment", "Distance, km", "Price per km", "Salary",
}

// ExportMonth renders the month as a single-sheet workbook with a totals row.
func ExportMonth(stats *MonthStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%04d-%02d", stats.Year, int(stats.Month))
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, d := range stats.Entries {
		row := []interface{}{
			d.Date.String(), string(d.RecordType), d.Points, d.AdditionalPoints, d.Weight,
			d.FixedPayment, d.DistanceKm, d.PricePerKm, d.TotalSalary,
		}
		cell, err := rowStart(i + 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	totals := []interface{}{
		"Total", fmt.Sprintf("%d days", stats.Count), stats.TotalPoints, nil, stats.TotalWeight,
		nil, stats.TotalKm, nil, stats.TotalSalary,
	}
	cell, err := rowStart(len(stats.Entries) + 2)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
		return nil, fmt.Errorf("failed to write totals: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// rowStart returns the name of the first cell of a 1-based row.
func rowStart(row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", fmt.Errorf("failed to address row %d: %w", row, err)
	}
	return cell, nil
}
