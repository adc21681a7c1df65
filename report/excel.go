package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

const (
	deviationSheet   = "Deviation Returns"
	correlationSheet = "Correlation"
)

// WriteWorkbook writes the deviation returns and the correlation matrix
// into one spreadsheet for people who want to explore the numbers
// outside the CSVs.
func WriteWorkbook(path string, deviations []*models.DeviationSeries, matrix *models.CorrelationMatrix) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", deviationSheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}
	if err := writeDeviationSheet(f, deviations); err != nil {
		return err
	}

	if _, err := f.NewSheet(correlationSheet); err != nil {
		return fmt.Errorf("error adding sheet: %w", err)
	}
	if err := writeCorrelationSheet(f, matrix); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving %s: %w", path, err)
	}
	return nil
}

func writeDeviationSheet(f *excelize.File, deviations []*models.DeviationSeries) error {
	if err := setCell(f, deviationSheet, 1, 1, "Date"); err != nil {
		return err
	}

	byDate := make([]map[string]float64, len(deviations))
	dateSet := make(map[string]bool)
	for i, series := range deviations {
		if err := setCell(f, deviationSheet, i+2, 1, series.Name); err != nil {
			return err
		}
		byDate[i] = make(map[string]float64, len(series.Points))
		for _, p := range series.Points {
			key := ex.FmtShort(p.Date)
			byDate[i][key] = p.Value
			dateSet[key] = true
		}
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for rowIdx, date := range dates {
		row := rowIdx + 2
		if err := setCell(f, deviationSheet, 1, row, date); err != nil {
			return err
		}
		for i := range deviations {
			if value, ok := byDate[i][date]; ok {
				if err := setCell(f, deviationSheet, i+2, row, value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeCorrelationSheet(f *excelize.File, matrix *models.CorrelationMatrix) error {
	for i, ticker := range matrix.Tickers {
		if err := setCell(f, correlationSheet, i+2, 1, ticker); err != nil {
			return err
		}
		if err := setCell(f, correlationSheet, 1, i+2, ticker); err != nil {
			return err
		}
		for j := range matrix.Tickers {
			if err := setCell(f, correlationSheet, j+2, i+2, matrix.At(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("error naming cell (%d, %d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("error setting cell %s: %w", cell, err)
	}
	return nil
}
