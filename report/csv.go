package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// WriteDeviationCSV writes one row per date with a column per sector.
// Rows cover the union of dates; a sector missing a date gets an empty
// cell, matching how the deviation series were built.
func WriteDeviationCSV(path string, deviations []*models.DeviationSeries) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	byDate := make([]map[string]float64, len(deviations))
	dateSet := make(map[string]bool)
	for i, series := range deviations {
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

	writer := csv.NewWriter(file)

	header := make([]string, 0, len(deviations)+1)
	header = append(header, "Date")
	for _, series := range deviations {
		header = append(header, series.Name)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	row := make([]string, len(header))
	for _, date := range dates {
		row[0] = date
		for i := range deviations {
			row[i+1] = ""
			if value, ok := byDate[i][date]; ok {
				row[i+1] = formatValue(value)
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing row for %s: %w", date, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCorrelationCSV writes the square matrix with tickers on both
// axes.
func WriteCorrelationCSV(path string, matrix *models.CorrelationMatrix) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := append([]string{""}, matrix.Tickers...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for i, ticker := range matrix.Tickers {
		row := make([]string, 0, matrix.Dim()+1)
		row = append(row, ticker)
		for j := range matrix.Tickers {
			row = append(row, formatValue(matrix.At(i, j)))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing row for %s: %w", ticker, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
