package core

import (
	"fmt"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// Returns converts a price series to daily percent-change returns,
// r[t] = p[t]/p[t-1] - 1. Days with a null close are dropped before
// differencing, so k usable prices always yield k-1 returns.
func Returns(prices *models.PriceSeries) (*models.ReturnSeries, error) {
	valid := ex.FilterMultiple(prices.Points, func(p models.PricePoint) bool {
		return p.Close.Valid
	})

	if len(valid) < 2 {
		return nil, fmt.Errorf("need at least two prices for %s, got %d", prices.Ticker, len(valid))
	}

	points := make([]models.ReturnPoint, 0, len(valid)-1)
	for i := 1; i < len(valid); i++ {
		prev := valid[i-1].Close.Float64
		if prev == 0 {
			return nil, fmt.Errorf("zero price for %s on %s", prices.Ticker, ex.FmtShort(valid[i-1].Date))
		}
		points = append(points, models.ReturnPoint{
			Date:  valid[i].Date,
			Value: valid[i].Close.Float64/prev - 1,
		})
	}

	return &models.ReturnSeries{
		Ticker: prices.Ticker,
		Name:   prices.Name,
		Points: points,
	}, nil
}

// Deviations subtracts the index return from the sector return on every
// date the two series share. Dates missing from either side are dropped,
// never imputed.
func Deviations(sector, index *models.ReturnSeries) *models.DeviationSeries {
	indexByDate := make(map[string]float64, len(index.Points))
	for _, p := range index.Points {
		indexByDate[ex.FmtShort(p.Date)] = p.Value
	}

	var points []models.ReturnPoint
	for _, p := range sector.Points {
		if indexValue, ok := indexByDate[ex.FmtShort(p.Date)]; ok {
			points = append(points, models.ReturnPoint{
				Date:  p.Date,
				Value: p.Value - indexValue,
			})
		}
	}

	return &models.DeviationSeries{
		Ticker: sector.Ticker,
		Name:   sector.Name,
		Points: points,
	}
}

// CumulativeDeviations turns each deviation series into its running sum,
// the total out- or under-performance since the start of the window.
func CumulativeDeviations(deviations []*models.DeviationSeries) []*models.DeviationSeries {
	results := make([]*models.DeviationSeries, len(deviations))
	for i, series := range deviations {
		points := make([]models.ReturnPoint, len(series.Points))
		running := 0.0
		for j, p := range series.Points {
			running += p.Value
			points[j] = models.ReturnPoint{Date: p.Date, Value: running}
		}
		results[i] = &models.DeviationSeries{
			Ticker: series.Ticker,
			Name:   series.Name,
			Points: points,
		}
	}
	return results
}
