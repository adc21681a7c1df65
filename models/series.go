package models

import (
	"time"

	"github.com/guregu/null/v6"
)

// PricePoint is one trading day for one ticker. Close is the adjusted
// closing price; it is null when the source had no value for that day.
type PricePoint struct {
	Date  time.Time
	Close null.Float
}

// PriceSeries is an ordered run of daily prices for a single ticker,
// oldest first.
type PriceSeries struct {
	Ticker string
	Name   string
	Points []PricePoint
}

// ReturnPoint holds a daily percent change as a decimal (0.01 == 1%).
type ReturnPoint struct {
	Date  time.Time
	Value float64
}

// ReturnSeries is derived from a PriceSeries and has one fewer point
// than its source, there is no return for the first trading day.
type ReturnSeries struct {
	Ticker string
	Name   string
	Points []ReturnPoint
}

// DeviationSeries holds sector return minus index return per date.
// It is defined only on dates present in both source series.
type DeviationSeries struct {
	Ticker string
	Name   string
	Points []ReturnPoint
}

// CorrelationMatrix is a square symmetric matrix of Pearson correlation
// coefficients keyed by ticker order. Values[i][j] is the correlation
// between Tickers[i] and Tickers[j].
type CorrelationMatrix struct {
	Tickers []string
	Values  [][]float64
}

// At returns the coefficient for the i-th and j-th tickers.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Dim returns the number of tickers in the matrix.
func (m *CorrelationMatrix) Dim() int {
	return len(m.Tickers)
}
