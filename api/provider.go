package api

import (
	"errors"
	"time"

	"github.com/LBJANU/sp-model/models"
)

// ErrNoData is returned when a ticker has no price data in the
// requested window.
var ErrNoData = errors.New("no price data in range")

// PriceProvider defines the interface for fetching historical daily
// prices for one ticker.
type PriceProvider interface {
	DailyPrices(ticker string, start, end time.Time) (*models.PriceSeries, error)
	Name() string
}

func validateRange(start, end time.Time) error {
	if !start.Before(end) {
		return errors.New("invalid date range, start must be before end")
	}
	return nil
}

// tradingDay collapses a source timestamp to midnight UTC so dates from
// different providers align on the same key.
func tradingDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
