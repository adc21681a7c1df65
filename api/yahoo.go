package api

import (
	"fmt"
	"time"

	"github.com/guregu/null/v6"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// YahooClient fetches daily bars from the Yahoo Finance chart API. It
// needs no API key and is the default data source.
type YahooClient struct{}

func (YahooClient) Name() string {
	return "yahoo"
}

func (YahooClient) DailyPrices(ticker string, start, end time.Time) (*models.PriceSeries, error) {
	if err := validateRange(start, end); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", ticker, err)
	}

	params := &chart.Params{
		Symbol:   ticker,
		Interval: datetime.OneDay,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
	}

	iter := chart.Get(params)

	var points []models.PricePoint
	for iter.Next() {
		bar := iter.Bar()
		adjClose, _ := bar.AdjClose.Float64()
		points = append(points, models.PricePoint{
			Date:  tradingDay(time.Unix(int64(bar.Timestamp), 0)),
			Close: null.FloatFrom(adjClose),
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error requesting daily series for %s: %w", ticker, err)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w for %s between %s and %s", ErrNoData, ticker, ex.FmtShort(start), ex.FmtShort(end))
	}

	return &models.PriceSeries{Ticker: ticker, Points: points}, nil
}
