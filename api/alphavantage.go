package api

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// public
const (
	HostDefault = "www.alphavantage.co"
)

// private
const (
	apiKey     = "apikey"
	dataType   = "datatype"
	outputSize = "outputsize"
	symbol     = "symbol"
	function   = "function"

	defaultDataType   = "json"
	defaultOutputSize = "full"

	query = "query"

	requestTimeout = time.Second * 30

	functionDailyAdjusted = "TIME_SERIES_DAILY_ADJUSTED"
	timeSeriesDailyKey    = "Time Series (Daily)"
	adjustedCloseSuffix   = ". adjusted close"
)

type AlphaVantageClient struct {
	*Client
}

func GetClient(apiKey string) AlphaVantageClient {
	return AlphaVantageClient{
		NewClient(HostDefault, apiKey, requestTimeout),
	}
}

func (avc AlphaVantageClient) Name() string {
	return "alphavantage"
}

// DailyPrices queries the full daily adjusted series for a ticker and
// trims it to the requested window client side, oldest first.
func (avc AlphaVantageClient) DailyPrices(ticker string, start, end time.Time) (*models.PriceSeries, error) {
	if err := validateRange(start, end); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", ticker, err)
	}

	endpoint := avc.buildRequestPath(map[string]string{
		function: functionDailyAdjusted,
		symbol:   ticker,
	})

	response, err := avc.connection.Request(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error requesting daily series for %s: %w", ticker, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error requesting daily series for %s, status %d", ticker, response.StatusCode)
	}

	points, err := parseDailySeries(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing daily series for %s: %w", ticker, err)
	}

	inWindow := ex.FilterMultiple(points, func(p models.PricePoint) bool {
		return !p.Date.Before(tradingDay(start)) && !p.Date.After(tradingDay(end))
	})

	if len(inWindow) == 0 {
		return nil, fmt.Errorf("%w for %s between %s and %s", ErrNoData, ticker, ex.FmtShort(start), ex.FmtShort(end))
	}

	return &models.PriceSeries{Ticker: ticker, Points: inWindow}, nil
}

func (c *Client) buildRequestPath(params map[string]string) *url.URL {
	// build our URL
	endpoint := &url.URL{}
	endpoint.Path = query

	// base parameters
	query := endpoint.Query()
	query.Set(apiKey, c.apiKey)
	query.Set(dataType, defaultDataType)
	query.Set(outputSize, defaultOutputSize)

	// additional parameters
	for key, value := range params {
		query.Set(key, value)
	}

	endpoint.RawQuery = query.Encode()

	return endpoint
}

func parseDailySeries(reader io.Reader) ([]models.PricePoint, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	// converting to a <string, raw message> map
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	payload, ok := raw[timeSeriesDailyKey]
	if !ok {
		// Alpha Vantage reports problems as a 200 with a message body
		for _, key := range []string{"Error Message", "Note", "Information"} {
			if msg, ok := raw[key]; ok {
				var text string
				if err := json.Unmarshal(msg, &text); err == nil {
					return nil, fmt.Errorf("alpha vantage: %s", text)
				}
			}
		}
		return nil, fmt.Errorf("response has no %q element", timeSeriesDailyKey)
	}

	var days map[string]map[string]string
	if err := json.Unmarshal(payload, &days); err != nil {
		return nil, fmt.Errorf("error unmarshaling time series: %w", err)
	}

	points := make([]models.PricePoint, 0, len(days))
	closeKey := ""
	for dateString, fields := range days {
		if closeKey == "" {
			headers := slices.Collect(maps.Keys(fields))
			f := func(s string) bool {
				return strings.HasSuffix(strings.ToLower(s), adjustedCloseSuffix)
			}
			key, err := ex.FilterSingle(headers, f)
			if err != nil {
				return nil, fmt.Errorf("error locating adjusted close column. Available headers: %v", headers)
			}
			closeKey = key
		}

		date, err := time.Parse(time.DateOnly, dateString)
		if err != nil {
			return nil, fmt.Errorf("error converting date %s to time.Time: %w", dateString, err)
		}

		points = append(points, models.PricePoint{
			Date:  date,
			Close: parseFloat(fields[closeKey]),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}

func parseFloat(val string) null.Float {
	if val != "" {
		if conv, err := strconv.ParseFloat(val, 64); err == nil {
			return null.NewFloat(conv, true)
		}
	}
	return null.NewFloat(0, false)
}
