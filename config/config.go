package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderYahoo        = "yahoo"
	ProviderAlphaVantage = "alphavantage"
)

// Settings is the environment driven configuration for one run. A .env
// file is supported but every field has a usable default except the
// Alpha Vantage key.
type Settings struct {
	IndexTicker     string `envconfig:"INDEX_TICKER" default:"SPY"`
	YearsBack       int    `envconfig:"YEARS_BACK" default:"5"`
	StartDate       string `envconfig:"START_DATE"` // 2006-01-02, overrides YearsBack
	EndDate         string `envconfig:"END_DATE"`   // 2006-01-02, defaults to today
	Provider        string `envconfig:"PRICE_PROVIDER" default:"yahoo"`
	AlphaVantageKey string `envconfig:"ALPHAVANTAGE_API_KEY"`
	OutputDir       string `envconfig:"OUTPUT_DIR" default:"output"`
	WriteWorkbook   bool   `envconfig:"WRITE_XLSX" default:"false"`
}

// Load reads .env if present, processes the environment and validates
// the result.
func Load() (*Settings, error) {
	godotenv.Load()

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	switch s.Provider {
	case ProviderYahoo:
	case ProviderAlphaVantage:
		if s.AlphaVantageKey == "" {
			return fmt.Errorf("provider %s requires ALPHAVANTAGE_API_KEY", s.Provider)
		}
	default:
		return fmt.Errorf("unknown price provider %q", s.Provider)
	}

	if s.StartDate == "" && s.YearsBack <= 0 {
		return fmt.Errorf("YEARS_BACK must be positive, got %d", s.YearsBack)
	}

	return nil
}

// DateRange resolves the fetch window relative to now. Explicit dates
// win over the lookback. The range must be strictly increasing.
func (s *Settings) DateRange(now time.Time) (time.Time, time.Time, error) {
	end := now
	if s.EndDate != "" {
		parsed, err := time.Parse(time.DateOnly, s.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("error parsing END_DATE: %w", err)
		}
		end = parsed
	}

	start := end.AddDate(-s.YearsBack, 0, 0)
	if s.StartDate != "" {
		parsed, err := time.Parse(time.DateOnly, s.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("error parsing START_DATE: %w", err)
		}
		start = parsed
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range, start %s is not before end %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return start, end, nil
}
