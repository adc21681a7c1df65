package main

import (
	"fmt"
	"log"
	"time"

	"github.com/LBJANU/sp-model/api"
	"github.com/LBJANU/sp-model/config"
	"github.com/LBJANU/sp-model/core"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	provider, err := buildProvider(settings)
	if err != nil {
		log.Fatalf("Provider error: %v", err)
	}

	ac := core.AnalysisContext{
		Provider: provider,
		Settings: settings,
	}

	if err := ac.Run(time.Now()); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}

func buildProvider(settings *config.Settings) (api.PriceProvider, error) {
	switch settings.Provider {
	case config.ProviderYahoo:
		return api.YahooClient{}, nil
	case config.ProviderAlphaVantage:
		return api.GetClient(settings.AlphaVantageKey), nil
	default:
		return nil, fmt.Errorf("unknown price provider %q", settings.Provider)
	}
}
