package core

import (
	"fmt"
	"log"
	"time"

	"github.com/LBJANU/sp-model/api"
	"github.com/LBJANU/sp-model/config"
	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
	"github.com/LBJANU/sp-model/report"
)

// AnalysisContext carries everything one run needs.
type AnalysisContext struct {
	Provider api.PriceProvider
	Settings *config.Settings
}

// Run executes the whole pipeline: fetch prices, compute returns,
// deviations and the correlation matrix, then write every report. A
// sector that fails to fetch is skipped; the index failing, or every
// sector failing, aborts the run.
func (ac *AnalysisContext) Run(now time.Time) error {
	start := time.Now()

	rangeStart, rangeEnd, err := ac.Settings.DateRange(now)
	if err != nil {
		return err
	}

	log.Printf("Fetching %s from %s to %s (provider: %s)",
		ac.Settings.IndexTicker, ex.FmtShort(rangeStart), ex.FmtShort(rangeEnd), ac.Provider.Name())
	indexPrices, err := ac.Provider.DailyPrices(ac.Settings.IndexTicker, rangeStart, rangeEnd)
	if err != nil {
		return fmt.Errorf("error fetching index data: %w", err)
	}
	indexPrices.Name = "S&P 500"
	log.Printf("Fetched %s: %d days (time: %v)", ac.Settings.IndexTicker, len(indexPrices.Points), time.Since(start))

	var sectorPrices []*models.PriceSeries
	for _, sector := range models.SectorETFs() {
		prices, err := ac.Provider.DailyPrices(sector.Ticker, rangeStart, rangeEnd)
		if err != nil {
			log.Printf("Error fetching %s (%s), skipping: %v", sector.Name, sector.Ticker, err)
			continue
		}
		prices.Name = sector.Name
		sectorPrices = append(sectorPrices, prices)
		log.Printf("Fetched %s (%s): %d days", sector.Name, sector.Ticker, len(prices.Points))
	}
	if len(sectorPrices) == 0 {
		return fmt.Errorf("failed to fetch data for all sectors")
	}

	log.Printf("Calculating returns for %d sectors (time: %v)", len(sectorPrices), time.Since(start))
	indexReturns, err := Returns(indexPrices)
	if err != nil {
		return fmt.Errorf("error calculating index returns: %w", err)
	}

	sectorReturns := make([]*models.ReturnSeries, len(sectorPrices))
	for i, prices := range sectorPrices {
		returns, err := Returns(prices)
		if err != nil {
			return fmt.Errorf("error calculating returns for %s: %w", prices.Ticker, err)
		}
		sectorReturns[i] = returns
	}

	deviations := make([]*models.DeviationSeries, len(sectorReturns))
	for i, returns := range sectorReturns {
		deviations[i] = Deviations(returns, indexReturns)
	}
	cumulative := CumulativeDeviations(deviations)

	log.Printf("Computing correlation matrix (time: %v)", time.Since(start))
	allReturns := append([]*models.ReturnSeries{indexReturns}, sectorReturns...)
	corrMatrix, err := CorrelationMatrix(allReturns)
	if err != nil {
		return fmt.Errorf("error computing correlation matrix: %w", err)
	}

	LogSummary(indexReturns, sectorReturns, deviations)

	log.Printf("Writing reports to %s (time: %v)", ac.Settings.OutputDir, time.Since(start))
	outputs := report.Outputs{
		Deviations: deviations,
		Cumulative: cumulative,
		Matrix:     corrMatrix,
	}
	if err := report.Write(ac.Settings.OutputDir, ac.Settings.WriteWorkbook, outputs); err != nil {
		return fmt.Errorf("error writing reports: %w", err)
	}

	log.Printf("Analysis completed (time: %v)", time.Since(start))
	return nil
}
