package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/LBJANU/sp-model/models"
)

// Outputs is everything the computation stage hands to reporting.
type Outputs struct {
	Deviations []*models.DeviationSeries
	Cumulative []*models.DeviationSeries
	Matrix     *models.CorrelationMatrix
}

// Write produces every artifact of a run inside outputDir: the two CSV
// files, the three charts, the per-sector panel image and, when asked
// for, the spreadsheet.
func Write(outputDir string, withWorkbook bool, outputs Outputs) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory %s: %w", outputDir, err)
	}

	steps := []struct {
		file string
		run  func(path string) error
	}{
		{"deviation_returns.csv", func(p string) error { return WriteDeviationCSV(p, outputs.Deviations) }},
		{"correlation_matrix.csv", func(p string) error { return WriteCorrelationCSV(p, outputs.Matrix) }},
		{"sector_deviations.png", func(p string) error { return DeviationChart(outputs.Deviations, p) }},
		{"cumulative_deviations.png", func(p string) error { return CumulativeChart(outputs.Cumulative, p) }},
		{"correlation_heatmap.png", func(p string) error { return CorrelationHeatmap(outputs.Matrix, p) }},
		{"sector_subplots.png", func(p string) error { return SectorSubplots(outputs.Deviations, p) }},
	}

	if withWorkbook {
		steps = append(steps, struct {
			file string
			run  func(path string) error
		}{"sector_analysis.xlsx", func(p string) error {
			return WriteWorkbook(p, outputs.Deviations, outputs.Matrix)
		}})
	}

	for _, step := range steps {
		path := filepath.Join(outputDir, step.file)
		if err := step.run(path); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
	}

	return nil
}
