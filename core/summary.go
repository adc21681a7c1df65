package core

import (
	"log"

	"gonum.org/v1/gonum/stat"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// LogSummary prints per-series means and standard deviations after the
// computation stage, mirroring what the charts show in numbers.
func LogSummary(index *models.ReturnSeries, sectors []*models.ReturnSeries, deviations []*models.DeviationSeries) {
	values := returnValues(index.Points)
	log.Printf("%s returns: %d days, mean %.4f%%, std %.4f%%",
		index.Ticker, len(values), stat.Mean(values, nil)*100, stat.StdDev(values, nil)*100)

	for _, s := range sectors {
		values := returnValues(s.Points)
		log.Printf("%s (%s) returns: mean %.4f%%, std %.4f%%",
			s.Name, s.Ticker, stat.Mean(values, nil)*100, stat.StdDev(values, nil)*100)
	}

	for _, d := range deviations {
		values := returnValues(d.Points)
		verdict := "matched"
		mean := stat.Mean(values, nil)
		if mean > 0 {
			verdict = "outperformed"
		} else if mean < 0 {
			verdict = "underperformed"
		}
		log.Printf("%s (%s) deviation: mean %.4f%%, cumulative %.2f%%, on average %s the index",
			d.Name, d.Ticker, mean*100, ex.Sum(values)*100, verdict)
	}
}

func returnValues(points []models.ReturnPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
