package report

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/LBJANU/sp-model/models"
)

const subplotCols = 3

// DeviationChart plots every sector's daily deviation from the index as
// a percentage over time.
func DeviationChart(deviations []*models.DeviationSeries, path string) error {
	p := plot.New()
	p.Title.Text = "S&P Sector Deviation Returns vs S&P 500"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Deviation Return (%)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	if err := addSeriesLines(p, deviations); err != nil {
		return err
	}

	return p.Save(16*vg.Inch, 10*vg.Inch, path)
}

// CumulativeChart plots the running sum of each sector's deviation, the
// total out- or under-performance since the window start.
func CumulativeChart(cumulative []*models.DeviationSeries, path string) error {
	p := plot.New()
	p.Title.Text = "Cumulative Deviation Returns: Sectors vs S&P 500"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Cumulative Deviation (%)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	if err := addSeriesLines(p, cumulative); err != nil {
		return err
	}

	return p.Save(16*vg.Inch, 10*vg.Inch, path)
}

func addSeriesLines(p *plot.Plot, series []*models.DeviationSeries) error {
	for i, s := range series {
		line, err := plotter.NewLine(seriesXYs(s))
		if err != nil {
			return fmt.Errorf("error building line for %s: %w", s.Ticker, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if zero, err := zeroLine(series); err == nil {
		p.Add(zero)
	}

	return nil
}

func seriesXYs(s *models.DeviationSeries) plotter.XYs {
	pts := make(plotter.XYs, len(s.Points))
	for i, p := range s.Points {
		pts[i].X = float64(p.Date.Unix())
		pts[i].Y = p.Value * 100
	}
	return pts
}

// zeroLine draws a dashed reference at y = 0 across the full x range.
func zeroLine(series []*models.DeviationSeries) (*plotter.Line, error) {
	minX, maxX := 0.0, 0.0
	seen := false
	for _, s := range series {
		for _, p := range s.Points {
			x := float64(p.Date.Unix())
			if !seen || x < minX {
				minX = x
			}
			if !seen || x > maxX {
				maxX = x
			}
			seen = true
		}
	}
	if !seen {
		return nil, fmt.Errorf("no points to anchor the zero line")
	}

	line, err := plotter.NewLine(plotter.XYs{{X: minX, Y: 0}, {X: maxX, Y: 0}})
	if err != nil {
		return nil, err
	}
	line.Color = color.Gray{Y: 64}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return line, nil
}

// corrGrid adapts a CorrelationMatrix to plotter.GridXYZ. Row 0 is drawn
// at the bottom, so Z flips the row index to keep the ticker order top
// down like the CSV.
type corrGrid struct {
	matrix *models.CorrelationMatrix
}

func (g corrGrid) Dims() (int, int) {
	n := g.matrix.Dim()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.matrix.At(g.matrix.Dim()-1-r, c)
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatmap renders the matrix with a diverging palette pinned
// to [-1, 1].
func CorrelationHeatmap(matrix *models.CorrelationMatrix, path string) error {
	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)

	heatMap := plotter.NewHeatMap(corrGrid{matrix: matrix}, colorMap.Palette(255))
	heatMap.Min = -1
	heatMap.Max = 1

	p := plot.New()
	p.Title.Text = "Return Correlation Matrix"
	p.Add(heatMap)

	n := matrix.Dim()
	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, ticker := range matrix.Tickers {
		xTicks[i] = plot.Tick{Value: float64(i), Label: ticker}
		yTicks[n-1-i] = plot.Tick{Value: float64(n - 1 - i), Label: ticker}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	return p.Save(9*vg.Inch, 8*vg.Inch, path)
}

// SectorSubplots tiles one small deviation panel per sector onto a
// single canvas.
func SectorSubplots(deviations []*models.DeviationSeries, path string) error {
	rows := (len(deviations) + subplotCols - 1) / subplotCols

	plots := make([][]*plot.Plot, rows)
	for r := range rows {
		plots[r] = make([]*plot.Plot, subplotCols)
		for c := range subplotCols {
			idx := r*subplotCols + c
			if idx >= len(deviations) {
				continue
			}
			series := deviations[idx]

			p := plot.New()
			p.Title.Text = series.Name
			p.Y.Label.Text = "Deviation (%)"
			p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
			p.Add(plotter.NewGrid())

			line, err := plotter.NewLine(seriesXYs(series))
			if err != nil {
				return fmt.Errorf("error building line for %s: %w", series.Ticker, err)
			}
			line.Color = plotutil.Color(idx)
			p.Add(line)

			if zero, err := zeroLine([]*models.DeviationSeries{series}); err == nil {
				p.Add(zero)
			}

			plots[r][c] = p
		}
	}

	img := vgimg.New(20*vg.Inch, vg.Inch*vg.Length(4*rows))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: subplotCols,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := range rows {
		for c := range subplotCols {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
