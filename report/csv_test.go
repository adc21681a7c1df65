package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LBJANU/sp-model/models"
)

func day(t *testing.T, offset int) time.Time {
	t.Helper()
	return time.Date(2023, time.March, 1+offset, 0, 0, 0, 0, time.UTC)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteDeviationCSV(t *testing.T) {
	deviations := []*models.DeviationSeries{
		{
			Ticker: "XLK",
			Name:   "Technology",
			Points: []models.ReturnPoint{
				{Date: day(t, 0), Value: 0.01},
				{Date: day(t, 1), Value: -0.02},
			},
		},
		{
			Ticker: "XLV",
			Name:   "Healthcare",
			Points: []models.ReturnPoint{
				{Date: day(t, 1), Value: 0.005},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "deviation_returns.csv")
	require.NoError(t, WriteDeviationCSV(path, deviations))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Technology", "Healthcare"}, rows[0])
	// rows are the union of dates; Healthcare is blank on the first day
	assert.Equal(t, []string{"2023-03-01", "0.01", ""}, rows[1])
	assert.Equal(t, []string{"2023-03-02", "-0.02", "0.005"}, rows[2])
}

func TestWriteCorrelationCSV(t *testing.T) {
	matrix := &models.CorrelationMatrix{
		Tickers: []string{"SPY", "XLK"},
		Values: [][]float64{
			{1, 0.75},
			{0.75, 1},
		},
	}

	path := filepath.Join(t.TempDir(), "correlation_matrix.csv")
	require.NoError(t, WriteCorrelationCSV(path, matrix))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"", "SPY", "XLK"}, rows[0])
	assert.Equal(t, []string{"SPY", "1", "0.75"}, rows[1])
	assert.Equal(t, []string{"XLK", "0.75", "1"}, rows[2])
}
