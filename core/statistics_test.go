package core

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/LBJANU/sp-model/models"
)

// Helper: generate a noisy return series with a fixed seed
func generateReturns(t *testing.T, n int, seed uint64) []float64 {
	t.Helper()

	rng := rand.New(rand.NewPCG(seed, 0))
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.NormFloat64() * 0.01
	}
	return values
}

func TestCorrelationMatrixSymmetricUnitDiagonal(t *testing.T) {
	n := 500
	series := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", generateReturns(t, n, 1)),
		makeReturnSeries(t, "XLK", generateReturns(t, n, 2)),
		makeReturnSeries(t, "XLV", generateReturns(t, n, 3)),
	}

	matrix, err := CorrelationMatrix(series)
	if err != nil {
		t.Fatalf("error computing correlation matrix: %v", err)
	}

	if matrix.Dim() != 3 {
		t.Fatalf("expected a 3x3 matrix, got %d", matrix.Dim())
	}

	for i := range matrix.Tickers {
		if matrix.At(i, i) != 1.0 {
			t.Errorf("diagonal at %s: expected exactly 1.0, got %v", matrix.Tickers[i], matrix.At(i, i))
		}
		for j := range matrix.Tickers {
			if matrix.At(i, j) != matrix.At(j, i) {
				t.Errorf("matrix not symmetric at (%d, %d): %v vs %v", i, j, matrix.At(i, j), matrix.At(j, i))
			}
			if math.Abs(matrix.At(i, j)) > 1 {
				t.Errorf("coefficient out of [-1, 1] at (%d, %d): %v", i, j, matrix.At(i, j))
			}
		}
	}
}

func TestCorrelationMatrixKnownRelationships(t *testing.T) {
	n := 500
	base := generateReturns(t, n, 42)

	scaled := make([]float64, n)
	inverted := make([]float64, n)
	for i, v := range base {
		scaled[i] = 2 * v
		inverted[i] = -v
	}

	series := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", base),
		makeReturnSeries(t, "XLK", scaled),
		makeReturnSeries(t, "XLE", inverted),
	}

	matrix, err := CorrelationMatrix(series)
	if err != nil {
		t.Fatalf("error computing correlation matrix: %v", err)
	}

	if math.Abs(matrix.At(0, 1)-1) > 1e-9 {
		t.Errorf("Corr(SPY, XLK): expected 1, got %v", matrix.At(0, 1))
	}
	if math.Abs(matrix.At(0, 2)+1) > 1e-9 {
		t.Errorf("Corr(SPY, XLE): expected -1, got %v", matrix.At(0, 2))
	}
}

func TestCorrelationMatrixMatchesGonumPairwise(t *testing.T) {
	n := 300
	a := generateReturns(t, n, 7)
	b := generateReturns(t, n, 8)

	series := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", a),
		makeReturnSeries(t, "XLF", b),
	}

	matrix, err := CorrelationMatrix(series)
	if err != nil {
		t.Fatalf("error computing correlation matrix: %v", err)
	}

	expected := stat.Correlation(a, b, nil)
	if math.Abs(matrix.At(0, 1)-expected) > 1e-9 {
		t.Errorf("expected %v to match stat.Correlation, got %v", expected, matrix.At(0, 1))
	}
}

func TestCorrelationMatrixAlignsOnSharedDates(t *testing.T) {
	n := 100
	a := generateReturns(t, n, 11)
	b := generateReturns(t, n, 12)

	full := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", a),
		makeReturnSeries(t, "XLI", b),
	}
	fullMatrix, err := CorrelationMatrix(full)
	if err != nil {
		t.Fatalf("error computing full matrix: %v", err)
	}

	// tack an extra unshared date onto one series; the join must drop it
	longer := makeReturnSeries(t, "XLI", append(append([]float64{}, b...), 0.5))
	ragged := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", a),
		longer,
	}
	raggedMatrix, err := CorrelationMatrix(ragged)
	if err != nil {
		t.Fatalf("error computing ragged matrix: %v", err)
	}

	if math.Abs(fullMatrix.At(0, 1)-raggedMatrix.At(0, 1)) > 1e-12 {
		t.Errorf("unshared date changed the correlation: %v vs %v", fullMatrix.At(0, 1), raggedMatrix.At(0, 1))
	}
}

func TestCorrelationMatrixRejectsSingleSeries(t *testing.T) {
	series := []*models.ReturnSeries{
		makeReturnSeries(t, "SPY", generateReturns(t, 10, 1)),
	}
	if _, err := CorrelationMatrix(series); err == nil {
		t.Error("expected an error for a single series")
	}
}

func TestCorrelationMatrixRejectsDisjointSeries(t *testing.T) {
	a := makeReturnSeries(t, "SPY", generateReturns(t, 10, 1))
	b := makeReturnSeries(t, "XLB", generateReturns(t, 10, 2))
	for i := range b.Points {
		b.Points[i].Date = b.Points[i].Date.AddDate(1, 0, 0)
	}

	if _, err := CorrelationMatrix([]*models.ReturnSeries{a, b}); err == nil {
		t.Error("expected an error for series with no shared dates")
	}
}
