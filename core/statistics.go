package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	ex "github.com/LBJANU/sp-model/extensions"
	"github.com/LBJANU/sp-model/models"
)

// CorrelationMatrix computes pairwise Pearson correlation across the
// return series, aligned on the dates every series shares so the matrix
// is built over one rectangular sample.
func CorrelationMatrix(series []*models.ReturnSeries) (*models.CorrelationMatrix, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least two return series, got %d", len(series))
	}

	aligned, err := alignReturns(series)
	if err != nil {
		return nil, err
	}

	covMatrix := covarianceMatrix(aligned)
	corrMatrix := correlationFromCovariance(covMatrix)

	n := len(series)
	result := &models.CorrelationMatrix{
		Tickers: make([]string, n),
		Values:  make([][]float64, n),
	}
	for i := range n {
		result.Tickers[i] = series[i].Ticker
		result.Values[i] = make([]float64, n)
		for j := range n {
			result.Values[i][j] = corrMatrix.At(i, j)
		}
	}

	return result, nil
}

// alignReturns inner joins all series on date and returns one row of
// values per series, in series order.
func alignReturns(series []*models.ReturnSeries) ([][]float64, error) {
	counts := make(map[string]int)
	for _, s := range series {
		for _, p := range s.Points {
			counts[ex.FmtShort(p.Date)]++
		}
	}

	shared := make(map[string]bool, len(counts))
	for date, count := range counts {
		if count == len(series) {
			shared[date] = true
		}
	}

	rows := make([][]float64, len(series))
	for i, s := range series {
		for _, p := range s.Points {
			if shared[ex.FmtShort(p.Date)] {
				rows[i] = append(rows[i], p.Value)
			}
		}
	}

	lengths := make([]int, len(rows))
	for i, row := range rows {
		lengths[i] = len(row)
	}
	if !ex.AreAllEqual(lengths) {
		return nil, fmt.Errorf("aligned series have unequal lengths %v, duplicate dates in input", lengths)
	}
	if lengths[0] < 2 {
		return nil, fmt.Errorf("need at least two shared dates across all series, got %d", lengths[0])
	}

	return rows, nil
}

func covarianceMatrix(data [][]float64) *mat.SymDense {
	returnMatrix := rowsToMatrix(data)
	covMatrix := mat.NewSymDense(len(data), nil)
	stat.CovarianceMatrix(covMatrix, returnMatrix, nil)
	return covMatrix
}

// correlationFromCovariance normalizes a covariance matrix so the
// diagonal is exactly 1; corr_ij = cov_ij / sqrt(cov_ii*cov_jj).
func correlationFromCovariance(covMatrix *mat.SymDense) *mat.SymDense {
	n := covMatrix.SymmetricDim()
	corrMatrix := mat.NewSymDense(n, nil)

	for i := range n {
		corrMatrix.SetSym(i, i, 1)
		for j := range i {
			corr := covMatrix.At(i, j) / math.Sqrt(covMatrix.At(i, i)*covMatrix.At(j, j))
			corrMatrix.SetSym(i, j, corr)
		}
	}

	return corrMatrix
}

// rowsToMatrix lays series rows out as observation-major columns the way
// gonum's covariance expects.
func rowsToMatrix(data [][]float64) *mat.Dense {
	nSeries := len(data)
	nObservations := len(data[0])
	res := mat.NewDense(nObservations, nSeries, nil)
	for j, col := range data {
		for i, row := range col {
			res.Set(i, j, row)
		}
	}
	return res
}
