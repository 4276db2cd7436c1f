package trainer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/bp-predictor/bp-ui/predictor"
)

var ErrFitFailed = errors.New("least squares fit failed")

// Fit solves ordinary least squares for y ≈ b0 + X·b.
// Rank deficient designs get the minimum norm solution.
func Fit(X [][]float64, y []float64) (*predictor.LinearModel, error) {
	n := len(X)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d rows but %d targets", ErrFitFailed, n, len(y))
	}
	p := len(X[0])

	// design matrix with a leading column of ones for the intercept
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrFitFailed, i, len(row), p)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: svd did not converge", ErrFitFailed)
	}
	rcond := math.Nextafter(1, 2) - 1
	rcond *= float64(max(n, p+1))
	rank := svd.Rank(rcond)
	if rank == 0 {
		return nil, fmt.Errorf("%w: design matrix has rank 0", ErrFitFailed)
	}

	var w mat.VecDense
	svd.SolveVecTo(&w, b, rank)

	coef := make([]float64, p)
	for j := range coef {
		coef[j] = w.AtVec(j + 1)
	}
	return predictor.NewLinearModel(w.AtVec(0), coef), nil
}

// Metrics describe how well a model fits held out rows
type Metrics struct {
	MSE float64
	R2  float64
}

// Evaluate scores r on X against the true targets y
func Evaluate(r predictor.Regressor, X [][]float64, y []float64) (Metrics, error) {
	if len(X) == 0 {
		return Metrics{}, ErrEmptyDataset
	}
	estimates := make([]float64, len(X))
	var sse float64
	for i, row := range X {
		v, err := r.Predict(row)
		if err != nil {
			return Metrics{}, err
		}
		estimates[i] = v
		d := y[i] - v
		sse += d * d
	}
	return Metrics{
		MSE: sse / float64(len(X)),
		R2:  stat.RSquaredFrom(estimates, y, nil),
	}, nil
}
