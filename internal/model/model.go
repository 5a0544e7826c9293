// Package model implements the regression estimators compared by the
// evaluation stage. Estimators share a scikit-learn-shaped Fit/Predict
// contract over gonum matrices and are deterministic for a fixed seed.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Predict before a successful Fit.
var ErrNotFitted = errors.New("model not fitted")

// Regressor is a supervised model predicting a continuous target.
type Regressor interface {
	Name() string
	Fit(x *mat.Dense, y []float64) error
	Predict(x *mat.Dense) ([]float64, error)
}

func validateTrainingData(x *mat.Dense, y []float64) (rows, cols int, err error) {
	if x == nil {
		return 0, 0, errors.New("nil design matrix")
	}
	rows, cols = x.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, errors.New("empty design matrix")
	}
	if len(y) != rows {
		return 0, 0, fmt.Errorf("target length %d does not match %d rows", len(y), rows)
	}
	return rows, cols, nil
}

func validatePredictionData(x *mat.Dense, wantCols int) (rows int, err error) {
	if x == nil {
		return 0, errors.New("nil design matrix")
	}
	rows, cols := x.Dims()
	if cols != wantCols {
		return 0, fmt.Errorf("prediction matrix has %d columns, model expects %d", cols, wantCols)
	}
	return rows, nil
}
