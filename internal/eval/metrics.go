// Package eval scores regression models with k-fold cross-validation and
// selects the best performer deterministically.
package eval

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch signals prediction/target vectors of different lengths.
var ErrLengthMismatch = errors.New("predictions and targets differ in length")

// RMSE returns the root mean squared error of predictions against targets.
func RMSE(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, ErrLengthMismatch
	}
	if len(targets) == 0 {
		return 0, errors.New("no observations to score")
	}

	sse := 0.0
	for i := range targets {
		d := targets[i] - predictions[i]
		sse += d * d
	}
	return math.Sqrt(sse / float64(len(targets))), nil
}

// RSquared returns the coefficient of determination of predictions
// against targets.
func RSquared(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, ErrLengthMismatch
	}
	if len(targets) == 0 {
		return 0, errors.New("no observations to score")
	}
	return stat.RSquaredFrom(predictions, targets, nil), nil
}
