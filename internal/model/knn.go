package model

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// KNNRegressor predicts the mean target of the k nearest training rows
// under Euclidean distance.
type KNNRegressor struct {
	K int

	trainX    *mat.Dense
	trainY    []float64
	nFeatures int
}

// NewKNNRegressor constructs a KNN regressor with k neighbors.
func NewKNNRegressor(k int) *KNNRegressor {
	return &KNNRegressor{K: k}
}

func (m *KNNRegressor) Name() string { return "knn" }

// Fit memorizes the training data.
func (m *KNNRegressor) Fit(x *mat.Dense, y []float64) error {
	_, cols, err := validateTrainingData(x, y)
	if err != nil {
		return err
	}
	if m.K <= 0 {
		return errors.New("knn: neighbors must be positive")
	}

	m.trainX = mat.DenseCopyOf(x)
	m.trainY = append([]float64(nil), y...)
	m.nFeatures = cols
	return nil
}

// Predict averages the targets of the k nearest neighbors per row.
// k is capped at the training size.
func (m *KNNRegressor) Predict(x *mat.Dense) ([]float64, error) {
	if m.trainX == nil {
		return nil, ErrNotFitted
	}
	rows, err := validatePredictionData(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	trainRows, _ := m.trainX.Dims()
	k := m.K
	if k > trainRows {
		k = trainRows
	}

	preds := make([]float64, rows)
	dists := make([]neighbor, trainRows)
	for i := 0; i < rows; i++ {
		for t := 0; t < trainRows; t++ {
			dists[t] = neighbor{dist: m.distance(x, i, t), target: m.trainY[t]}
		}
		sort.Slice(dists, func(a, b int) bool { return dists[a].dist < dists[b].dist })

		sum := 0.0
		for n := 0; n < k; n++ {
			sum += dists[n].target
		}
		preds[i] = sum / float64(k)
	}
	return preds, nil
}

type neighbor struct {
	dist   float64
	target float64
}

func (m *KNNRegressor) distance(x *mat.Dense, row, trainRow int) float64 {
	sum := 0.0
	for j := 0; j < m.nFeatures; j++ {
		d := x.At(row, j) - m.trainX.At(trainRow, j)
		sum += d * d
	}
	return math.Sqrt(sum)
}
