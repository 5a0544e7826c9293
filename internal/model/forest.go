package model

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomForest averages bagged regression trees with per-split feature
// subsampling. Deterministic for a fixed seed.
type RandomForest struct {
	Trees    int
	MaxDepth int
	Seed     int64

	forest    []*treeNode
	nFeatures int
}

// NewRandomForest constructs a random forest regressor.
func NewRandomForest(trees, maxDepth int, seed int64) *RandomForest {
	return &RandomForest{Trees: trees, MaxDepth: maxDepth, Seed: seed}
}

func (m *RandomForest) Name() string { return "random_forest" }

// Fit grows Trees trees on bootstrap samples of the training data.
func (m *RandomForest) Fit(x *mat.Dense, y []float64) error {
	rows, cols, err := validateTrainingData(x, y)
	if err != nil {
		return err
	}
	if m.Trees <= 0 {
		return errors.New("random forest: tree count must be positive")
	}

	maxDepth := m.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 8
	}
	// sqrt-ish feature subsampling, floor of one third as commonly used
	// for regression forests.
	maxFeatures := cols / 3
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	rng := rand.New(rand.NewSource(m.Seed))
	forest := make([]*treeNode, 0, m.Trees)
	for t := 0; t < m.Trees; t++ {
		sample := make([]int, rows)
		for i := range sample {
			sample[i] = rng.Intn(rows)
		}
		forest = append(forest, buildTree(x, y, sample, 0, maxDepth, maxFeatures, rng))
	}

	m.forest = forest
	m.nFeatures = cols
	return nil
}

// Predict averages per-tree predictions.
func (m *RandomForest) Predict(x *mat.Dense) ([]float64, error) {
	if len(m.forest) == 0 {
		return nil, ErrNotFitted
	}
	rows, err := validatePredictionData(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	preds := make([]float64, rows)
	for i := 0; i < rows; i++ {
		sum := 0.0
		for _, tree := range m.forest {
			sum += tree.predict(x, i)
		}
		preds[i] = sum / float64(len(m.forest))
	}
	return preds, nil
}
