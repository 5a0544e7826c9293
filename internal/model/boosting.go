package model

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// GradientBoosting fits shallow regression trees to residuals, shrinking
// each round's contribution by the learning rate.
type GradientBoosting struct {
	Rounds       int
	MaxDepth     int
	LearningRate float64
	Seed         int64

	base      float64
	rounds    []*treeNode
	nFeatures int
	fitted    bool
}

// NewGradientBoosting constructs a gradient boosted trees regressor.
func NewGradientBoosting(rounds, maxDepth int, learningRate float64, seed int64) *GradientBoosting {
	return &GradientBoosting{
		Rounds:       rounds,
		MaxDepth:     maxDepth,
		LearningRate: learningRate,
		Seed:         seed,
	}
}

func (m *GradientBoosting) Name() string { return "boosted_trees" }

// Fit runs least-squares boosting: the base prediction is the target mean,
// then each round fits a tree to the current residuals.
func (m *GradientBoosting) Fit(x *mat.Dense, y []float64) error {
	rows, cols, err := validateTrainingData(x, y)
	if err != nil {
		return err
	}
	if m.Rounds <= 0 {
		return errors.New("boosting: round count must be positive")
	}
	if m.LearningRate <= 0 {
		return errors.New("boosting: learning rate must be positive")
	}

	maxDepth := m.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 3
	}

	indices := make([]int, rows)
	for i := range indices {
		indices[i] = i
	}

	m.base = mean(y)
	current := make([]float64, rows)
	for i := range current {
		current[i] = m.base
	}

	residual := make([]float64, rows)
	rng := rand.New(rand.NewSource(m.Seed))
	trees := make([]*treeNode, 0, m.Rounds)

	for round := 0; round < m.Rounds; round++ {
		for i := range residual {
			residual[i] = y[i] - current[i]
		}

		tree := buildTree(x, residual, indices, 0, maxDepth, 0, rng)
		trees = append(trees, tree)

		for i := 0; i < rows; i++ {
			current[i] += m.LearningRate * tree.predict(x, i)
		}
	}

	m.rounds = trees
	m.nFeatures = cols
	m.fitted = true
	return nil
}

// Predict sums the shrunken tree contributions over the base prediction.
func (m *GradientBoosting) Predict(x *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	rows, err := validatePredictionData(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	preds := make([]float64, rows)
	for i := 0; i < rows; i++ {
		val := m.base
		for _, tree := range m.rounds {
			val += m.LearningRate * tree.predict(x, i)
		}
		preds[i] = val
	}
	return preds, nil
}
