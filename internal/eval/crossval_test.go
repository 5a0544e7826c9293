package eval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"tcg-price-service/internal/model"
)

func syntheticData(n int) (*mat.Dense, []float64) {
	rng := rand.New(rand.NewSource(3))
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x0 := rng.Float64() * 10
		x1 := rng.Float64() * 4
		x.Set(i, 0, x0)
		x.Set(i, 1, x1)
		y[i] = 5 + 3*x0 + x1 + rng.NormFloat64()*0.05
	}
	return x, y
}

func TestCrossValidateScoresEveryModelOnEveryFold(t *testing.T) {
	x, y := syntheticData(100)
	folds, err := KFold(100, 5, 42)
	require.NoError(t, err)

	models := []model.Regressor{
		model.NewLinearRegression(),
		model.NewKNNRegressor(5),
	}

	results, err := CrossValidate(models, x, y, folds)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.Len(t, result.FoldR2, 5, "%s fold R² count", result.Model)
		assert.Len(t, result.FoldRMSE, 5, "%s fold RMSE count", result.Model)
		assert.Greater(t, result.MeanRMSE, 0.0, "%s RMSE", result.Model)
	}

	// The generating process is linear, so OLS should dominate KNN here.
	assert.Equal(t, "linear_regression", results[0].Model)
	assert.Greater(t, results[0].MeanR2, 0.99)
	assert.Greater(t, results[0].MeanR2, results[1].MeanR2)
}

func TestCrossValidateDeterministicForSeed(t *testing.T) {
	x, y := syntheticData(60)

	run := func() []ModelResult {
		folds, err := KFold(60, 4, 7)
		require.NoError(t, err)
		results, err := CrossValidate([]model.Regressor{
			model.NewRandomForest(10, 6, 7),
			model.NewGradientBoosting(20, 3, 0.1, 7),
		}, x, y, folds)
		require.NoError(t, err)
		return results
	}

	assert.Equal(t, run(), run())
}

func TestCrossValidateRejectsEmptyInputs(t *testing.T) {
	x, y := syntheticData(20)
	folds, err := KFold(20, 2, 1)
	require.NoError(t, err)

	_, err = CrossValidate(nil, x, y, folds)
	require.Error(t, err)

	_, err = CrossValidate([]model.Regressor{model.NewLinearRegression()}, x, y, nil)
	require.Error(t, err)
}

func TestSelectBestPrefersHighestR2(t *testing.T) {
	results := []ModelResult{
		{Model: "a", MeanR2: 0.70, MeanRMSE: 10},
		{Model: "b", MeanR2: 0.90, MeanRMSE: 12},
		{Model: "c", MeanR2: 0.85, MeanRMSE: 5},
	}

	best, err := SelectBest(results)
	require.NoError(t, err)
	assert.Equal(t, "b", best.Model)
}

func TestSelectBestBreaksTiesOnRMSEThenName(t *testing.T) {
	results := []ModelResult{
		{Model: "b", MeanR2: 0.9, MeanRMSE: 8},
		{Model: "a", MeanR2: 0.9, MeanRMSE: 5},
	}
	best, err := SelectBest(results)
	require.NoError(t, err)
	assert.Equal(t, "a", best.Model)

	results = []ModelResult{
		{Model: "b", MeanR2: 0.9, MeanRMSE: 5},
		{Model: "a", MeanR2: 0.9, MeanRMSE: 5},
	}
	best, err = SelectBest(results)
	require.NoError(t, err)
	assert.Equal(t, "a", best.Model)
}

func TestSelectBestEmpty(t *testing.T) {
	_, err := SelectBest(nil)
	require.Error(t, err)
}
