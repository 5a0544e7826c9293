package eval

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"tcg-price-service/internal/model"
)

// ModelResult aggregates one model's cross-validation scores.
type ModelResult struct {
	Model    string
	FoldR2   []float64
	FoldRMSE []float64
	MeanR2   float64
	StdR2    float64
	MeanRMSE float64
	StdRMSE  float64
}

// CrossValidate fits and scores every model on every fold, returning results
// in the order the models were given.
func CrossValidate(models []model.Regressor, x *mat.Dense, y []float64, folds []Fold) ([]ModelResult, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("no models to evaluate")
	}
	if len(folds) == 0 {
		return nil, fmt.Errorf("no folds to evaluate")
	}

	results := make([]ModelResult, 0, len(models))
	for _, m := range models {
		result := ModelResult{Model: m.Name()}

		for fi, fold := range folds {
			trainX, trainY := subset(x, y, fold.Train)
			testX, testY := subset(x, y, fold.Test)

			if err := m.Fit(trainX, trainY); err != nil {
				return nil, fmt.Errorf("fit %s on fold %d: %w", m.Name(), fi, err)
			}
			preds, err := m.Predict(testX)
			if err != nil {
				return nil, fmt.Errorf("predict %s on fold %d: %w", m.Name(), fi, err)
			}

			r2, err := RSquared(preds, testY)
			if err != nil {
				return nil, fmt.Errorf("score %s on fold %d: %w", m.Name(), fi, err)
			}
			rmse, err := RMSE(preds, testY)
			if err != nil {
				return nil, fmt.Errorf("score %s on fold %d: %w", m.Name(), fi, err)
			}

			result.FoldR2 = append(result.FoldR2, r2)
			result.FoldRMSE = append(result.FoldRMSE, rmse)
		}

		if err := aggregate(&result); err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", m.Name(), err)
		}
		results = append(results, result)
	}
	return results, nil
}

func aggregate(result *ModelResult) error {
	meanR2, err := stats.Mean(result.FoldR2)
	if err != nil {
		return err
	}
	stdR2, err := stats.StandardDeviation(result.FoldR2)
	if err != nil {
		return err
	}
	meanRMSE, err := stats.Mean(result.FoldRMSE)
	if err != nil {
		return err
	}
	stdRMSE, err := stats.StandardDeviation(result.FoldRMSE)
	if err != nil {
		return err
	}

	result.MeanR2 = meanR2
	result.StdR2 = stdR2
	result.MeanRMSE = meanRMSE
	result.StdRMSE = stdRMSE
	return nil
}

func subset(x *mat.Dense, y []float64, indices []int) (*mat.Dense, []float64) {
	_, cols := x.Dims()
	sub := mat.NewDense(len(indices), cols, nil)
	target := make([]float64, len(indices))
	for i, idx := range indices {
		for j := 0; j < cols; j++ {
			sub.Set(i, j, x.At(idx, j))
		}
		target[i] = y[idx]
	}
	return sub, target
}
