package model

import (
	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits ordinary least squares with an intercept term.
type LinearRegression struct {
	coef      *mat.VecDense // intercept first, then one weight per feature
	nFeatures int
}

// NewLinearRegression constructs an unfitted OLS model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

func (m *LinearRegression) Name() string { return "linear_regression" }

// Fit solves the least squares problem via QR decomposition.
func (m *LinearRegression) Fit(x *mat.Dense, y []float64) error {
	rows, cols, err := validateTrainingData(x, y)
	if err != nil {
		return err
	}

	design := withIntercept(x, rows, cols)
	target := mat.NewVecDense(rows, y)

	var coef mat.VecDense
	if err := coef.SolveVec(design, target); err != nil {
		// Near-collinear one-hot blocks yield a Condition warning; the
		// minimum-norm solution is still usable.
		if _, ok := err.(mat.Condition); !ok {
			return err
		}
	}

	m.coef = &coef
	m.nFeatures = cols
	return nil
}

// Predict returns fitted values for x.
func (m *LinearRegression) Predict(x *mat.Dense) ([]float64, error) {
	if m.coef == nil {
		return nil, ErrNotFitted
	}
	rows, err := validatePredictionData(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	preds := make([]float64, rows)
	for i := 0; i < rows; i++ {
		val := m.coef.AtVec(0)
		for j := 0; j < m.nFeatures; j++ {
			val += m.coef.AtVec(j+1) * x.At(i, j)
		}
		preds[i] = val
	}
	return preds, nil
}

// withIntercept prepends a column of ones to the design matrix.
func withIntercept(x *mat.Dense, rows, cols int) *mat.Dense {
	design := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < cols; j++ {
			design.Set(i, j+1, x.At(i, j))
		}
	}
	return design
}
