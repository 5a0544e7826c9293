package model

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	elasticNetMaxIter = 1000
	elasticNetTol     = 1e-6
)

// ElasticNet fits a linear model with combined L1/L2 regularization by
// cyclic coordinate descent on standardized features.
type ElasticNet struct {
	Alpha   float64 // overall regularization strength
	L1Ratio float64 // 1 = lasso, 0 = ridge

	coef      []float64 // per standardized feature
	intercept float64
	featMean  []float64
	featStd   []float64
	nFeatures int
	fitted    bool
}

// NewElasticNet constructs an elastic net with the given hyperparameters.
func NewElasticNet(alpha, l1Ratio float64) *ElasticNet {
	return &ElasticNet{Alpha: alpha, L1Ratio: l1Ratio}
}

func (m *ElasticNet) Name() string { return "elastic_net" }

// Fit runs coordinate descent until the largest coefficient update falls
// below tolerance or the iteration cap is reached.
func (m *ElasticNet) Fit(x *mat.Dense, y []float64) error {
	rows, cols, err := validateTrainingData(x, y)
	if err != nil {
		return err
	}

	m.featMean, m.featStd = columnMoments(x, rows, cols)

	// Standardized copy; constant columns keep std 1 so they zero out.
	xs := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xs.Set(i, j, (x.At(i, j)-m.featMean[j])/m.featStd[j])
		}
	}

	yMean := mean(y)
	residual := make([]float64, rows)
	for i := range residual {
		residual[i] = y[i] - yMean
	}

	coef := make([]float64, cols)
	l1Penalty := m.Alpha * m.L1Ratio
	l2Penalty := m.Alpha * (1 - m.L1Ratio)
	n := float64(rows)

	for iter := 0; iter < elasticNetMaxIter; iter++ {
		maxDelta := 0.0
		for j := 0; j < cols; j++ {
			old := coef[j]

			// rho is the correlation of feature j with the residual,
			// with feature j's own contribution added back.
			rho := 0.0
			zj := 0.0
			for i := 0; i < rows; i++ {
				xij := xs.At(i, j)
				rho += xij * (residual[i] + xij*old)
				zj += xij * xij
			}
			rho /= n
			zj /= n

			updated := softThreshold(rho, l1Penalty) / (zj + l2Penalty)
			if zj == 0 {
				updated = 0
			}
			coef[j] = updated

			if delta := updated - old; delta != 0 {
				for i := 0; i < rows; i++ {
					residual[i] -= xs.At(i, j) * delta
				}
				if abs := math.Abs(delta); abs > maxDelta {
					maxDelta = abs
				}
			}
		}
		if maxDelta < elasticNetTol {
			break
		}
	}

	m.coef = coef
	m.intercept = yMean
	m.nFeatures = cols
	m.fitted = true
	return nil
}

// Predict returns fitted values for x.
func (m *ElasticNet) Predict(x *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	rows, err := validatePredictionData(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	preds := make([]float64, rows)
	for i := 0; i < rows; i++ {
		val := m.intercept
		for j := 0; j < m.nFeatures; j++ {
			standardized := (x.At(i, j) - m.featMean[j]) / m.featStd[j]
			val += m.coef[j] * standardized
		}
		preds[i] = val
	}
	return preds, nil
}

func columnMoments(x *mat.Dense, rows, cols int) (means, stds []float64) {
	means = make([]float64, cols)
	stds = make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += x.At(i, j)
		}
		means[j] = sum / float64(rows)

		variance := 0.0
		for i := 0; i < rows; i++ {
			d := x.At(i, j) - means[j]
			variance += d * d
		}
		stds[j] = math.Sqrt(variance / float64(rows))
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return means, stds
}

func softThreshold(value, penalty float64) float64 {
	switch {
	case value > penalty:
		return value - penalty
	case value < -penalty:
		return value + penalty
	default:
		return 0
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
