package eval

import "errors"

// SelectBest returns the result with the highest mean R². Ties break on
// lower mean RMSE, then on model name, so selection is deterministic.
func SelectBest(results []ModelResult) (ModelResult, error) {
	if len(results) == 0 {
		return ModelResult{}, errors.New("no results to select from")
	}

	best := results[0]
	for _, candidate := range results[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}
	return best, nil
}

func better(a, b ModelResult) bool {
	if a.MeanR2 != b.MeanR2 {
		return a.MeanR2 > b.MeanR2
	}
	if a.MeanRMSE != b.MeanRMSE {
		return a.MeanRMSE < b.MeanRMSE
	}
	return a.Model < b.Model
}
