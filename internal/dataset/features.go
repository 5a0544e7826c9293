package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"tcg-price-service/internal/domain"
)

// Matrix is a design matrix with its target vector and column names.
// Feature columns: numeric hp and set size first, then one-hot rarity,
// supertype, and condition in sorted order, so the layout is deterministic
// for a given dataset.
type Matrix struct {
	X        *mat.Dense
	Y        []float64
	Features []string
}

// BuildMatrix engineers features from records for supervised price modeling.
func BuildMatrix(records []domain.PriceRecord) (*Matrix, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	rarities := distinct(records, func(r domain.PriceRecord) string { return r.Rarity })
	supertypes := distinct(records, func(r domain.PriceRecord) string { return r.Supertype })
	conditions := distinct(records, func(r domain.PriceRecord) string { return r.Condition })

	features := []string{"hp", "set_size"}
	for _, v := range rarities {
		features = append(features, "rarity="+v)
	}
	for _, v := range supertypes {
		features = append(features, "supertype="+v)
	}
	for _, v := range conditions {
		features = append(features, "condition="+v)
	}

	rows, cols := len(records), len(features)
	x := mat.NewDense(rows, cols, nil)
	y := make([]float64, rows)

	for i, rec := range records {
		if rec.Price < 0 {
			return nil, fmt.Errorf("%w: negative price for %s", domain.ErrInvalidRecord, rec.CardID)
		}
		y[i] = rec.Price

		x.Set(i, 0, parseHP(rec.HP))
		x.Set(i, 1, float64(rec.SetSize))

		col := 2
		col = setOneHot(x, i, col, rarities, rec.Rarity)
		col = setOneHot(x, i, col, supertypes, rec.Supertype)
		setOneHot(x, i, col, conditions, rec.Condition)
	}

	return &Matrix{X: x, Y: y, Features: features}, nil
}

// parseHP tolerates HP strings like "120", "70+", or empty for trainers.
func parseHP(raw string) float64 {
	trimmed := strings.TrimFunc(raw, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if trimmed == "" {
		return 0
	}
	val, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return float64(val)
}

func setOneHot(x *mat.Dense, row, start int, values []string, value string) int {
	for offset, candidate := range values {
		if candidate == value {
			x.Set(row, start+offset, 1)
		}
	}
	return start + len(values)
}

func distinct(records []domain.PriceRecord, key func(domain.PriceRecord) string) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		v := key(rec)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
