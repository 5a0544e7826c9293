package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"tcg-price-service/internal/domain"
)

type pivotKey struct {
	set    string
	number string
	name   string
	rarity string
}

// WritePivotCSV writes records as a pivot table for side-by-side price
// comparison: one row per card identified by set/number/name/rarity, one
// column of market price per condition. Rows keep their input order;
// condition columns are sorted. Cells stay empty when a card was never
// listed in that condition.
func WritePivotCSV(path string, records []domain.PriceRecord) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dataset directory: %w", err)
		}
	}

	conditionSet := make(map[string]struct{})
	prices := make(map[pivotKey]map[string]float64)
	order := make([]pivotKey, 0, len(records))
	for _, rec := range records {
		key := pivotKey{set: rec.Set, number: rec.Number, name: rec.Name, rarity: rec.Rarity}
		if _, ok := prices[key]; !ok {
			prices[key] = make(map[string]float64)
			order = append(order, key)
		}
		prices[key][rec.Condition] = rec.Price
		conditionSet[rec.Condition] = struct{}{}
	}

	conditions := make([]string, 0, len(conditionSet))
	for cond := range conditionSet {
		conditions = append(conditions, cond)
	}
	sort.Strings(conditions)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pivot file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"set", "number", "name", "rarity"}, conditions...)); err != nil {
		return err
	}
	for _, key := range order {
		row := []string{key.set, key.number, key.name, key.rarity}
		for _, cond := range conditions {
			if price, ok := prices[key][cond]; ok {
				row = append(row, strconv.FormatFloat(price, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
