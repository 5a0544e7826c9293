package report

import (
	"sort"

	"github.com/montanaflynn/stats"

	"tcg-price-service/internal/domain"
)

// RarityCount is one rarity bucket of the dataset summary.
type RarityCount struct {
	Rarity string
	Count  int
}

// Summary describes the collected dataset feeding the model comparison.
type Summary struct {
	Records     int
	Sets        int
	PriceMean   float64
	PriceMedian float64
	PriceStdDev float64
	PriceMin    float64
	PriceMax    float64
	Rarities    []RarityCount
}

// Summarize computes dataset summary statistics over the price target.
func Summarize(records []domain.PriceRecord) (Summary, error) {
	prices := make([]float64, 0, len(records))
	sets := make(map[string]struct{})
	rarities := make(map[string]int)
	for _, rec := range records {
		prices = append(prices, rec.Price)
		sets[rec.Set] = struct{}{}
		if rec.Rarity != "" {
			rarities[rec.Rarity]++
		}
	}

	mean, err := stats.Mean(prices)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(prices)
	if err != nil {
		return Summary{}, err
	}
	stddev, err := stats.StandardDeviation(prices)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(prices)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(prices)
	if err != nil {
		return Summary{}, err
	}

	rarityCounts := make([]RarityCount, 0, len(rarities))
	for rarity, count := range rarities {
		rarityCounts = append(rarityCounts, RarityCount{Rarity: rarity, Count: count})
	}
	sort.Slice(rarityCounts, func(i, j int) bool {
		if rarityCounts[i].Count != rarityCounts[j].Count {
			return rarityCounts[i].Count > rarityCounts[j].Count
		}
		return rarityCounts[i].Rarity < rarityCounts[j].Rarity
	})

	return Summary{
		Records:     len(records),
		Sets:        len(sets),
		PriceMean:   mean,
		PriceMedian: median,
		PriceStdDev: stddev,
		PriceMin:    min,
		PriceMax:    max,
		Rarities:    rarityCounts,
	}, nil
}
