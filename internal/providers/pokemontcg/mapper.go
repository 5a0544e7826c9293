package pokemontcg

import (
	"sort"

	"tcg-price-service/internal/domain"
)

func mapCard(c cardResponse) domain.Card {
	return domain.Card{
		ID:        c.ID,
		Name:      c.Name,
		Set:       mapSet(c.Set),
		Number:    c.Number,
		Rarity:    c.Rarity,
		Supertype: c.Supertype,
		Subtypes:  c.Subtypes,
		HP:        c.HP,
		Prices:    mapPrices(c.TCGPlayer.Prices),
		UpdatedAt: c.TCGPlayer.UpdatedAt,
	}
}

func mapSet(s setResponse) domain.SetInfo {
	return domain.SetInfo{
		ID:           s.ID,
		Name:         s.Name,
		Series:       s.Series,
		PrintedTotal: s.PrintedTotal,
		Total:        s.Total,
		ReleaseDate:  s.ReleaseDate,
	}
}

// mapPrices flattens the per-condition price object. Conditions are sorted
// so mapped output is stable regardless of JSON map iteration order.
func mapPrices(prices map[string]priceResponse) []domain.CardPrice {
	if len(prices) == 0 {
		return nil
	}
	conditions := make([]string, 0, len(prices))
	for condition := range prices {
		conditions = append(conditions, condition)
	}
	sort.Strings(conditions)

	mapped := make([]domain.CardPrice, 0, len(conditions))
	for _, condition := range conditions {
		p := prices[condition]
		mapped = append(mapped, domain.CardPrice{
			Condition: condition,
			Low:       deref(p.Low),
			Mid:       deref(p.Mid),
			High:      deref(p.High),
			Market:    deref(p.Market),
		})
	}
	return mapped
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
