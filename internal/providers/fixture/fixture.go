package fixture

import (
	"context"
	"strings"
	"time"

	"tcg-price-service/internal/domain"
)

// Provider returns a static card catalog useful for local testing and dry runs.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSets returns a deterministic set catalog.
func (p *Provider) FetchSets(ctx context.Context) ([]domain.SetInfo, error) {
	_ = ctx
	return []domain.SetInfo{
		{ID: "base1", Name: "Base", Series: "Base", PrintedTotal: 102, Total: 102, ReleaseDate: "1999/01/09"},
		{ID: "base2", Name: "Jungle", Series: "Base", PrintedTotal: 64, Total: 64, ReleaseDate: "1999/06/16"},
		{ID: "sv3pt5", Name: "151", Series: "Scarlet & Violet", PrintedTotal: 165, Total: 207, ReleaseDate: "2023/09/22"},
	}, nil
}

// FetchCards returns deterministic example cards; when the query carries a
// set.name filter only that set's cards come back.
func (p *Provider) FetchCards(ctx context.Context, query string) ([]domain.Card, error) {
	_ = ctx
	updated := p.now().UTC().Format("2006/01/02")

	cards := []domain.Card{
		{
			ID:        "base1-4",
			Name:      "Charizard",
			Set:       domain.SetInfo{ID: "base1", Name: "Base", Total: 102},
			Number:    "4",
			Rarity:    "Rare Holo",
			Supertype: "Pokémon",
			Subtypes:  []string{"Stage 2"},
			HP:        "120",
			UpdatedAt: updated,
			Prices: []domain.CardPrice{
				{Condition: "holofoil", Low: 180, Mid: 280, High: 420, Market: 351.41},
				{Condition: "unlimitedHolofoil", Low: 150, Mid: 240, High: 400, Market: 310.25},
			},
		},
		{
			ID:        "base1-58",
			Name:      "Pikachu",
			Set:       domain.SetInfo{ID: "base1", Name: "Base", Total: 102},
			Number:    "58",
			Rarity:    "Common",
			Supertype: "Pokémon",
			Subtypes:  []string{"Basic"},
			HP:        "40",
			UpdatedAt: updated,
			Prices: []domain.CardPrice{
				{Condition: "normal", Low: 0.5, Mid: 2.5, High: 12, Market: 3.75},
			},
		},
		{
			ID:        "base2-7",
			Name:      "Jolteon",
			Set:       domain.SetInfo{ID: "base2", Name: "Jungle", Total: 64},
			Number:    "7",
			Rarity:    "Rare Holo",
			Supertype: "Pokémon",
			Subtypes:  []string{"Stage 1"},
			HP:        "70",
			UpdatedAt: updated,
			Prices: []domain.CardPrice{
				{Condition: "holofoil", Low: 20, Mid: 45, High: 90, Market: 52.18},
			},
		},
		{
			ID:        "sv3pt5-151",
			Name:      "Mew ex",
			Set:       domain.SetInfo{ID: "sv3pt5", Name: "151", Total: 207},
			Number:    "151",
			Rarity:    "Double Rare",
			Supertype: "Pokémon",
			Subtypes:  []string{"Basic", "ex"},
			HP:        "180",
			UpdatedAt: updated,
			Prices: []domain.CardPrice{
				{Condition: "holofoil", Low: 1.8, Mid: 4, High: 15, Market: 4.62},
			},
		},
	}

	setName := querySetName(query)
	if setName == "" {
		return cards, nil
	}

	filtered := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if strings.EqualFold(card.Set.Name, setName) {
			filtered = append(filtered, card)
		}
	}
	return filtered, nil
}

// querySetName extracts the set name from a `set.name:"..."` query, if present.
func querySetName(query string) string {
	const prefix = `set.name:"`
	start := strings.Index(query, prefix)
	if start < 0 {
		return ""
	}
	rest := query[start+len(prefix):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
