package fixture

import (
	"context"
	"testing"
)

func TestFetchSetsIsDeterministic(t *testing.T) {
	provider := New()

	first, err := provider.FetchSets(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := provider.FetchSets(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first) != len(second) || len(first) == 0 {
		t.Fatalf("expected stable non-empty catalog, got %d and %d", len(first), len(second))
	}
}

func TestFetchCardsFiltersBySetName(t *testing.T) {
	provider := New()

	cards, err := provider.FetchCards(context.Background(), `set.name:"Jungle"`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cards) != 1 || cards[0].Set.Name != "Jungle" {
		t.Fatalf("expected only Jungle cards, got %+v", cards)
	}
}

func TestFetchCardsWithoutFilterReturnsAll(t *testing.T) {
	provider := New()

	cards, err := provider.FetchCards(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cards) != 4 {
		t.Fatalf("expected full fixture catalog, got %d", len(cards))
	}
	for _, card := range cards {
		if !card.HasMarketPrice() {
			t.Fatalf("fixture card %s should carry a market price", card.ID)
		}
	}
}
