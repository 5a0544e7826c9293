package providers

import (
	"context"

	"tcg-price-service/internal/domain"
)

// SetProvider fetches the upstream set catalog.
type SetProvider interface {
	FetchSets(ctx context.Context) ([]domain.SetInfo, error)
}

// CardFetcher fetches normalized cards matching an upstream query string
// (e.g. `set.name:"Base"`). Implementations handle pagination internally.
type CardFetcher interface {
	FetchCards(ctx context.Context, query string) ([]domain.Card, error)
}

// CardProvider combines all provider capabilities.
type CardProvider interface {
	SetProvider
	CardFetcher
}
