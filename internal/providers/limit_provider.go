package providers

import (
	"context"
	"log/slog"

	"tcg-price-service/internal/domain"
)

// cardLimitedProvider wraps a CardProvider and caps the cards returned per query.
// Useful for bounded dry runs against the live API.
type cardLimitedProvider struct {
	next     CardProvider
	maxCards int
	logger   *slog.Logger
}

// NewCardLimitedProvider returns a CardProvider that truncates card results to maxCards.
// A non-positive maxCards returns the provider unchanged.
func NewCardLimitedProvider(next CardProvider, maxCards int, logger *slog.Logger) CardProvider {
	if maxCards <= 0 {
		return next
	}
	return &cardLimitedProvider{
		next:     next,
		maxCards: maxCards,
		logger:   logger,
	}
}

func (p *cardLimitedProvider) FetchSets(ctx context.Context) ([]domain.SetInfo, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return p.next.FetchSets(ctx)
}

func (p *cardLimitedProvider) FetchCards(ctx context.Context, query string) ([]domain.Card, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	cards, err := p.next.FetchCards(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(cards) > p.maxCards {
		if p.logger != nil {
			p.logger.Info("card limit applied",
				slog.String("query", query),
				slog.Int("fetched", len(cards)),
				slog.Int("kept", p.maxCards))
		}
		cards = cards[:p.maxCards]
	}
	return cards, nil
}
