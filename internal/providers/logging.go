package providers

import (
	"context"
	"log/slog"

	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/logging"
)

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}

// loggingProvider wraps a CardProvider with request/response logging.
type loggingProvider struct {
	next   CardProvider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider returns a CardProvider that logs each fetch with result counts.
func NewLoggingProvider(next CardProvider, name string, logger *slog.Logger) CardProvider {
	return &loggingProvider{next: next, name: name, logger: logger}
}

func (p *loggingProvider) FetchSets(ctx context.Context) ([]domain.SetInfo, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	sets, err := p.next.FetchSets(ctx)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "set fetch failed", "err", err)
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "sets fetched", logging.FieldCount, len(sets))
	return sets, nil
}

func (p *loggingProvider) FetchCards(ctx context.Context, query string) ([]domain.Card, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	cards, err := p.next.FetchCards(ctx, query)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "card fetch failed", logging.FieldQuery, query, "err", err)
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "cards fetched", logging.FieldQuery, query, logging.FieldCount, len(cards))
	return cards, nil
}
