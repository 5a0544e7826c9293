package providers

import (
	"context"
	"log/slog"
	"time"

	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = time.Second
	backoffFactor        = 2
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a CardProvider with retry/backoff behavior.
// Rate-limited responses wait out the upstream Retry-After when given.
type retryingProvider struct {
	inner       CardProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner CardProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) CardProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			d := backoff
			for i := 1; i < attempt; i++ {
				d *= backoffFactor
			}
			return d
		},
	}
}

func (r *retryingProvider) FetchSets(ctx context.Context) ([]domain.SetInfo, error) {
	return retry(ctx, r, "sets", func() ([]domain.SetInfo, error) {
		return r.inner.FetchSets(ctx)
	})
}

func (r *retryingProvider) FetchCards(ctx context.Context, query string) ([]domain.Card, error) {
	return retry(ctx, r, "cards", func() ([]domain.Card, error) {
		return r.inner.FetchCards(ctx, query)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fetch func() ([]T, error)) ([]T, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		items, err := fetch()
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return items, nil
		}
		lastErr = err

		delay := r.backoffFn(attempt)
		retryArgs := []any{"op", op, "attempt", attempt, "max_attempts", r.maxAttempts}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			if rlErr.RetryAfter > delay {
				delay = rlErr.RetryAfter
			}
			retryArgs = append(retryArgs, logging.FieldStatusCode, rlErr.StatusCode)
		}

		if attempt == r.maxAttempts {
			break
		}

		retryArgs = append(retryArgs, "delay", delay.String(), "err", err)
		r.logWarn(ctx, "provider fetch retry", retryArgs...)

		// backoff with context awareness
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
