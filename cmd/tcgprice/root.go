package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tcg-price-service/internal/config"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/metrics"
	"tcg-price-service/internal/providers"
	"tcg-price-service/internal/providers/fixture"
	"tcg-price-service/internal/providers/pokemontcg"
)

const serviceName = "tcg-price-service"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tcgprice",
		Short:         "Collect Pokemon TCG card prices and compare price models",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newCollectCmd(), newEvaluateCmd(), newReportCmd())
	return cmd
}

func buildLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
}

// buildProvider stacks the configured base provider with logging, retries,
// and the optional per-run card cap.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.CardProvider {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	var base providers.CardProvider
	switch name {
	case "fixture":
		base = fixture.New()
	default:
		name = "pokemontcg"
		base = pokemontcg.NewClient(pokemontcg.Config{
			BaseURL:   cfg.PokemonTCG.BaseURL,
			APIKey:    cfg.PokemonTCG.APIKey,
			PageSize:  cfg.PokemonTCG.PageSize,
			MaxPages:  cfg.PokemonTCG.MaxPages,
			PageDelay: cfg.PokemonTCG.RateDelay,
		})
	}

	provider := providers.NewLoggingProvider(base, name, logger)
	provider = providers.NewRetryingProvider(provider, logger, recorder, name, cfg.PokemonTCG.MaxAttempts, cfg.PokemonTCG.RateDelay)
	if cfg.Collector.MaxCards > 0 {
		provider = providers.NewCardLimitedProvider(provider, cfg.Collector.MaxCards, logger)
	}
	return provider
}

// startMetrics wires telemetry and, when enabled, serves /metrics for the
// duration of the run. The returned stop func shuts both down.
func startMetrics(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) (*metrics.Recorder, func(context.Context) error, error) {
	recorder, handler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	})
	if err != nil {
		return nil, nil, err
	}

	var srv *http.Server
	if handler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		srv = &http.Server{Addr: ":" + cfg.Port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				logger.Warn("metrics server stopped", "error", serveErr)
			}
		}()
	}

	stop := func(c context.Context) error {
		if srv != nil {
			_ = srv.Shutdown(c)
		}
		return shutdown(c)
	}
	return recorder, stop, nil
}
