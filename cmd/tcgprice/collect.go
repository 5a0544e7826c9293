package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"tcg-price-service/internal/collector"
	"tcg-price-service/internal/config"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/store"
)

func newCollectCmd() *cobra.Command {
	var (
		sets      []string
		outDir    string
		storePath string
		maxCards  int
		noStore   bool
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch tracked sets and export the price dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if len(sets) > 0 {
				cfg.Collector.Sets = sets
			}
			if outDir != "" {
				cfg.Collector.OutputDir = outDir
			}
			if storePath != "" {
				cfg.Store.Path = storePath
			}
			if cmd.Flags().Changed("max-cards") {
				cfg.Collector.MaxCards = maxCards
			}

			logger := buildLogger()
			ctx := cmd.Context()

			recorder, stopMetrics, err := startMetrics(ctx, cfg.Metrics, logger)
			if err != nil {
				return err
			}
			defer shutdownMetrics(stopMetrics, logger)

			provider := buildProvider(cfg, logger, recorder)

			var recordStore collector.RecordStore
			if !noStore {
				cardStore, err := store.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer cardStore.Close()
				recordStore = cardStore
			}

			c := collector.New(provider, recordStore, logger, recorder, cfg.Collector)
			result, err := c.Run(logging.WithLogger(ctx, logger))
			if err != nil {
				logging.Error(logger, "collection run failed", err)
				return err
			}

			logger.Info("dataset exported",
				slog.Int(logging.FieldCount, result.Records),
				slog.String(logging.FieldPath, result.CSVPath),
			)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sets, "sets", nil, "comma-separated set names to collect (overrides TRACKED_SETS)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory for CSV and mapping files")
	cmd.Flags().StringVar(&storePath, "store", "", "sqlite store path")
	cmd.Flags().IntVar(&maxCards, "max-cards", 0, "cap cards fetched per set (0 = no cap)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "skip the sqlite store and export this run only")
	return cmd
}

func shutdownMetrics(stop func(context.Context) error, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := stop(ctx); err != nil {
		logger.Warn("metrics shutdown failed", "error", err)
	}
}
