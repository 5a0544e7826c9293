package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tcg-price-service/internal/config"
	"tcg-price-service/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		dataPath     string
		modelingPath string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate models and write a Markdown comparison report",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := buildLogger()

			recorder, stopMetrics, err := startMetrics(cmd.Context(), config.Load().Metrics, logger)
			if err != nil {
				return err
			}
			defer shutdownMetrics(stopMetrics, logger)

			ev, err := runEvaluation(dataPath, modelingPath, logger, recorder)
			if err != nil {
				return err
			}

			rpt, err := report.New(ev.summary, ev.results, ev.modeling.Folds, ev.modeling.Seed, time.Now().UTC())
			if err != nil {
				return err
			}

			if dir := filepath.Dir(outPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			defer f.Close()

			if err := rpt.Render(f); err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			logger.Info("report written", "path", outPath, "best_model", rpt.Best.Model)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "path to a collected CSV dataset")
	cmd.Flags().StringVar(&modelingPath, "config", "", "path to a YAML modeling config")
	cmd.Flags().StringVar(&outPath, "out", "model_report.md", "output path for the Markdown report")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
