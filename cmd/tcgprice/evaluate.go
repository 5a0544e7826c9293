package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"tcg-price-service/internal/config"
	"tcg-price-service/internal/dataset"
	"tcg-price-service/internal/eval"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/metrics"
	"tcg-price-service/internal/model"
	"tcg-price-service/internal/report"
)

type evaluation struct {
	summary  report.Summary
	results  []eval.ModelResult
	best     eval.ModelResult
	modeling config.ModelingConfig
}

func newEvaluateCmd() *cobra.Command {
	var (
		dataPath     string
		modelingPath string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Cross-validate price models on a collected dataset",
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

			for _, res := range ev.results {
				fmt.Printf("%-20s R² %.4f ± %.4f  RMSE %.4f ± %.4f\n",
					res.Model, res.MeanR2, res.StdR2, res.MeanRMSE, res.StdRMSE)
			}
			fmt.Printf("best: %s\n", ev.best.Model)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "path to a collected CSV dataset")
	cmd.Flags().StringVar(&modelingPath, "config", "", "path to a YAML modeling config")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

// runEvaluation loads the dataset, builds the feature matrix, and
// cross-validates every configured model on shared folds.
func runEvaluation(dataPath, modelingPath string, logger *slog.Logger, recorder *metrics.Recorder) (evaluation, error) {
	modeling, err := config.LoadModeling(modelingPath)
	if err != nil {
		return evaluation{}, err
	}

	records, err := dataset.ReadCSV(dataPath)
	if err != nil {
		return evaluation{}, fmt.Errorf("load dataset: %w", err)
	}
	summary, err := report.Summarize(records)
	if err != nil {
		return evaluation{}, fmt.Errorf("summarize dataset: %w", err)
	}
	matrix, err := dataset.BuildMatrix(records)
	if err != nil {
		return evaluation{}, fmt.Errorf("build features: %w", err)
	}

	folds, err := eval.KFold(len(matrix.Y), modeling.Folds, modeling.Seed)
	if err != nil {
		return evaluation{}, err
	}

	models := buildModels(modeling)
	results := make([]eval.ModelResult, 0, len(models))
	for _, m := range models {
		start := time.Now()
		res, err := eval.CrossValidate([]model.Regressor{m}, matrix.X, matrix.Y, folds)
		recorder.RecordEvaluation(m.Name(), time.Since(start), err)
		if err != nil {
			return evaluation{}, err
		}
		results = append(results, res[0])
		logger.Info("model evaluated",
			slog.String(logging.FieldModel, m.Name()),
			slog.Float64("mean_r2", res[0].MeanR2),
			slog.Float64("mean_rmse", res[0].MeanRMSE),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
	}

	best, err := eval.SelectBest(results)
	if err != nil {
		return evaluation{}, err
	}

	return evaluation{
		summary:  summary,
		results:  results,
		best:     best,
		modeling: modeling,
	}, nil
}

func buildModels(cfg config.ModelingConfig) []model.Regressor {
	return []model.Regressor{
		model.NewLinearRegression(),
		model.NewElasticNet(cfg.ElasticNet.Alpha, cfg.ElasticNet.L1Ratio),
		model.NewKNNRegressor(cfg.KNN.Neighbors),
		model.NewRandomForest(cfg.Forest.Trees, cfg.Forest.MaxDepth, cfg.Seed),
		model.NewGradientBoosting(cfg.Boosting.Rounds, cfg.Boosting.MaxDepth, cfg.Boosting.LearningRate, cfg.Seed),
	}
}
