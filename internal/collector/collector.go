// Package collector orchestrates one collection run: resolve the requested
// set names against the upstream catalog, fetch cards per set, flatten the
// price listings, persist them, and export the CSV dataset.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tcg-price-service/internal/config"
	"tcg-price-service/internal/dataset"
	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/metrics"
	"tcg-price-service/internal/providers"
	"tcg-price-service/internal/setmatch"
	"tcg-price-service/internal/timeutil"
)

const (
	notFoundMarker  = "not found"
	catalogFilename = "all_set_data.json"
)

// RecordStore persists flattened price records between runs.
type RecordStore interface {
	UpsertRecords(records []domain.PriceRecord) error
	Dataset() ([]domain.PriceRecord, error)
}

// Result summarizes a completed collection run.
type Result struct {
	Records     int
	SetMapping  map[string]string
	Unmatched   []string
	CSVPath     string
	PivotPath   string
	MappingPath string
	CatalogPath string
}

// Collector runs a single collection pass on demand.
type Collector struct {
	provider providers.CardProvider
	store    RecordStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      config.CollectorConfig
	now      func() time.Time
}

// New constructs a Collector. The store may be nil, in which case records are
// only exported to CSV.
func New(provider providers.CardProvider, store RecordStore, logger *slog.Logger, recorder *metrics.Recorder, cfg config.CollectorConfig) *Collector {
	return &Collector{
		provider: provider,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Run performs one collection pass for the configured sets.
func (c *Collector) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	result, err := c.run(ctx)
	if c.metrics != nil {
		c.metrics.RecordCollectionRun(time.Since(start), err)
	}
	return result, err
}

func (c *Collector) run(ctx context.Context) (Result, error) {
	if len(c.cfg.Sets) == 0 {
		return Result{}, fmt.Errorf("no sets configured")
	}

	catalog, err := c.provider.FetchSets(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch set catalog: %w", err)
	}
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}

	result := Result{SetMapping: make(map[string]string, len(c.cfg.Sets))}

	// Keep the full catalog on disk for reference between runs.
	result.CatalogPath = filepath.Join(c.cfg.OutputDir, catalogFilename)
	if err := writeSetCatalog(result.CatalogPath, catalog); err != nil {
		return result, fmt.Errorf("write set catalog: %w", err)
	}

	fetchedAt := timeutil.FormatTimestamp(c.now().UTC())

	var records []domain.PriceRecord
	for _, requested := range c.cfg.Sets {
		resolved := setmatch.Closest(requested, names)
		if resolved == "" {
			result.SetMapping[requested] = notFoundMarker
			result.Unmatched = append(result.Unmatched, requested)
			logging.Warn(c.logger, "set not found in catalog", slog.String(logging.FieldSet, requested))
			continue
		}
		result.SetMapping[requested] = resolved

		query := fmt.Sprintf("set.name:%q", resolved)
		cards, err := c.provider.FetchCards(ctx, query)
		if err != nil {
			return result, fmt.Errorf("fetch cards for set %q: %w", resolved, err)
		}

		setRecords := 0
		for _, card := range cards {
			flat := domain.Flatten(card, fetchedAt)
			records = append(records, flat...)
			setRecords += len(flat)
		}
		if c.metrics != nil {
			c.metrics.RecordCollectedCards(resolved, setRecords)
		}
		logging.Info(c.logger, "collected set",
			slog.String(logging.FieldSet, resolved),
			slog.Int(logging.FieldCount, setRecords),
		)
	}

	if len(records) == 0 {
		return result, fmt.Errorf("no price records collected")
	}
	result.Records = len(records)

	if c.store != nil {
		if err := c.store.UpsertRecords(records); err != nil {
			return result, fmt.Errorf("persist records: %w", err)
		}
		// Export the full catalog so the CSV keeps cards from earlier runs.
		if all, err := c.store.Dataset(); err == nil {
			records = all
		} else {
			logging.Warn(c.logger, "load stored dataset failed, exporting this run only", slog.Any("error", err))
		}
	}

	stamp := timeutil.FormatDate(c.now().UTC())
	result.CSVPath = filepath.Join(c.cfg.OutputDir, fmt.Sprintf("%s_prices_%s.csv", c.cfg.FilePrefix, stamp))
	if err := dataset.WriteCSV(result.CSVPath, records); err != nil {
		return result, fmt.Errorf("write dataset: %w", err)
	}

	// Companion pivot table: one row per card, one price column per condition.
	result.PivotPath = filepath.Join(c.cfg.OutputDir, fmt.Sprintf("%s_pivot_%s.csv", c.cfg.FilePrefix, stamp))
	if err := dataset.WritePivotCSV(result.PivotPath, records); err != nil {
		return result, fmt.Errorf("write pivot table: %w", err)
	}

	result.MappingPath = filepath.Join(c.cfg.OutputDir, fmt.Sprintf("%s_mapping_%s.json", c.cfg.FilePrefix, stamp))
	if err := writeMapping(result.MappingPath, result.SetMapping); err != nil {
		return result, fmt.Errorf("write set mapping: %w", err)
	}

	logging.Info(c.logger, "collection run complete",
		slog.Int(logging.FieldCount, result.Records),
		slog.String(logging.FieldPath, result.CSVPath),
	)
	return result, nil
}

// catalogSet serializes a set with the upstream API's field names.
type catalogSet struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Series       string `json:"series"`
	PrintedTotal int    `json:"printedTotal"`
	Total        int    `json:"total"`
	ReleaseDate  string `json:"releaseDate"`
}

func writeSetCatalog(path string, sets []domain.SetInfo) error {
	out := make([]catalogSet, 0, len(sets))
	for _, s := range sets {
		out = append(out, catalogSet{
			ID:           s.ID,
			Name:         s.Name,
			Series:       s.Series,
			PrintedTotal: s.PrintedTotal,
			Total:        s.Total,
			ReleaseDate:  s.ReleaseDate,
		})
	}
	return writeJSON(path, out)
}

func writeMapping(path string, mapping map[string]string) error {
	return writeJSON(path, mapping)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
