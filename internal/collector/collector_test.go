package collector

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcg-price-service/internal/config"
	"tcg-price-service/internal/dataset"
	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/providers/fixture"
)

type memoryStore struct {
	records   map[string]domain.PriceRecord
	upserts   int
	upsertErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string]domain.PriceRecord)}
}

func (m *memoryStore) UpsertRecords(records []domain.PriceRecord) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts++
	for _, rec := range records {
		m.records[rec.CardID+"|"+rec.Condition] = rec
	}
	return nil
}

func (m *memoryStore) Dataset() ([]domain.PriceRecord, error) {
	out := make([]domain.PriceRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func testConfig(t *testing.T, sets ...string) config.CollectorConfig {
	t.Helper()
	return config.CollectorConfig{
		Sets:       sets,
		OutputDir:  t.TempDir(),
		FilePrefix: "tracked_sets",
	}
}

func TestRunCollectsResolvedSets(t *testing.T) {
	store := newMemoryStore()
	c := New(fixture.New(), store, nil, nil, testConfig(t, "Base", "Jungle"))

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Records == 0 {
		t.Fatalf("expected records to be collected")
	}
	if store.upserts != 1 {
		t.Fatalf("expected one upsert batch, got %d", store.upserts)
	}
	if got := result.SetMapping["Base"]; got != "Base" {
		t.Fatalf("expected Base to resolve to Base, got %q", got)
	}
	if got := result.SetMapping["Jungle"]; got != "Jungle" {
		t.Fatalf("expected Jungle to resolve to Jungle, got %q", got)
	}

	records, err := dataset.ReadCSV(result.CSVPath)
	if err != nil {
		t.Fatalf("read exported dataset: %v", err)
	}
	if len(records) != result.Records {
		t.Fatalf("expected %d exported records, got %d", result.Records, len(records))
	}
	for _, rec := range records {
		if rec.Price <= 0 {
			t.Fatalf("expected positive market price, got %f for %s", rec.Price, rec.CardID)
		}
	}
}

func TestRunResolvesFuzzySetNames(t *testing.T) {
	c := New(fixture.New(), newMemoryStore(), nil, nil, testConfig(t, "base set", "151"))

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.SetMapping["base set"]; got != "Base" {
		t.Fatalf("expected fuzzy match to Base, got %q", got)
	}
	if got := result.SetMapping["151"]; got != "151" {
		t.Fatalf("expected 151 to resolve, got %q", got)
	}
}

func TestRunRecordsUnmatchedSets(t *testing.T) {
	c := New(fixture.New(), newMemoryStore(), nil, nil, testConfig(t, "Base", "No Such Set"))

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.SetMapping["No Such Set"]; got != "not found" {
		t.Fatalf("expected not found marker, got %q", got)
	}
	if len(result.Unmatched) != 1 || result.Unmatched[0] != "No Such Set" {
		t.Fatalf("unexpected unmatched list %v", result.Unmatched)
	}

	data, err := os.ReadFile(result.MappingPath)
	if err != nil {
		t.Fatalf("read mapping sidecar: %v", err)
	}
	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		t.Fatalf("decode mapping sidecar: %v", err)
	}
	if mapping["No Such Set"] != "not found" {
		t.Fatalf("unexpected sidecar mapping %v", mapping)
	}
}

func TestRunFailsWithoutSets(t *testing.T) {
	c := New(fixture.New(), newMemoryStore(), nil, nil, testConfig(t))

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatalf("expected error when no sets configured")
	}
}

func TestRunFailsWhenNothingMatches(t *testing.T) {
	c := New(fixture.New(), newMemoryStore(), nil, nil, testConfig(t, "No Such Set"))

	if _, err := c.Run(context.Background()); err == nil {
		t.Fatalf("expected error when no records collected")
	}
}

func TestRunSurfacesStoreErrors(t *testing.T) {
	store := newMemoryStore()
	store.upsertErr = errors.New("disk full")
	c := New(fixture.New(), store, nil, nil, testConfig(t, "Base"))

	_, err := c.Run(context.Background())
	if err == nil || !errors.Is(err, store.upsertErr) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

func TestRunWritesSetCatalogJSON(t *testing.T) {
	c := New(fixture.New(), nil, nil, nil, testConfig(t, "Base"))

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(result.CatalogPath) != "all_set_data.json" {
		t.Fatalf("unexpected catalog filename %s", result.CatalogPath)
	}

	data, err := os.ReadFile(result.CatalogPath)
	if err != nil {
		t.Fatalf("read set catalog: %v", err)
	}
	var sets []map[string]any
	if err := json.Unmarshal(data, &sets); err != nil {
		t.Fatalf("decode set catalog: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("expected full catalog of 3 sets, got %d", len(sets))
	}
	if sets[0]["id"] != "base1" || sets[0]["name"] != "Base" {
		t.Fatalf("unexpected first catalog entry %v", sets[0])
	}
	for _, field := range []string{"series", "printedTotal", "total", "releaseDate"} {
		if _, ok := sets[0][field]; !ok {
			t.Fatalf("catalog entry missing %s field: %v", field, sets[0])
		}
	}
}

func TestRunWritesPivotTable(t *testing.T) {
	c := New(fixture.New(), nil, nil, nil, testConfig(t, "Base"))

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(result.PivotPath)
	if err != nil {
		t.Fatalf("open pivot table: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read pivot table: %v", err)
	}
	// Header plus one row per card; conditions become columns.
	if len(rows) != 3 {
		t.Fatalf("expected 3 pivot rows, got %d", len(rows))
	}
	wantHeader := []string{"set", "number", "name", "rarity", "holofoil", "normal", "unlimitedHolofoil"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("unexpected pivot header %v", rows[0])
		}
	}
	if rows[1][2] != "Charizard" || rows[1][4] != "351.41" || rows[1][6] != "310.25" {
		t.Fatalf("unexpected Charizard pivot row %v", rows[1])
	}
	if rows[2][2] != "Pikachu" || rows[2][5] != "3.75" || rows[2][4] != "" {
		t.Fatalf("unexpected Pikachu pivot row %v", rows[2])
	}
}

func TestRunLogsUnmatchedSetWithSetField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := New(fixture.New(), nil, logger, nil, testConfig(t, "Base", "No Such Set"))

	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `set="No Such Set"`) {
		t.Fatalf("expected warn with set field, got logs:\n%s", buf.String())
	}
}

func TestRunWritesCSVUnderOutputDir(t *testing.T) {
	cfg := testConfig(t, "Base")
	c := New(fixture.New(), nil, nil, nil, cfg)

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(result.CSVPath) != cfg.OutputDir {
		t.Fatalf("expected CSV under %s, got %s", cfg.OutputDir, result.CSVPath)
	}
}
