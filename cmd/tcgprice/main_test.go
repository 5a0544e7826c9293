package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcg-price-service/internal/dataset"
	"tcg-price-service/internal/domain"
	"tcg-price-service/internal/logging"
	"tcg-price-service/internal/metrics"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"collect": false, "evaluate": false, "report": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected %s subcommand to be registered", name)
		}
	}
}

func writeTestDataset(t *testing.T) string {
	t.Helper()

	rarities := []string{"Common", "Uncommon", "Rare", "Rare Holo"}
	conditions := []string{"normal", "holofoil"}
	records := make([]domain.PriceRecord, 0, 40)
	for i := 0; i < 40; i++ {
		rarity := rarities[i%len(rarities)]
		records = append(records, domain.PriceRecord{
			CardID:    fmt.Sprintf("base1-%d", i+1),
			Name:      fmt.Sprintf("Card %d", i+1),
			Set:       "Base",
			Number:    fmt.Sprintf("%d", i+1),
			Rarity:    rarity,
			Supertype: "Pokémon",
			HP:        fmt.Sprintf("%d", 40+10*(i%8)),
			SetSize:   102,
			Condition: conditions[i%len(conditions)],
			Price:     1.5 + float64(i%len(rarities))*20 + float64(i)*0.1,
			UpdatedAt: "2025/06/01",
			FetchedAt: "2025-06-01 12:00:00",
		})
	}

	path := filepath.Join(t.TempDir(), "prices.csv")
	if err := dataset.WriteCSV(path, records); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestRunEvaluationProducesAllModels(t *testing.T) {
	path := writeTestDataset(t)
	logger := logging.NewLogger(logging.Config{Level: "error"})

	ev, err := runEvaluation(path, "", logger, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ev.results) != 5 {
		t.Fatalf("expected 5 model results, got %d", len(ev.results))
	}
	if ev.best.Model == "" {
		t.Fatalf("expected a best model to be selected")
	}
	if ev.summary.Records != 40 {
		t.Fatalf("expected 40 summarized records, got %d", ev.summary.Records)
	}
}

func TestRunEvaluationRejectsMissingDataset(t *testing.T) {
	logger := logging.NewLogger(logging.Config{Level: "error"})

	_, err := runEvaluation(filepath.Join(t.TempDir(), "missing.csv"), "", logger, metrics.NewRecorder())
	if err == nil {
		t.Fatalf("expected error for missing dataset")
	}
}

func TestReportCommandWritesMarkdown(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	path := writeTestDataset(t)
	out := filepath.Join(t.TempDir(), "report.md")

	root := newRootCmd()
	root.SetArgs([]string{"report", "--data", path, "--out", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("report command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "# Model Comparison Report") {
		t.Fatalf("unexpected report contents:\n%s", data)
	}
}
