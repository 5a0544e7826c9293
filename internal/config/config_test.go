package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envProvider, envSets, envOutputDir, envStorePath, envAPIKey, envBaseURL} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider, got %s", cfg.Provider)
	}
	if cfg.PokemonTCG.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", cfg.PokemonTCG.BaseURL)
	}
	if cfg.PokemonTCG.PageSize != defaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.PokemonTCG.PageSize)
	}
	if cfg.Store.Path != defaultStorePath {
		t.Fatalf("expected default store path, got %s", cfg.Store.Path)
	}
	if len(cfg.Collector.Sets) != 0 {
		t.Fatalf("expected no tracked sets by default, got %v", cfg.Collector.Sets)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv(envAPIKey, "secret")
	t.Setenv(envSets, "151, Jungle ,Base Set")
	t.Setenv(envRateDelay, "2s")

	cfg := Load()

	if cfg.PokemonTCG.APIKey != "secret" {
		t.Fatalf("expected API key from env, got %q", cfg.PokemonTCG.APIKey)
	}
	if len(cfg.Collector.Sets) != 3 || cfg.Collector.Sets[1] != "Jungle" {
		t.Fatalf("expected trimmed set list, got %v", cfg.Collector.Sets)
	}
	if cfg.PokemonTCG.RateDelay != 2*time.Second {
		t.Fatalf("expected 2s rate delay, got %v", cfg.PokemonTCG.RateDelay)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv(envPageSize, "not-a-number")
	t.Setenv(envMetricsOn, "maybe")

	cfg := Load()

	if cfg.PokemonTCG.PageSize != defaultPageSize {
		t.Fatalf("expected page size fallback, got %d", cfg.PokemonTCG.PageSize)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled fallback")
	}
}

func TestMaxCardsZeroMeansNoCap(t *testing.T) {
	t.Setenv(envMaxCards, "0")

	cfg := Load()

	if cfg.Collector.MaxCards != 0 {
		t.Fatalf("expected explicit zero cap kept, got %d", cfg.Collector.MaxCards)
	}
}

func TestMaxCardsNegativeFallsBack(t *testing.T) {
	t.Setenv(envMaxCards, "-5")

	cfg := Load()

	if cfg.Collector.MaxCards != defaultMaxCards {
		t.Fatalf("expected fallback for negative cap, got %d", cfg.Collector.MaxCards)
	}
}

func TestBoolEnvAcceptsOnOff(t *testing.T) {
	t.Setenv(envMetricsOn, "off")

	if cfg := Load(); cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled by off")
	}

	t.Setenv(envMetricsOn, "on")
	if cfg := Load(); !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by on")
	}
}

func TestLoadModelingDefaults(t *testing.T) {
	cfg, err := LoadModeling("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Folds != defaultFolds || cfg.Seed != defaultSeed {
		t.Fatalf("expected default folds/seed, got %d/%d", cfg.Folds, cfg.Seed)
	}
	if cfg.Forest.Trees != 100 {
		t.Fatalf("expected default forest size, got %d", cfg.Forest.Trees)
	}
}

func TestLoadModelingFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modeling.yaml")
	body := "folds: 10\nseed: 7\nknn:\n  neighbors: 3\nelastic_net:\n  alpha: 0.25\n  l1_ratio: 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadModeling(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Folds != 10 || cfg.Seed != 7 {
		t.Fatalf("expected folds/seed from file, got %d/%d", cfg.Folds, cfg.Seed)
	}
	if cfg.KNN.Neighbors != 3 {
		t.Fatalf("expected neighbors from file, got %d", cfg.KNN.Neighbors)
	}
	if cfg.ElasticNet.Alpha != 0.25 || cfg.ElasticNet.L1Ratio != 0.9 {
		t.Fatalf("expected elastic net params from file, got %+v", cfg.ElasticNet)
	}
	// Unspecified sections keep defaults.
	if cfg.Boosting.LearningRate != 0.1 {
		t.Fatalf("expected default learning rate, got %f", cfg.Boosting.LearningRate)
	}
}

func TestLoadModelingRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modeling.yaml")
	if err := os.WriteFile(path, []byte("folds: 1\nelastic_net:\n  l1_ratio: 2.0\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadModeling(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Folds != defaultFolds {
		t.Fatalf("expected fold fallback, got %d", cfg.Folds)
	}
	if cfg.ElasticNet.L1Ratio != 0.5 {
		t.Fatalf("expected l1 ratio fallback, got %f", cfg.ElasticNet.L1Ratio)
	}
}

func TestLoadModelingMissingFile(t *testing.T) {
	if _, err := LoadModeling(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
