package config

import (
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the toolkit.
type Config struct {
	Provider   string
	Collector  CollectorConfig
	PokemonTCG PokemonTCGConfig
	Store      StoreConfig
	Metrics    MetricsConfig
}

// CollectorConfig controls a collection run.
type CollectorConfig struct {
	Sets       []string
	OutputDir  string
	MaxCards   int
	FilePrefix string
}

// StoreConfig controls the local card catalog.
type StoreConfig struct {
	Path string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	return Config{
		Provider:   envOrDefault(envProvider, defaultProvider),
		Collector:  loadCollector(),
		PokemonTCG: loadPokemonTCG(),
		Store:      loadStore(),
		Metrics:    loadMetrics(),
	}
}

func loadCollector() CollectorConfig {
	return CollectorConfig{
		Sets:       splitSets(envOrDefault(envSets, "")),
		OutputDir:  envOrDefault(envOutputDir, defaultOutputDir),
		MaxCards:   countEnvOrDefault(envMaxCards, defaultMaxCards),
		FilePrefix: "tracked_sets",
	}
}

func loadStore() StoreConfig {
	return StoreConfig{
		Path: envOrDefault(envStorePath, defaultStorePath),
	}
}

func splitSets(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	sets := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sets = append(sets, trimmed)
		}
	}
	return sets
}
