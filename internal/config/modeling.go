package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultFolds = 5
	defaultSeed  = 42
)

// ModelingConfig controls cross-validation and model hyperparameters.
type ModelingConfig struct {
	Folds int   `yaml:"folds"`
	Seed  int64 `yaml:"seed"`

	KNN        KNNConfig        `yaml:"knn"`
	ElasticNet ElasticNetConfig `yaml:"elastic_net"`
	Forest     ForestConfig     `yaml:"random_forest"`
	Boosting   BoostingConfig   `yaml:"boosting"`
}

// KNNConfig holds KNN regressor hyperparameters.
type KNNConfig struct {
	Neighbors int `yaml:"neighbors"`
}

// ElasticNetConfig holds elastic net hyperparameters.
type ElasticNetConfig struct {
	Alpha   float64 `yaml:"alpha"`
	L1Ratio float64 `yaml:"l1_ratio"`
}

// ForestConfig holds random forest hyperparameters.
type ForestConfig struct {
	Trees    int `yaml:"trees"`
	MaxDepth int `yaml:"max_depth"`
}

// BoostingConfig holds gradient boosting hyperparameters.
type BoostingConfig struct {
	Rounds       int     `yaml:"rounds"`
	MaxDepth     int     `yaml:"max_depth"`
	LearningRate float64 `yaml:"learning_rate"`
}

// DefaultModeling returns the modeling configuration used when no file is given.
func DefaultModeling() ModelingConfig {
	return ModelingConfig{
		Folds:      defaultFolds,
		Seed:       defaultSeed,
		KNN:        KNNConfig{Neighbors: 5},
		ElasticNet: ElasticNetConfig{Alpha: 1.0, L1Ratio: 0.5},
		Forest:     ForestConfig{Trees: 100, MaxDepth: 8},
		Boosting:   BoostingConfig{Rounds: 100, MaxDepth: 3, LearningRate: 0.1},
	}
}

// LoadModeling reads a YAML modeling config, filling gaps with defaults.
// An empty path returns the defaults unchanged.
func LoadModeling(path string) (ModelingConfig, error) {
	cfg := DefaultModeling()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read modeling config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse modeling config: %w", err)
	}

	if cfg.Folds < 2 {
		cfg.Folds = defaultFolds
	}
	if cfg.KNN.Neighbors <= 0 {
		cfg.KNN.Neighbors = 5
	}
	if cfg.ElasticNet.Alpha < 0 {
		cfg.ElasticNet.Alpha = 1.0
	}
	if cfg.ElasticNet.L1Ratio < 0 || cfg.ElasticNet.L1Ratio > 1 {
		cfg.ElasticNet.L1Ratio = 0.5
	}
	if cfg.Forest.Trees <= 0 {
		cfg.Forest.Trees = 100
	}
	if cfg.Boosting.Rounds <= 0 {
		cfg.Boosting.Rounds = 100
	}
	if cfg.Boosting.LearningRate <= 0 {
		cfg.Boosting.LearningRate = 0.1
	}
	return cfg, nil
}
