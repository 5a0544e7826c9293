package config

import "time"

const (
	envAPIKey      = "API_KEY"
	envBaseURL     = "POKEMONTCG_BASE_URL"
	envPageSize    = "POKEMONTCG_PAGE_SIZE"
	envMaxPages    = "POKEMONTCG_MAX_PAGES"
	envRateDelay   = "POKEMONTCG_RATE_DELAY"
	envMaxAttempts = "POKEMONTCG_MAX_ATTEMPTS"

	defaultBaseURL  = "https://api.pokemontcg.io/v2"
	defaultPageSize = 250
	defaultMaxPages = 10
	// Spacing between paged requests; the upstream throttles bursts.
	defaultRateDelay   = time.Second
	defaultMaxAttempts = 3
)

// PokemonTCGConfig controls how we talk to the Pokemon TCG API.
type PokemonTCGConfig struct {
	BaseURL     string
	APIKey      string
	PageSize    int
	MaxPages    int
	RateDelay   time.Duration
	MaxAttempts int
}

func loadPokemonTCG() PokemonTCGConfig {
	return PokemonTCGConfig{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		APIKey:      envOrDefault(envAPIKey, ""),
		PageSize:    intEnvOrDefault(envPageSize, defaultPageSize),
		MaxPages:    intEnvOrDefault(envMaxPages, defaultMaxPages),
		RateDelay:   durationEnvOrDefault(envRateDelay, defaultRateDelay),
		MaxAttempts: intEnvOrDefault(envMaxAttempts, defaultMaxAttempts),
	}
}
