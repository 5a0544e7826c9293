package pokemontcg

import "time"

const (
	defaultBaseURL     = "https://api.pokemontcg.io/v2"
	defaultPageSize    = 250
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxPages    = 10
)
