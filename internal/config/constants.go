package config

const (
	envProvider     = "PROVIDER"
	envSets         = "TRACKED_SETS"
	envOutputDir    = "OUTPUT_DIR"
	envMaxCards     = "MAX_CARDS_PER_RUN"
	envStorePath    = "STORE_PATH"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider  = "pokemontcg"
	defaultOutputDir = "pokemon_tcg_data"
	defaultStorePath = "pokemon_tcg_data/cards.db"
	// Zero means no cap; the upstream quota is generous for read-only pulls.
	defaultMaxCards    = 0
	defaultMetricsPort = "9090"
)
