package config

// Configuration keys. Each key resolves from the environment with the
// BREW_ prefix (dots and dashes become underscores), e.g. embedding-host
// reads BREW_EMBEDDING_HOST.
const (
	listenAddr      = "listen-addr"
	dataDir         = "data-dir"
	cacheDir        = "cache-dir"
	embeddingHost   = "embedding-host"
	embeddingModel  = "embedding-model"
	generationHost  = "generation-host"
	generationModel = "generation-model"
	apiKey          = "api-key"
	batchSize       = "batch-size"
	poolSize        = "pool-size"
	reportInterval  = "report-interval"
	requestTimeout  = "request-timeout-seconds"
	cacheTTL        = "cache-ttl-hours"
	logLevel        = "log-level"
)
