// Package config resolves service settings from the environment.
//
// Every setting reads through viper with the BREW_ env prefix; CLI
// flags override by calling SetValue before the getters run.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BREW"

// Init binds the environment into viper. Call once at process start,
// before any getter.
func Init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// SetValue overrides a setting, typically from a CLI flag.
func SetValue(key, value string) {
	viper.Set(key, value)
}

func getString(key, defaultValue string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if !viper.IsSet(key) {
		return defaultValue
	}
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return defaultValue
}

func GetListenAddr() string {
	return getString(listenAddr, ":8000")
}

func GetDataDir() string {
	return getString(dataDir, "data")
}

// GetCacheDir returns the query-embedding cache directory. Empty means
// an in-memory cache.
func GetCacheDir() string {
	return getString(cacheDir, "")
}

func GetEmbeddingHost() string {
	return getString(embeddingHost, "")
}

func GetEmbeddingModel() string {
	return getString(embeddingModel, "")
}

func GetGenerationHost() string {
	return getString(generationHost, "")
}

func GetGenerationModel() string {
	return getString(generationModel, "")
}

func GetAPIKey() string {
	return getString(apiKey, "")
}

func GetBatchSize() int {
	return getInt(batchSize, 0)
}

func GetPoolSize() int {
	return getInt(poolSize, 0)
}

func GetReportInterval() int {
	return getInt(reportInterval, 100)
}

func GetRequestTimeout() time.Duration {
	return time.Duration(getInt(requestTimeout, 30)) * time.Second
}

func GetCacheTTL() time.Duration {
	return time.Duration(getInt(cacheTTL, 24)) * time.Hour
}

func GetLogLevel() string {
	return getString(logLevel, "info")
}
