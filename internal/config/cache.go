package config

import (
	"os"
	"strconv"
	"time"
)

// HistoryCacheConfig controls the Redis cache of per-user history payloads.
// When Enabled is false or no Redis client is available the cache is a
// pass-through. TTL bounds staleness for readers that bypass invalidation
// (e.g. a second instance writing through a different Redis).
type HistoryCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadHistoryCacheConfig builds a HistoryCacheConfig from the environment,
// falling back to defaults when variables are unset.
func LoadHistoryCacheConfig() HistoryCacheConfig {
	return HistoryCacheConfig{
		Enabled: getenv("HISTORY_CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("HISTORY_CACHE_TTL", "60s")),
		Prefix:  getenv("HISTORY_CACHE_PREFIX", "history"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
