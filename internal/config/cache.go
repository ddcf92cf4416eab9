package config

import "time"

// CacheConfig controls the per-night reserved-seat cache. Entries are keyed
// by night id and invalidated whenever a booking for that night is created
// or cancelled, so the TTL only bounds staleness after a missed
// invalidation (e.g. Redis restarted between write and invalidate).
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	ttl, err := time.ParseDuration(getenv("CACHE_TTL", "30s"))
	if err != nil || ttl <= 0 {
		ttl = 30 * time.Second
	}
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     ttl,
		Prefix:  getenv("CACHE_PREFIX", "night"),
	}
}
