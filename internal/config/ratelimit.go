package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to booking
// mutations. Limit requests per Window per client IP; operators booking
// seats during a live event should never hit sane defaults.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig. Defaults allow 30 mutations per minute per IP.
func LoadRateLimitConfig() RateLimitConfig {
	window, err := time.ParseDuration(getenv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil || window <= 0 {
		window = time.Minute
	}
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_LIMIT", 30),
		Window:  window,
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	return cfg
}
