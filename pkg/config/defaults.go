package config

import "time"

// DefaultConfig returns the built-in configuration applied before any
// lucide.yaml is merged on top (spec.md §5's stated defaults: 3 retries,
// 1s backoff, 5-failure/60s breaker, rate limiting disabled).
func DefaultConfig() *Config {
	return &Config{
		APIFootball: APIFootballConfig{
			BaseURL:   "https://v3.football.api-sports.io",
			APIKeyEnv: "API_FOOTBALL_KEY",
			Timeout:   10 * time.Second,
		},
		Cache: CacheConfig{
			Backend:         CacheBackendMemory,
			JanitorInterval: time.Minute,
			RedisAddr:       "localhost:6379",
			RedisPasswordEnv: "REDIS_PASSWORD",
			RedisDB:         0,
		},
		Breaker: BreakerConfig{
			FailureThreshold: 5,
			Timeout:          60 * time.Second,
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			Delay:      time.Second,
		},
		RateLimit: RateLimitConfig{
			PerSecond: 0,
		},
		PlanTimeout: 30 * time.Second,
	}
}
