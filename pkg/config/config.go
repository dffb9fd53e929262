package config

import "time"

// Config is the fully resolved, validated configuration for a Pipeline
// process: where to reach the upstream API, how to cache responses, and
// how resiliently to call out (spec.md §5's tunables).
type Config struct {
	configDir string

	APIFootball APIFootballConfig
	Cache       CacheConfig
	Breaker     BreakerConfig
	Retry       RetryConfig
	RateLimit   RateLimitConfig

	// PlanTimeout bounds a single Process() invocation's orchestrator run.
	PlanTimeout time.Duration
}

// ConfigDir returns the directory Initialize loaded lucide.yaml from, if any.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// APIFootballConfig points at the upstream API-Football REST API.
type APIFootballConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"-"` // populated from APIKeyEnv, never serialized
	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is never written to YAML.
	APIKeyEnv string        `yaml:"api_key_env,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// CacheConfig selects and tunes the cache backend (spec.md §4.2).
type CacheConfig struct {
	Backend CacheBackend `yaml:"backend,omitempty"`

	// Memory backend
	JanitorInterval time.Duration `yaml:"janitor_interval,omitempty"`

	// Redis backend
	RedisAddr     string `yaml:"redis_addr,omitempty"`
	RedisPassword string `yaml:"-"` // populated from RedisPasswordEnv
	RedisPasswordEnv string `yaml:"redis_password_env,omitempty"`
	RedisDB       int    `yaml:"redis_db,omitempty"`
}

// BreakerConfig tunes the circuit breaker shared by every endpoint call
// (spec.md §4.5).
type BreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold,omitempty" validate:"omitempty,min=1"`
	Timeout          time.Duration `yaml:"timeout,omitempty"`
}

// RetryConfig tunes the orchestrator's retry loop (spec.md §4.5 step 4).
type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries,omitempty" validate:"omitempty,min=1"`
	Delay      time.Duration `yaml:"delay,omitempty"`
}

// RateLimitConfig caps outbound call rate. PerSecond <= 0 disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second,omitempty"`
}
