package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LucideYAMLConfig represents the complete lucide.yaml file structure.
// Every section is a pointer so merge.go can distinguish "absent" from
// "explicitly zero".
type LucideYAMLConfig struct {
	APIFootball *APIFootballConfig `yaml:"api_football"`
	Cache       *CacheConfig       `yaml:"cache"`
	Breaker     *BreakerConfig     `yaml:"breaker"`
	Retry       *RetryConfig       `yaml:"retry"`
	RateLimit   *RateLimitConfig   `yaml:"rate_limit"`
	PlanTimeout *time.Duration     `yaml:"plan_timeout"`
}

// Initialize loads, validates and returns ready-to-use configuration.
//
// Steps performed:
//  1. Start from DefaultConfig()
//  2. If configDir/lucide.yaml exists, load and env-expand it
//  3. Merge the YAML sections onto the defaults (unset fields keep their
//     default — mergeConfig's contract)
//  4. Resolve API-key/password environment variables
//  5. Validate
//
// Unlike the teacher's service config, a missing lucide.yaml is not an
// error: a CLI invocation with no config file at all is expected to run
// against pure defaults (only the API key env var is required).
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)

	base := DefaultConfig()
	base.configDir = configDir

	yamlCfg, err := loadYAMLFile(configDir)
	if err != nil {
		return nil, err
	}
	if yamlCfg == nil {
		log.Info("no lucide.yaml found, using built-in defaults")
		yamlCfg = &LucideYAMLConfig{}
	}

	cfg, err := mergeConfig(base, yamlCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	cfg.configDir = configDir

	resolveSecrets(cfg)

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("configuration initialized",
		"cache_backend", cfg.Cache.Backend,
		"breaker_failure_threshold", cfg.Breaker.FailureThreshold,
		"max_retries", cfg.Retry.MaxRetries)

	return cfg, nil
}

func loadYAMLFile(configDir string) (*LucideYAMLConfig, error) {
	if configDir == "" {
		return nil, nil
	}

	path := filepath.Join(configDir, "lucide.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewLoadError(path, err)
	}

	// Expand environment variables before parsing, the same way the
	// teacher's configLoader.loadYAML does (shell-style ${VAR}/$VAR).
	data = ExpandEnv(data)

	var cfg LucideYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &cfg, nil
}

// resolveSecrets reads the API key and Redis password out of the
// environment variables named by *Env fields, so they never need to live
// in lucide.yaml itself.
func resolveSecrets(cfg *Config) {
	if cfg.APIFootball.APIKeyEnv != "" {
		cfg.APIFootball.APIKey = os.Getenv(cfg.APIFootball.APIKeyEnv)
	}
	if cfg.Cache.RedisPasswordEnv != "" {
		cfg.Cache.RedisPassword = os.Getenv(cfg.Cache.RedisPasswordEnv)
	}
}
