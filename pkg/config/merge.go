package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeConfig overlays the YAML-supplied sections onto base (the built-in
// defaults), following the teacher's "start with defaults, merge user
// config on top to preserve unset defaults" convention (loader.go's
// queue-config resolution). Zero-valued user fields never clobber a
// default.
func mergeConfig(base *Config, yamlCfg *LucideYAMLConfig) (*Config, error) {
	merged := *base

	if yamlCfg.APIFootball != nil {
		if err := mergo.Merge(&merged.APIFootball, *yamlCfg.APIFootball, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge api_football: %w", err)
		}
	}
	if yamlCfg.Cache != nil {
		if err := mergo.Merge(&merged.Cache, *yamlCfg.Cache, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge cache: %w", err)
		}
	}
	if yamlCfg.Breaker != nil {
		if err := mergo.Merge(&merged.Breaker, *yamlCfg.Breaker, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge breaker: %w", err)
		}
	}
	if yamlCfg.Retry != nil {
		if err := mergo.Merge(&merged.Retry, *yamlCfg.Retry, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge retry: %w", err)
		}
	}
	if yamlCfg.RateLimit != nil {
		if err := mergo.Merge(&merged.RateLimit, *yamlCfg.RateLimit, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge rate_limit: %w", err)
		}
	}
	if yamlCfg.PlanTimeout != nil {
		merged.PlanTimeout = *yamlCfg.PlanTimeout
	}

	return &merged, nil
}
