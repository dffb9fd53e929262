package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithNoConfigFileUsesDefaults(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://v3.football.api-sports.io", cfg.APIFootball.BaseURL)
	assert.Equal(t, "test-key", cfg.APIFootball.APIKey)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
}

func TestInitializeFailsValidationWhenAPIKeyEnvUnset(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeMergesYAMLOntoDefaults(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")

	dir := t.TempDir()
	yamlContent := `
cache:
  backend: redis
  redis_addr: redis.internal:6380
retry:
  max_retries: 7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucide.yaml"), []byte(yamlContent), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.RedisAddr)
	assert.Equal(t, 7, cfg.Retry.MaxRetries)
	// Unset sections keep their defaults.
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
}

func TestInitializeExpandsEnvVarsInYAML(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")
	t.Setenv("LUCIDE_TEST_REDIS_ADDR", "envhost:6379")

	dir := t.TempDir()
	yamlContent := "cache:\n  redis_addr: ${LUCIDE_TEST_REDIS_ADDR}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucide.yaml"), []byte(yamlContent), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "envhost:6379", cfg.Cache.RedisAddr)
}

func TestInitializeResolvesAPIKeyAndRedisPasswordFromEnv(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "my-api-key")
	t.Setenv("REDIS_PASSWORD", "my-redis-password")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "my-api-key", cfg.APIFootball.APIKey)
	assert.Equal(t, "my-redis-password", cfg.Cache.RedisPassword)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucide.yaml"), []byte("not: [valid yaml"), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestInitializeEmptyConfigDirSkipsFileLookup(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
}

func TestInitializePlanTimeoutOverride(t *testing.T) {
	t.Setenv("API_FOOTBALL_KEY", "test-key")

	dir := t.TempDir()
	// yaml.v3 decodes a time.Duration from a duration string such as "10s"
	// (parsed with time.ParseDuration) and rejects a plain integer.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lucide.yaml"), []byte("plan_timeout: 10s\n"), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.PlanTimeout)
}
