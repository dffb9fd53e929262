// Command lucide runs one football-analytics question end to end: it
// validates the question, plans the upstream API calls it needs, executes
// the plan, and prints the resulting bundle as JSON. It is the closest
// thing this module has to a server main, since HTTP/chat transport is an
// external collaborator.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/henribesnard/lucide/pkg/apifootball"
	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/config"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/metrics"
	"github.com/henribesnard/lucide/pkg/models"
	"github.com/henribesnard/lucide/pkg/orchestrator"
	"github.com/henribesnard/lucide/pkg/pipeline"
	"github.com/henribesnard/lucide/pkg/planner"
	"github.com/henribesnard/lucide/pkg/validator"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	question := flag.String("question", "", "Question to ask (if empty, reads remaining args or stdin)")
	team := flag.String("team", "", "Caller-supplied team context")
	league := flag.String("league", "", "Caller-supplied league context")
	player := flag.String("player", "", "Caller-supplied player context")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("warning: could not load %s: %v", envPath, err)
	} else {
		log.Printf("loaded environment from %s", envPath)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	q := strings.TrimSpace(strings.Join(append([]string{*question}, flag.Args()...), " "))
	if q == "" {
		log.Fatal("a question is required: pass -question \"...\" or trailing arguments")
	}

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("failed to initialize configuration: %v", err)
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		log.Fatalf("failed to build pipeline: %v", err)
	}

	var callerContext *models.StructuredContext
	if *team != "" || *league != "" || *player != "" {
		callerContext = &models.StructuredContext{Team: *team, League: *league, Player: *player}
	}

	bundle, clarification, err := p.Process(ctx, q, callerContext, nil)
	if err != nil {
		log.Fatalf("pipeline error: %v", err)
	}

	var out any = bundle
	if clarification != nil {
		out = clarification
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
}

// buildPipeline wires every package's constructor together according to
// cfg, following the teacher's main()'s "load config, then construct every
// service against it" ordering.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	kb := knowledge.Get()
	m := metrics.New(prometheus.NewRegistry())

	backend, err := buildCacheBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("cache backend: %w", err)
	}
	c := cache.New(backend, kb, m)

	client := apifootball.NewHTTPClient(cfg.APIFootball.BaseURL, cfg.APIFootball.APIKey)

	orchCfg := orchestrator.Config{
		MaxRetries:      cfg.Retry.MaxRetries,
		RetryDelay:      cfg.Retry.Delay,
		BreakerFailures: cfg.Breaker.FailureThreshold,
		BreakerTimeout:  cfg.Breaker.Timeout,
		RateLimitPerSec: cfg.RateLimit.PerSecond,
	}
	orch := orchestrator.New(client, c, kb, m, orchCfg)

	v := validator.New()
	pl := planner.New(kb, c)

	pipe := pipeline.New(kb, c, v, pl, orch, m)
	pipe.PlanTimeout = cfg.PlanTimeout
	return pipe, nil
}

func buildCacheBackend(cfg *config.Config) (cache.Backend, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		return cache.NewRedisBackend(client), nil
	case config.CacheBackendMemory, "":
		return cache.NewMemoryBackend(cfg.Cache.JanitorInterval), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
