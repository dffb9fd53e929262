package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/henribesnard/lucide/pkg/apifootball"
	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/metrics"
	"github.com/henribesnard/lucide/pkg/models"
)

// Config tunes the orchestrator's resilience parameters, defaults matching
// spec.md §4.5.
type Config struct {
	MaxRetries      int
	RetryDelay      time.Duration
	BreakerFailures int
	BreakerTimeout  time.Duration
	RateLimitPerSec float64
}

// DefaultConfig returns the spec's stated defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		RetryDelay:      time.Second,
		BreakerFailures: 5,
		BreakerTimeout:  60 * time.Second,
		RateLimitPerSec: 0, // 0 disables limiting
	}
}

// Orchestrator executes Execution Plans level by level, the way the
// teacher's pkg/agent/orchestrator/runner.go dispatches a chain's steps in
// parallel under a shared-state barrier — adapted here to
// golang.org/x/sync/errgroup, since our "barrier" is synchronous (drain
// the level, then proceed) rather than long-lived goroutines.
type Orchestrator struct {
	Client  apifootball.Client
	Cache   *cache.Cache
	KB      *knowledge.Base
	Metrics *metrics.Metrics
	Breaker *Breaker
	Config  Config

	limiter *rate.Limiter
}

// New constructs an Orchestrator. Pass a nil *cache.Cache only in tests
// that don't exercise caching.
func New(client apifootball.Client, c *cache.Cache, kb *knowledge.Base, m *metrics.Metrics, cfg Config) *Orchestrator {
	o := &Orchestrator{
		Client:  client,
		Cache:   c,
		KB:      kb,
		Metrics: m,
		Breaker: NewBreaker(cfg.BreakerFailures, cfg.BreakerTimeout),
		Config:  cfg,
	}
	if cfg.RateLimitPerSec > 0 {
		o.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), 1)
	}
	return o
}

// Execute runs plan to completion, honoring ctx for whole-plan
// cancellation (spec.md §5's "Cancellation & timeouts"). It never returns
// a Go error for per-call failures — those are aggregated into the
// returned ExecutionResult.Errors, per spec.md §4.5's partial-failure
// tolerance.
func (o *Orchestrator) Execute(ctx context.Context, plan *models.ExecutionPlan) *models.ExecutionResult {
	result := &models.ExecutionResult{
		CollectedData: make(map[string]any),
		StartedAt:     time.Now(),
	}

	for _, pre := range plan.PreSatisfied {
		result.CollectedData[pre.EndpointName] = pre.Data
		result.TotalCacheHits++
	}

	levels, err := plan.Levels()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("planning: %v", err))
		result.FinishedAt = time.Now()
		return result
	}

	collectedRaw := make(map[string][]byte)
	var mu sync.Mutex

	for _, level := range levels {
		select {
		case <-ctx.Done():
			for _, call := range level {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", call.CallID, ctx.Err()))
			}
			continue
		default:
		}

		g, gCtx := errgroup.WithContext(ctx)
		levelResults := make([]models.CallResult, len(level))

		for i, call := range level {
			i, call := i, call
			g.Go(func() error {
				res, raw := o.dispatch(gCtx, call, collectedRaw, &mu)
				levelResults[i] = res
				if raw != nil {
					mu.Lock()
					collectedRaw[call.CallID] = raw
					collectedRaw[call.EndpointName] = raw
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait() // dispatch never returns an error; per-call failures live in CallResult

		for _, res := range levelResults {
			result.CallResults = append(result.CallResults, res)
			result.TotalExecutionMS += res.ExecutionMS
			if res.FromCache {
				result.TotalCacheHits++
			} else if res.Success {
				result.TotalAPICalls++
			}
			if res.Success {
				result.CollectedData[res.CallID] = res.Data
				result.CollectedData[res.EndpointName] = res.Data
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %s", res.CallID, res.EndpointName, res.Error))
			}
		}
	}

	result.FinishedAt = time.Now()
	return result
}

// dispatch runs the per-call procedure of spec.md §4.5: breaker check,
// parameter substitution, cache lookup, retry loop, breaker/cache update.
// raw is the upstream JSON response (on a cache hit, the cached value
// re-marshalled to JSON), used by later calls' substitution and discarded
// by the caller otherwise; it is nil when the call fails or when it joined
// another dispatch's in-flight fetch.
func (o *Orchestrator) dispatch(ctx context.Context, call models.EndpointCall, collectedRaw map[string][]byte, mu *sync.Mutex) (models.CallResult, []byte) {
	start := time.Now()

	if !o.Breaker.Allow() {
		o.recordBreakerState()
		o.Metrics.APICallsTotal.WithLabelValues(call.EndpointName, "breaker_open").Inc()
		return models.CallResult{
			CallID: call.CallID, EndpointName: call.EndpointName,
			Success: false, Error: "circuit breaker open",
			ExecutionMS: time.Since(start).Milliseconds(),
		}, nil
	}

	mu.Lock()
	resolvedParams := substituteParams(call.Params, collectedRaw)
	mu.Unlock()

	// rawOut captures the upstream bytes a cache hit never produces but
	// later calls' substitution needs; fetch (run at most once per key,
	// even across concurrent dispatches, via Cache.GetOrFetch's
	// singleflight) stashes them here as a side channel. A call that joins
	// an in-flight fetch rather than winning it never runs this closure, so
	// rawOut stays nil for it even on success.
	var rawOut []byte

	fetch := func(ctx context.Context) (any, string, error) {
		raw, err := o.callWithRetry(ctx, call.EndpointName, resolvedParams)
		o.Metrics.APICallDuration.WithLabelValues(call.EndpointName).Observe(time.Since(start).Seconds())
		if err != nil {
			return nil, "", err
		}
		var value any
		_ = json.Unmarshal(raw, &value)
		rawOut = raw
		matchStatus := gjson.GetBytes(raw, "response.0.fixture.status.short").String()
		return value, matchStatus, nil
	}

	var value any
	var fromCache bool
	var err error
	if o.Cache != nil {
		value, fromCache, err = o.Cache.GetOrFetch(ctx, call.EndpointName, resolvedParams, fetch)
	} else {
		value, _, err = fetch(ctx)
	}

	if err != nil {
		o.Breaker.RecordFailure()
		o.recordBreakerState()
		o.Metrics.APICallsTotal.WithLabelValues(call.EndpointName, "failure").Inc()
		return models.CallResult{
			CallID: call.CallID, EndpointName: call.EndpointName,
			Success: false, Error: err.Error(),
			ExecutionMS: time.Since(start).Milliseconds(),
		}, nil
	}

	if fromCache {
		raw, _ := json.Marshal(value)
		return models.CallResult{
			CallID: call.CallID, EndpointName: call.EndpointName,
			Success: true, Data: value, FromCache: true,
			ExecutionMS: time.Since(start).Milliseconds(),
		}, raw
	}

	o.Breaker.RecordSuccess()
	o.recordBreakerState()
	o.Metrics.APICallsTotal.WithLabelValues(call.EndpointName, "success").Inc()

	return models.CallResult{
		CallID: call.CallID, EndpointName: call.EndpointName,
		Success: true, Data: value, FromCache: false,
		ExecutionMS: time.Since(start).Milliseconds(),
	}, rawOut
}

// callWithRetry implements spec.md §4.5 step 4: up to MaxRetries attempts,
// sleeping retry_delay * attempt_index between them (attempt 1 fires
// immediately). Context errors are never retried (classifyError).
func (o *Orchestrator) callWithRetry(ctx context.Context, endpointName string, params map[string]string) ([]byte, error) {
	var lastErr error
	attempts := o.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			o.Metrics.RetryTotal.WithLabelValues(endpointName).Inc()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(o.Config.RetryDelay * time.Duration(attempt)):
			}
		}

		if o.limiter != nil {
			if err := o.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		raw, err := o.Client.Call(ctx, endpointName, params)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if classifyError(err) == noRetry {
			break
		}
	}

	return nil, fmt.Errorf("failed after %d retries: %w", attempts, lastErr)
}

// LogState logs the breaker's current state, for use at pipeline boundaries.
func (o *Orchestrator) LogState() {
	slog.Debug("breaker state", "state", o.Breaker.State())
}

var allBreakerStates = []models.CircuitBreakerState{
	models.BreakerClosed, models.BreakerOpen, models.BreakerHalfOpen,
}

// recordBreakerState publishes a 1/0 gauge per known state name, so a
// breaker-state-change counter/gauge dashboard shows the current state
// without needing a state-transition counter metric type.
func (o *Orchestrator) recordBreakerState() {
	current := o.Breaker.State()
	for _, s := range allBreakerStates {
		v := 0.0
		if s == current {
			v = 1.0
		}
		o.Metrics.BreakerState.WithLabelValues(string(s)).Set(v)
	}
}
