package models

import (
	"log/slog"
	"time"
)

// CallResult is the outcome of dispatching one Endpoint Call.
type CallResult struct {
	CallID       string
	EndpointName string
	Success      bool
	Data         any
	Error        string
	FromCache    bool
	ExecutionMS  int64
}

// LogValue renders a CallResult compactly for structured logging.
func (r CallResult) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("call_id", r.CallID),
		slog.String("endpoint", r.EndpointName),
		slog.Bool("success", r.Success),
		slog.Bool("from_cache", r.FromCache),
		slog.Int64("execution_ms", r.ExecutionMS),
	}
	if r.Error != "" {
		attrs = append(attrs, slog.String("error", r.Error))
	}
	return slog.GroupValue(attrs...)
}

// ExecutionResult is the orchestrator's output: every call's outcome plus
// the aggregated evidence bundle handed to the caller (spec.md §4.5's
// "Output" paragraph).
type ExecutionResult struct {
	CallResults []CallResult

	// CollectedData is keyed by both call_id and endpoint_name so callers
	// can look data up either way. When a plan issues the same endpoint
	// more than once (e.g. two different team_id values against
	// "teams/statistics"), every call_id key is retained but the
	// endpoint_name key holds the data of the successful call that comes
	// last in plan order (a later level, or a later position within the
	// same level), whatever order the calls completed in. See DESIGN.md
	// Open Question 2.
	CollectedData map[string]any

	TotalAPICalls    int
	TotalCacheHits   int
	TotalExecutionMS int64
	Errors           []string
	StartedAt        time.Time
	FinishedAt       time.Time
}

// Success reports whether every call in the plan completed without error.
// A partially failed plan (spec.md §4.5's partial-failure tolerance) still
// returns collected data for the calls that did succeed; Success is false
// only as an aggregate signal, never a reason to discard that data.
func (r *ExecutionResult) Success() bool {
	return len(r.Errors) == 0
}

// Duration is FinishedAt - StartedAt, matching TotalExecutionMS when the
// orchestrator's level barriers ran back-to-back with no outside delay.
func (r *ExecutionResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// CacheEntry is cache metadata surfaced to callers/tests that want to
// inspect what is currently stored, independent of the Backend used.
type CacheEntry struct {
	Key       string
	Value     any
	StoredAt  time.Time
	ExpiresAt time.Time // zero value means "never expires" (CachePolicyIndefinite)
}

// Expired reports whether the entry's TTL has elapsed as of now.
func (e CacheEntry) Expired(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return now.After(e.ExpiresAt)
}

// CircuitBreakerState is the hand-rolled breaker's state machine
// (spec.md §4.5's resilience requirements; see DESIGN.md for why this is
// hand-rolled rather than library-based).
type CircuitBreakerState string

const (
	BreakerClosed   CircuitBreakerState = "closed"
	BreakerOpen     CircuitBreakerState = "open"
	BreakerHalfOpen CircuitBreakerState = "half_open"
)
