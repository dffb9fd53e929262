// Package orchestrator executes an Execution Plan concurrently with
// resilience: level-by-level scheduling, dynamic parameter substitution,
// cache consultation, retry with backoff, a circuit breaker, and
// partial-failure tolerance (spec.md §4.5).
package orchestrator

import (
	"sync"
	"time"

	"github.com/henribesnard/lucide/pkg/models"
)

// Breaker is a hand-rolled circuit breaker (Closed/Open/HalfOpen), grounded
// on the corpus's only breaker implementation (jordigilh-kubernaut's
// CachedExecutor, itself hand-rolled with a bool + timestamp + mutex) —
// see DESIGN.md for why no library was adopted. Counters are protected by
// a mutex rather than plain atomics because state transitions must be
// linearizable with respect to Allow() queries (spec.md §5's shared-
// resource policy), which a bare atomic increment cannot guarantee without
// also serializing the threshold comparison.
type Breaker struct {
	mu sync.Mutex

	failureThreshold int
	timeout          time.Duration

	state           models.CircuitBreakerState
	failures        int
	lastFailureTime time.Time
	// probeInFlight marks that HalfOpen has already admitted its one probe
	// call; further Allow() calls are refused until RecordSuccess or
	// RecordFailure resolves it.
	probeInFlight bool
}

// NewBreaker constructs a Breaker in the Closed state.
func NewBreaker(failureThreshold int, timeout time.Duration) *Breaker {
	return &Breaker{
		failureThreshold: failureThreshold,
		timeout:          timeout,
		state:            models.BreakerClosed,
	}
}

// Allow reports whether a call may proceed, advancing Open -> HalfOpen
// when the cool-down has elapsed (spec.md §4.5's state machine). HalfOpen
// admits exactly one probe call: the first Allow() to observe HalfOpen (or
// to trigger the Open -> HalfOpen transition) claims probeInFlight and is
// let through; every concurrent or subsequent Allow() is refused until
// RecordSuccess/RecordFailure resolves the probe.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case models.BreakerClosed:
		return true
	case models.BreakerHalfOpen:
		if b.probeInFlight {
			return false
		}
		b.probeInFlight = true
		return true
	case models.BreakerOpen:
		if time.Since(b.lastFailureTime) >= b.timeout {
			b.state = models.BreakerHalfOpen
			b.probeInFlight = true
			return true
		}
		return false
	default:
		return true
	}
}

// RecordSuccess resets the breaker to Closed.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = models.BreakerClosed
	b.failures = 0
	b.probeInFlight = false
}

// RecordFailure increments the failure counter and opens the breaker once
// the threshold is reached (from Closed), or immediately re-opens it (from
// HalfOpen, whose single probe failed).
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = time.Now()

	if b.state == models.BreakerHalfOpen {
		b.state = models.BreakerOpen
		b.probeInFlight = false
		return
	}

	b.failures++
	if b.failures >= b.failureThreshold {
		b.state = models.BreakerOpen
	}
}

// State returns the current state, for metrics and tests.
func (b *Breaker) State() models.CircuitBreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
