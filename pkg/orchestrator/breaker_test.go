package orchestrator

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/henribesnard/lucide/pkg/models"
)

func TestBreakerStartsClosedAndAllows(t *testing.T) {
	b := NewBreaker(3, time.Minute)
	assert.Equal(t, models.BreakerClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerOpensAtFailureThreshold(t *testing.T) {
	b := NewBreaker(3, time.Minute)
	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, models.BreakerClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, models.BreakerOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreakerHalfOpensAfterTimeoutElapses(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	b.RecordFailure()
	assert.Equal(t, models.BreakerOpen, b.State())
	assert.False(t, b.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, b.Allow(), "cool-down elapsed, breaker should probe")
	assert.Equal(t, models.BreakerHalfOpen, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	a := assert.New(t)
	a.True(b.Allow())
	a.Equal(models.BreakerHalfOpen, b.State())

	b.RecordFailure()
	a.Equal(models.BreakerOpen, b.State())
}

func TestBreakerHalfOpenAdmitsExactlyOneConcurrentProbe(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)

	const n = 50
	var admitted atomic.Int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if b.Allow() {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), admitted.Load(), "exactly one concurrent call should be admitted as the HalfOpen probe")
}

func TestBreakerHalfOpenSuccessCloses(t *testing.T) {
	b := NewBreaker(1, 10*time.Millisecond)
	b.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	b.Allow()

	b.RecordSuccess()
	assert.Equal(t, models.BreakerClosed, b.State())
}
