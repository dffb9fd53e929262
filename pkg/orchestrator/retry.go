package orchestrator

import (
	"context"
	"errors"
)

// recoveryAction mirrors the teacher's pkg/mcp RecoveryAction classifier,
// narrowed to this orchestrator's two outcomes: a context error is never
// retried (the whole-plan timeout or explicit cancellation has already
// decided the call's fate), anything else is a transport/HTTP failure and
// is retried up to MaxRetries.
type recoveryAction int

const (
	retryable recoveryAction = iota
	noRetry
)

func classifyError(err error) recoveryAction {
	if err == nil {
		return noRetry
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return noRetry
	}
	return retryable
}
