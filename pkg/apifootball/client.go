// Package apifootball defines the opaque upstream football data API
// contract the orchestrator depends on, plus a default net/http-based
// adapter. The concrete HTTP client is explicitly out of scope per
// spec.md §1 ("the concrete HTTP client talking to the external API");
// Client is the seam the embedder may replace with its own
// transport/auth/retry wrapper.
package apifootball

import "context"

// Client issues one call against an upstream endpoint and returns its
// opaque structured response (typically a JSON document with a top-level
// "response" array, per spec.md §6). Transport errors, non-2xx responses
// and schema errors are all surfaced as a plain error; the orchestrator
// does not distinguish among them beyond counting toward retries and the
// circuit breaker.
type Client interface {
	Call(ctx context.Context, endpointName string, params map[string]string) ([]byte, error)
}
