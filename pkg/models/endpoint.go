// Package models holds the data types shared across the pipeline: the
// endpoint knowledge base's descriptors, the validator's entity bundle and
// classification, and the planner/orchestrator's plan and execution types.
package models

import "log/slog"

// Freshness classifies how quickly an endpoint's data changes.
type Freshness string

const (
	FreshnessStatic     Freshness = "static"
	FreshnessSeasonal   Freshness = "seasonal"
	FreshnessMatchBound Freshness = "match_bound"
	FreshnessLive       Freshness = "live"
)

// CachePolicy determines how the knowledge base computes an effective TTL
// for an endpoint's cache entries. See knowledge.CacheTTL.
type CachePolicy string

const (
	CachePolicyIndefinite          CachePolicy = "indefinite"
	CachePolicyLongTTL             CachePolicy = "long_ttl"
	CachePolicyShortTTL            CachePolicy = "short_ttl"
	CachePolicyNoCache             CachePolicy = "no_cache"
	CachePolicyMatchStatusAdaptive CachePolicy = "match_status_adaptive"
)

// Descriptor identifies one upstream API-Football endpoint: its parameter
// contract, the data sections it populates, whether it is "enriched" (a
// composite response that subsumes other endpoints), and its caching
// policy. Descriptors are immutable once constructed by the knowledge base.
type Descriptor struct {
	Name         string
	PathTemplate string

	RequiredParams []string
	OptionalParams []string

	ReturnedSections []string

	IsEnriched       bool
	EnrichedSections []string

	// CanReplace lists endpoint names this one makes redundant when chosen
	// by the planner (e.g. a composite fixture endpoint replaces the
	// separate events/lineups/statistics endpoints).
	CanReplace []string

	Freshness   Freshness
	CachePolicy CachePolicy

	// APICost is a non-negative planning heuristic, not a real billing
	// unit. Defaults to 1 when unset.
	APICost int

	// UseCases is human-written search text consulted by
	// knowledge.Base.SearchByUseCase. Not part of the spec's formal
	// invariants; purely a lookup aid.
	UseCases []string
}

// LogValue lets a Descriptor be passed directly as a slog attribute.
func (d Descriptor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", d.Name),
		slog.Bool("is_enriched", d.IsEnriched),
		slog.String("cache_policy", string(d.CachePolicy)),
	)
}
