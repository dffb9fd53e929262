// Package knowledge holds the static catalog of upstream API-Football
// endpoints: their parameter contracts, returned data sections, enrichment
// and replacement relations, and caching policy. The catalog is immutable
// once built, following the teacher's GetBuiltinConfig singleton
// convention (pkg/config/builtin.go): built once behind sync.Once and
// shared read-only by every pipeline invocation.
package knowledge

import (
	"strings"
	"sync"

	"github.com/henribesnard/lucide/pkg/models"
)

// Base is the immutable endpoint knowledge base.
type Base struct {
	byName map[string]models.Descriptor
	// order preserves catalog insertion order, used as the final
	// tie-break in SearchByUseCase and by the planner's stable ordering.
	order []string
}

var (
	singleton     *Base
	singletonOnce sync.Once
)

// Get returns the process-wide singleton knowledge base, building it on
// first use.
func Get() *Base {
	singletonOnce.Do(func() {
		singleton = build()
	})
	return singleton
}

// Lookup returns the descriptor for name, or false if unknown.
func (b *Base) Lookup(name string) (models.Descriptor, bool) {
	d, ok := b.byName[name]
	return d, ok
}

// SearchByUseCase returns every descriptor whose use_cases text contains
// query as a case-insensitive substring, in catalog insertion order, with
// duplicates (there are none by construction, but the contract matters)
// removed.
func (b *Base) SearchByUseCase(query string) []models.Descriptor {
	q := strings.ToLower(query)
	seen := make(map[string]bool, len(b.order))
	var out []models.Descriptor
	for _, name := range b.order {
		if seen[name] {
			continue
		}
		d := b.byName[name]
		for _, uc := range d.UseCases {
			if strings.Contains(strings.ToLower(uc), q) {
				out = append(out, d)
				seen[name] = true
				break
			}
		}
	}
	return out
}

// Enriched returns every descriptor with IsEnriched set, in catalog order.
func (b *Base) Enriched() []models.Descriptor {
	var out []models.Descriptor
	for _, name := range b.order {
		d := b.byName[name]
		if d.IsEnriched {
			out = append(out, d)
		}
	}
	return out
}

// Names returns every endpoint name in catalog insertion order.
func (b *Base) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// finishedMatchStatuses makes CacheTTL return -1 whatever the endpoint's
// policy; liveMatchStatuses and preMatchStatuses back its
// MatchStatusAdaptive branch (spec.md §4.1's TTL table).
var finishedMatchStatuses = map[string]bool{
	"FT": true, "AET": true, "PEN": true, "CANC": true,
	"ABD": true, "AWD": true, "WO": true,
}

var liveMatchStatuses = map[string]bool{
	"LIVE": true, "1H": true, "2H": true, "HT": true,
	"ET": true, "BT": true, "P": true,
}

var preMatchStatuses = map[string]bool{
	"NS": true, "TBD": true, "PST": true, "SUSP": true, "INT": true,
}

// CacheTTL computes the effective TTL, in seconds, for an endpoint's cache
// entries, per spec.md §4.1's table. matchStatus is optional (pass "" when
// not applicable); -1 is the "store without expiry" sentinel, 0 means "do
// not cache".
func (b *Base) CacheTTL(name string, matchStatus string) int {
	d, ok := b.byName[name]
	if !ok {
		return 300
	}
	if finishedMatchStatuses[matchStatus] {
		return -1
	}
	switch d.CachePolicy {
	case models.CachePolicyNoCache:
		return 0
	case models.CachePolicyIndefinite:
		return -1
	case models.CachePolicyLongTTL:
		return 86400
	case models.CachePolicyShortTTL:
		return 600
	case models.CachePolicyMatchStatusAdaptive:
		if liveMatchStatuses[matchStatus] {
			return 30
		}
		if preMatchStatuses[matchStatus] {
			return 600
		}
		return 300
	default:
		return 300
	}
}

// build seeds the catalog. Invariants enforced by construction (never
// checked at runtime, since this is an internal compile-time-fixed table):
// every name is distinct, can_replace only references existing names, and
// every enriched descriptor's enriched_sections is a subset of its own
// returned_sections.
func build() *Base {
	descs := seedDescriptors()

	b := &Base{
		byName: make(map[string]models.Descriptor, len(descs)),
		order:  make([]string, 0, len(descs)),
	}
	for _, d := range descs {
		if d.APICost == 0 {
			d.APICost = 1
		}
		b.byName[d.Name] = d
		b.order = append(b.order, d.Name)
	}
	return b
}
