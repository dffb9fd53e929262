package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henribesnard/lucide/pkg/models"
)

func TestGetReturnsSameInstance(t *testing.T) {
	a := Get()
	b := Get()
	assert.Same(t, a, b, "Get should return the process-wide singleton")
}

func TestLookupKnownAndUnknownEndpoint(t *testing.T) {
	kb := Get()

	d, ok := kb.Lookup("fixtures/by_id")
	require.True(t, ok)
	assert.Equal(t, "fixtures/by_id", d.Name)

	_, ok = kb.Lookup("does/not/exist")
	assert.False(t, ok)
}

func TestCatalogInvariants(t *testing.T) {
	kb := Get()
	names := kb.Names()
	require.NotEmpty(t, names)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate endpoint name %q", name)
		seen[name] = true

		d, ok := kb.Lookup(name)
		require.True(t, ok)

		for _, replaced := range d.CanReplace {
			_, ok := kb.Lookup(replaced)
			assert.True(t, ok, "%q.CanReplace references unknown endpoint %q", name, replaced)
		}

		if d.IsEnriched {
			returned := make(map[string]bool, len(d.ReturnedSections))
			for _, s := range d.ReturnedSections {
				returned[s] = true
			}
			for _, s := range d.EnrichedSections {
				assert.True(t, returned[s], "%q.EnrichedSections has %q not in ReturnedSections", name, s)
			}
		}

		assert.GreaterOrEqual(t, d.APICost, 1, "%q should default APICost to at least 1", name)
	}
}

func TestEnrichedReturnsOnlyEnrichedDescriptors(t *testing.T) {
	kb := Get()
	for _, d := range kb.Enriched() {
		assert.True(t, d.IsEnriched)
	}
	_, ok := kb.Lookup("fixtures/composite")
	require.True(t, ok)
}

func TestSearchByUseCaseIsCaseInsensitiveAndDeduped(t *testing.T) {
	kb := Get()
	lower := kb.SearchByUseCase("score")
	upper := kb.SearchByUseCase("SCORE")
	assert.Equal(t, len(lower), len(upper))

	seen := make(map[string]bool)
	for _, d := range lower {
		assert.False(t, seen[d.Name], "duplicate %q in SearchByUseCase result", d.Name)
		seen[d.Name] = true
	}
}

func TestCacheTTLFinishedMatchIsIndefinite(t *testing.T) {
	kb := Get()
	assert.Equal(t, -1, kb.CacheTTL("fixtures/by_id", "FT"))
	assert.Equal(t, -1, kb.CacheTTL("fixtures/events", "AET"))
}

func TestCacheTTLMatchStatusAdaptive(t *testing.T) {
	kb := Get()
	var adaptive string
	for _, name := range kb.Names() {
		d, _ := kb.Lookup(name)
		if d.CachePolicy == models.CachePolicyMatchStatusAdaptive {
			adaptive = name
			break
		}
	}
	require.NotEmpty(t, adaptive, "catalog should contain a match_status_adaptive endpoint")

	assert.Equal(t, 30, kb.CacheTTL(adaptive, "LIVE"))
	assert.Equal(t, 600, kb.CacheTTL(adaptive, "NS"))
	assert.Equal(t, 300, kb.CacheTTL(adaptive, ""))
}

func TestCacheTTLUnknownEndpointDefaults(t *testing.T) {
	kb := Get()
	assert.Equal(t, 300, kb.CacheTTL("not/a/real/endpoint", ""))
}
