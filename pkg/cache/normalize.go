package cache

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/henribesnard/lucide/pkg/knowledge"
)

// stripAccents folds combining diacritics out of s via NFD decomposition,
// e.g. "É" -> "e". Grounded on golang.org/x/text/unicode/norm, the
// idiomatic Go replacement for a full ICU dependency.
func stripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) { // combining mark
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// punctuationToUnderscore lower-cases s, strips accents, and reduces any
// run of non-alphanumeric characters to a single underscore.
func punctuationToUnderscore(s string) string {
	folded := stripAccents(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(folded))
	lastUnderscore := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	return out
}

// NormalizeTeam folds a team name to its canonical alias-table key, or to
// the generic normalizer if the name is not in knowledge.TeamAliases.
func NormalizeTeam(name string) string {
	key := strings.ToLower(strings.TrimSpace(stripAccents(name)))
	if canonical, ok := knowledge.TeamAliases[key]; ok {
		return canonical
	}
	return punctuationToUnderscore(name)
}

// NormalizeLeague folds a league name/abbreviation to its canonical
// alias-table key, or to the generic normalizer otherwise.
func NormalizeLeague(name string) string {
	key := strings.ToLower(strings.TrimSpace(stripAccents(name)))
	if canonical, ok := knowledge.LeagueAliases[key]; ok {
		return canonical
	}
	return punctuationToUnderscore(name)
}

// NormalizePlayer folds a player name: accent-stripped, lower-cased, spaces
// to underscores.
func NormalizePlayer(name string) string {
	return punctuationToUnderscore(name)
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01-02-2006",
	"2006/01/02",
	"02-01-2006",
}

// NormalizeDate accepts any of the formats listed in spec.md §4.2 rule 4
// and always renders YYYY-MM-DD. Unparseable input is returned unchanged
// (the caller's normalizer still produces a stable, if opaque, key).
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// H2HPairKey sorts two already-normalized team tokens so that "psg-lyon"
// and "lyon-psg" collide, per spec.md §4.2 rule 5.
func H2HPairKey(teamA, teamB string) string {
	a, b := NormalizeTeam(teamA), NormalizeTeam(teamB)
	if a > b {
		a, b = b, a
	}
	return a + "-" + b
}

// h2hParamNames are the parameter name pairs the normalizer recognizes as
// an H2H team pair, tried in order.
var h2hParamNames = [][2]string{
	{"team_id_1", "team_id_2"},
	{"team1", "team2"},
	{"h2h_team_a", "h2h_team_b"},
}

// NormalizeParams applies every rule from spec.md §4.2 to a raw parameter
// map and returns the canonical key-sorted "k=v&k=v" serialization used
// inside the cache key.
func NormalizeParams(endpointName string, params map[string]string) string {
	normalized := make(map[string]string, len(params))
	for k, v := range params {
		if v == "" { // rule 1: drop null/absent values
			continue
		}
		normalized[k] = v
	}

	// rule 5: H2H pair ordering, tried before generic per-field normalization
	for _, pair := range h2hParamNames {
		a, aok := normalized[pair[0]]
		b, bok := normalized[pair[1]]
		if aok && bok {
			delete(normalized, pair[0])
			delete(normalized, pair[1])
			normalized["h2h_pair"] = H2HPairKey(a, b)
		}
	}

	for k, v := range normalized {
		switch {
		case strings.Contains(k, "team") && k != "h2h_pair":
			normalized[k] = NormalizeTeam(v)
		case strings.Contains(k, "league"):
			normalized[k] = NormalizeLeague(v)
		case strings.Contains(k, "player"):
			normalized[k] = NormalizePlayer(v)
		case strings.Contains(k, "date"):
			normalized[k] = NormalizeDate(v)
		}
	}

	keys := make([]string, 0, len(normalized))
	for k := range normalized {
		keys = append(keys, k)
	}
	sort.Strings(keys) // rule 6: key-sorted order

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, normalized[k]))
	}
	return strings.Join(parts, "&")
}

// Key builds the final cache key shape: lucide:cache:{endpoint_name}:{kv}.
func Key(endpointName string, params map[string]string) string {
	return fmt.Sprintf("lucide:cache:%s:%s", endpointName, NormalizeParams(endpointName, params))
}
