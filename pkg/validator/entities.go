package validator

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/models"
)

// knownPlayers is a small dictionary of well-known players recognized
// directly, regardless of surrounding phrasing. Not exhaustive by design
// (spec.md §1's non-goal: no fuzzy ML entity resolution) — the generic
// capitalized-bigram pattern below catches the rest.
var knownPlayers = []string{
	"Kylian Mbappe", "Mbappe", "Erling Haaland", "Haaland",
	"Lionel Messi", "Messi", "Cristiano Ronaldo", "Ronaldo",
	"Kevin De Bruyne", "De Bruyne", "Jude Bellingham", "Bellingham",
	"Vinicius Junior", "Vinicius", "Ousmane Dembele", "Dembele",
}

// playerTriggerWords precede a generic capitalized-bigram player pattern,
// per spec.md §4.3 step 2.
var playerTriggerWords = regexp.MustCompile(`(?i:joueur|player)\s+([A-Z][a-zA-Z'\-]+(?:\s+[A-Z][a-zA-Z'\-]+)?)`)

// relativeDateTokens maps relative-date words to an offset in days from
// the reference instant.
var relativeDateTokens = map[string]int{
	"aujourd'hui": 0, "today": 0,
	"demain": 1, "tomorrow": 1,
	"hier": -1, "yesterday": -1,
}

var absoluteDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4}|\d{2}-\d{2}-\d{4})\b`)

// ExtractEntities applies the regex/dictionary family from spec.md §4.3
// step 2 against question, using now as the reference instant for
// relative date tokens.
func ExtractEntities(question string, now time.Time) models.ExtractedEntities {
	lower := strings.ToLower(question)

	teams := extractTeams(lower, question)
	leagues := extractLeagues(lower, question)
	players := extractPlayers(question)
	dates := extractDates(lower, question, now)

	return models.ExtractedEntities{
		Teams:   teams,
		Players: players,
		Leagues: leagues,
		Dates:   dates,
	}
}

// positioned pairs an entity with the index of its first mention in the
// question, so matches gathered from an unordered source (a map, or several
// independent passes) can be reported back in mention order.
type positioned struct {
	entity models.Entity
	pos    int
}

// orderedByPosition sorts matches by position and deduplicates by canonical
// form, keeping the earliest mention of each (spec.md §8's "PSG vs Paris
// Saint-Germain" collapsing to one team).
func orderedByPosition(matches []positioned) []models.Entity {
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })
	out := make([]models.Entity, len(matches))
	for i, m := range matches {
		out[i] = m.entity
	}
	return dedupEntities(out)
}

func extractTeams(lower, original string) []models.Entity {
	var matches []positioned
	for alias := range knowledge.TeamAliases {
		if pos := indexOfWord(lower, alias); pos >= 0 {
			matches = append(matches, positioned{
				entity: models.Entity{
					Canonical: cache.NormalizeTeam(alias),
					Original:  findOriginalCasing(original, alias),
				},
				pos: pos,
			})
		}
	}
	return orderedByPosition(matches)
}

func extractLeagues(lower, original string) []models.Entity {
	var matches []positioned
	for alias := range knowledge.LeagueAliases {
		if pos := indexOfWord(lower, alias); pos >= 0 {
			matches = append(matches, positioned{
				entity: models.Entity{
					Canonical: cache.NormalizeLeague(alias),
					Original:  findOriginalCasing(original, alias),
				},
				pos: pos,
			})
		}
	}
	return orderedByPosition(matches)
}

func extractPlayers(original string) []models.Entity {
	lower := strings.ToLower(original)
	var matches []positioned
	for _, name := range knownPlayers {
		if pos := indexOfWord(lower, strings.ToLower(name)); pos >= 0 {
			matches = append(matches, positioned{
				entity: models.Entity{Canonical: cache.NormalizePlayer(name), Original: name},
				pos:    pos,
			})
		}
	}
	for _, m := range playerTriggerWords.FindAllStringSubmatchIndex(original, -1) {
		name := original[m[2]:m[3]]
		matches = append(matches, positioned{
			entity: models.Entity{Canonical: cache.NormalizePlayer(name), Original: name},
			pos:    m[2],
		})
	}
	return orderedByPosition(matches)
}

func extractDates(lower, original string, now time.Time) []models.Entity {
	var matches []positioned

	for token, offset := range relativeDateTokens {
		if pos := indexOfWord(lower, token); pos >= 0 {
			d := now.AddDate(0, 0, offset).Format("2006-01-02")
			matches = append(matches, positioned{entity: models.Entity{Canonical: d, Original: token}, pos: pos})
		}
	}

	for _, idx := range absoluteDatePattern.FindAllStringIndex(original, -1) {
		m := original[idx[0]:idx[1]]
		matches = append(matches, positioned{entity: models.Entity{Canonical: cache.NormalizeDate(m), Original: m}, pos: idx[0]})
	}

	return orderedByPosition(matches)
}

// indexOfWord returns the index of word's first standalone-token occurrence
// in s (case-insensitive), or -1 if word does not occur as a whole word.
func indexOfWord(s, word string) int {
	word = strings.ToLower(word)
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		idx := from + i
		before := idx == 0 || !isWordChar(rune(s[idx-1]))
		after := idx+len(word) >= len(s) || !isWordChar(rune(s[idx+len(word)]))
		if before && after {
			return idx
		}
		from = idx + 1
	}
	return -1
}

func isWordChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// findOriginalCasing returns the substring of original that case-
// insensitively matches alias, falling back to alias itself.
func findOriginalCasing(original, alias string) string {
	lower := strings.ToLower(original)
	idx := strings.Index(lower, strings.ToLower(alias))
	if idx < 0 {
		return alias
	}
	return original[idx : idx+len(alias)]
}

// dedupEntities removes duplicate canonical forms, keeping the first
// occurrence's original casing, using samber/lo for the uniqueness pass.
func dedupEntities(entities []models.Entity) []models.Entity {
	return lo.UniqBy(entities, func(e models.Entity) string { return e.Canonical })
}
