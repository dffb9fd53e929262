// Package validator turns a raw question, plus optional caller-supplied
// structured context, into a models.ValidationResult: detected language,
// extracted entities, question classification, and completeness
// clarifications (spec.md §4.3).
package validator

import (
	"strings"

	"github.com/henribesnard/lucide/pkg/models"
)

// frenchKeywords and englishKeywords back the language detector's keyword
// scoring. Compiled once at package init, matching the teacher's
// pkg/masking compile-once-never-per-call convention.
var frenchKeywords = []string{
	"quel", "quelle", "quels", "quelles", "est-ce", "qui", "quand", "comment",
	"pourquoi", "combien", "le", "la", "les", "des", "du", "de", "un", "une",
	"contre", "match", "classement", "score", "joueur", "equipe", "ligue",
}

var englishKeywords = []string{
	"what", "who", "when", "how", "why", "which", "the", "a", "an", "is",
	"are", "does", "do", "against", "match", "standings", "score", "player",
	"team", "league",
}

// DetectLanguage scores question against both keyword lists; the higher
// count wins, ties default to French (spec.md §4.3 step 1).
func DetectLanguage(question string) models.Language {
	lower := strings.ToLower(question)
	tokens := tokenize(lower)

	frCount := countMatches(tokens, frenchKeywords)
	enCount := countMatches(tokens, englishKeywords)

	if enCount > frCount {
		return models.LanguageEnglish
	}
	return models.LanguageFrench
}

func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'')
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func countMatches(tokens map[string]bool, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if tokens[kw] {
			n++
		}
	}
	return n
}
