package validator

import (
	"log/slog"
	"time"

	"github.com/spf13/cast"

	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/models"
)

// Validator converts questions into ValidationResults. Stateless aside
// from the package-level compiled patterns; safe for concurrent use.
type Validator struct {
	// Now is overridable for deterministic tests of relative-date
	// extraction ("demain"/"tomorrow"); defaults to time.Now.
	Now func() time.Time
}

// New constructs a Validator with the real clock.
func New() *Validator {
	return &Validator{Now: time.Now}
}

// Validate implements spec.md §4.3's contractual algorithm end to end. It
// never returns a Go error: any internal failure degrades to an Unknown,
// incomplete result with a generic clarification (the validator's own
// fail-safe semantics), recovered via the deferred handler below.
func (v *Validator) Validate(question string, callerContext *models.StructuredContext, languageOverride *models.Language) (result models.ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("validator panic recovered, returning generic clarification", "panic", r)
			result = genericFailureResult()
		}
	}()

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	entities := ExtractEntities(question, now())
	entities.DetectedLanguage = DetectLanguage(question)
	if languageOverride != nil {
		entities.DetectedLanguage = *languageOverride
	}

	applyContextOverride(&entities, callerContext)

	class, confidence := Classify(question, entities)
	missing := checkCompleteness(class, entities)
	clarifications := clarificationsFor(missing, entities.DetectedLanguage)

	return models.ValidationResult{
		IsComplete:             len(missing) == 0,
		MissingInfo:            missing,
		ClarificationQuestions: clarifications,
		Confidence:             confidence,
		QuestionType:           class,
		Entities:               entities,
		Language:               entities.DetectedLanguage,
	}
}

func genericFailureResult() models.ValidationResult {
	return models.ValidationResult{
		IsComplete:             false,
		MissingInfo:            []models.MissingSlot{models.SlotQuestionType},
		ClarificationQuestions: []string{clarificationTemplates[models.SlotQuestionType][models.LanguageFrench]},
		QuestionType:           models.QuestionUnknown,
		Language:               models.LanguageFrench,
	}
}

// applyContextOverride implements spec.md §4.3's "context override"
// invariant: caller-supplied structured context satisfies the
// corresponding slot and takes precedence over any extracted entity of
// the same kind. spf13/cast tolerantly coerces the loosely typed context
// fields (callers may pass strings, ints, or pre-typed identifiers).
func applyContextOverride(entities *models.ExtractedEntities, ctx *models.StructuredContext) {
	if ctx.IsEmpty() {
		return
	}

	if team := firstNonEmpty(ctx.Team, ctx.TeamID); team != "" {
		entities.Teams = []models.Entity{{Canonical: cache.NormalizeTeam(team), Original: team}}
	}
	if league := firstNonEmpty(ctx.League, ctx.LeagueID); league != "" {
		entities.Leagues = []models.Entity{{Canonical: cache.NormalizeLeague(league), Original: league}}
	}
	if player := firstNonEmpty(ctx.Player, ctx.PlayerID); player != "" {
		entities.Players = []models.Entity{{Canonical: cache.NormalizePlayer(player), Original: player}}
	}
}

// firstNonEmpty casts each candidate to string via spf13/cast and returns
// the first that casts successfully to a non-empty value.
func firstNonEmpty(candidates ...any) string {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		s, err := cast.ToStringE(c)
		if err == nil && s != "" {
			return s
		}
	}
	return ""
}
