package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henribesnard/lucide/pkg/models"
)

func newTestValidator() *Validator {
	fixed := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	return &Validator{Now: func() time.Time { return fixed }}
}

func TestValidateCompleteQuestionNeedsNoClarification(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Quel est le score du match PSG contre Lyon ?", nil, nil)

	assert.True(t, result.IsComplete)
	assert.Empty(t, result.MissingInfo)
	assert.Equal(t, models.QuestionMatchLiveInfo, result.QuestionType)
	assert.Equal(t, models.LanguageFrench, result.Language)
}

func TestValidateIncompleteQuestionReturnsClarifications(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Compare two teams", nil, nil)

	require.False(t, result.IsComplete)
	assert.NotEmpty(t, result.ClarificationQuestions)
}

func TestValidateLanguageOverrideWins(t *testing.T) {
	v := newTestValidator()
	override := models.LanguageEnglish
	result := v.Validate("Quel est le score du match PSG contre Lyon ?", nil, &override)
	assert.Equal(t, models.LanguageEnglish, result.Language)
}

func TestValidateContextOverridesSatisfiesMissingSlot(t *testing.T) {
	v := newTestValidator()
	ctx := &models.StructuredContext{Team: "Arsenal"}
	result := v.Validate("What is the live score?", ctx, nil)

	require.Len(t, result.Entities.Teams, 1)
	assert.Equal(t, "arsenal", result.Entities.Teams[0].Canonical)
	assert.True(t, result.IsComplete)
}

func TestValidateContextOverrideTakesPrecedenceOverExtractedEntity(t *testing.T) {
	v := newTestValidator()
	ctx := &models.StructuredContext{Team: "Arsenal"}
	result := v.Validate("Quel est le score du match PSG contre Lyon ?", ctx, nil)

	require.Len(t, result.Entities.Teams, 1)
	assert.Equal(t, "arsenal", result.Entities.Teams[0].Canonical, "caller context must win over extracted entities")
}

func TestValidateUnknownQuestionIsIncomplete(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("hello there", nil, nil)

	assert.Equal(t, models.QuestionUnknown, result.QuestionType)
	assert.False(t, result.IsComplete)
}
