package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henribesnard/lucide/pkg/models"
)

func TestClassifyScoresKeywordsPlusEntityBonus(t *testing.T) {
	entities := models.ExtractedEntities{Teams: []models.Entity{{Canonical: "paris_saint_germain"}}}
	class, confidence := Classify("What is the live score now?", entities)
	assert.Equal(t, models.QuestionMatchLiveInfo, class)
	assert.Greater(t, confidence, 0.0)
}

func TestClassifyFallsBackToUnknownBelowThreshold(t *testing.T) {
	class, confidence := Classify("hello there", models.ExtractedEntities{})
	assert.Equal(t, models.QuestionUnknown, class)
	assert.Less(t, confidence, unknownThreshold)
}

func TestClassifyStandingsKeywords(t *testing.T) {
	entities := models.ExtractedEntities{Leagues: []models.Entity{{Canonical: "ligue_1"}}}
	class, _ := Classify("Quel est le classement de la Ligue 1 ?", entities)
	assert.Equal(t, models.QuestionStandings, class)
}

func TestClassifyHeadToHeadKeywords(t *testing.T) {
	entities := models.ExtractedEntities{Teams: []models.Entity{
		{Canonical: "paris_saint_germain"}, {Canonical: "olympique_lyonnais"},
	}}
	class, _ := Classify("historique des confrontations entre les deux equipes", entities)
	assert.Equal(t, models.QuestionHeadToHead, class)
}

func TestClassifyScoreNeverExceedsOne(t *testing.T) {
	entities := models.ExtractedEntities{Teams: []models.Entity{{Canonical: "x"}}}
	score := classScore("score live en direct maintenant now resultat", models.QuestionMatchLiveInfo, entities)
	assert.LessOrEqual(t, score, 1.0)
}
