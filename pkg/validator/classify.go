package validator

import (
	"strings"

	"github.com/henribesnard/lucide/pkg/models"
)

// classKeywords backs the per-class keyword scoring of spec.md §4.3 step 3.
var classKeywords = map[models.QuestionType][]string{
	models.QuestionMatchLiveInfo: {
		"score", "live", "en direct", "maintenant", "now", "resultat",
	},
	models.QuestionMatchPrediction: {
		"pronostic", "prediction", "qui va gagner", "who will win", "cote", "odds",
	},
	models.QuestionTeamComparison: {
		"compare", "comparer", "versus", "vs", "face a face",
	},
	models.QuestionTeamStats: {
		"statistiques", "stats", "statistics", "performance", "forme", "form",
	},
	models.QuestionPlayerInfo: {
		"joueur", "player", "buteur", "scorer", "passes", "assists",
	},
	models.QuestionLeagueInfo: {
		"ligue", "league", "competition", "championnat",
	},
	models.QuestionHeadToHead: {
		"h2h", "head to head", "confrontations", "historique", "past meetings",
	},
	models.QuestionStandings: {
		"classement", "standings", "table", "rang", "rank",
	},
}

// classRequiredEntity is the entity type whose presence earns a class its
// +0.2 bonus in spec.md §4.3 step 3.
type entityKind int

const (
	entityNone entityKind = iota
	entityTeams
	entityPlayers
	entityLeagues
)

var classRequiredEntity = map[models.QuestionType]entityKind{
	models.QuestionMatchLiveInfo:   entityTeams,
	models.QuestionMatchPrediction: entityTeams,
	models.QuestionTeamComparison:  entityTeams,
	models.QuestionTeamStats:       entityTeams,
	models.QuestionPlayerInfo:      entityPlayers,
	models.QuestionLeagueInfo:      entityLeagues,
	models.QuestionHeadToHead:      entityTeams,
	models.QuestionStandings:       entityLeagues,
}

const unknownThreshold = 0.15

// Classify scores question against every class in the closed set and
// returns the highest-scoring one with its confidence, or QuestionUnknown
// if the best score is below unknownThreshold (spec.md §4.3 step 3).
func Classify(question string, entities models.ExtractedEntities) (models.QuestionType, float64) {
	lower := strings.ToLower(question)

	var best models.QuestionType = models.QuestionUnknown
	bestScore := 0.0

	for _, class := range models.AllQuestionTypes {
		score := classScore(lower, class, entities)
		if score > bestScore {
			bestScore = score
			best = class
		}
	}

	if bestScore < unknownThreshold {
		return models.QuestionUnknown, bestScore
	}
	return best, bestScore
}

func classScore(lowerQuestion string, class models.QuestionType, entities models.ExtractedEntities) float64 {
	matches := 0
	for _, kw := range classKeywords[class] {
		if strings.Contains(lowerQuestion, kw) {
			matches++
		}
	}
	score := float64(matches) / 3.0
	if score > 1.0 {
		score = 1.0
	}

	if hasRequiredEntity(classRequiredEntity[class], entities) {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func hasRequiredEntity(kind entityKind, entities models.ExtractedEntities) bool {
	switch kind {
	case entityTeams:
		return len(entities.Teams) > 0
	case entityPlayers:
		return len(entities.Players) > 0
	case entityLeagues:
		return len(entities.Leagues) > 0
	default:
		return false
	}
}
