package validator

import "github.com/henribesnard/lucide/pkg/models"

// requiredSlots is the per-class completeness table from spec.md §4.3
// step 4.
var requiredSlots = map[models.QuestionType][]models.MissingSlot{
	models.QuestionMatchLiveInfo:   {models.SlotTeams},
	models.QuestionMatchPrediction: {models.SlotTeams},
	models.QuestionTeamComparison:  {models.SlotTeams, models.SlotSecondTeam},
	models.QuestionTeamStats:       {models.SlotTeams},
	models.QuestionPlayerInfo:      {models.SlotPlayers},
	models.QuestionLeagueInfo:      {models.SlotLeagues},
	models.QuestionHeadToHead:      {models.SlotTeams, models.SlotSecondTeam},
	models.QuestionStandings:       {models.SlotLeagues},
	models.QuestionUnknown:         {models.SlotQuestionType},
}

// clarificationTemplates holds one FR/EN string per missing slot.
var clarificationTemplates = map[models.MissingSlot]map[models.Language]string{
	models.SlotTeams: {
		models.LanguageFrench:  "De quelle(s) equipe(s) parlez-vous ?",
		models.LanguageEnglish: "Which team(s) are you asking about?",
	},
	models.SlotSecondTeam: {
		models.LanguageFrench:  "Quelle est la deuxieme equipe a comparer ?",
		models.LanguageEnglish: "What is the second team to compare?",
	},
	models.SlotPlayers: {
		models.LanguageFrench:  "De quel joueur parlez-vous ?",
		models.LanguageEnglish: "Which player are you asking about?",
	},
	models.SlotDates: {
		models.LanguageFrench:  "Pour quelle date souhaitez-vous cette information ?",
		models.LanguageEnglish: "For which date would you like this information?",
	},
	models.SlotLeagues: {
		models.LanguageFrench:  "Quelle ligue ou competition vous interesse ?",
		models.LanguageEnglish: "Which league or competition are you interested in?",
	},
	models.SlotQuestionType: {
		models.LanguageFrench:  "Pouvez-vous reformuler votre question ?",
		models.LanguageEnglish: "Could you rephrase your question?",
	},
}

// checkCompleteness evaluates the class's required slots against the
// entity bundle (already merged with caller context per the override
// rule) and returns the missing ones, in table order.
func checkCompleteness(class models.QuestionType, entities models.ExtractedEntities) []models.MissingSlot {
	var missing []models.MissingSlot
	for _, slot := range requiredSlots[class] {
		if slotSatisfied(slot, entities) {
			continue
		}
		missing = append(missing, slot)
	}
	return missing
}

func slotSatisfied(slot models.MissingSlot, entities models.ExtractedEntities) bool {
	switch slot {
	case models.SlotTeams:
		return len(entities.Teams) >= 1
	case models.SlotSecondTeam:
		return len(entities.Teams) >= 2
	case models.SlotPlayers:
		return len(entities.Players) >= 1
	case models.SlotLeagues:
		return len(entities.Leagues) >= 1
	case models.SlotDates:
		return len(entities.Dates) >= 1
	case models.SlotQuestionType:
		return false // QuestionUnknown is, by definition, never satisfied
	default:
		return false
	}
}

// clarificationsFor renders one localized clarification string per missing
// slot, in the fixed table order (spec.md §4.3 step 5).
func clarificationsFor(missing []models.MissingSlot, lang models.Language) []string {
	out := make([]string, 0, len(missing))
	for _, slot := range missing {
		out = append(out, clarificationTemplates[slot][lang])
	}
	return out
}
