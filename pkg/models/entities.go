package models

// Language is the detected or overridden question language.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Entity pairs a canonical (normalized) form with the text as originally
// matched in the question, per spec.md §3's invariant that both forms are
// retained.
type Entity struct {
	Canonical string
	Original  string
}

// ExtractedEntities is the validator's output: every team, player, league
// and date reference found in a question (or supplied via caller context).
type ExtractedEntities struct {
	Teams   []Entity
	Players []Entity
	Leagues []Entity
	// Dates holds normalized ISO YYYY-MM-DD strings; Entity.Original keeps
	// the text as it appeared in the question (or the relative token, e.g.
	// "demain").
	Dates []Entity

	DetectedLanguage Language
}

// QuestionType is the closed classification set from spec.md §3.
type QuestionType string

const (
	QuestionMatchLiveInfo   QuestionType = "MatchLiveInfo"
	QuestionMatchPrediction QuestionType = "MatchPrediction"
	QuestionTeamComparison  QuestionType = "TeamComparison"
	QuestionTeamStats       QuestionType = "TeamStats"
	QuestionPlayerInfo      QuestionType = "PlayerInfo"
	QuestionLeagueInfo      QuestionType = "LeagueInfo"
	QuestionHeadToHead      QuestionType = "HeadToHead"
	QuestionStandings       QuestionType = "Standings"
	QuestionUnknown         QuestionType = "Unknown"
)

// AllQuestionTypes enumerates the closed set, in the order classification
// scores are computed — stable iteration keeps tie-breaking deterministic.
var AllQuestionTypes = []QuestionType{
	QuestionMatchLiveInfo,
	QuestionMatchPrediction,
	QuestionTeamComparison,
	QuestionTeamStats,
	QuestionPlayerInfo,
	QuestionStandings,
	QuestionLeagueInfo,
	QuestionHeadToHead,
}

// MissingSlot names a piece of information the validator could not fill
// from the question or caller context.
type MissingSlot string

const (
	SlotTeams        MissingSlot = "teams"
	SlotSecondTeam   MissingSlot = "second_team"
	SlotPlayers      MissingSlot = "players"
	SlotLeagues      MissingSlot = "leagues"
	SlotDates        MissingSlot = "dates"
	SlotQuestionType MissingSlot = "question_type"
)

// ValidationResult is the Question Validator's output (spec.md §3/§4.3).
type ValidationResult struct {
	IsComplete             bool
	MissingInfo            []MissingSlot
	ClarificationQuestions []string

	Confidence   float64
	QuestionType QuestionType
	Entities     ExtractedEntities
	Language     Language
}

// StructuredContext is the caller-supplied pinned context (spec.md §6):
// any subset of zone/league/team/player/fixture identifiers plus a season.
// Values are loosely typed (any) because callers may pass strings, ints, or
// already-typed identifiers; pkg/validator uses spf13/cast to coerce them.
type StructuredContext struct {
	Zone      any
	League    any
	LeagueID  any
	Team      any
	TeamID    any
	Player    any
	PlayerID  any
	Fixture   any
	FixtureID any
	Season    any
}

// IsEmpty reports whether no field of the structured context was set.
func (c *StructuredContext) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Zone == nil && c.League == nil && c.LeagueID == nil &&
		c.Team == nil && c.TeamID == nil && c.Player == nil &&
		c.PlayerID == nil && c.Fixture == nil && c.FixtureID == nil &&
		c.Season == nil
}
