package knowledge

import "github.com/henribesnard/lucide/pkg/models"

// seedDescriptors is the built-in endpoint catalog. Path templates mirror
// the real API-Football v3 REST surface closely enough to exercise every
// planner behaviour (resolver chains, enrichment, redundancy elimination)
// without claiming byte-for-byte fidelity to the upstream API.
func seedDescriptors() []models.Descriptor {
	return []models.Descriptor{
		// --- Resolvers -------------------------------------------------
		{
			Name:             "teams/search",
			PathTemplate:     "/teams?search={name}",
			RequiredParams:   []string{"name"},
			ReturnedSections: []string{"team"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"find team id by name", "resolve club", "lookup team"},
		},
		{
			Name:             "players/search",
			PathTemplate:     "/players?search={name}",
			RequiredParams:   []string{"name"},
			ReturnedSections: []string{"player"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"find player id by name", "resolve player", "lookup player"},
		},
		{
			Name:             "leagues/search",
			PathTemplate:     "/leagues?search={name}",
			RequiredParams:   []string{"name"},
			ReturnedSections: []string{"league"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyIndefinite,
			APICost:          1,
			UseCases:         []string{"find league id by name", "resolve competition", "lookup league"},
		},
		{
			Name:             "fixtures/search",
			PathTemplate:     "/fixtures?team={team_id}&date={date}",
			RequiredParams:   []string{"team_id"},
			OptionalParams:   []string{"date", "league_id", "season"},
			ReturnedSections: []string{"fixture"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"find fixture id", "resolve match", "lookup fixture by team and date"},
		},

		// --- Core fixture data ------------------------------------------
		{
			Name:             "fixtures/by_id",
			PathTemplate:     "/fixtures?id={fixture_id}",
			RequiredParams:   []string{"fixture_id"},
			ReturnedSections: []string{"fixture", "score", "status"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyMatchStatusAdaptive,
			APICost:          1,
			UseCases:         []string{"live score", "match live info", "current score", "score du match"},
		},
		{
			Name:           "fixtures/events",
			PathTemplate:   "/fixtures/events?fixture={fixture_id}",
			RequiredParams: []string{"fixture_id"},
			ReturnedSections: []string{
				"events",
			},
			Freshness:   models.FreshnessMatchBound,
			CachePolicy: models.CachePolicyMatchStatusAdaptive,
			APICost:     1,
			UseCases:    []string{"goals", "cards", "substitutions", "match events"},
		},
		{
			Name:             "fixtures/lineups",
			PathTemplate:     "/fixtures/lineups?fixture={fixture_id}",
			RequiredParams:   []string{"fixture_id"},
			ReturnedSections: []string{"lineups"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"starting lineup", "formation", "composition d'equipe"},
		},
		{
			Name:             "fixtures/statistics",
			PathTemplate:     "/fixtures/statistics?fixture={fixture_id}",
			RequiredParams:   []string{"fixture_id"},
			ReturnedSections: []string{"statistics"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyMatchStatusAdaptive,
			APICost:          1,
			UseCases:         []string{"possession", "shots on target", "match statistics"},
		},
		{
			Name:             "fixtures/players",
			PathTemplate:     "/fixtures/players?fixture={fixture_id}",
			RequiredParams:   []string{"fixture_id"},
			ReturnedSections: []string{"players"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"player ratings", "match player stats", "performance joueur"},
		},
		{
			Name:         "fixtures/composite",
			PathTemplate: "/fixtures/composite?fixture={fixture_id}",
			RequiredParams: []string{
				"fixture_id",
			},
			ReturnedSections: []string{
				"fixture", "score", "status", "events", "lineups", "statistics", "players",
			},
			IsEnriched:       true,
			EnrichedSections: []string{"events", "lineups", "statistics", "players"},
			CanReplace: []string{
				"fixtures/events", "fixtures/lineups", "fixtures/statistics", "fixtures/players",
			},
			Freshness:   models.FreshnessMatchBound,
			CachePolicy: models.CachePolicyMatchStatusAdaptive,
			APICost:     2,
			UseCases: []string{
				"full match analysis", "analyse complete du match", "match report",
				"everything about the match", "resume complet",
			},
		},

		// --- Predictions / history ---------------------------------------
		{
			Name:             "fixtures/h2h",
			PathTemplate:     "/fixtures/headtohead?h2h={team_id_1}-{team_id_2}",
			RequiredParams:   []string{"team_id_1", "team_id_2"},
			ReturnedSections: []string{"h2h"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"head to head", "h2h", "historique des confrontations", "past meetings"},
		},
		{
			Name:             "fixtures/recent_form",
			PathTemplate:     "/fixtures?team={team_id}&last=5",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"recent_form"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"recent form", "last five matches", "forme recente"},
		},
		{
			Name:         "predictions/composite",
			PathTemplate: "/predictions?fixture={fixture_id}",
			RequiredParams: []string{
				"fixture_id",
			},
			ReturnedSections: []string{
				"predictions", "recent_form", "h2h",
			},
			IsEnriched:       true,
			EnrichedSections: []string{"recent_form", "h2h"},
			CanReplace:       []string{"fixtures/recent_form", "fixtures/h2h"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          2,
			UseCases: []string{
				"match prediction", "pronostic", "qui va gagner", "win probability", "predicted score",
			},
		},
		{
			Name:             "odds/fixture",
			PathTemplate:     "/odds?fixture={fixture_id}",
			RequiredParams:   []string{"fixture_id"},
			ReturnedSections: []string{"odds"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"betting odds", "cotes", "match odds"},
		},

		// --- Team data -----------------------------------------------------
		{
			Name:             "teams/statistics",
			PathTemplate:     "/teams/statistics?team={team_id}&league={league_id}&season={season}",
			RequiredParams:   []string{"team_id", "league_id", "season"},
			ReturnedSections: []string{"team_statistics"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"team stats", "statistiques d'equipe", "season performance"},
		},
		{
			Name:             "teams/squad",
			PathTemplate:     "/players/squads?team={team_id}",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"squad"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"squad list", "effectif", "roster"},
		},
		{
			Name:             "injuries/team",
			PathTemplate:     "/injuries?team={team_id}&season={season}",
			RequiredParams:   []string{"team_id", "season"},
			ReturnedSections: []string{"injuries"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"injuries", "blessures", "who is injured"},
		},
		{
			Name:             "trophies/team",
			PathTemplate:     "/trophies?team={team_id}",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"trophies"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyIndefinite,
			APICost:          1,
			UseCases:         []string{"trophies won", "palmares", "titles"},
		},
		{
			Name:             "venues/team",
			PathTemplate:     "/venues?team={team_id}",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"venue"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyIndefinite,
			APICost:          1,
			UseCases:         []string{"stadium", "venue", "stade"},
		},
		{
			Name:             "coachs/team",
			PathTemplate:     "/coachs?team={team_id}",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"coach"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"manager", "coach", "entraineur"},
		},
		{
			Name:             "transfers/team",
			PathTemplate:     "/transfers?team={team_id}",
			RequiredParams:   []string{"team_id"},
			ReturnedSections: []string{"transfers"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"transfers", "transferts", "signings"},
		},

		// --- Player data -----------------------------------------------------
		{
			Name:             "players/statistics",
			PathTemplate:     "/players?id={player_id}&season={season}",
			RequiredParams:   []string{"player_id", "season"},
			ReturnedSections: []string{"player_statistics"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"player stats", "statistiques joueur", "goals and assists"},
		},
		{
			Name:             "players/trophies",
			PathTemplate:     "/trophies?player={player_id}",
			RequiredParams:   []string{"player_id"},
			ReturnedSections: []string{"trophies"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyIndefinite,
			APICost:          1,
			UseCases:         []string{"player trophies", "titres du joueur"},
		},
		{
			Name:             "players/transfers",
			PathTemplate:     "/transfers?player={player_id}",
			RequiredParams:   []string{"player_id"},
			ReturnedSections: []string{"transfers"},
			Freshness:        models.FreshnessSeasonal,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"player transfer history"},
		},

		// --- League data -----------------------------------------------------
		{
			Name:             "leagues/by_id",
			PathTemplate:     "/leagues?id={league_id}",
			RequiredParams:   []string{"league_id"},
			ReturnedSections: []string{"league"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyIndefinite,
			APICost:          1,
			UseCases:         []string{"league info", "informations ligue", "competition details"},
		},
		{
			Name:             "standings/league",
			PathTemplate:     "/standings?league={league_id}&season={season}",
			RequiredParams:   []string{"league_id", "season"},
			ReturnedSections: []string{"standings"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"standings", "classement", "table", "league rank"},
		},
		{
			Name:             "topscorers/league",
			PathTemplate:     "/players/topscorers?league={league_id}&season={season}",
			RequiredParams:   []string{"league_id", "season"},
			ReturnedSections: []string{"topscorers"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"top scorers", "meilleurs buteurs", "golden boot"},
		},
		{
			Name:             "topassists/league",
			PathTemplate:     "/players/topassists?league={league_id}&season={season}",
			RequiredParams:   []string{"league_id", "season"},
			ReturnedSections: []string{"topassists"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"top assists", "meilleurs passeurs"},
		},
		{
			Name:             "fixtures/rounds",
			PathTemplate:     "/fixtures/rounds?league={league_id}&season={season}",
			RequiredParams:   []string{"league_id", "season"},
			ReturnedSections: []string{"rounds"},
			Freshness:        models.FreshnessStatic,
			CachePolicy:      models.CachePolicyLongTTL,
			APICost:          1,
			UseCases:         []string{"matchday", "journee", "fixture rounds"},
		},
		{
			Name:             "fixtures/by_league",
			PathTemplate:     "/fixtures?league={league_id}&date={date}",
			RequiredParams:   []string{"league_id"},
			OptionalParams:   []string{"date", "season"},
			ReturnedSections: []string{"fixture"},
			Freshness:        models.FreshnessMatchBound,
			CachePolicy:      models.CachePolicyShortTTL,
			APICost:          1,
			UseCases:         []string{"matches today", "matchs du jour", "league schedule", "calendrier"},
		},
	}
}
