package knowledge

// TeamAliases maps a lower-cased, accent-stripped variant of a club name to
// its canonical form. Shared by pkg/cache's key normalizer and pkg/validator's
// entity extraction so both agree on what "PSG" canonicalizes to.
//
// The table covers the big five European leagues plus continental
// competitions, per spec.md §4.3's "≥ 30 clubs" requirement.
var TeamAliases = map[string]string{
	// Ligue 1
	"psg":                       "paris_saint_germain",
	"paris sg":                  "paris_saint_germain",
	"paris saint germain":       "paris_saint_germain",
	"paris saint-germain":       "paris_saint_germain",
	"om":                        "olympique_marseille",
	"marseille":                 "olympique_marseille",
	"olympique de marseille":    "olympique_marseille",
	"ol":                        "olympique_lyonnais",
	"lyon":                      "olympique_lyonnais",
	"olympique lyonnais":        "olympique_lyonnais",
	"asm":                       "as_monaco",
	"monaco":                    "as_monaco",
	"losc":                      "lille",
	"lille":                     "lille",
	"rennes":                    "stade_rennais",
	"stade rennais":             "stade_rennais",
	"nantes":                    "fc_nantes",

	// Premier League
	"man utd":                   "manchester_united",
	"man united":                "manchester_united",
	"manchester united":         "manchester_united",
	"man city":                  "manchester_city",
	"manchester city":           "manchester_city",
	"mcfc":                      "manchester_city",
	"the gunners":               "arsenal",
	"arsenal":                   "arsenal",
	"chelsea":                   "chelsea",
	"cfc":                       "chelsea",
	"liverpool":                 "liverpool",
	"lfc":                       "liverpool",
	"spurs":                     "tottenham_hotspur",
	"tottenham":                 "tottenham_hotspur",
	"newcastle":                 "newcastle_united",

	// La Liga
	"real madrid":               "real_madrid",
	"madrid":                    "real_madrid",
	"barca":                     "fc_barcelona",
	"barcelona":                 "fc_barcelona",
	"fc barcelone":              "fc_barcelona",
	"atletico madrid":           "atletico_madrid",
	"atleti":                    "atletico_madrid",
	"sevilla":                   "sevilla_fc",
	"valencia":                  "valencia_cf",

	// Serie A
	"juve":                      "juventus",
	"juventus":                  "juventus",
	"inter":                     "inter_milan",
	"inter milan":               "inter_milan",
	"ac milan":                  "ac_milan",
	"milan":                     "ac_milan",
	"napoli":                    "ssc_napoli",
	"roma":                      "as_roma",
	"as roma":                   "as_roma",
	"lazio":                     "ss_lazio",

	// Bundesliga
	"bayern":                    "bayern_munich",
	"bayern munich":             "bayern_munich",
	"fc bayern":                 "bayern_munich",
	"dortmund":                  "borussia_dortmund",
	"bvb":                       "borussia_dortmund",
	"borussia dortmund":         "borussia_dortmund",
	"rb leipzig":                "rb_leipzig",
	"leipzig":                   "rb_leipzig",
	"leverkusen":                "bayer_leverkusen",
	"bayer leverkusen":          "bayer_leverkusen",

	// Other European clubs
	"benfica":                   "sl_benfica",
	"porto":                     "fc_porto",
	"ajax":                      "ajax",
}

// LeagueAliases maps lower-cased league name/abbreviation variants to a
// canonical league key.
var LeagueAliases = map[string]string{
	"ligue 1":                    "ligue_1",
	"l1":                         "ligue_1",
	"premier league":             "premier_league",
	"epl":                        "premier_league",
	"la liga":                    "la_liga",
	"liga":                       "la_liga",
	"serie a":                    "serie_a",
	"bundesliga":                 "bundesliga",
	"champions league":           "champions_league",
	"ucl":                        "champions_league",
	"ligue des champions":        "champions_league",
	"europa league":               "europa_league",
	"uel":                         "europa_league",
}
