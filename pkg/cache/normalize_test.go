package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTeamAliasAndAccents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alias", "PSG", "paris_saint_germain"},
		{"accented alias key", "Paris Saint-Germain", "paris_saint_germain"},
		{"unknown falls back to generic normalizer", "Olympiakos", "olympiakos"},
		{"accent stripped for unknown team", "Atlético Unknown FC", "atletico_unknown_fc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTeam(tt.input))
		})
	}
}

func TestNormalizeLeagueAlias(t *testing.T) {
	assert.Equal(t, "ligue_1", NormalizeLeague("Ligue 1"))
	assert.Equal(t, "champions_league", NormalizeLeague("UCL"))
	assert.Equal(t, "serie_b", NormalizeLeague("Serie B"))
}

func TestNormalizeDateAcceptsMultipleFormats(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-03-05", "2026-03-05"},
		{"05/03/2026", "2026-03-05"},
		{"2026/03/05", "2026-03-05"},
		{"not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestH2HPairKeyIsOrderIndependent(t *testing.T) {
	a := H2HPairKey("PSG", "Lyon")
	b := H2HPairKey("Lyon", "PSG")
	assert.Equal(t, a, b)
	assert.Equal(t, "olympique_lyonnais-paris_saint_germain", a)
}

func TestNormalizeParamsDropsEmptyAndSortsKeys(t *testing.T) {
	out := NormalizeParams("teams/statistics", map[string]string{
		"team_id": "85",
		"season":  "2025",
		"league":  "",
	})
	assert.Equal(t, "season=2025&team_id=85", out)
}

func TestNormalizeParamsCollapsesH2HPair(t *testing.T) {
	a := NormalizeParams("fixtures/h2h", map[string]string{
		"team_id_1": "PSG",
		"team_id_2": "Lyon",
	})
	b := NormalizeParams("fixtures/h2h", map[string]string{
		"team_id_1": "Lyon",
		"team_id_2": "PSG",
	})
	assert.Equal(t, a, b)
	assert.Contains(t, a, "h2h_pair=")
}

func TestKeyIsIdempotentAcrossParamOrderAndCase(t *testing.T) {
	a := Key("teams/statistics", map[string]string{"team_id": "PSG", "season": "2025"})
	b := Key("teams/statistics", map[string]string{"season": "2025", "team_id": "psg"})
	assert.Equal(t, a, b)
}
