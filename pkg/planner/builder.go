package planner

import (
	"fmt"

	"github.com/henribesnard/lucide/pkg/models"
)

// builder accumulates Endpoint Calls, assigning call_ids in the
// topological order they're appended (spec.md §4.4's "Output" paragraph).
type builder struct {
	calls []models.EndpointCall
	seq   int
}

func (b *builder) nextCallID() string {
	id := fmt.Sprintf("call_%d", b.seq)
	b.seq++
	return id
}

// add appends a call with the given endpoint, params and dependencies and
// returns its assigned call_id.
func (b *builder) add(endpoint string, params map[string]models.ParamValue, dependsOn ...string) string {
	id := b.nextCallID()
	b.calls = append(b.calls, models.EndpointCall{
		CallID:       id,
		EndpointName: endpoint,
		Params:       params,
		DependsOn:    dependsOn,
	})
	return id
}

// resolveTeamID injects a teams/search resolver call for canonicalTeam and
// returns a reference to it as the ParamValue to use, plus the resolver's
// call_id as an extra dependency. The resolver is injected on every call;
// a team identifier already known from caller context is not consulted.
func (b *builder) resolveTeamID(canonicalTeam string) (models.ParamValue, string) {
	callID := b.add("teams/search", map[string]models.ParamValue{
		"name": models.Lit(canonicalTeam),
	})
	return models.Ref(callID), callID
}

func (b *builder) resolveLeagueID(canonicalLeague string) (models.ParamValue, string) {
	callID := b.add("leagues/search", map[string]models.ParamValue{
		"name": models.Lit(canonicalLeague),
	})
	return models.Ref(callID), callID
}

func (b *builder) resolvePlayerID(canonicalPlayer string) (models.ParamValue, string) {
	callID := b.add("players/search", map[string]models.ParamValue{
		"name": models.Lit(canonicalPlayer),
	})
	return models.Ref(callID), callID
}

// resolveFixtureID adds a fixtures/search call that depends on the team
// resolver call(s) its caller already injected (teamADep, plus teamBDep
// when teamBRef is set), matching the dependency chain from spec.md §8
// scenario 1: team_search(team_a), team_search(team_b), then
// fixtures/search(team_ids=<from_...>, date=...).
func (b *builder) resolveFixtureID(teamARef models.ParamValue, teamADep string, teamBRef *models.ParamValue, teamBDep string, date string) string {
	params := map[string]models.ParamValue{
		"team_id_1": teamARef,
		"date":      models.Lit(date),
	}
	deps := []string{teamADep}
	if teamBRef != nil {
		params["team_id_2"] = *teamBRef
		deps = append(deps, teamBDep)
	}
	return b.add("fixtures/search", params, deps...)
}
