package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/models"
)

// Planner produces Execution Plans from a validated question. Per
// spec.md §9's design note, question-class dispatch is a closed switch
// over the tag enumeration, not virtual dispatch.
type Planner struct {
	KB    *knowledge.Base
	Cache *cache.Cache
	// Now is overridable for deterministic tests; defaults to time.Now.
	Now func() time.Time
}

// New constructs a Planner against the given knowledge base and cache.
func New(kb *knowledge.Base, c *cache.Cache) *Planner {
	return &Planner{KB: kb, Cache: c, Now: time.Now}
}

func (p *Planner) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Planner) currentSeason() string {
	return fmt.Sprintf("%d", p.now().Year())
}

func (p *Planner) today() string {
	return p.now().Format("2006-01-02")
}

// Plan builds an Execution Plan for a classified question and its (already
// context-merged, per spec.md §4.6) extracted entities. question is the
// original text, consulted only to detect a "full report" intent that
// should route to the enriched composite endpoint instead of a single
// narrow one (spec.md §4.4 step 3, §8 scenario 4).
func (p *Planner) Plan(ctx context.Context, qType models.QuestionType, entities models.ExtractedEntities, question string) (*models.ExecutionPlan, error) {
	if _, ok := p.KB.Lookup("fixtures/composite"); !ok {
		return nil, newPlanningError(UnknownEndpoint, "catalog missing fixtures/composite")
	}

	b := &builder{}

	switch qType {
	case models.QuestionMatchLiveInfo:
		target := "fixtures/by_id"
		if p.wantsFullAnalysis(question) {
			target = "fixtures/composite"
		}
		p.planFixtureCentric(b, entities, target)
	case models.QuestionMatchPrediction:
		p.planFixtureCentric(b, entities, "predictions/composite")
	case models.QuestionTeamComparison:
		p.planTeamComparison(b, entities)
	case models.QuestionTeamStats:
		p.planSingleTeam(b, entities, "teams/statistics")
	case models.QuestionPlayerInfo:
		p.planPlayerInfo(b, entities)
	case models.QuestionLeagueInfo:
		p.planLeagueCentric(b, entities, "leagues/by_id")
	case models.QuestionHeadToHead:
		p.planHeadToHead(b, entities)
	case models.QuestionStandings:
		p.planLeagueCentric(b, entities, "standings/league")
	default:
		return nil, newPlanningError(UnknownEndpoint, fmt.Sprintf("no plan strategy for question type %q", qType))
	}

	plan := &models.ExecutionPlan{Calls: b.calls}

	if err := p.validateDAG(plan); err != nil {
		return nil, err
	}

	p.pruneCacheSatisfied(ctx, plan)

	return plan, nil
}

// planFixtureCentric handles the common shape from spec.md §8 scenario 1:
// resolve up to two teams, resolve the fixture, then call targetEndpoint
// with the resolved fixture_id.
func (p *Planner) planFixtureCentric(b *builder, entities models.ExtractedEntities, targetEndpoint string) {
	fixtureRef, fixtureDep := p.resolveFixture(b, entities)
	b.add(targetEndpoint, map[string]models.ParamValue{
		"fixture_id": fixtureRef,
	}, fixtureDep)
}

func (p *Planner) resolveFixture(b *builder, entities models.ExtractedEntities) (models.ParamValue, string) {
	date := p.today()
	if len(entities.Dates) > 0 {
		date = entities.Dates[0].Canonical
	}

	teamARef, teamADep := b.resolveTeamID(entityCanonical(entities.Teams, 0))
	var teamBPtr *models.ParamValue
	teamBDep := ""
	if len(entities.Teams) >= 2 {
		ref, dep := b.resolveTeamID(entityCanonical(entities.Teams, 1))
		teamBPtr = &ref
		teamBDep = dep
	}

	fixtureCallID := b.resolveFixtureID(teamARef, teamADep, teamBPtr, teamBDep, date)
	return models.Ref(fixtureCallID), fixtureCallID
}

func (p *Planner) planTeamComparison(b *builder, entities models.ExtractedEntities) {
	season := p.currentSeason()
	leagueRef, leagueDep := b.resolveLeagueID(entityCanonical(entities.Leagues, 0))
	for i := 0; i < 2 && i < len(entities.Teams); i++ {
		teamRef, teamDep := b.resolveTeamID(entityCanonical(entities.Teams, i))
		b.add("teams/statistics", map[string]models.ParamValue{
			"team_id":   teamRef,
			"league_id": leagueRef,
			"season":    models.Lit(season),
		}, teamDep, leagueDep)
	}
}

func (p *Planner) planSingleTeam(b *builder, entities models.ExtractedEntities, targetEndpoint string) {
	teamRef, teamDep := b.resolveTeamID(entityCanonical(entities.Teams, 0))
	leagueRef, leagueDep := b.resolveLeagueID(entityCanonical(entities.Leagues, 0))
	b.add(targetEndpoint, map[string]models.ParamValue{
		"team_id":   teamRef,
		"league_id": leagueRef,
		"season":    models.Lit(p.currentSeason()),
	}, teamDep, leagueDep)
}

func (p *Planner) planPlayerInfo(b *builder, entities models.ExtractedEntities) {
	playerRef, playerDep := b.resolvePlayerID(entityCanonical(entities.Players, 0))
	b.add("players/statistics", map[string]models.ParamValue{
		"player_id": playerRef,
		"season":    models.Lit(p.currentSeason()),
	}, playerDep)
}

func (p *Planner) planLeagueCentric(b *builder, entities models.ExtractedEntities, targetEndpoint string) {
	leagueRef, leagueDep := b.resolveLeagueID(entityCanonical(entities.Leagues, 0))
	b.add(targetEndpoint, map[string]models.ParamValue{
		"league_id": leagueRef,
		"season":    models.Lit(p.currentSeason()),
	}, leagueDep)
}

func (p *Planner) planHeadToHead(b *builder, entities models.ExtractedEntities) {
	teamARef, teamADep := b.resolveTeamID(entityCanonical(entities.Teams, 0))
	teamBRef, teamBDep := b.resolveTeamID(entityCanonical(entities.Teams, 1))
	b.add("fixtures/h2h", map[string]models.ParamValue{
		"team_id_1": teamARef,
		"team_id_2": teamBRef,
	}, teamADep, teamBDep)
}

// fullAnalysisKeywords trigger the enriched fixtures/composite endpoint
// instead of the narrow fixtures/by_id, collapsing what would otherwise be
// four separate calls (events, lineups, statistics, players) into one
// (spec.md §8 scenario 4).
var fullAnalysisKeywords = []string{
	"analyse complete", "analyse complète", "full match", "match report",
	"resume complet", "résumé complet", "everything about the match",
}

func (p *Planner) wantsFullAnalysis(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range fullAnalysisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// entityCanonical returns the canonical form of the entity at idx, or ""
// if idx is out of range (a planning call with a blank literal is still a
// valid, if doomed-to-fail, upstream request — validation already
// guaranteed completeness before the planner runs).
func entityCanonical(entities []models.Entity, idx int) string {
	if idx < 0 || idx >= len(entities) {
		return ""
	}
	return entities[idx].Canonical
}

// validateDAG checks acyclicity by computing Levels(), which itself
// detects cycles and unknown call_id references.
func (p *Planner) validateDAG(plan *models.ExecutionPlan) error {
	if _, err := plan.Levels(); err != nil {
		return &PlanningError{Kind: CycleDetected, Detail: "dependency graph is not a DAG", Wrapped: err}
	}
	return nil
}

// pruneCacheSatisfied checks every call whose parameters are already fully
// literal (no unresolved <from_X> reference) against the cache; a hit is
// recorded as pre-satisfied data rather than re-issued. Calls still
// carrying a Reference cannot be key-checked until the orchestrator
// resolves them, so they are left for the orchestrator's own per-call
// cache lookup (spec.md §4.5 step 3) — which still yields the "re-run
// produces 0 api calls" property, just one level later than an ideal
// planner-time prune would.
func (p *Planner) pruneCacheSatisfied(ctx context.Context, plan *models.ExecutionPlan) {
	if p.Cache == nil {
		return
	}

	neededAsDependency := make(map[string]bool)
	for _, call := range plan.Calls {
		for _, dep := range call.DependsOn {
			neededAsDependency[dep] = true
		}
	}

	var kept []models.EndpointCall
	for _, call := range plan.Calls {
		if neededAsDependency[call.CallID] {
			kept = append(kept, call)
			continue
		}
		literalParams, allLiteral := literalize(call.Params)
		if !allLiteral {
			kept = append(kept, call)
			continue
		}
		if value, hit := p.Cache.Get(ctx, call.EndpointName, literalParams); hit {
			plan.PreSatisfied = append(plan.PreSatisfied, models.PreSatisfiedEntry{
				EndpointName: call.EndpointName,
				Params:       literalParams,
				Data:         value,
			})
			continue
		}
		kept = append(kept, call)
	}
	plan.Calls = kept
}

func literalize(params map[string]models.ParamValue) (map[string]string, bool) {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if v.IsReference() {
			return nil, false
		}
		out[k] = v.Literal
	}
	return out, true
}
