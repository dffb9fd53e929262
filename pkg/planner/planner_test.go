package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/metrics"
	"github.com/henribesnard/lucide/pkg/models"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	backend := cache.NewMemoryBackend(0)
	t.Cleanup(func() { backend.Close() })
	m := metrics.New(prometheus.NewRegistry())
	c := cache.New(backend, knowledge.Get(), m)
	p := New(knowledge.Get(), c)
	fixed := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	p.Now = func() time.Time { return fixed }
	return p
}

func teams(canonical ...string) []models.Entity {
	out := make([]models.Entity, len(canonical))
	for i, c := range canonical {
		out[i] = models.Entity{Canonical: c}
	}
	return out
}

func TestPlanMatchLiveInfoResolvesTwoTeamsThenFixture(t *testing.T) {
	p := newTestPlanner(t)
	entities := models.ExtractedEntities{Teams: teams("paris_saint_germain", "olympique_lyonnais")}

	plan, err := p.Plan(context.Background(), models.QuestionMatchLiveInfo, entities, "what is the score?")
	require.NoError(t, err)

	var endpoints []string
	for _, c := range plan.Calls {
		endpoints = append(endpoints, c.EndpointName)
	}
	assert.Contains(t, endpoints, "teams/search")
	assert.Contains(t, endpoints, "fixtures/search")
	assert.Contains(t, endpoints, "fixtures/by_id")
}

func TestPlanMatchLiveInfoFullAnalysisRoutesToComposite(t *testing.T) {
	p := newTestPlanner(t)
	entities := models.ExtractedEntities{Teams: teams("paris_saint_germain")}

	plan, err := p.Plan(context.Background(), models.QuestionMatchLiveInfo, entities, "give me the full match report")
	require.NoError(t, err)

	var endpoints []string
	for _, c := range plan.Calls {
		endpoints = append(endpoints, c.EndpointName)
	}
	assert.Contains(t, endpoints, "fixtures/composite")
	assert.NotContains(t, endpoints, "fixtures/by_id")
}

func TestPlanTeamComparisonPlansBothTeamsIndependently(t *testing.T) {
	p := newTestPlanner(t)
	entities := models.ExtractedEntities{Teams: teams("paris_saint_germain", "olympique_lyonnais")}

	plan, err := p.Plan(context.Background(), models.QuestionTeamComparison, entities, "compare them")
	require.NoError(t, err)

	levels, err := plan.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 2, "team and league resolution then stats, in two dependency levels")
	assert.Len(t, levels[0], 3, "both teams/search calls and the shared leagues/search call are independent and share level 0")
}

func TestPlanHeadToHeadDependsOnBothTeamResolutions(t *testing.T) {
	p := newTestPlanner(t)
	entities := models.ExtractedEntities{Teams: teams("paris_saint_germain", "olympique_lyonnais")}

	plan, err := p.Plan(context.Background(), models.QuestionHeadToHead, entities, "h2h")
	require.NoError(t, err)

	var h2h *models.EndpointCall
	for i := range plan.Calls {
		if plan.Calls[i].EndpointName == "fixtures/h2h" {
			h2h = &plan.Calls[i]
		}
	}
	require.NotNil(t, h2h)
	assert.Len(t, h2h.DependsOn, 2)
}

func TestPlanProducesAcyclicDAGForEveryQuestionType(t *testing.T) {
	p := newTestPlanner(t)

	cases := []struct {
		qType    models.QuestionType
		entities models.ExtractedEntities
	}{
		{models.QuestionMatchLiveInfo, models.ExtractedEntities{Teams: teams("a", "b")}},
		{models.QuestionMatchPrediction, models.ExtractedEntities{Teams: teams("a", "b")}},
		{models.QuestionTeamComparison, models.ExtractedEntities{Teams: teams("a", "b")}},
		{models.QuestionTeamStats, models.ExtractedEntities{Teams: teams("a")}},
		{models.QuestionPlayerInfo, models.ExtractedEntities{Players: teams("messi")}},
		{models.QuestionLeagueInfo, models.ExtractedEntities{Leagues: teams("ligue_1")}},
		{models.QuestionHeadToHead, models.ExtractedEntities{Teams: teams("a", "b")}},
		{models.QuestionStandings, models.ExtractedEntities{Leagues: teams("ligue_1")}},
	}
	for _, tc := range cases {
		t.Run(string(tc.qType), func(t *testing.T) {
			plan, err := p.Plan(context.Background(), tc.qType, tc.entities, "")
			require.NoError(t, err)
			_, err = plan.Levels()
			assert.NoError(t, err)
		})
	}
}

func TestPlanUnknownQuestionTypeIsAPlanningError(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.Plan(context.Background(), models.QuestionUnknown, models.ExtractedEntities{}, "")
	require.Error(t, err)

	var planningErr *PlanningError
	require.ErrorAs(t, err, &planningErr)
	assert.Equal(t, UnknownEndpoint, planningErr.Kind)
}

func TestPruneCacheSatisfiedRemovesLiteralLeafCallsAlreadyCached(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	p.Cache.Set(ctx, "teams/search", map[string]string{"name": "paris_saint_germain"}, map[string]any{"id": 85}, "")

	plan := &models.ExecutionPlan{Calls: []models.EndpointCall{
		{CallID: "call_0", EndpointName: "teams/search", Params: map[string]models.ParamValue{
			"name": models.Lit("paris_saint_germain"),
		}},
	}}

	p.pruneCacheSatisfied(ctx, plan)

	assert.Empty(t, plan.Calls, "the only call has no dependents and a literal cache hit, so it should be pruned")
	require.Len(t, plan.PreSatisfied, 1)
	assert.Equal(t, "teams/search", plan.PreSatisfied[0].EndpointName)
}

func TestPruneCacheSatisfiedNeverPrunesACallThatIsADependency(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	p.Cache.Set(ctx, "teams/search", map[string]string{"name": "paris_saint_germain"}, map[string]any{"id": 85}, "")

	plan := &models.ExecutionPlan{Calls: []models.EndpointCall{
		{CallID: "call_0", EndpointName: "teams/search", Params: map[string]models.ParamValue{
			"name": models.Lit("paris_saint_germain"),
		}},
		{CallID: "call_1", EndpointName: "teams/statistics", Params: map[string]models.ParamValue{
			"team_id": models.Ref("call_0"),
			"season":  models.Lit("2026"),
		}, DependsOn: []string{"call_0"}},
	}}

	p.pruneCacheSatisfied(ctx, plan)

	require.Len(t, plan.Calls, 2, "call_0 is a dependency of call_1 and must survive even though it is cache-satisfied")
	assert.Empty(t, plan.PreSatisfied)
}

func TestPruneCacheSatisfiedKeepsCallsWithUnresolvedReferences(t *testing.T) {
	p := newTestPlanner(t)
	ctx := context.Background()

	plan := &models.ExecutionPlan{Calls: []models.EndpointCall{
		{CallID: "call_0", EndpointName: "teams/statistics", Params: map[string]models.ParamValue{
			"team_id": models.Ref("call_does_not_exist_in_this_plan"),
			"season":  models.Lit("2026"),
		}},
	}}

	p.pruneCacheSatisfied(ctx, plan)

	require.Len(t, plan.Calls, 1, "a call with a reference parameter cannot be key-checked at plan time")
	assert.Empty(t, plan.PreSatisfied)
}

func TestPlanLeagueInfoTargetCallAlwaysCarriesAReferenceParam(t *testing.T) {
	p := newTestPlanner(t)
	entities := models.ExtractedEntities{Leagues: teams("ligue_1")}

	plan, err := p.Plan(context.Background(), models.QuestionLeagueInfo, entities, "")
	require.NoError(t, err)

	var target *models.EndpointCall
	for i := range plan.Calls {
		if plan.Calls[i].EndpointName == "leagues/by_id" {
			target = &plan.Calls[i]
		}
	}
	require.NotNil(t, target)
	assert.True(t, target.Params["league_id"].IsReference(), "league_id is only known once leagues/search resolves")
}
