package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamValueIsReference(t *testing.T) {
	tests := []struct {
		name string
		v    ParamValue
		want bool
	}{
		{"literal", Lit("42"), false},
		{"reference", Ref("call_0"), true},
		{"zero value", ParamValue{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.IsReference())
		})
	}
}

func TestFormatRefAndParseRef(t *testing.T) {
	rendered := FormatRef("call_1")
	assert.Equal(t, "<from_call_1>", rendered)

	source, ok := ParseRef(rendered)
	require.True(t, ok)
	assert.Equal(t, "call_1", source)

	_, ok = ParseRef("not_a_ref")
	assert.False(t, ok)
}

func TestExecutionPlanLevelsPartitionsByDepth(t *testing.T) {
	plan := &ExecutionPlan{
		Calls: []EndpointCall{
			{CallID: "call_0", EndpointName: "teams/search"},
			{CallID: "call_1", EndpointName: "fixtures/search", DependsOn: []string{"call_0"}},
			{CallID: "call_2", EndpointName: "fixtures/by_id", DependsOn: []string{"call_1"}},
		},
	}

	levels, err := plan.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, "call_0", levels[0][0].CallID)
	assert.Equal(t, "call_1", levels[1][0].CallID)
	assert.Equal(t, "call_2", levels[2][0].CallID)
}

func TestExecutionPlanLevelsIndependentCallsShareALevel(t *testing.T) {
	plan := &ExecutionPlan{
		Calls: []EndpointCall{
			{CallID: "call_0", EndpointName: "teams/statistics"},
			{CallID: "call_1", EndpointName: "teams/statistics"},
		},
	}

	levels, err := plan.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Len(t, levels[0], 2)
}

func TestExecutionPlanLevelsDetectsCycle(t *testing.T) {
	plan := &ExecutionPlan{
		Calls: []EndpointCall{
			{CallID: "call_0", EndpointName: "a", DependsOn: []string{"call_1"}},
			{CallID: "call_1", EndpointName: "b", DependsOn: []string{"call_0"}},
		},
	}

	_, err := plan.Levels()
	assert.Error(t, err)
}

func TestExecutionPlanLevelsDetectsUnknownDependency(t *testing.T) {
	plan := &ExecutionPlan{
		Calls: []EndpointCall{
			{CallID: "call_0", EndpointName: "a", DependsOn: []string{"call_missing"}},
		},
	}

	_, err := plan.Levels()
	assert.Error(t, err)
}
