package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henribesnard/lucide/pkg/models"
)

func TestExtractValueDirectKey(t *testing.T) {
	raw := []byte(`{"id": 85}`)
	v, ok := extractValue(raw, "id")
	assert.True(t, ok)
	assert.Equal(t, "85", v)
}

func TestExtractValueResponseArrayIndexedKey(t *testing.T) {
	raw := []byte(`{"response":[{"team_id": 85}]}`)
	v, ok := extractValue(raw, "team_id")
	assert.True(t, ok)
	assert.Equal(t, "85", v)
}

func TestExtractValueTeamIDFallback(t *testing.T) {
	raw := []byte(`{"response":[{"team":{"id": 85}}]}`)
	v, ok := extractValue(raw, "opponent_id")
	assert.True(t, ok)
	assert.Equal(t, "85", v)
}

func TestExtractValueGenericIDSuffixFallback(t *testing.T) {
	raw := []byte(`{"response":[{"id": 12}]}`)
	v, ok := extractValue(raw, "fixture_id")
	assert.True(t, ok)
	assert.Equal(t, "12", v)
}

func TestExtractValueUnresolvableReturnsNotOK(t *testing.T) {
	raw := []byte(`{"response":[{"name":"PSG"}]}`)
	_, ok := extractValue(raw, "nickname")
	assert.False(t, ok)
}

func TestSubstituteParamsPassesThroughLiterals(t *testing.T) {
	params := map[string]models.ParamValue{"season": models.Lit("2026")}
	out := substituteParams(params, nil)
	assert.Equal(t, "2026", out["season"])
}

func TestSubstituteParamsResolvesReferenceFromCollectedRaw(t *testing.T) {
	params := map[string]models.ParamValue{"team_id": models.Ref("call_0")}
	collected := map[string][]byte{"call_0": []byte(`{"response":[{"id": 85}]}`)}
	out := substituteParams(params, collected)
	assert.Equal(t, "85", out["team_id"])
}

func TestSubstituteParamsLeavesPlaceholderWhenUnresolvable(t *testing.T) {
	params := map[string]models.ParamValue{"team_id": models.Ref("call_missing")}
	out := substituteParams(params, map[string][]byte{})
	assert.Equal(t, "<from_call_missing>", out["team_id"])
}
