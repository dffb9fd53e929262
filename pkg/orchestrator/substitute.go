package orchestrator

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/henribesnard/lucide/pkg/models"
)

// extractValue implements spec.md §4.5 step 2's ad-hoc fallback chain for
// pulling a referenced value out of an earlier call's raw JSON response:
// direct key access; response[0][key]; response[0].team.id; finally,
// response[0].id if key is "id" or ends in "_id". Returns ok=false if none
// of the paths resolved (the placeholder is then left as-is, per spec).
func extractValue(raw []byte, key string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	if r := gjson.GetBytes(raw, key); r.Exists() {
		return r.String(), true
	}
	if r := gjson.GetBytes(raw, "response.0."+key); r.Exists() {
		return r.String(), true
	}
	if r := gjson.GetBytes(raw, "response.0.team.id"); r.Exists() {
		return r.String(), true
	}
	if key == "id" || strings.HasSuffix(key, "_id") {
		if r := gjson.GetBytes(raw, "response.0.id"); r.Exists() {
			return r.String(), true
		}
	}
	return "", false
}

// substituteParams resolves every Reference ParamValue in params against
// collectedRaw (keyed by both call_id and endpoint_name, per spec.md §4.5
// step 2). A placeholder that cannot be resolved is left as the literal
// "<from_X>" text — the upstream API then rejects the call and the normal
// retry/error path applies, matching spec.md's stated fallback behavior.
func substituteParams(params map[string]models.ParamValue, collectedRaw map[string][]byte) map[string]string {
	out := make(map[string]string, len(params))
	for name, v := range params {
		if !v.IsReference() {
			out[name] = v.Literal
			continue
		}
		raw, ok := collectedRaw[v.Reference]
		if !ok {
			out[name] = models.FormatRef(v.Reference)
			continue
		}
		if value, ok := extractValue(raw, name); ok {
			out[name] = value
			continue
		}
		out[name] = models.FormatRef(v.Reference)
	}
	return out
}
