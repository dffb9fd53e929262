package models

import (
	"fmt"
	"strings"
)

// ParamValue is the tagged union backing Endpoint Call parameters
// (spec.md §9's "Design Note: parameter substitution"). A parameter is
// either a Literal value known at plan time, or a Reference to a value
// that will only be known once an earlier call in the plan has completed
// (the `<from_{call_id}>` / `<from_{endpointName}>` placeholder forms).
type ParamValue struct {
	Literal   string
	Reference string // call_id or endpoint_name this value is sourced from
}

// IsReference reports whether this value must be resolved dynamically by
// the orchestrator before the call can be dispatched.
func (p ParamValue) IsReference() bool { return p.Reference != "" }

// Lit constructs a literal parameter value.
func Lit(v string) ParamValue { return ParamValue{Literal: v} }

// Ref constructs a reference parameter value holding the raw call_id or
// endpoint_name; FormatRef renders it in the `<from_X>` textual form.
func Ref(source string) ParamValue { return ParamValue{Reference: source} }

const refPrefix = "<from_"
const refSuffix = ">"

// FormatRef renders a reference the way it is stored in a rendered plan,
// e.g. "<from_call_0>".
func FormatRef(source string) string {
	return refPrefix + source + refSuffix
}

// ParseRef extracts the source call_id/endpoint_name from a rendered
// `<from_X>` placeholder string. ok is false if s is not a placeholder.
func ParseRef(s string) (source string, ok bool) {
	if strings.HasPrefix(s, refPrefix) && strings.HasSuffix(s, refSuffix) {
		return s[len(refPrefix) : len(s)-len(refSuffix)], true
	}
	return "", false
}

// EndpointCall is one node of an Execution Plan's dependency DAG.
type EndpointCall struct {
	CallID       string
	EndpointName string
	Params       map[string]ParamValue
	DependsOn    []string // call_ids this call's params reference
}

// ExecutionPlan is the planner's output: a topologically-ordered sequence
// of Endpoint Calls plus any data already known to be cache-satisfied
// (spec.md §4.4's "Output" paragraph).
type ExecutionPlan struct {
	Calls []EndpointCall

	// PreSatisfied holds endpoint/call identifiers whose data the planner
	// found already cached; the orchestrator surfaces these as
	// from_cache=true results without reissuing the call.
	PreSatisfied []PreSatisfiedEntry
}

// PreSatisfiedEntry records a cache hit discovered at planning time.
type PreSatisfiedEntry struct {
	EndpointName string
	Params       map[string]string
	Data         any
}

// callByID returns the call with the given id, or false.
func (p *ExecutionPlan) callByID(id string) (EndpointCall, bool) {
	for _, c := range p.Calls {
		if c.CallID == id {
			return c, true
		}
	}
	return EndpointCall{}, false
}

// Levels partitions the plan into dependency levels: level k contains every
// call whose dependencies are fully satisfied by levels 0..k-1. Concatenating
// the levels in order reproduces the original call order for calls at the
// same depth (stable within a level), and the partition covers every call
// exactly once, matching the "Plan acyclicity" testable property
// (spec.md §8).
func (p *ExecutionPlan) Levels() ([][]EndpointCall, error) {
	depth := make(map[string]int, len(p.Calls))

	var resolve func(id string, visiting map[string]bool) (int, error)
	resolve = func(id string, visiting map[string]bool) (int, error) {
		if d, ok := depth[id]; ok {
			return d, nil
		}
		if visiting[id] {
			return 0, fmt.Errorf("dependency cycle detected at call %q", id)
		}
		call, ok := p.callByID(id)
		if !ok {
			return 0, fmt.Errorf("unknown call id %q referenced as a dependency", id)
		}
		if len(call.DependsOn) == 0 {
			depth[id] = 0
			return 0, nil
		}
		visiting[id] = true
		maxParent := -1
		for _, dep := range call.DependsOn {
			d, err := resolve(dep, visiting)
			if err != nil {
				return 0, err
			}
			if d > maxParent {
				maxParent = d
			}
		}
		visiting[id] = false
		d := maxParent + 1
		depth[id] = d
		return d, nil
	}

	maxDepth := -1
	for _, c := range p.Calls {
		d, err := resolve(c.CallID, map[string]bool{})
		if err != nil {
			return nil, err
		}
		if d > maxDepth {
			maxDepth = d
		}
	}

	levels := make([][]EndpointCall, maxDepth+1)
	for _, c := range p.Calls {
		d := depth[c.CallID]
		levels[d] = append(levels[d], c)
	}
	return levels, nil
}
