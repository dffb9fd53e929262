// Package pipeline wires the Question Validator, Endpoint Planner and API
// Orchestrator into the single entry point an embedder calls (spec.md
// §4.6). It owns no shared state of its own: the knowledge base, cache and
// circuit breaker it is constructed with are the process-wide shared
// state (spec.md §3's ownership note); each invocation gets its own plan
// and execution result.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/henribesnard/lucide/pkg/cache"
	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/metrics"
	"github.com/henribesnard/lucide/pkg/models"
	"github.com/henribesnard/lucide/pkg/orchestrator"
	"github.com/henribesnard/lucide/pkg/planner"
	"github.com/henribesnard/lucide/pkg/validator"
)

// Bundle is the successful outcome of Process: the validated intent, the
// plan (kept for introspection/debugging) and the execution result.
type Bundle struct {
	QuestionType models.QuestionType
	Entities     models.ExtractedEntities
	Plan         *models.ExecutionPlan
	Result       *models.ExecutionResult
}

// ClarificationRequest is returned when the validator judges the question
// incomplete and no caller context fills the gap.
type ClarificationRequest struct {
	MissingInfo            []models.MissingSlot
	ClarificationQuestions []string
	Language               models.Language
}

// Pipeline is constructed once per process, sharing its knowledge base,
// cache, breaker and metrics across every invocation — the teacher's
// "singleton service, per-call correlation ID" convention (pkg/services).
type Pipeline struct {
	KB           *knowledge.Base
	Cache        *cache.Cache
	Validator    *validator.Validator
	Planner      *planner.Planner
	Orchestrator *orchestrator.Orchestrator
	Metrics      *metrics.Metrics

	// PlanTimeout bounds the orchestrator's top-level wait (spec.md §5,
	// suggested default 30s).
	PlanTimeout time.Duration
}

// New wires a Pipeline from its component dependencies.
func New(kb *knowledge.Base, c *cache.Cache, v *validator.Validator, p *planner.Planner, o *orchestrator.Orchestrator, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		KB:           kb,
		Cache:        c,
		Validator:    v,
		Planner:      p,
		Orchestrator: o,
		Metrics:      m,
		PlanTimeout:  30 * time.Second,
	}
}

// Process implements spec.md §4.6's process(question, caller_context?) ->
// (Bundle | ClarificationRequest). Its error return is always nil: an
// incomplete question yields a ClarificationRequest, per-call failures land
// in Bundle.Result.Errors, and a planning failure (a *planner.PlanningError
// such as a cycle or unknown endpoint) yields a Bundle with an empty plan
// and a "planning: ..." entry in Result.Errors.
func (p *Pipeline) Process(ctx context.Context, question string, callerContext *models.StructuredContext, languageOverride *models.Language) (*Bundle, *ClarificationRequest, error) {
	invocationID := uuid.NewString()
	log := slog.With("invocation_id", invocationID)
	log.Info("pipeline invocation started", "question", question)

	validation := p.Validator.Validate(question, callerContext, languageOverride)
	p.recordValidationMetrics(validation)

	if !validation.IsComplete {
		log.Info("validation incomplete, returning clarification",
			"missing_info", validation.MissingInfo)
		return nil, &ClarificationRequest{
			MissingInfo:            validation.MissingInfo,
			ClarificationQuestions: validation.ClarificationQuestions,
			Language:               validation.Language,
		}, nil
	}

	plan, err := p.Planner.Plan(ctx, validation.QuestionType, validation.Entities, question)
	if err != nil {
		log.Error("planning failed", "error", err)
		return &Bundle{
			QuestionType: validation.QuestionType,
			Entities:     validation.Entities,
			Plan:         &models.ExecutionPlan{},
			Result: &models.ExecutionResult{
				CollectedData: map[string]any{},
				Errors:        []string{"planning: " + err.Error()},
			},
		}, nil, nil
	}
	p.Metrics.PlansGenerated.Inc()
	p.Metrics.PlanAPICallsPlanned.Observe(float64(len(plan.Calls)))

	planCtx, cancel := context.WithTimeout(ctx, p.PlanTimeout)
	defer cancel()

	result := p.Orchestrator.Execute(planCtx, plan)
	log.Info("pipeline invocation finished",
		"success", result.Success(),
		"total_api_calls", result.TotalAPICalls,
		"total_cache_hits", result.TotalCacheHits)

	return &Bundle{
		QuestionType: validation.QuestionType,
		Entities:     validation.Entities,
		Plan:         plan,
		Result:       result,
	}, nil, nil
}

func (p *Pipeline) recordValidationMetrics(v models.ValidationResult) {
	if v.IsComplete {
		p.Metrics.ValidationTotal.WithLabelValues("complete").Inc()
		return
	}
	p.Metrics.ValidationTotal.WithLabelValues("clarification").Inc()
	p.Metrics.ClarificationsTotal.Inc()
}
