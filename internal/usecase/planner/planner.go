package planner

import (
	"context"
	"fmt"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/prompts"
)

const planningTemperature = 0.1

type Planner struct {
	providers      output.ProviderRegistry
	logger         output.LoggerPort
	realAutomation bool
}

// New builds a planner. providers should only hold models that have an API
// key configured; a task whose model is missing gets the heuristic plan.
func New(providers output.ProviderRegistry, logger output.LoggerPort, realAutomation bool) *Planner {
	return &Planner{
		providers:      providers,
		logger:         logger.Named("planner"),
		realAutomation: realAutomation,
	}
}

// Generate always returns a plan. Provider failures fall back to HeuristicPlan.
func (p *Planner) Generate(ctx context.Context, task entity.Task, bindings map[string]string) entity.Plan {
	log := p.logger.WithFields(map[string]any{"task_id": task.ID, "llm": task.LLM})

	if !p.realAutomation {
		log.Debug("Using heuristic plan", "reason", "real automation disabled")
		return HeuristicPlan(task)
	}
	llm, ok := p.providers.Get(task.LLM)
	if !ok {
		log.Debug("Using heuristic plan", "reason", "no provider configured")
		return HeuristicPlan(task)
	}

	plan, err := p.askModel(ctx, llm, task, bindings)
	if err != nil {
		log.Warn("LLM planning failed, falling back to heuristic plan", "error", err)
		return HeuristicPlan(task)
	}

	log.Info("Plan generated", "steps", len(plan.Steps), "estimated_duration", plan.EstimatedDuration)
	return plan
}

func (p *Planner) askModel(ctx context.Context, llm output.LLMPort, task entity.Task, bindings map[string]string) (entity.Plan, error) {
	prompt, err := prompts.GeneratePlanningPrompt(prompts.PlanningPrompt, task, task.RenderInstructions(bindings))
	if err != nil {
		return entity.Plan{}, fmt.Errorf("build planning prompt: %w", err)
	}

	resp, err := llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: prompts.PlannerSystemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: planningTemperature,
	})
	if err != nil {
		return entity.Plan{}, fmt.Errorf("planning llm request failed: %w", err)
	}

	plan, err := ParsePlan(resp.Message.Content)
	if err != nil {
		return entity.Plan{}, fmt.Errorf("parse plan: %w", err)
	}
	return plan, nil
}
