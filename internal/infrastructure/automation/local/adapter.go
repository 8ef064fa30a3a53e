package local

import (
	"context"
	"fmt"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/browser/htmltext"
)

// Adapter executes a plan step by step in a browser it opens per run.
type Adapter struct {
	browsers output.BrowserFactory
	steps    output.StepRegistry
	logger   output.LoggerPort
}

func NewAdapter(browsers output.BrowserFactory, steps output.StepRegistry, logger output.LoggerPort) *Adapter {
	return &Adapter{
		browsers: browsers,
		steps:    steps,
		logger:   logger.Named("local"),
	}
}

func (a *Adapter) Kind() output.ExecutorKind {
	return output.ExecutorLocal
}

func (a *Adapter) Run(ctx context.Context, req output.RunRequest) entity.ExecutionResult {
	return a.RunStreaming(ctx, req, nil)
}

func (a *Adapter) RunStreaming(ctx context.Context, req output.RunRequest, onUpdate output.UpdateFunc) entity.ExecutionResult {
	emit := func(u entity.Update) {
		if onUpdate != nil {
			onUpdate(u)
		}
	}

	logs := []string{
		"Local browser task: " + req.Task.Name,
		"Website: " + req.Task.Website,
	}
	fail := func(err error) entity.ExecutionResult {
		msg := "Local execution failed: " + err.Error()
		a.logger.Error("Local run failed", "task", req.Task.ID, "error", err)
		emit(entity.NewUpdate(entity.UpdateError, msg))
		return entity.FailedResult(req.Plan, msg, logs...)
	}

	if err := req.Plan.Validate(); err != nil {
		return fail(err)
	}

	browser, err := a.browsers(ctx)
	if err != nil {
		return fail(fmt.Errorf("launch browser: %w", err))
	}
	defer browser.Close()

	emit(entity.NewUpdate(entity.UpdateStart, fmt.Sprintf("Starting local execution of %d steps", len(req.Plan.Steps))))

	var screenshots []string
	for i, s := range req.Plan.Steps {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		handler, ok := a.steps.Get(s.Type)
		if !ok {
			return fail(fmt.Errorf("no handler for step type %q", s.Type))
		}

		a.logger.Debug("Executing step", "index", i, "type", s.Type)
		outcome, err := handler.Execute(ctx, browser, s)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", s.Describe(i), err))
		}

		logs = append(logs, outcome.Log)
		update := entity.NewUpdate(entity.UpdateProgress, s.Describe(i))
		if outcome.Screenshot != "" {
			screenshots = append(screenshots, outcome.Screenshot)
			update.Screenshot = outcome.Screenshot
		}
		emit(update)
	}

	logs = append(logs, "Task execution completed", a.pageOutput(ctx, browser))
	emit(entity.NewUpdate(entity.UpdateComplete, "Task execution completed"))

	return entity.ExecutionResult{
		Success:     true,
		Plan:        req.Plan,
		Screenshots: screenshots,
		Logs:        logs,
	}
}

func (a *Adapter) pageOutput(ctx context.Context, browser output.BrowserPort) string {
	raw, err := browser.PageHTML(ctx)
	if err != nil {
		a.logger.Warn("Could not read final page", "error", err)
		return "Output: No output provided"
	}
	text := htmltext.VisibleText(raw, nil)
	if text == "" {
		return "Output: No output provided"
	}
	return "Output: " + text
}
