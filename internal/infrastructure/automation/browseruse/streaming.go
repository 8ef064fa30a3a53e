package browseruse

import (
	"context"
	"fmt"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

// StreamingAdapter runs a cloud task and reports every upstream step as it
// is observed.
type StreamingAdapter struct {
	runner
}

func NewStreamingAdapter(cfg Config) *StreamingAdapter {
	return &StreamingAdapter{runner: newRunner(cfg)}
}

func (a *StreamingAdapter) Kind() output.ExecutorKind {
	return output.ExecutorCloudStreaming
}

func (a *StreamingAdapter) Run(ctx context.Context, req output.RunRequest) entity.ExecutionResult {
	return a.RunStreaming(ctx, req, nil)
}

func (a *StreamingAdapter) RunStreaming(ctx context.Context, req output.RunRequest, onUpdate output.UpdateFunc) entity.ExecutionResult {
	emit := func(u entity.Update) {
		if onUpdate != nil {
			onUpdate(u)
		}
	}

	logs := []string{
		"Streaming Browser task: " + req.Task.Name,
		"Website: " + req.Task.Website,
	}
	fail := func(err error) entity.ExecutionResult {
		msg := "Streaming execution failed: " + err.Error()
		a.logger.Error("Cloud stream failed", "task", req.Task.ID, "error", err)
		emit(entity.NewUpdate(entity.UpdateError, msg))
		return entity.FailedResult(req.Plan, msg, logs...)
	}

	created, err := a.client.CreateTask(ctx, CreateTaskRequest{
		Task: buildInstruction(req.Task, req.Params, streamingSuffix),
	})
	if err != nil {
		return fail(err)
	}
	liveURL := a.liveViewURL(created)
	logs = append(logs, "Task execution started...")

	start := entity.NewUpdate(entity.UpdateStart, "Task execution started...")
	start.LiveViewURL = liveURL
	emit(start)

	var (
		seen        = map[string]bool{}
		screenshots []string
	)
	details, err := a.poll(ctx, created.ID, func(d *TaskDetails) {
		if d.LiveURL != "" {
			liveURL = d.LiveURL
		}
		for _, step := range d.Steps {
			key := stepKey(step)
			if seen[key] {
				continue
			}
			seen[key] = true

			msg := describeStep(step)
			logs = append(logs, msg)
			update := entity.NewUpdate(entity.UpdateStep, msg)
			update.LiveViewURL = liveURL
			update.Screenshot = step.ScreenshotURL
			emit(update)
			if step.ScreenshotURL != "" {
				screenshots = append(screenshots, step.ScreenshotURL)
			}
		}
	})
	if err != nil {
		return fail(err)
	}
	if details.Status != StatusFinished {
		return fail(fmt.Errorf("%s", statusError(details)))
	}

	logs = append(logs, "Task execution completed", outputLine(details))
	complete := entity.NewUpdate(entity.UpdateComplete, "Task execution completed")
	complete.LiveViewURL = liveURL
	emit(complete)

	if len(screenshots) == 0 {
		screenshots = a.screenshots(ctx, created.ID)
	}

	return entity.ExecutionResult{
		Success:     true,
		Plan:        req.Plan,
		Screenshots: screenshots,
		Logs:        logs,
	}
}

func stepKey(step Step) string {
	if step.ID != "" {
		return step.ID
	}
	return fmt.Sprintf("#%d", step.Step)
}

func describeStep(step Step) string {
	goal := step.NextGoal
	if goal == "" {
		goal = step.EvaluationPreviousGoal
	}
	if goal == "" {
		goal = "Working on " + step.URL
	}
	return fmt.Sprintf("Step %d: %s", step.Step, goal)
}
