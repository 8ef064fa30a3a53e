package browseruse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultLiveViewBase = "https://cloud.browser-use.com/session"

	sessionSuffix   = "Please execute these instructions on the specified website. Take screenshots at key moments and provide a summary of what was accomplished."
	streamingSuffix = "Please execute these instructions on the specified website. Provide detailed step-by-step updates as you progress. Take screenshots at key moments and explain each action you're performing."
)

type Config struct {
	Client       *Client
	PollInterval time.Duration
	LiveViewBase string
	Logger       output.LoggerPort
}

// runner holds what the session and streaming adapters share: task
// creation, polling and live view links.
const stopTimeout = 5 * time.Second

type runner struct {
	client       *Client
	pollInterval time.Duration
	liveViewBase string
	logger       output.LoggerPort
}

func newRunner(cfg Config) runner {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	base := cfg.LiveViewBase
	if base == "" {
		base = DefaultLiveViewBase
	}
	return runner{
		client:       cfg.Client,
		pollInterval: interval,
		liveViewBase: strings.TrimSuffix(base, "/"),
		logger:       cfg.Logger.Named("browseruse"),
	}
}

func buildInstruction(task entity.Task, params map[string]string, suffix string) string {
	return fmt.Sprintf("Website: %s\n\nInstructions: %s\n\n%s", task.Website, task.RenderInstructions(params), suffix)
}

func (r runner) liveViewURL(created *CreatedTask) string {
	if created.LiveURL != "" {
		return created.LiveURL
	}
	return r.liveViewBase + "/" + created.ID
}

// poll fetches the task until it reaches a terminal status. onDetails sees
// every snapshot, including the last one.
func (r runner) poll(ctx context.Context, id string, onDetails func(*TaskDetails)) (*TaskDetails, error) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		details, err := r.client.GetTask(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				r.stop(ctx, id)
			}
			return nil, err
		}
		if onDetails != nil {
			onDetails(details)
		}
		if details.Status.Terminal() {
			return details, nil
		}

		select {
		case <-ctx.Done():
			r.stop(ctx, id)
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// stop asks the cloud to halt a task whose run was abandoned.
func (r runner) stop(ctx context.Context, id string) {
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()
	if err := r.client.StopTask(stopCtx, id); err != nil {
		r.logger.Warn("Failed to stop cloud task", "task_id", id, "error", err)
		return
	}
	r.logger.Info("Stopped cloud task", "task_id", id)
}

func (r runner) screenshots(ctx context.Context, id string) []string {
	shots, err := r.client.Screenshots(ctx, id)
	if err != nil {
		r.logger.Warn("Failed to fetch screenshots", "task_id", id, "error", err)
		return nil
	}
	return shots
}

func outputLine(details *TaskDetails) string {
	if details.Output == "" {
		return "Output: No output provided"
	}
	return "Output: " + details.Output
}

func statusError(details *TaskDetails) string {
	msg := fmt.Sprintf("task ended with status %s", details.Status)
	if details.Output != "" {
		msg += ": " + details.Output
	}
	return msg
}

// SessionAdapter runs a task on Browser Use Cloud and blocks until it ends.
type SessionAdapter struct {
	runner
}

func NewSessionAdapter(cfg Config) *SessionAdapter {
	return &SessionAdapter{runner: newRunner(cfg)}
}

func (a *SessionAdapter) Kind() output.ExecutorKind {
	return output.ExecutorCloudSession
}

func (a *SessionAdapter) Run(ctx context.Context, req output.RunRequest) entity.ExecutionResult {
	return a.RunStreaming(ctx, req, nil)
}

// RunStreaming reports only start and the final outcome; per-step updates
// are the streaming adapter's job.
func (a *SessionAdapter) RunStreaming(ctx context.Context, req output.RunRequest, onUpdate output.UpdateFunc) entity.ExecutionResult {
	emit := func(u entity.Update) {
		if onUpdate != nil {
			onUpdate(u)
		}
	}

	logs := []string{
		"Browser Use Cloud task: " + req.Task.Name,
		"Website: " + req.Task.Website,
	}
	fail := func(err error) entity.ExecutionResult {
		msg := "Browser Use Cloud execution failed: " + err.Error()
		a.logger.Error("Cloud session failed", "task", req.Task.ID, "error", err)
		emit(entity.NewUpdate(entity.UpdateError, msg))
		return entity.FailedResult(req.Plan, msg, logs...)
	}

	created, err := a.client.CreateTask(ctx, CreateTaskRequest{
		Task: buildInstruction(req.Task, req.Params, sessionSuffix),
	})
	if err != nil {
		return fail(err)
	}
	logs = append(logs, "Task execution started...")

	start := entity.NewUpdate(entity.UpdateStart, "Task execution started...")
	start.LiveViewURL = a.liveViewURL(created)
	emit(start)
	a.logger.Info("Cloud task created", "task", req.Task.ID, "cloud_task_id", created.ID)

	details, err := a.poll(ctx, created.ID, nil)
	if err != nil {
		return fail(err)
	}
	if details.Status != StatusFinished {
		return fail(fmt.Errorf("%s", statusError(details)))
	}

	logs = append(logs, "Task execution completed", outputLine(details))
	emit(entity.NewUpdate(entity.UpdateComplete, "Task execution completed"))

	return entity.ExecutionResult{
		Success:     true,
		Plan:        req.Plan,
		Screenshots: a.screenshots(ctx, created.ID),
		Logs:        logs,
	}
}
