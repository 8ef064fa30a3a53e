package mock

import (
	"context"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/adapter/step"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

const (
	DefaultDelay = 2 * time.Second

	// Screenshot is a 1x1 transparent PNG.
	Screenshot = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="
)

var successLogs = []string{
	"Mock: Navigated to website",
	"Mock: Executed automation steps",
	"Mock: Captured screenshot",
	"Mock: Task completed successfully",
}

// Adapter simulates a run without touching the network.
type Adapter struct {
	delay  time.Duration
	logger output.LoggerPort
}

func NewAdapter(delay time.Duration, logger output.LoggerPort) *Adapter {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Adapter{delay: delay, logger: logger.Named("mock")}
}

func (a *Adapter) Kind() output.ExecutorKind {
	return output.ExecutorMock
}

func (a *Adapter) Run(ctx context.Context, req output.RunRequest) entity.ExecutionResult {
	a.logger.Debug("Simulating run", "task", req.Task.ID, "delay", a.delay)
	if err := step.Sleep(ctx, a.delay); err != nil {
		return entity.FailedResult(req.Plan, "Mock execution cancelled: "+err.Error())
	}
	return a.success(req.Plan)
}

// RunStreaming spreads the delay evenly over the plan steps.
func (a *Adapter) RunStreaming(ctx context.Context, req output.RunRequest, onUpdate output.UpdateFunc) entity.ExecutionResult {
	emit := func(u entity.Update) {
		if onUpdate != nil {
			onUpdate(u)
		}
	}

	emit(entity.NewUpdate(entity.UpdateStart, "Starting mock execution of "+req.Task.Name))

	perStep := a.delay
	if n := len(req.Plan.Steps); n > 0 {
		perStep = a.delay / time.Duration(n)
	}
	for i, s := range req.Plan.Steps {
		if err := step.Sleep(ctx, perStep); err != nil {
			msg := "Mock execution cancelled: " + err.Error()
			emit(entity.NewUpdate(entity.UpdateError, msg))
			return entity.FailedResult(req.Plan, msg)
		}
		update := entity.NewUpdate(entity.UpdateStep, s.Describe(i))
		if s.Type == entity.StepCapture {
			update.Screenshot = Screenshot
		}
		emit(update)
	}

	emit(entity.NewUpdate(entity.UpdateComplete, "Mock: Task completed successfully"))
	return a.success(req.Plan)
}

func (a *Adapter) success(plan entity.Plan) entity.ExecutionResult {
	logs := make([]string, len(successLogs))
	copy(logs, successLogs)
	return entity.ExecutionResult{
		Success:     true,
		Plan:        plan,
		Screenshots: []string{Screenshot},
		Logs:        logs,
	}
}
