package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/catalog"
)

var _ input.TaskRunner = (*UseCase)(nil)

var (
	ErrTaskNotFound = fmt.Errorf("run: %w", catalog.ErrTaskNotFound)
	ErrNoExecutor   = errors.New("no executor available")
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type PlanGenerator interface {
	Generate(ctx context.Context, task entity.Task, bindings map[string]string) entity.Plan
}

type UseCase struct {
	tasks          input.TaskCatalog
	planner        PlanGenerator
	executors      output.ExecutorRegistry
	logger         output.LoggerPort
	realAutomation bool
}

func New(
	tasks input.TaskCatalog,
	planner PlanGenerator,
	executors output.ExecutorRegistry,
	logger output.LoggerPort,
	realAutomation bool,
) *UseCase {
	return &UseCase{
		tasks:          tasks,
		planner:        planner,
		executors:      executors,
		logger:         logger.Named("orchestrator"),
		realAutomation: realAutomation,
	}
}

func (uc *UseCase) Plan(ctx context.Context, taskID string, params map[string]string) (entity.Plan, error) {
	task, err := uc.lookup(ctx, taskID)
	if err != nil {
		return entity.Plan{}, err
	}
	return uc.planner.Generate(ctx, task, params), nil
}

func (uc *UseCase) Run(ctx context.Context, taskID string, in input.RunInput) (*entity.RunTaskResponse, error) {
	task, err := uc.lookup(ctx, taskID)
	if err != nil {
		return nil, err
	}

	executionID := entity.NewID(entity.ExecutionIDPrefix)
	log := uc.logger.WithFields(map[string]any{"task_id": task.ID, "execution_id": executionID})

	adapter, err := uc.selectAdapter(in.Mode, log)
	if err != nil {
		return nil, err
	}
	warnMissingParams(log, task, in.Params)
	plan := uc.planner.Generate(ctx, task, in.Params)

	log.Info("Running task", "mode", in.Mode, "executor", adapter.Kind(), "steps", len(plan.Steps))
	result := adapter.Run(ctx, output.RunRequest{Task: task, Params: in.Params, Plan: plan})

	status := entity.RunCompleted
	if !result.Success {
		status = entity.RunFailed
		log.Warn("Run failed", "error", result.Error)
	}

	return &entity.RunTaskResponse{
		ExecutionID: executionID,
		Plan:        plan,
		Status:      status,
		Result:      result,
	}, nil
}

// Stream runs the task and reports it through emit: start first, then one
// update per adapter event, then complete or error. A failing emit cancels
// the run and its error is returned.
func (uc *UseCase) Stream(ctx context.Context, taskID string, in input.RunInput, emit func(input.StreamMessage) error) error {
	task, err := uc.lookup(ctx, taskID)
	if err != nil {
		return err
	}

	log := uc.logger.WithField("task_id", task.ID)
	adapter, err := uc.selectAdapter(in.Mode, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var emitErr error
	send := func(msg input.StreamMessage) {
		if emitErr != nil {
			return
		}
		if msg.Timestamp == "" {
			msg.Timestamp = time.Now().UTC().Format(timestampLayout)
		}
		if err := emit(msg); err != nil {
			emitErr = err
			cancel()
		}
	}

	summary := task.Summary()
	send(input.StreamMessage{
		Type:    input.StreamStart,
		Message: "Starting task execution...",
		Task:    &summary,
	})
	if emitErr != nil {
		return emitErr
	}

	warnMissingParams(log, task, in.Params)
	plan := uc.planner.Generate(ctx, task, in.Params)
	log.Info("Streaming task", "mode", in.Mode, "executor", adapter.Kind(), "steps", len(plan.Steps))

	result := adapter.RunStreaming(ctx, output.RunRequest{Task: task, Params: in.Params, Plan: plan}, func(u entity.Update) {
		send(input.StreamMessage{
			Type:        input.StreamUpdate,
			Stage:       u.Kind,
			Message:     u.Message,
			Timestamp:   u.Timestamp.Format(timestampLayout),
			Screenshot:  u.Screenshot,
			LiveViewURL: u.LiveViewURL,
		})
	})
	if emitErr != nil {
		log.Info("Stream closed by client", "error", emitErr)
		return emitErr
	}

	if result.Success {
		send(input.StreamMessage{
			Type:    input.StreamComplete,
			Message: "Task execution completed",
			Result:  &result,
		})
	} else {
		send(input.StreamMessage{
			Type:    input.StreamError,
			Message: "Task execution failed: " + result.Error,
			Error:   result.Error,
			Result:  &result,
		})
	}
	return emitErr
}

// warnMissingParams flags required params that resolve to nothing. The run
// still goes ahead with empty substitutions.
func warnMissingParams(log output.LoggerPort, task entity.Task, params map[string]string) {
	if missing := task.MissingRequired(params); len(missing) > 0 {
		log.Warn("Required parameters have no value", "params", missing)
	}
}

func (uc *UseCase) lookup(ctx context.Context, taskID string) (entity.Task, error) {
	task, err := uc.tasks.Get(ctx, taskID)
	if errors.Is(err, catalog.ErrTaskNotFound) {
		return entity.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if err != nil {
		return entity.Task{}, fmt.Errorf("lookup task %s: %w", taskID, err)
	}
	return task, nil
}

// selectAdapter falls back to the mock executor whenever the adapter for
// mode is not registered, which is how a missing cloud API key shows up.
func (uc *UseCase) selectAdapter(mode entity.ExecutionMode, log output.LoggerPort) (output.ExecutionAdapter, error) {
	kind := output.ExecutorMock
	if uc.realAutomation {
		switch mode {
		case entity.ModeLocal:
			kind = output.ExecutorLocal
		case entity.ModeStreaming:
			kind = output.ExecutorCloudStreaming
		default:
			kind = output.ExecutorCloudSession
		}
	}

	if adapter, ok := uc.executors.Get(kind); ok {
		return adapter, nil
	}
	log.Warn("Executor not available, using mock", "wanted", kind)

	adapter, ok := uc.executors.Get(output.ExecutorMock)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoExecutor, kind)
	}
	return adapter, nil
}
