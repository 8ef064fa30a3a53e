package output

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type RunRequest struct {
	Task   entity.Task
	Params map[string]string
	Plan   entity.Plan
}

// UpdateFunc receives progress updates in the order they happen.
type UpdateFunc func(entity.Update)

// ExecutionAdapter performs a planned run. Failures are reported through
// ExecutionResult, never as a Go error.
type ExecutionAdapter interface {
	Kind() ExecutorKind
	Run(ctx context.Context, req RunRequest) entity.ExecutionResult
	RunStreaming(ctx context.Context, req RunRequest, onUpdate UpdateFunc) entity.ExecutionResult
}

type ExecutorKind string

const (
	ExecutorMock           ExecutorKind = "mock"
	ExecutorCloudSession   ExecutorKind = "cloud-session"
	ExecutorCloudStreaming ExecutorKind = "cloud-streaming"
	ExecutorLocal          ExecutorKind = "local"
)

type ExecutorRegistry interface {
	Register(adapter ExecutionAdapter)
	Get(kind ExecutorKind) (ExecutionAdapter, bool)
}
