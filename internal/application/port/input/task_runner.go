package input

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type RunInput struct {
	Params map[string]string
	Mode   entity.ExecutionMode
}

type StreamMessageType string

const (
	StreamStart    StreamMessageType = "start"
	StreamUpdate   StreamMessageType = "update"
	StreamComplete StreamMessageType = "complete"
	StreamError    StreamMessageType = "error"
)

// StreamMessage is one event of a streamed run as sent to the client.
type StreamMessage struct {
	Type        StreamMessageType       `json:"type"`
	Stage       entity.UpdateKind       `json:"stage,omitempty"`
	Message     string                  `json:"message,omitempty"`
	Timestamp   string                  `json:"timestamp,omitempty"`
	Screenshot  string                  `json:"screenshot,omitempty"`
	LiveViewURL string                  `json:"liveViewUrl,omitempty"`
	Task        *entity.TaskSummary     `json:"task,omitempty"`
	Result      *entity.ExecutionResult `json:"result,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

type TaskRunner interface {
	Plan(ctx context.Context, taskID string, params map[string]string) (entity.Plan, error)
	Run(ctx context.Context, taskID string, in RunInput) (*entity.RunTaskResponse, error)
	Stream(ctx context.Context, taskID string, in RunInput, emit func(StreamMessage) error) error
}
