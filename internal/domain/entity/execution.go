package entity

import "time"

type ExecutionMode string

const (
	ModeCloud     ExecutionMode = "cloud"
	ModeLocal     ExecutionMode = "local"
	ModeStreaming ExecutionMode = "streaming"
)

// ParseExecutionMode maps unknown or empty values to ModeCloud.
func ParseExecutionMode(s string) ExecutionMode {
	switch ExecutionMode(s) {
	case ModeLocal:
		return ModeLocal
	case ModeStreaming:
		return ModeStreaming
	default:
		return ModeCloud
	}
}

type ExecutionResult struct {
	Success     bool     `json:"success"`
	Plan        Plan     `json:"plan"`
	Screenshots []string `json:"screenshots,omitempty"`
	Error       string   `json:"error,omitempty"`
	Logs        []string `json:"logs"`
}

// FailedResult builds a result carrying err in both Error and Logs.
func FailedResult(plan Plan, message string, logs ...string) ExecutionResult {
	out := make([]string, 0, len(logs)+1)
	out = append(out, logs...)
	out = append(out, message)
	return ExecutionResult{
		Success: false,
		Plan:    plan,
		Error:   message,
		Logs:    out,
	}
}

type UpdateKind string

const (
	UpdateStart    UpdateKind = "start"
	UpdateProgress UpdateKind = "progress"
	UpdateStep     UpdateKind = "step"
	UpdateComplete UpdateKind = "complete"
	UpdateError    UpdateKind = "error"
)

type Update struct {
	Kind        UpdateKind `json:"stage"`
	Message     string     `json:"message"`
	Timestamp   time.Time  `json:"timestamp"`
	Screenshot  string     `json:"screenshot,omitempty"`
	LiveViewURL string     `json:"liveViewUrl,omitempty"`
}

func NewUpdate(kind UpdateKind, message string) Update {
	return Update{Kind: kind, Message: message, Timestamp: time.Now().UTC()}
}

type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

type RunTaskResponse struct {
	ExecutionID string          `json:"executionId"`
	Plan        Plan            `json:"plan"`
	Status      RunStatus       `json:"status"`
	Result      ExecutionResult `json:"result"`
}
