package entity

import "time"

type TaskStatus string

const (
	TaskStatusDraft     TaskStatus = "draft"
	TaskStatusPublished TaskStatus = "published"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusDraft || s == TaskStatusPublished
}

type LLMChoice string

const (
	LLMGPT4oMini   LLMChoice = "gpt-4o-mini"
	LLMClaudeHaiku LLMChoice = "claude-haiku"
	LLMLlama31     LLMChoice = "llama-3.1-8b"
)

var LLMChoices = []LLMChoice{LLMGPT4oMini, LLMClaudeHaiku, LLMLlama31}

func (c LLMChoice) Valid() bool {
	for _, known := range LLMChoices {
		if c == known {
			return true
		}
	}
	return false
}

func (c LLMChoice) String() string {
	return string(c)
}

type TaskParam struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Required bool   `json:"required,omitempty"`
}

type Task struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Website      string      `json:"website"`
	LLM          LLMChoice   `json:"llm"`
	Instructions string      `json:"instructions"`
	Params       []TaskParam `json:"params"`
	Status       TaskStatus  `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (t Task) IsPublished() bool {
	return t.Status == TaskStatusPublished
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	out := t
	if t.Params != nil {
		out.Params = make([]TaskParam, len(t.Params))
		copy(out.Params, t.Params)
	}
	return out
}

// TaskPatch carries the mutable fields of a Task; nil fields are left untouched.
type TaskPatch struct {
	Name         *string      `json:"name,omitempty"`
	Website      *string      `json:"website,omitempty"`
	LLM          *LLMChoice   `json:"llm,omitempty"`
	Instructions *string      `json:"instructions,omitempty"`
	Params       *[]TaskParam `json:"params,omitempty"`
	Status       *TaskStatus  `json:"status,omitempty"`
}

// Apply merges the patch into a copy of t. ID and CreatedAt are never touched.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.LLM != nil {
		out.LLM = *p.LLM
	}
	if p.Instructions != nil {
		out.Instructions = *p.Instructions
	}
	if p.Params != nil {
		out.Params = append([]TaskParam(nil), (*p.Params)...)
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	return out
}

type TaskSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

func (t Task) Summary() TaskSummary {
	return TaskSummary{ID: t.ID, Name: t.Name, Website: t.Website}
}
