package httpapi

import (
	"strings"

	z "github.com/Oudwins/zog"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type CreateTaskRequest struct {
	Name         string             `json:"name" zog:"name"`
	Website      string             `json:"website" zog:"website"`
	LLM          string             `json:"llm" zog:"llm"`
	Instructions string             `json:"instructions" zog:"instructions"`
	Params       []entity.TaskParam `json:"params"`
	Status       string             `json:"status" zog:"status"`
}

func (r CreateTaskRequest) Task() entity.Task {
	params := r.Params
	if params == nil {
		params = []entity.TaskParam{}
	}
	status := entity.TaskStatus(r.Status)
	if status == "" {
		status = entity.TaskStatusDraft
	}
	return entity.Task{
		Name:         r.Name,
		Website:      r.Website,
		LLM:          entity.LLMChoice(r.LLM),
		Instructions: r.Instructions,
		Params:       params,
		Status:       status,
	}
}

type UpdateTaskRequest struct {
	Name         *string             `json:"name" zog:"name"`
	Website      *string             `json:"website" zog:"website"`
	LLM          *string             `json:"llm" zog:"llm"`
	Instructions *string             `json:"instructions" zog:"instructions"`
	Params       *[]entity.TaskParam `json:"params"`
	Status       *string             `json:"status" zog:"status"`
}

func (r UpdateTaskRequest) Patch() entity.TaskPatch {
	patch := entity.TaskPatch{
		Name:         r.Name,
		Website:      r.Website,
		Instructions: r.Instructions,
		Params:       r.Params,
	}
	if r.LLM != nil {
		llm := entity.LLMChoice(*r.LLM)
		patch.LLM = &llm
	}
	if r.Status != nil {
		status := entity.TaskStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

type RunTaskRequest struct {
	ParamValues map[string]string `json:"paramValues"`
}

type StreamTaskRequest struct {
	ParamValues   map[string]string `json:"paramValues"`
	ExecutionMode string            `json:"executionMode"`
}

// notBlank rejects values that are empty once whitespace is removed.
func notBlank(valPtr *string, _ z.Ctx) bool {
	return strings.TrimSpace(*valPtr) != ""
}

func knownLLM(valPtr *string, _ z.Ctx) bool {
	return entity.LLMChoice(*valPtr).Valid()
}

func knownStatus(valPtr *string, _ z.Ctx) bool {
	return entity.TaskStatus(*valPtr).Valid()
}

// optionalStatus accepts "" so the create handler can default it.
func optionalStatus(valPtr *string, c z.Ctx) bool {
	return *valPtr == "" || knownStatus(valPtr, c)
}

var blankMessage = z.Message("must not be blank")
var llmMessage = z.Message("llm must be one of gpt-4o-mini, claude-haiku, llama-3.1-8b")
var statusMessage = z.Message("status must be draft or published")

var CreateTaskSchema = z.Struct(z.Shape{
	"Name":         z.String().Required().Trim().TestFunc(notBlank, blankMessage),
	"Website":      z.String().Required().Trim().TestFunc(notBlank, blankMessage),
	"LLM":          z.String().Required().Trim().TestFunc(knownLLM, llmMessage),
	"Instructions": z.String().Required().TestFunc(notBlank, blankMessage),
	"Status":       z.String().Optional().Trim().TestFunc(optionalStatus, statusMessage),
})

var UpdateTaskSchema = z.Struct(z.Shape{
	"Name":         z.Ptr(z.String().Trim().TestFunc(notBlank, blankMessage)),
	"Website":      z.Ptr(z.String().Trim().TestFunc(notBlank, blankMessage)),
	"Instructions": z.Ptr(z.String().TestFunc(notBlank, blankMessage)),
	"LLM":          z.Ptr(z.String().Trim().TestFunc(knownLLM, llmMessage)),
	"Status":       z.Ptr(z.String().Trim().TestFunc(knownStatus, statusMessage)),
})
