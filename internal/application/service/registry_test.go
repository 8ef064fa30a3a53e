package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type stubHandler struct{ t entity.StepType }

func (h stubHandler) Type() entity.StepType { return h.t }

func (h stubHandler) Execute(context.Context, output.BrowserPort, entity.PlanStep) (output.StepOutcome, error) {
	return output.StepOutcome{}, nil
}

type stubLLM struct{}

func (stubLLM) Chat(context.Context, output.ChatRequest) (*output.ChatResponse, error) {
	return &output.ChatResponse{}, nil
}

func TestStepRegistry_Lookup(t *testing.T) {
	r := NewStepRegistry()
	r.Register(stubHandler{entity.StepCapture})
	r.Register(stubHandler{entity.StepNavigate})

	h, ok := r.Get(entity.StepNavigate)
	require.True(t, ok)
	assert.Equal(t, entity.StepNavigate, h.Type())

	_, ok = r.Get(entity.StepClick)
	assert.False(t, ok)
}

func TestProviderRegistry(t *testing.T) {
	r := NewProviderRegistry()
	r.Register(entity.LLMLlama31, stubLLM{})
	r.Register(entity.LLMClaudeHaiku, stubLLM{})

	_, ok := r.Get(entity.LLMClaudeHaiku)
	assert.True(t, ok)
	_, ok = r.Get(entity.LLMGPT4oMini)
	assert.False(t, ok)
	assert.Equal(t, []entity.LLMChoice{entity.LLMClaudeHaiku, entity.LLMLlama31}, r.Choices())
}

type stubExecutor struct{ kind output.ExecutorKind }

func (e stubExecutor) Kind() output.ExecutorKind { return e.kind }

func (e stubExecutor) Run(context.Context, output.RunRequest) entity.ExecutionResult {
	return entity.ExecutionResult{Success: true}
}

func (e stubExecutor) RunStreaming(context.Context, output.RunRequest, output.UpdateFunc) entity.ExecutionResult {
	return entity.ExecutionResult{Success: true}
}

func TestRegistries_ConcurrentRegisterAndGet(t *testing.T) {
	steps := NewStepRegistry()
	executors := NewExecutorRegistry()
	kinds := []output.ExecutorKind{output.ExecutorMock, output.ExecutorLocal, output.ExecutorCloudSession}

	var wg sync.WaitGroup
	for i := range 30 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			steps.Register(stubHandler{entity.StepNavigate})
			executors.Register(stubExecutor{kinds[i%len(kinds)]})
		}()
		go func() {
			defer wg.Done()
			steps.Get(entity.StepNavigate)
			executors.Get(kinds[i%len(kinds)])
		}()
	}
	wg.Wait()

	_, ok := steps.Get(entity.StepNavigate)
	assert.True(t, ok)
	for _, kind := range kinds {
		_, ok := executors.Get(kind)
		assert.True(t, ok, kind)
	}
}
