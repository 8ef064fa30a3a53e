package service

import (
	"sort"
	"sync"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var _ output.StepRegistry = (*StepRegistryImpl)(nil)

type StepRegistryImpl struct {
	mu       sync.RWMutex
	handlers map[entity.StepType]output.StepHandler
}

func NewStepRegistry() *StepRegistryImpl {
	return &StepRegistryImpl{
		handlers: make(map[entity.StepType]output.StepHandler),
	}
}

func (r *StepRegistryImpl) Register(handler output.StepHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[handler.Type()] = handler
}

func (r *StepRegistryImpl) Get(stepType entity.StepType) (output.StepHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[stepType]
	return handler, ok
}

var _ output.ProviderRegistry = (*ProviderRegistryImpl)(nil)

type ProviderRegistryImpl struct {
	mu        sync.RWMutex
	providers map[entity.LLMChoice]output.LLMPort
}

func NewProviderRegistry() *ProviderRegistryImpl {
	return &ProviderRegistryImpl{
		providers: make(map[entity.LLMChoice]output.LLMPort),
	}
}

func (r *ProviderRegistryImpl) Register(choice entity.LLMChoice, provider output.LLMPort) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[choice] = provider
}

func (r *ProviderRegistryImpl) Get(choice entity.LLMChoice) (output.LLMPort, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[choice]
	return provider, ok
}

func (r *ProviderRegistryImpl) Choices() []entity.LLMChoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.LLMChoice, 0, len(r.providers))
	for choice := range r.providers {
		result = append(result, choice)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

var _ output.ExecutorRegistry = (*ExecutorRegistryImpl)(nil)

type ExecutorRegistryImpl struct {
	mu       sync.RWMutex
	adapters map[output.ExecutorKind]output.ExecutionAdapter
}

func NewExecutorRegistry() *ExecutorRegistryImpl {
	return &ExecutorRegistryImpl{
		adapters: make(map[output.ExecutorKind]output.ExecutionAdapter),
	}
}

func (r *ExecutorRegistryImpl) Register(adapter output.ExecutionAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[adapter.Kind()] = adapter
}

func (r *ExecutorRegistryImpl) Get(kind output.ExecutorKind) (output.ExecutionAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[kind]
	return adapter, ok
}
