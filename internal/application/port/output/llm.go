package output

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Temperature float32
	MaxTokens   int
}

type ChatResponse struct {
	Message entity.Message
}

// ProviderRegistry resolves the LLM backing a task's model choice.
type ProviderRegistry interface {
	Register(choice entity.LLMChoice, provider LLMPort)
	Get(choice entity.LLMChoice) (LLMPort, bool)
	Choices() []entity.LLMChoice
}
