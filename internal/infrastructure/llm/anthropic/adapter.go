package anthropic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/llm"
)

var _ output.LLMPort = (*Adapter)(nil)

const (
	DefaultModel     = "claude-3-haiku-20240307"
	DefaultMaxTokens = 1000
)

type Adapter struct {
	model     llms.Model
	maxTokens int
}

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Anthropic API root, e.g. for tests.
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
	Logger    output.LoggerPort
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:    apiKey,
		Model:     DefaultModel,
		MaxTokens: DefaultMaxTokens,
		Timeout:   60 * time.Second,
	}
}

func NewAdapter(cfg Config) (*Adapter, error) {
	opts := []anthropic.Option{
		anthropic.WithToken(cfg.APIKey),
		anthropic.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Logger != nil {
		opts = append(opts, anthropic.WithHTTPClient(llm.NewHTTPClient(cfg.Logger.Named("anthropic"), cfg.Timeout)))
	}

	model, err := anthropic.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create anthropic client: %w", err)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Adapter{model: model, maxTokens: maxTokens}, nil
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = a.maxTokens
	}

	resp, err := a.model.GenerateContent(ctx, convertMessages(req.Messages),
		llms.WithTemperature(float64(req.Temperature)),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("anthropic chat failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("anthropic: no choices in response")
	}

	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: resp.Choices[0].Content},
	}, nil
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		result = append(result, llms.TextParts(chatType(msg.Role), msg.Content))
	}
	return result
}

func chatType(role entity.MessageRole) llms.ChatMessageType {
	switch role {
	case entity.RoleSystem:
		return llms.ChatMessageTypeSystem
	case entity.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}
