package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/llm"
)

var _ output.LLMPort = (*Adapter)(nil)

const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	GroqBaseURL   = "https://api.groq.com/openai/v1"

	OpenAIModel = "gpt-4o-mini"
	GroqModel   = "llama-3.1-8b-instant"
)

// Adapter talks to any OpenAI-compatible chat completions endpoint.
type Adapter struct {
	client *openai.Client
	model  string
	name   string
	logger output.LoggerPort
}

type Config struct {
	// Name labels the provider in logs and errors.
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	Logger  output.LoggerPort
}

func OpenAIConfig(apiKey string) Config {
	return Config{
		Name:    "openai",
		APIKey:  apiKey,
		Model:   OpenAIModel,
		BaseURL: OpenAIBaseURL,
		Timeout: 60 * time.Second,
	}
}

func GroqConfig(apiKey string) Config {
	return Config{
		Name:    "groq",
		APIKey:  apiKey,
		Model:   GroqModel,
		BaseURL: GroqBaseURL,
		Timeout: 60 * time.Second,
	}
}

func NewAdapter(cfg Config) *Adapter {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	var logger output.LoggerPort
	if cfg.Logger != nil {
		logger = cfg.Logger.Named(cfg.Name)
		config.HTTPClient = llm.NewHTTPClient(logger, cfg.Timeout)
	}

	return &Adapter{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
		name:   cfg.Name,
		logger: logger,
	}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s chat completion failed: %w", a.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: no choices in response", a.name)
	}

	return &output.ChatResponse{
		Message: convertResponseMessage(resp.Choices[0].Message),
	}, nil
}

func convertMessages(messages []entity.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return result
}

func convertResponseMessage(msg openai.ChatCompletionMessage) entity.Message {
	return entity.Message{
		Role:    entity.MessageRole(msg.Role),
		Content: msg.Content,
	}
}
