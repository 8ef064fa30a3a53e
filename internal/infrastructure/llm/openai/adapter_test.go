package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

func TestAdapter_Chat(t *testing.T) {
	var got openai.ChatCompletionRequest
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"steps\":[]}"}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	cfg := GroqConfig("gsk_test")
	cfg.BaseURL = server.URL
	cfg.Logger = logger.NewNop()
	adapter := NewAdapter(cfg)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: "plan"},
			{Role: entity.RoleUser, Content: "go"},
		},
		Temperature: 0.1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer gsk_test", auth)
	assert.Equal(t, GroqModel, got.Model)
	assert.InDelta(t, 0.1, got.Temperature, 1e-6)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, entity.RoleAssistant, resp.Message.Role)
	assert.Equal(t, `{"steps":[]}`, resp.Message.Content)
}

func TestAdapter_ChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	cfg := OpenAIConfig("sk-bad")
	cfg.BaseURL = server.URL
	adapter := NewAdapter(cfg)

	_, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai chat completion failed")
}

func TestAdapter_ChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	cfg := OpenAIConfig("sk")
	cfg.BaseURL = server.URL
	_, err := NewAdapter(cfg).Chat(context.Background(), output.ChatRequest{})
	assert.ErrorContains(t, err, "no choices")
}

func TestConvertResponseMessage(t *testing.T) {
	msg := convertResponseMessage(openai.ChatCompletionMessage{Role: "assistant", Content: "Hello, world!"})

	assert.Equal(t, entity.RoleAssistant, msg.Role)
	assert.Equal(t, "Hello, world!", msg.Content)
}
