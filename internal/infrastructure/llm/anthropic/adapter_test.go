package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

func TestAdapter_Chat(t *testing.T) {
	var body map[string]any
	var apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		apiKey = r.Header.Get("x-api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-haiku-20240307",
			"content": [{"type": "text", "text": "{\"steps\":[{\"type\":\"capture\"}]}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	cfg := DefaultConfig("sk-ant-test")
	cfg.BaseURL = server.URL
	cfg.Logger = logger.NewNop()
	adapter, err := NewAdapter(cfg)
	require.NoError(t, err)

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: "You are a planner."},
			{Role: entity.RoleUser, Content: "plan it"},
		},
		Temperature: 0.1,
	})
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-test", apiKey)
	assert.Equal(t, DefaultModel, body["model"])
	assert.EqualValues(t, DefaultMaxTokens, body["max_tokens"])
	assert.Equal(t, "You are a planner.", body["system"])
	assert.Equal(t, `{"steps":[{"type":"capture"}]}`, resp.Message.Content)
}

func TestAdapter_ChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer server.Close()

	cfg := DefaultConfig("sk-ant-test")
	cfg.BaseURL = server.URL
	adapter, err := NewAdapter(cfg)
	require.NoError(t, err)

	_, err = adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic chat failed")
}

func TestNewAdapter_RequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err := NewAdapter(DefaultConfig(""))
	assert.Error(t, err)
}
