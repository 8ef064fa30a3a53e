package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

func request() output.RunRequest {
	return output.RunRequest{
		Task: entity.Task{ID: "tsk_abc12345", Name: "Search"},
		Plan: entity.Plan{Steps: []entity.PlanStep{
			entity.Navigate("https://example.com"),
			entity.Wait(2000),
			entity.Capture(),
		}, EstimatedDuration: 9},
	}
}

func TestAdapter_Run(t *testing.T) {
	res := NewAdapter(0, logger.NewNop()).Run(t.Context(), request())

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, []string{Screenshot}, res.Screenshots)
	assert.Equal(t, []string{
		"Mock: Navigated to website",
		"Mock: Executed automation steps",
		"Mock: Captured screenshot",
		"Mock: Task completed successfully",
	}, res.Logs)
	assert.Equal(t, request().Plan, res.Plan)
}

func TestAdapter_RunStreaming(t *testing.T) {
	var updates []entity.Update
	res := NewAdapter(0, logger.NewNop()).RunStreaming(t.Context(), request(), func(u entity.Update) {
		updates = append(updates, u)
	})

	require.True(t, res.Success)
	require.Len(t, updates, 5)
	assert.Equal(t, entity.UpdateStart, updates[0].Kind)
	for _, u := range updates[1:4] {
		assert.Equal(t, entity.UpdateStep, u.Kind)
	}
	assert.Equal(t, "1. Navigate to https://example.com", updates[1].Message)
	assert.Equal(t, Screenshot, updates[3].Screenshot)
	assert.Equal(t, entity.UpdateComplete, updates[4].Kind)
}

func TestAdapter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var last entity.Update
	res := NewAdapter(DefaultDelay, logger.NewNop()).RunStreaming(ctx, request(), func(u entity.Update) { last = u })

	assert.False(t, res.Success)
	assert.Equal(t, entity.UpdateError, last.Kind)
	assert.Contains(t, res.Error, "cancelled")
}
