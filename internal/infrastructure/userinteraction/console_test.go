package userinteraction

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

func newTestPrinter() (*ConsolePrinter, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	return NewConsolePrinter(&buf), &buf
}

func TestShowTasks(t *testing.T) {
	p, buf := newTestPrinter()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	p.ShowTasks([]entity.Task{{
		ID:        "tsk_abc12345",
		Name:      "Coupon",
		Website:   "https://shop.example",
		LLM:       entity.LLMGPT4oMini,
		Status:    entity.TaskStatusPublished,
		CreatedAt: now.Add(-3 * time.Hour),
	}})

	out := buf.String()
	assert.Contains(t, out, "tsk_abc12345  Coupon [published]")
	assert.Contains(t, out, "3 hours ago")
}

func TestShowTasks_Empty(t *testing.T) {
	p, buf := newTestPrinter()
	p.ShowTasks(nil)
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestShowEvent(t *testing.T) {
	p, buf := newTestPrinter()

	p.ShowEvent(input.StreamMessage{Type: input.StreamStart, Message: "Starting task execution...", Task: &entity.TaskSummary{Name: "Coupon"}})
	p.ShowEvent(input.StreamMessage{Type: input.StreamUpdate, Stage: entity.UpdateStep, Message: "1. Navigate to https://x.com",
		Screenshot: "data:image/png;base64,AAAA"})
	p.ShowEvent(input.StreamMessage{Type: input.StreamError, Message: "Task execution failed: boom"})

	out := buf.String()
	assert.Contains(t, out, "▶ Starting task execution... Coupon")
	assert.Contains(t, out, "→ 1. Navigate to https://x.com")
	assert.Contains(t, out, "inline image/png")
	assert.NotContains(t, out, "base64,AAAA")
	assert.Contains(t, out, "❌ Task execution failed: boom")
}

func TestShowRun(t *testing.T) {
	p, buf := newTestPrinter()

	p.ShowRun(&entity.RunTaskResponse{
		ExecutionID: "exec_12345678",
		Status:      entity.RunFailed,
		Plan:        entity.Plan{Steps: []entity.PlanStep{entity.Navigate("https://x.com")}, EstimatedDuration: 5},
		Result:      entity.FailedResult(entity.Plan{}, "boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "Plan: 1 steps, ~5s")
	assert.Contains(t, out, "exec_12345678 failed: boom")
}
