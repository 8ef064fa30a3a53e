package local

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/adapter/step"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/application/service"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

type fakeBrowser struct {
	url    string
	texts  map[string]string
	html   string
	closed bool
}

func (b *fakeBrowser) Navigate(_ context.Context, url string) error {
	b.url = url
	return nil
}

func (b *fakeBrowser) Click(_ context.Context, selector string) error {
	if selector == "#missing" {
		return errors.New("element not found: #missing")
	}
	return nil
}

func (b *fakeBrowser) Fill(context.Context, string, string) error { return nil }

func (b *fakeBrowser) Text(_ context.Context, selector string) (string, error) {
	return b.texts[selector], nil
}

func (b *fakeBrowser) PageHTML(context.Context) (string, error) { return b.html, nil }

func (b *fakeBrowser) Screenshot(context.Context) (*entity.Screenshot, error) {
	return &entity.Screenshot{Data: []byte{0xff, 0xd8}, Format: "jpeg", Width: 1, Height: 1}, nil
}

func (b *fakeBrowser) CurrentURL() string { return b.url }
func (b *fakeBrowser) Close()             { b.closed = true }

func newAdapter(browser *fakeBrowser) *Adapter {
	reg := service.NewStepRegistry()
	step.RegisterAll(reg, logger.NewNop())
	factory := func(context.Context) (output.BrowserPort, error) { return browser, nil }
	return NewAdapter(factory, reg, logger.NewNop())
}

func request(steps ...entity.PlanStep) output.RunRequest {
	return output.RunRequest{
		Task: entity.Task{ID: "tsk_abc12345", Name: "Form", Website: "https://form.example"},
		Plan: entity.Plan{Steps: steps, EstimatedDuration: 5},
	}
}

func TestAdapter_RunsPlan(t *testing.T) {
	browser := &fakeBrowser{
		texts: map[string]string{".msg": "Thanks, form sent"},
		html:  "<html><body><h1>Thanks</h1><script>x()</script></body></html>",
	}

	var updates []entity.Update
	res := newAdapter(browser).RunStreaming(t.Context(), request(
		entity.Navigate("https://form.example"),
		entity.TypeText("#email", "a@b.c"),
		entity.Click("button"),
		entity.AssertText(".msg", "Thanks"),
		entity.Capture(),
	), func(u entity.Update) { updates = append(updates, u) })

	require.True(t, res.Success, res.Error)
	assert.True(t, browser.closed)
	assert.Len(t, res.Screenshots, 1)
	assert.Equal(t, "Output: Thanks", res.Logs[len(res.Logs)-1])

	require.Len(t, updates, 7)
	assert.Equal(t, entity.UpdateStart, updates[0].Kind)
	for _, u := range updates[1:6] {
		assert.Equal(t, entity.UpdateProgress, u.Kind)
	}
	assert.NotEmpty(t, updates[5].Screenshot)
	assert.Equal(t, entity.UpdateComplete, updates[6].Kind)
}

func TestAdapter_AssertionFailureFailsRun(t *testing.T) {
	browser := &fakeBrowser{texts: map[string]string{".msg": "Error"}}

	var last entity.Update
	res := newAdapter(browser).RunStreaming(t.Context(), request(
		entity.Navigate("https://form.example"),
		entity.AssertText(".msg", "Success"),
	), func(u entity.Update) { last = u })

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "assertion failed")
	assert.Equal(t, entity.UpdateError, last.Kind)
	assert.True(t, browser.closed)
}

func TestAdapter_StepErrorFailsRun(t *testing.T) {
	res := newAdapter(&fakeBrowser{}).Run(t.Context(), request(entity.Click("#missing")))

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "element not found")
	assert.Contains(t, res.Error, "1. Click on #missing")
}

func TestAdapter_InvalidPlan(t *testing.T) {
	res := newAdapter(&fakeBrowser{}).Run(t.Context(), request())

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "plan has no steps")
}

func TestAdapter_LaunchFailure(t *testing.T) {
	factory := func(context.Context) (output.BrowserPort, error) { return nil, errors.New("chrome not found") }
	adapter := NewAdapter(factory, service.NewStepRegistry(), logger.NewNop())

	res := adapter.Run(t.Context(), request(entity.Navigate("https://x.example")))

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "launch browser: chrome not found")
}

func TestAdapter_CancelledBeforeStep(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	res := newAdapter(&fakeBrowser{}).Run(ctx, request(entity.Navigate("https://x.example")))

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, context.Canceled.Error())
}
