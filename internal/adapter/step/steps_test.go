package step

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/service"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

type fakeBrowser struct {
	url     string
	texts   map[string]string
	filled  map[string]string
	clicked []string
	failOn  string
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{texts: map[string]string{}, filled: map[string]string{}}
}

func (b *fakeBrowser) Navigate(_ context.Context, url string) error {
	if b.failOn == "navigate" {
		return errors.New("net::ERR_NAME_NOT_RESOLVED")
	}
	b.url = url
	return nil
}

func (b *fakeBrowser) Click(_ context.Context, selector string) error {
	if b.failOn == "click" {
		return errors.New("element not found: " + selector)
	}
	b.clicked = append(b.clicked, selector)
	return nil
}

func (b *fakeBrowser) Fill(_ context.Context, selector, text string) error {
	b.filled[selector] = text
	return nil
}

func (b *fakeBrowser) Text(_ context.Context, selector string) (string, error) {
	text, ok := b.texts[selector]
	if !ok {
		return "", errors.New("element not found: " + selector)
	}
	return text, nil
}

func (b *fakeBrowser) PageHTML(context.Context) (string, error) { return "<html></html>", nil }

func (b *fakeBrowser) Screenshot(context.Context) (*entity.Screenshot, error) {
	return &entity.Screenshot{Data: []byte{0xff, 0xd8}, Format: "jpeg", Width: 1, Height: 1}, nil
}

func (b *fakeBrowser) CurrentURL() string { return b.url }
func (b *fakeBrowser) Close()             {}

func TestRegisterAll_CoversEveryStepType(t *testing.T) {
	reg := service.NewStepRegistry()
	RegisterAll(reg, logger.NewNop())

	for _, st := range entity.StepTypes {
		h, ok := reg.Get(st)
		require.True(t, ok, st)
		assert.Equal(t, st, h.Type())
	}
}

func TestNavigateClickType(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()
	b := newFakeBrowser()

	out, err := NewNavigateStep(log).Execute(ctx, b, entity.Navigate("https://x.com"))
	require.NoError(t, err)
	assert.Equal(t, "Navigated to https://x.com", out.Log)

	_, err = NewClickStep(log).Execute(ctx, b, entity.Click("#go"))
	require.NoError(t, err)
	assert.Equal(t, []string{"#go"}, b.clicked)

	_, err = NewTypeStep(log).Execute(ctx, b, entity.TypeText("input", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", b.filled["input"])
}

func TestNavigate_PropagatesError(t *testing.T) {
	b := newFakeBrowser()
	b.failOn = "navigate"

	_, err := NewNavigateStep(logger.NewNop()).Execute(context.Background(), b, entity.Navigate("https://nope"))
	assert.Error(t, err)
}

func TestWaitStep(t *testing.T) {
	var slept []time.Duration
	s := NewWaitStep(logger.NewNop())
	s.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	_, err := s.Execute(context.Background(), nil, entity.Wait(500))
	require.NoError(t, err)
	_, err = s.Execute(context.Background(), nil, entity.PlanStep{Type: entity.StepWait})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{500 * time.Millisecond, 2 * time.Second}, slept)
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssertTextStep(t *testing.T) {
	b := newFakeBrowser()
	b.texts[".msg"] = "Coupon applied: 20% off"
	s := NewAssertTextStep(logger.NewNop())

	_, err := s.Execute(context.Background(), b, entity.AssertText(".msg", "20% off"))
	assert.NoError(t, err)

	_, err = s.Execute(context.Background(), b, entity.AssertText(".msg", "Invalid"))
	assert.ErrorIs(t, err, ErrAssertionFailed)

	_, err = s.Execute(context.Background(), b, entity.AssertText(".missing", "x"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAssertionFailed)
}

func TestCaptureStep(t *testing.T) {
	out, err := NewCaptureStep(logger.NewNop()).Execute(context.Background(), newFakeBrowser(), entity.Capture())
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,/9g=", out.Screenshot)
}
