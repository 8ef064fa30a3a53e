package step

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var ErrAssertionFailed = errors.New("assertion failed")

type NavigateStep struct {
	logger output.LoggerPort
}

func NewNavigateStep(logger output.LoggerPort) *NavigateStep {
	return &NavigateStep{logger: logger}
}

func (s *NavigateStep) Type() entity.StepType { return entity.StepNavigate }

func (s *NavigateStep) Execute(ctx context.Context, browser output.BrowserPort, step entity.PlanStep) (output.StepOutcome, error) {
	if err := browser.Navigate(ctx, step.Value); err != nil {
		return output.StepOutcome{}, err
	}
	s.logger.Debug("Navigated", "url", browser.CurrentURL())
	return output.StepOutcome{Log: fmt.Sprintf("Navigated to %s", browser.CurrentURL())}, nil
}

type ClickStep struct {
	logger output.LoggerPort
}

func NewClickStep(logger output.LoggerPort) *ClickStep {
	return &ClickStep{logger: logger}
}

func (s *ClickStep) Type() entity.StepType { return entity.StepClick }

func (s *ClickStep) Execute(ctx context.Context, browser output.BrowserPort, step entity.PlanStep) (output.StepOutcome, error) {
	if err := browser.Click(ctx, step.Selector); err != nil {
		return output.StepOutcome{}, err
	}
	return output.StepOutcome{Log: fmt.Sprintf("Clicked %s", step.Selector)}, nil
}

type TypeStep struct {
	logger output.LoggerPort
}

func NewTypeStep(logger output.LoggerPort) *TypeStep {
	return &TypeStep{logger: logger}
}

func (s *TypeStep) Type() entity.StepType { return entity.StepTypeText }

func (s *TypeStep) Execute(ctx context.Context, browser output.BrowserPort, step entity.PlanStep) (output.StepOutcome, error) {
	if err := browser.Fill(ctx, step.Selector, step.Value); err != nil {
		return output.StepOutcome{}, err
	}
	return output.StepOutcome{Log: fmt.Sprintf("Typed %q into %s", step.Value, step.Selector)}, nil
}

// WaitStep pauses for the step timeout, or entity.DefaultWaitMs when unset.
type WaitStep struct {
	logger output.LoggerPort
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewWaitStep(logger output.LoggerPort) *WaitStep {
	return &WaitStep{logger: logger, sleep: Sleep}
}

func (s *WaitStep) Type() entity.StepType { return entity.StepWait }

func (s *WaitStep) Execute(ctx context.Context, _ output.BrowserPort, step entity.PlanStep) (output.StepOutcome, error) {
	ms := step.Timeout
	if ms <= 0 {
		ms = entity.DefaultWaitMs
	}
	if err := s.sleep(ctx, time.Duration(ms)*time.Millisecond); err != nil {
		return output.StepOutcome{}, err
	}
	return output.StepOutcome{Log: fmt.Sprintf("Waited %dms", ms)}, nil
}

type AssertTextStep struct {
	logger output.LoggerPort
}

func NewAssertTextStep(logger output.LoggerPort) *AssertTextStep {
	return &AssertTextStep{logger: logger}
}

func (s *AssertTextStep) Type() entity.StepType { return entity.StepAssertText }

func (s *AssertTextStep) Execute(ctx context.Context, browser output.BrowserPort, step entity.PlanStep) (output.StepOutcome, error) {
	text, err := browser.Text(ctx, step.Selector)
	if err != nil {
		return output.StepOutcome{}, err
	}
	if !strings.Contains(text, step.Text) {
		return output.StepOutcome{}, fmt.Errorf("%w: %s does not contain %q", ErrAssertionFailed, step.Selector, step.Text)
	}
	return output.StepOutcome{Log: fmt.Sprintf("Verified %s contains %q", step.Selector, step.Text)}, nil
}

type CaptureStep struct {
	logger output.LoggerPort
}

func NewCaptureStep(logger output.LoggerPort) *CaptureStep {
	return &CaptureStep{logger: logger}
}

func (s *CaptureStep) Type() entity.StepType { return entity.StepCapture }

func (s *CaptureStep) Execute(ctx context.Context, browser output.BrowserPort, _ entity.PlanStep) (output.StepOutcome, error) {
	shot, err := browser.Screenshot(ctx)
	if err != nil {
		return output.StepOutcome{}, err
	}
	s.logger.Debug("Captured screenshot", "width", shot.Width, "height", shot.Height, "bytes", len(shot.Data))
	return output.StepOutcome{
		Log:        "Captured screenshot",
		Screenshot: shot.DataURI(),
	}, nil
}

// RegisterAll adds a handler for every step type to reg.
func RegisterAll(reg output.StepRegistry, logger output.LoggerPort) {
	logger = logger.Named("step")
	reg.Register(NewNavigateStep(logger))
	reg.Register(NewClickStep(logger))
	reg.Register(NewTypeStep(logger))
	reg.Register(NewWaitStep(logger))
	reg.Register(NewAssertTextStep(logger))
	reg.Register(NewCaptureStep(logger))
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
