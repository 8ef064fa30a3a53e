package entity

import (
	"errors"
	"fmt"
)

type StepType string

const (
	StepNavigate   StepType = "navigate"
	StepClick      StepType = "click"
	StepTypeText   StepType = "type"
	StepWait       StepType = "wait"
	StepAssertText StepType = "assertText"
	StepCapture    StepType = "capture"
)

var StepTypes = []StepType{StepNavigate, StepClick, StepTypeText, StepWait, StepAssertText, StepCapture}

func (t StepType) Valid() bool {
	for _, known := range StepTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t StepType) String() string {
	return string(t)
}

// PlanStep is one abstract browser action. Which data fields are meaningful
// depends on Type:
//
//	navigate   Value (url)
//	click      Selector
//	type       Selector, Value
//	wait       Timeout (ms)
//	assertText Selector, Text
//	capture    -
type PlanStep struct {
	Type     StepType `json:"type"`
	Selector string   `json:"selector,omitempty"`
	Value    string   `json:"value,omitempty"`
	Text     string   `json:"text,omitempty"`
	Timeout  int      `json:"timeout,omitempty"`
}

func Navigate(url string) PlanStep {
	return PlanStep{Type: StepNavigate, Value: url}
}

func Click(selector string) PlanStep {
	return PlanStep{Type: StepClick, Selector: selector}
}

func TypeText(selector, value string) PlanStep {
	return PlanStep{Type: StepTypeText, Selector: selector, Value: value}
}

func Wait(timeoutMs int) PlanStep {
	return PlanStep{Type: StepWait, Timeout: timeoutMs}
}

func AssertText(selector, expected string) PlanStep {
	return PlanStep{Type: StepAssertText, Selector: selector, Text: expected}
}

func Capture() PlanStep {
	return PlanStep{Type: StepCapture}
}

var ErrInvalidStep = errors.New("invalid plan step")

func (s PlanStep) Validate() error {
	switch s.Type {
	case StepNavigate:
		if s.Value == "" {
			return fmt.Errorf("%w: navigate requires a url value", ErrInvalidStep)
		}
	case StepClick:
		if s.Selector == "" {
			return fmt.Errorf("%w: click requires a selector", ErrInvalidStep)
		}
	case StepTypeText:
		if s.Selector == "" {
			return fmt.Errorf("%w: type requires a selector", ErrInvalidStep)
		}
	case StepWait:
		if s.Timeout < 0 {
			return fmt.Errorf("%w: wait timeout must not be negative", ErrInvalidStep)
		}
	case StepAssertText:
		if s.Selector == "" {
			return fmt.Errorf("%w: assertText requires a selector", ErrInvalidStep)
		}
	case StepCapture:
	default:
		return fmt.Errorf("%w: unknown step type %q", ErrInvalidStep, s.Type)
	}
	return nil
}

// Describe renders the step as a numbered human instruction.
func (s PlanStep) Describe(index int) string {
	n := index + 1
	switch s.Type {
	case StepNavigate:
		return fmt.Sprintf("%d. Navigate to %s", n, s.Value)
	case StepClick:
		return fmt.Sprintf("%d. Click on %s", n, orDefault(s.Selector, "the specified element"))
	case StepTypeText:
		return fmt.Sprintf("%d. Type %q into %s", n, s.Value, orDefault(s.Selector, "the input field"))
	case StepWait:
		timeout := s.Timeout
		if timeout == 0 {
			timeout = DefaultWaitMs
		}
		return fmt.Sprintf("%d. Wait for %dms", n, timeout)
	case StepAssertText:
		return fmt.Sprintf("%d. Verify that %s contains the text %q", n, orDefault(s.Selector, "the element"), s.Text)
	case StepCapture:
		return fmt.Sprintf("%d. Take a screenshot", n)
	default:
		return fmt.Sprintf("%d. Execute %s", n, s.Type)
	}
}

const DefaultWaitMs = 2000

type Plan struct {
	Steps             []PlanStep `json:"steps"`
	EstimatedDuration int        `json:"estimatedDuration"`
}

func (p Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: plan has no steps", ErrInvalidStep)
	}
	for i, step := range p.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
