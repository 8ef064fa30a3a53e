package output

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

// StepOutcome is what a step handler produced besides success.
type StepOutcome struct {
	Log        string
	Screenshot string
}

type StepHandler interface {
	Type() entity.StepType
	Execute(ctx context.Context, browser BrowserPort, step entity.PlanStep) (StepOutcome, error)
}

type StepRegistry interface {
	Register(handler StepHandler)
	Get(stepType entity.StepType) (StepHandler, bool)
}
