package planner

import (
	"strings"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

const (
	minDurationSeconds  = 5
	secondsPerStepGuess = 3
)

// HeuristicPlan builds a plan from keywords in the raw instructions. It is a
// crude keyword match, not parsing: "click", "type"/"paste" and "capture"
// anywhere in the text (case-insensitive) each add one fixed step.
func HeuristicPlan(task entity.Task) entity.Plan {
	steps := []entity.PlanStep{
		entity.Navigate(task.Website),
		entity.Wait(entity.DefaultWaitMs),
	}

	lower := strings.ToLower(task.Instructions)
	if strings.Contains(lower, "click") {
		steps = append(steps, entity.Click("button"))
	}
	if strings.Contains(lower, "type") || strings.Contains(lower, "paste") {
		steps = append(steps, entity.TypeText("input", "sample text"))
	}
	if strings.Contains(lower, "capture") {
		steps = append(steps, entity.Capture())
	}

	return entity.Plan{
		Steps:             steps,
		EstimatedDuration: EstimateDuration(len(steps)),
	}
}

// EstimateDuration returns max(5, steps*3) seconds.
func EstimateDuration(steps int) int {
	return max(minDurationSeconds, steps*secondsPerStepGuess)
}
