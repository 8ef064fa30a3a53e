package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var ErrNoJSON = errors.New("no JSON object in model response")

// ParsePlan extracts the outermost JSON object from a model response and
// decodes it as a plan. Every step must validate.
func ParsePlan(response string) (entity.Plan, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return entity.Plan{}, ErrNoJSON
	}

	var plan entity.Plan
	if err := json.Unmarshal([]byte(response[start:end+1]), &plan); err != nil {
		return entity.Plan{}, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return entity.Plan{}, err
	}
	if plan.EstimatedDuration <= 0 {
		plan.EstimatedDuration = EstimateDuration(len(plan.Steps))
	}
	return plan, nil
}
