package prompts

import (
	_ "embed"
)

//go:embed system.txt
var PlannerSystemPrompt string

//go:embed planning.txt
var PlanningPrompt string

//go:embed button.js.tmpl
var ButtonScript string
