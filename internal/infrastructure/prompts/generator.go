package prompts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type StepKind struct {
	Name    string
	Example string
}

// StepKinds documents every plan step the planner may emit, in prompt order.
var StepKinds = []StepKind{
	{Name: string(entity.StepNavigate), Example: `{type: "navigate", value: "https://..."}`},
	{Name: string(entity.StepClick), Example: `{type: "click", selector: "button#submit"}`},
	{Name: string(entity.StepTypeText), Example: `{type: "type", selector: "input[name='email']", value: "text"}`},
	{Name: string(entity.StepWait), Example: `{type: "wait", timeout: 2000}`},
	{Name: string(entity.StepAssertText), Example: `{type: "assertText", selector: ".message", text: "Success"}`},
	{Name: string(entity.StepCapture), Example: `{type: "capture"}`},
}

type PlanningPromptData struct {
	Website      string
	Instructions string
	ParamsJSON   string
	StepKinds    []StepKind
}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// GeneratePlanningPrompt renders baseTemplate for a task whose instructions
// have already been substituted.
func GeneratePlanningPrompt(baseTemplate string, task entity.Task, instructions string) (string, error) {
	params := task.Params
	if params == nil {
		params = []entity.TaskParam{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode params: %w", err)
	}

	data := PlanningPromptData{
		Website:      task.Website,
		Instructions: instructions,
		ParamsJSON:   string(paramsJSON),
		StepKinds:    StepKinds,
	}
	return render("planning", baseTemplate, data)
}

type ButtonScriptData struct {
	TaskID string
	RunURL string
	Label  string
}

func GenerateButtonScript(baseTemplate string, data ButtonScriptData) (string, error) {
	if data.Label == "" {
		data.Label = "Run with Superuzyr"
	}
	return render("button", baseTemplate, data)
}

func render(name, baseTemplate string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
