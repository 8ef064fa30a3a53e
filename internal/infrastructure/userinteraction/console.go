package userinteraction

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

// ConsolePrinter renders tasks, plans and run events for the CLI.
type ConsolePrinter struct {
	out io.Writer
	now func() time.Time
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out, now: time.Now}
}

func (p *ConsolePrinter) ShowTasks(tasks []entity.Task) {
	if len(tasks) == 0 {
		color.New(color.Faint).Fprintln(p.out, "No tasks.")
		return
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	for _, t := range tasks {
		status := color.New(color.FgYellow)
		if t.IsPublished() {
			status = color.New(color.FgGreen)
		}
		bold.Fprintf(p.out, "%s  %s ", t.ID, t.Name)
		status.Fprintf(p.out, "[%s]\n", t.Status)
		dim.Fprintf(p.out, "   %s · %s · created %s\n", t.Website, t.LLM, humanize.RelTime(t.CreatedAt, p.now(), "ago", "from now"))
	}
}

func (p *ConsolePrinter) ShowPlan(plan entity.Plan) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(p.out, "\n━━━ Plan: %d steps, ~%ds ━━━\n", len(plan.Steps), plan.EstimatedDuration)
	for i, step := range plan.Steps {
		icon := stepIcon(step.Type)
		fmt.Fprintf(p.out, "%s %s\n", icon, step.Describe(i))
	}
}

// ShowEvent prints one streamed run event.
func (p *ConsolePrinter) ShowEvent(msg input.StreamMessage) {
	dim := color.New(color.Faint)
	switch msg.Type {
	case input.StreamStart:
		cyan := color.New(color.FgCyan, color.Bold)
		name := ""
		if msg.Task != nil {
			name = msg.Task.Name
		}
		cyan.Fprintf(p.out, "\n▶ %s %s\n", msg.Message, name)
	case input.StreamUpdate:
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(p.out, "  %s ", updateIcon(msg.Stage))
		fmt.Fprintln(p.out, msg.Message)
		if msg.LiveViewURL != "" && msg.Stage == entity.UpdateStart {
			dim.Fprintf(p.out, "    live view: %s\n", msg.LiveViewURL)
		}
		if msg.Screenshot != "" {
			dim.Fprintf(p.out, "    screenshot: %s\n", describeScreenshot(msg.Screenshot))
		}
	case input.StreamComplete:
		color.New(color.FgGreen, color.Bold).Fprintf(p.out, "✓ %s\n", msg.Message)
		if msg.Result != nil {
			p.showLogs(msg.Result.Logs)
		}
	case input.StreamError:
		color.New(color.FgRed, color.Bold).Fprintf(p.out, "❌ %s\n", msg.Message)
	}
}

func (p *ConsolePrinter) ShowRun(resp *entity.RunTaskResponse) {
	p.ShowPlan(resp.Plan)

	if resp.Status == entity.RunCompleted {
		color.New(color.FgGreen, color.Bold).Fprintf(p.out, "\n✓ %s %s\n", resp.ExecutionID, resp.Status)
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(p.out, "\n❌ %s %s: %s\n", resp.ExecutionID, resp.Status, resp.Result.Error)
	}
	p.showLogs(resp.Result.Logs)

	dim := color.New(color.Faint)
	for _, shot := range resp.Result.Screenshots {
		dim.Fprintf(p.out, "📸 %s\n", describeScreenshot(shot))
	}
}

func (p *ConsolePrinter) showLogs(logs []string) {
	dim := color.New(color.Faint)
	for _, line := range logs {
		dim.Fprintf(p.out, "   %s\n", truncate(line, 300))
	}
}

func stepIcon(t entity.StepType) string {
	switch t {
	case entity.StepNavigate:
		return "🌐"
	case entity.StepClick:
		return "🖱️"
	case entity.StepTypeText:
		return "✏️"
	case entity.StepWait:
		return "⏳"
	case entity.StepAssertText:
		return "🔍"
	case entity.StepCapture:
		return "📸"
	default:
		return "🔧"
	}
}

func updateIcon(kind entity.UpdateKind) string {
	switch kind {
	case entity.UpdateStart:
		return "•"
	case entity.UpdateStep, entity.UpdateProgress:
		return "→"
	case entity.UpdateComplete:
		return "✓"
	case entity.UpdateError:
		return "✗"
	default:
		return "·"
	}
}

// describeScreenshot keeps inline images from flooding the terminal.
func describeScreenshot(ref string) string {
	if !strings.HasPrefix(ref, "data:") {
		return ref
	}
	mime, _, _ := strings.Cut(strings.TrimPrefix(ref, "data:"), ";")
	return fmt.Sprintf("inline %s, %s", mime, humanize.Bytes(uint64(len(ref))))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
