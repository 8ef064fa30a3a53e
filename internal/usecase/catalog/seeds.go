package catalog

import "github.com/deepmindru-afk/superuzyr/internal/domain/entity"

// Seeds is the built-in catalog loaded at startup.
func Seeds() []entity.Task {
	return []entity.Task{
		{
			ID:      "tsk_daytona_coupon",
			Name:    "Daytona — Redeem Coupon",
			Website: "https://app.daytona.io",
			LLM:     entity.LLMGPT4oMini,
			Instructions: `Navigate to https://app.daytona.io and redeem the coupon code.

Please:
1. Go to the Daytona app website
2. Navigate to the Billing Dashboard or Account settings
3. Look for a coupon code input field or "Redeem Code" section
4. Enter the coupon code: {{coupon}}
5. Click the "Redeem" or "Apply" button
6. Verify that the coupon was successfully applied
7. Take a screenshot of the confirmation
8. Report the discount amount or benefits received`,
			Params: []entity.TaskParam{{Name: "coupon", Value: "DAYTONA_EVENT_9AWONPO8", Required: true}},
			Status: entity.TaskStatusPublished,
		},
		{
			ID:      "tsk_browser_use_coupon",
			Name:    "Browser Use Cloud — Apply HACKSPRINT",
			Website: "https://cloud.browser-use.com",
			LLM:     entity.LLMGPT4oMini,
			Instructions: `Navigate to https://cloud.browser-use.com and apply the coupon code for a subscription.

Please:
1. Go to the Browser Use Cloud website
2. Navigate to the billing or subscription section
3. Select the "Professional Monthly" plan
4. Look for a coupon code input field
5. Enter the coupon code: {{coupon}}
6. Apply the coupon and verify the discount is shown
7. Take a screenshot of the discounted price
8. Report the discount amount or percentage saved`,
			Params: []entity.TaskParam{{Name: "coupon", Value: "HACKSPRINT", Required: true}},
			Status: entity.TaskStatusPublished,
		},
		{
			ID:           "tsk_workos_signup",
			Name:         "WorkOS — Signup → Quickstart",
			Website:      "https://signin.workos.com",
			LLM:          entity.LLMClaudeHaiku,
			Instructions: "Open signup. If OTP required, stop before submit. Then open AuthKit quickstart page and capture.",
			Params:       []entity.TaskParam{},
			Status:       entity.TaskStatusPublished,
		},
		{
			ID:           "tsk_anthropic_form",
			Name:         "Anthropic — Credits Form Prefill",
			Website:      "https://docs.google.com/forms/",
			LLM:          entity.LLMGPT4oMini,
			Instructions: "Open the Anthropic credit form, prefill name {{name}} and email {{email}}, do not submit, capture.",
			Params: []entity.TaskParam{
				{Name: "name", Value: "Demo User"},
				{Name: "email", Value: "demo@superuser.ai"},
			},
			Status: entity.TaskStatusPublished,
		},
		{
			ID:           "tsk_google_search",
			Name:         "Google Search Test",
			Website:      "https://www.google.com",
			LLM:          entity.LLMGPT4oMini,
			Instructions: "Search for {{query}}, capture results page.",
			Params:       []entity.TaskParam{{Name: "query", Value: "browser automation", Required: true}},
			Status:       entity.TaskStatusPublished,
		},
	}
}
