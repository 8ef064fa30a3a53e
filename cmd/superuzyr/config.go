package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/adapter/httpapi"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/di"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/automation/browseruse"
)

// envSource is the subset of the env service configFromEnv reads.
type envSource interface {
	output.ConfigPort
	First(keys ...string) string
}

func configFromEnv(e envSource) di.Config {
	return di.Config{
		OpenAIAPIKey:    e.Get("OPENAI_API_KEY"),
		AnthropicAPIKey: e.Get("ANTHROPIC_API_KEY"),
		GroqAPIKey:      e.Get("GROQ_API_KEY"),

		RealAutomation:  e.GetBool("USE_REAL_BROWSER_AUTOMATION", false),
		BrowserHeadless: e.GetBool("BROWSER_HEADLESS", true),
		BrowserBin:      e.Get("BROWSER_BIN"),

		BrowserUseAPIKey:       e.First("BROWSER_USE_CLOUD_API_KEY", "BROWSER_USE_API_KEY"),
		BrowserUseBaseURL:      e.GetWithDefault("BROWSER_USE_CLOUD_URL", browseruse.DefaultBaseURL),
		BrowserUseSessionURL:   e.Get("BROWSER_USE_SESSION_URL"),
		BrowserUsePollInterval: e.GetDuration("BROWSER_USE_POLL_INTERVAL", browseruse.DefaultPollInterval),
		MockDelay:              e.GetDuration("MOCK_EXECUTION_DELAY", 2*time.Second),

		TaskStore:  e.GetWithDefault("TASK_STORE", di.StoreMemory),
		TaskDBPath: e.GetWithDefault("TASK_DB_PATH", "data/tasks.db"),

		HTTP: httpapi.Config{
			Addr:          e.GetWithDefault("LISTEN_ADDR", ":3000"),
			AdminToken:    e.Get("ADMIN_TOKEN"),
			PublicBaseURL: e.Get("PUBLIC_BASE_URL"),

			TrustProxyHeaders: e.GetBool("TRUST_PROXY_HEADERS", false),
		},

		LogLevel: e.GetWithDefault("LOG_LEVEL", "info"),
		LogFile:  e.Get("LOG_FILE"),
	}
}

// parseParams turns repeated name=value flags into bindings.
func parseParams(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", kv)
		}
		params[name] = value
	}
	return params, nil
}
