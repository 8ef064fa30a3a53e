package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/di"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/env"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"USE_REAL_BROWSER_AUTOMATION", "BROWSER_HEADLESS", "BROWSER_USE_CLOUD_API_KEY", "BROWSER_USE_API_KEY",
		"BROWSER_USE_CLOUD_URL", "BROWSER_USE_POLL_INTERVAL", "MOCK_EXECUTION_DELAY", "TASK_STORE", "LISTEN_ADDR",
		"TRUST_PROXY_HEADERS",
	} {
		t.Setenv(key, "")
	}

	cfg := configFromEnv(&env.EnvService{})

	assert.False(t, cfg.RealAutomation)
	assert.True(t, cfg.BrowserHeadless)
	assert.Empty(t, cfg.BrowserUseAPIKey)
	assert.Equal(t, "https://api.browser-use.com/api/v1", cfg.BrowserUseBaseURL)
	assert.Equal(t, 2*time.Second, cfg.BrowserUsePollInterval)
	assert.Equal(t, 2*time.Second, cfg.MockDelay)
	assert.Equal(t, di.StoreMemory, cfg.TaskStore)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.False(t, cfg.HTTP.TrustProxyHeaders)
}

func TestConfigFromEnv_CloudKeyFallback(t *testing.T) {
	t.Setenv("BROWSER_USE_CLOUD_API_KEY", "")
	t.Setenv("BROWSER_USE_API_KEY", "legacy")
	assert.Equal(t, "legacy", configFromEnv(&env.EnvService{}).BrowserUseAPIKey)

	t.Setenv("BROWSER_USE_CLOUD_API_KEY", "cloud")
	assert.Equal(t, "cloud", configFromEnv(&env.EnvService{}).BrowserUseAPIKey)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("USE_REAL_BROWSER_AUTOMATION", "true")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("TASK_STORE", "sqlite")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("MOCK_EXECUTION_DELAY", "10ms")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg := configFromEnv(&env.EnvService{})

	assert.True(t, cfg.RealAutomation)
	assert.False(t, cfg.BrowserHeadless)
	assert.Equal(t, di.StoreSQLite, cfg.TaskStore)
	assert.Equal(t, "s3cret", cfg.HTTP.AdminToken)
	assert.Equal(t, 10*time.Millisecond, cfg.MockDelay)
	assert.True(t, cfg.HTTP.TrustProxyHeaders)
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"query=golang", "coupon=A=B", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"query": "golang", "coupon": "A=B", "empty": ""}, params)

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}
