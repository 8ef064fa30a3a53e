package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvService_Getters(t *testing.T) {
	t.Setenv("SUPERUZYR_TEST_BOOL", "true")
	t.Setenv("SUPERUZYR_TEST_BAD_BOOL", "maybe")
	t.Setenv("SUPERUZYR_TEST_INT", "42")
	t.Setenv("SUPERUZYR_TEST_DUR", "1500ms")
	t.Setenv("SUPERUZYR_TEST_MS", "250")
	t.Setenv("SUPERUZYR_TEST_STR", "value")

	e := &EnvService{}

	assert.True(t, e.GetBool("SUPERUZYR_TEST_BOOL", false))
	assert.True(t, e.GetBool("SUPERUZYR_TEST_BAD_BOOL", true))
	assert.False(t, e.GetBool("SUPERUZYR_TEST_UNSET", false))
	assert.Equal(t, 42, e.GetInt("SUPERUZYR_TEST_INT", 0))
	assert.Equal(t, 7, e.GetInt("SUPERUZYR_TEST_STR", 7))
	assert.Equal(t, 1500*time.Millisecond, e.GetDuration("SUPERUZYR_TEST_DUR", time.Second))
	assert.Equal(t, 250*time.Millisecond, e.GetDuration("SUPERUZYR_TEST_MS", time.Second))
	assert.Equal(t, time.Second, e.GetDuration("SUPERUZYR_TEST_STR", time.Second))
	assert.Equal(t, "value", e.GetWithDefault("SUPERUZYR_TEST_STR", "x"))
	assert.Equal(t, "x", e.GetWithDefault("SUPERUZYR_TEST_UNSET", "x"))
	assert.Equal(t, "value", e.First("SUPERUZYR_TEST_UNSET", "SUPERUZYR_TEST_STR"))
}

func TestNewEnvServiceIn_OverloadsAppEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SUPERUZYR_TEST_FILE=base\nSUPERUZYR_TEST_ONLY_BASE=yes\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("SUPERUZYR_TEST_FILE=override\n"), 0o600))

	t.Setenv("APP_ENV", "test")
	t.Setenv("SUPERUZYR_TEST_FILE", "")
	t.Setenv("SUPERUZYR_TEST_ONLY_BASE", "")
	os.Unsetenv("SUPERUZYR_TEST_FILE")
	os.Unsetenv("SUPERUZYR_TEST_ONLY_BASE")

	e := NewEnvServiceIn(dir)

	assert.Equal(t, "override", e.Get("SUPERUZYR_TEST_FILE"))
	assert.Equal(t, "yes", e.Get("SUPERUZYR_TEST_ONLY_BASE"))
}
