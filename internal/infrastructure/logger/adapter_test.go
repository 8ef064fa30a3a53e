package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAdapter_KeyValueFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.WithField("task_id", "tsk_1").Info("run started", "mode", "cloud", "err", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "run started", entries[0].Message)
	assert.Equal(t, "tsk_1", ctx["task_id"])
	assert.Equal(t, "cloud", ctx["mode"])
	assert.Equal(t, "boom", ctx["err"])
}

func TestLoggerAdapter_OddArgs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Warn("odd", "dangling")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "dangling", logs.All()[0].ContextMap()["!BADKEY"])
}

func TestLoggerAdapter_Named(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Named("planner").WithFields(map[string]any{"a": 1, "b": "x"}).Debug("hi")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "planner", logs.All()[0].LoggerName)
	assert.Len(t, logs.All()[0].Context, 2)
}

func TestNewLoggerAdapter_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "app.log")
	log, err := NewLoggerAdapter(Config{Level: "debug", File: path})
	require.NoError(t, err)

	log.Info("written", "k", "v")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewLoggerAdapter_BadLevel(t *testing.T) {
	_, err := NewLoggerAdapter(Config{Level: "loud"})
	assert.Error(t, err)
}
