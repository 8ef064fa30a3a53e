package di

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/logger"
)

func TestNewContainer_Defaults(t *testing.T) {
	c, err := NewContainer(t.Context(), Config{Logger: logger.NewNop()})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	tasks, err := c.Tasks.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, tasks, 5)

	_, ok := c.Executors.Get(output.ExecutorMock)
	assert.True(t, ok)
	_, ok = c.Executors.Get(output.ExecutorLocal)
	assert.True(t, ok)
	_, ok = c.Executors.Get(output.ExecutorCloudSession)
	assert.False(t, ok, "cloud adapters need an API key")
	assert.Empty(t, c.Providers.Choices())
	assert.NotNil(t, c.Server)
}

func TestNewContainer_WithKeys(t *testing.T) {
	c, err := NewContainer(t.Context(), Config{
		Logger:           logger.NewNop(),
		OpenAIAPIKey:     "sk-test",
		AnthropicAPIKey:  "sk-ant-test",
		GroqAPIKey:       "gsk-test",
		BrowserUseAPIKey: "bu-test",
		SkipSeeds:        true,
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	assert.ElementsMatch(t, entity.LLMChoices, c.Providers.Choices())

	for _, kind := range []output.ExecutorKind{output.ExecutorCloudSession, output.ExecutorCloudStreaming} {
		_, ok := c.Executors.Get(kind)
		assert.True(t, ok, kind)
	}

	tasks, err := c.Tasks.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestNewContainer_SQLiteKeepsEdits(t *testing.T) {
	cfg := Config{
		Logger:     logger.NewNop(),
		TaskStore:  StoreSQLite,
		TaskDBPath: filepath.Join(t.TempDir(), "tasks.db"),
	}

	c, err := NewContainer(t.Context(), cfg)
	require.NoError(t, err)
	tasks, err := c.Tasks.List(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	name := "Edited"
	_, err = c.Tasks.Update(t.Context(), tasks[0].ID, entity.TaskPatch{Name: &name})
	require.NoError(t, err)
	require.NoError(t, c.Storage.Close())

	c2, err := NewContainer(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(c2.Close)

	got, err := c2.Tasks.Get(t.Context(), tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Name)

	all, err := c2.Tasks.List(t.Context())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestNewContainer_UnknownStore(t *testing.T) {
	_, err := NewContainer(t.Context(), Config{Logger: logger.NewNop(), TaskStore: "redis"})
	assert.ErrorContains(t, err, `unknown task store "redis"`)
}
