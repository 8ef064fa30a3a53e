// Package storagetest runs the same behavioural checks against every TaskStorage backend.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

func Run(t *testing.T, newStore func(t *testing.T) output.TaskStorage) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 123000000, time.UTC)

	sample := entity.Task{
		ID:           "tsk_a1b2c3d4",
		Name:         "Coupon",
		Website:      "https://example.com",
		LLM:          entity.LLMGPT4oMini,
		Instructions: "apply {{coupon}}",
		Params:       []entity.TaskParam{{Name: "coupon", Value: "X1", Required: true}},
		Status:       entity.TaskStatusPublished,
		CreatedAt:    created,
	}

	t.Run("put and get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, sample))

		got, err := s.Get(ctx, sample.ID)
		require.NoError(t, err)
		assert.Equal(t, sample.Name, got.Name)
		assert.Equal(t, sample.Params, got.Params)
		assert.True(t, sample.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "tsk_missing0")
		assert.ErrorIs(t, err, output.ErrNotStored)
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, sample))
		changed := sample
		changed.Name = "Renamed"
		require.NoError(t, s.Put(ctx, changed))

		all, err := s.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Renamed", all[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, sample))
		require.NoError(t, s.Delete(ctx, sample.ID))

		_, err := s.Get(ctx, sample.ID)
		assert.ErrorIs(t, err, output.ErrNotStored)
		assert.ErrorIs(t, s.Delete(ctx, sample.ID), output.ErrNotStored)
	})

	t.Run("returned tasks are copies", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, sample))

		got, err := s.Get(ctx, sample.ID)
		require.NoError(t, err)
		got.Params[0].Value = "mutated"

		again, err := s.Get(ctx, sample.ID)
		require.NoError(t, err)
		assert.Equal(t, "X1", again.Params[0].Value)
	})

	t.Run("update rewrites in place", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, sample))

		updated, err := s.Update(ctx, sample.ID, func(task entity.Task) entity.Task {
			task.Name = "Renamed"
			task.ID = "tsk_hijacked"
			return task
		})
		require.NoError(t, err)
		assert.Equal(t, sample.ID, updated.ID)
		assert.Equal(t, "Renamed", updated.Name)

		got, err := s.Get(ctx, sample.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.True(t, sample.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("update missing does not insert", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(ctx, "tsk_missing0", func(task entity.Task) entity.Task { return task })
		assert.ErrorIs(t, err, output.ErrNotStored)

		all, err := s.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("concurrent update and delete", func(t *testing.T) {
		s := newStore(t)
		const n = 20
		for i := range n {
			task := sample
			task.ID = fmt.Sprintf("tsk_conc%04d", i)
			require.NoError(t, s.Put(ctx, task))
		}

		var wg sync.WaitGroup
		for i := range n {
			id := fmt.Sprintf("tsk_conc%04d", i)
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = s.Update(ctx, id, func(task entity.Task) entity.Task {
					task.Name = "Updated"
					return task
				})
			}()
			go func() {
				defer wg.Done()
				assert.NoError(t, s.Delete(ctx, id))
			}()
		}
		wg.Wait()

		all, err := s.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
