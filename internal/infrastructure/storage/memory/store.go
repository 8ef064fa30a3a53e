package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var _ output.TaskStorage = (*Store)(nil)

// Store keeps tasks in process memory. Writes are last-write-wins.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]entity.Task
}

func New() *Store {
	return &Store{tasks: make(map[string]entity.Task)}
}

func (s *Store) Put(_ context.Context, task entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task.Clone()
	return nil
}

func (s *Store) Get(_ context.Context, id string) (entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return entity.Task{}, fmt.Errorf("%w: %s", output.ErrNotStored, id)
	}
	return task.Clone(), nil
}

func (s *Store) Update(_ context.Context, id string, fn func(entity.Task) entity.Task) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return entity.Task{}, fmt.Errorf("%w: %s", output.ErrNotStored, id)
	}
	updated := fn(task.Clone())
	updated.ID = id
	s.tasks[id] = updated.Clone()
	return updated, nil
}

func (s *Store) All(_ context.Context) ([]entity.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]entity.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		result = append(result, task.Clone())
	}
	return result, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("%w: %s", output.ErrNotStored, id)
	}
	delete(s.tasks, id)
	return nil
}

func (s *Store) Close() error {
	return nil
}
