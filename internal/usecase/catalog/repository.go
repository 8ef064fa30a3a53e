package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var ErrTaskNotFound = errors.New("task not found")

const maxIDAttempts = 5

var _ input.TaskCatalog = (*Repository)(nil)

type Repository struct {
	storage output.TaskStorage
	logger  output.LoggerPort
	now     func() time.Time
	newID   func() string
}

type Option func(*Repository)

func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) { r.newID = gen }
}

func NewRepository(storage output.TaskStorage, logger output.LoggerPort, opts ...Option) *Repository {
	r := &Repository{
		storage: storage,
		logger:  logger.Named("catalog"),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return entity.NewID(entity.TaskIDPrefix) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores task under a fresh id and creation time. Any id or createdAt
// on the input is ignored.
func (r *Repository) Create(ctx context.Context, task entity.Task) (entity.Task, error) {
	id, err := r.freshID(ctx)
	if err != nil {
		return entity.Task{}, err
	}

	created := task.Clone()
	created.ID = id
	created.CreatedAt = r.now()
	if created.Params == nil {
		created.Params = []entity.TaskParam{}
	}
	if created.Status == "" {
		created.Status = entity.TaskStatusDraft
	}

	if err := r.storage.Put(ctx, created); err != nil {
		return entity.Task{}, fmt.Errorf("create task: %w", err)
	}
	r.logger.Info("task created", "task_id", created.ID, "name", created.Name, "status", created.Status)
	return created, nil
}

func (r *Repository) freshID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := r.newID()
		_, err := r.storage.Get(ctx, id)
		if errors.Is(err, output.ErrNotStored) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("check id %s: %w", id, err)
		}
		r.logger.Warn("task id collision", "task_id", id)
	}
	return "", fmt.Errorf("could not allocate a task id after %d attempts", maxIDAttempts)
}

func (r *Repository) Get(ctx context.Context, id string) (entity.Task, error) {
	task, err := r.storage.Get(ctx, id)
	if err != nil {
		return entity.Task{}, r.mapErr(id, err)
	}
	return task, nil
}

// List returns every task, newest first.
func (r *Repository) List(ctx context.Context) ([]entity.Task, error) {
	tasks, err := r.storage.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// ListPublished is the public catalog view over List.
func (r *Repository) ListPublished(ctx context.Context) ([]entity.Task, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsPublished() {
			published = append(published, t)
		}
	}
	return published, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch entity.TaskPatch) (entity.Task, error) {
	updated, err := r.storage.Update(ctx, id, patch.Apply)
	if err != nil {
		if errors.Is(err, output.ErrNotStored) {
			return entity.Task{}, r.mapErr(id, err)
		}
		return entity.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	r.logger.Info("task updated", "task_id", id)
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.storage.Delete(ctx, id); err != nil {
		return r.mapErr(id, err)
	}
	r.logger.Info("task deleted", "task_id", id)
	return nil
}

// Seed inserts tasks whose id is not stored yet. Seeds without a creation
// time get the current one.
func (r *Repository) Seed(ctx context.Context, tasks []entity.Task) (int, error) {
	inserted := 0
	for _, task := range tasks {
		_, err := r.storage.Get(ctx, task.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, output.ErrNotStored) {
			return inserted, fmt.Errorf("seed %s: %w", task.ID, err)
		}

		seed := task.Clone()
		if seed.CreatedAt.IsZero() {
			seed.CreatedAt = r.now()
		}
		if err := r.storage.Put(ctx, seed); err != nil {
			return inserted, fmt.Errorf("seed %s: %w", task.ID, err)
		}
		inserted++
	}
	r.logger.Info("seed tasks loaded", "inserted", inserted, "total", len(tasks))
	return inserted, nil
}

func (r *Repository) mapErr(id string, err error) error {
	if errors.Is(err, output.ErrNotStored) {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return err
}
