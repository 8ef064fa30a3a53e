package output

import (
	"context"
	"errors"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var ErrNotStored = errors.New("task not stored")

// TaskStorage persists whole Task records keyed by id. Put is an upsert.
// Update applies fn to a stored task atomically and never inserts.
type TaskStorage interface {
	Put(ctx context.Context, task entity.Task) error
	Get(ctx context.Context, id string) (entity.Task, error)
	Update(ctx context.Context, id string, fn func(entity.Task) entity.Task) (entity.Task, error)
	All(ctx context.Context) ([]entity.Task, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
