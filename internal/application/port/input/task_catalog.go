package input

import (
	"context"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

type TaskCatalog interface {
	Create(ctx context.Context, task entity.Task) (entity.Task, error)
	Get(ctx context.Context, id string) (entity.Task, error)
	List(ctx context.Context) ([]entity.Task, error)
	ListPublished(ctx context.Context) ([]entity.Task, error)
	Update(ctx context.Context, id string, patch entity.TaskPatch) (entity.Task, error)
	Delete(ctx context.Context, id string) error
}
