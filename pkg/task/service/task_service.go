package service

import (
	"context"

	"campo/entities"
)

type TaskService interface {
	All() ([]entities.Task, error)
	Get(id uint) (*entities.Task, error)
	// Update writes through to the local store (fatal on failure), then
	// mirrors best-effort with the "alterado" action.
	Update(ctx context.Context, t *entities.Task) error
	// Delete records an "excluido" history entry in the mirror. The local row
	// is removed separately via DeleteLocal.
	Delete(ctx context.Context, t *entities.Task)
	DeleteLocal(id uint) error
	History(ctx context.Context, id uint) ([]entities.HistoryEntry, error)
	Watch(ctx context.Context) <-chan []entities.Task
}
