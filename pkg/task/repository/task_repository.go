package repository

import (
	"context"

	"campo/entities"
)

type TaskRepository interface {
	// Insert assigns the identifier and returns it.
	Insert(t *entities.Task) (uint, error)
	// Update is a no-op when the identifier does not exist.
	Update(t *entities.Task) error
	// Delete is a no-op when the identifier does not exist.
	Delete(id uint) error
	// Get returns nil (no error) when the identifier does not exist.
	Get(id uint) (*entities.Task, error)
	All() ([]entities.Task, error)
	SetSyncStatus(id uint, s entities.SyncStatus) error
	// Watch emits the full task list immediately and again after every
	// insert/update/delete, until ctx is done. Each call is an independent,
	// restartable subscription.
	Watch(ctx context.Context) <-chan []entities.Task
}
