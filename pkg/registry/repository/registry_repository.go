package repository

import (
	"context"

	"campo/entities"
)

type RegistryRepository interface {
	// Insert replaces in place when the identifier already exists.
	Insert(reg *entities.TaskRegistry) error
	// InsertWithTask writes the registry and its derived task in one local
	// transaction; both identifiers are populated on return.
	InsertWithTask(reg *entities.TaskRegistry, t *entities.Task) error
	// All returns registries newest-identifier-first.
	All() ([]entities.TaskRegistry, error)
	Watch(ctx context.Context) <-chan []entities.TaskRegistry
}
