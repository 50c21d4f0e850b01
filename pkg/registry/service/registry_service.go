package service

import (
	"context"

	"campo/entities"
)

type RegistryService interface {
	// Register validates reg, persists it together with its derived task, and
	// mirrors both best-effort. A non-empty message list means validation
	// failed and nothing was written. The returned task carries its locally
	// generated identifier.
	Register(ctx context.Context, reg *entities.TaskRegistry) (*entities.Task, []string, error)
	All() ([]entities.TaskRegistry, error)
	Watch(ctx context.Context) <-chan []entities.TaskRegistry
}
