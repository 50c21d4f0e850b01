// pkg/mirror/client.go

package mirror

import (
	"context"
	"time"

	"campo/entities"
)

// Client is the remote mirror: a best-effort cloud copy of tasks and
// registries plus an append-only per-task history log. The local store stays
// authoritative; callers treat every method here as fire-and-forget and must
// not surface failures to the UI.
type Client interface {
	// Upload writes/overwrites the task document and appends a history entry
	// for action.
	Upload(ctx context.Context, t *entities.Task, action string) error
	// Update is Upload with the fixed "alterado" action.
	Update(ctx context.Context, t *entities.Task) error
	// Delete appends an "excluido" history entry. The task document itself is
	// kept and reaped later by the retention purge.
	Delete(ctx context.Context, t *entities.Task) error
	UploadRegistry(ctx context.Context, reg *entities.TaskRegistry) error
	// History returns the task's history entries newest-timestamp-first.
	History(ctx context.Context, taskID uint) ([]entities.HistoryEntry, error)
	// NextTaskID scans existing document identifiers and returns max+1, or 1
	// when the collection is empty or unreadable. Identifier discovery only;
	// the local store remains the identifier source of truth.
	NextTaskID(ctx context.Context) uint
	// PurgeDeleted removes task documents whose latest history entry is an
	// "excluido" older than retention. Returns how many documents were purged.
	PurgeDeleted(ctx context.Context, retention time.Duration) (int, error)
	Ping(ctx context.Context) error
}
