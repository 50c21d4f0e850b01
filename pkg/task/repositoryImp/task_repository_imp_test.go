package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campo/database"
	"campo/entities"
	"campo/pkg/task/repository"
)

func newTestRepo(t *testing.T) (repository.TaskRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "campo.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Task{}))
	return New(db, database.NewNotifier()), db
}

func TestInsertAssignsIdentifier(t *testing.T) {
	r, _ := newTestRepo(t)

	id, err := r.Insert(&entities.Task{Name: "Plantio", Area: "Talhão 1", ScheduledTime: "08:00"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	id2, err := r.Insert(&entities.Task{Name: "Colheita", Area: "Talhão 2", ScheduledTime: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), id2)

	got, err := r.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Plantio", got.Name)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.Equal(t, entities.SyncLocal, got.SyncStatus)
	assert.NotZero(t, got.CreatedAt)
}

func TestGetMissingReturnsNil(t *testing.T) {
	r, _ := newTestRepo(t)
	got, err := r.Get(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateMissingIsNoop(t *testing.T) {
	r, _ := newTestRepo(t)
	err := r.Update(&entities.Task{ID: 99, Name: "fantasma"})
	require.NoError(t, err)

	all, err := r.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteMissingIsNoop(t *testing.T) {
	r, _ := newTestRepo(t)
	require.NoError(t, r.Delete(99))
}

func TestUpdateWritesFields(t *testing.T) {
	r, _ := newTestRepo(t)
	id, err := r.Insert(&entities.Task{Name: "Plantio", Area: "Talhão 1", ScheduledTime: "08:00"})
	require.NoError(t, err)

	got, _ := r.Get(id)
	got.Status = entities.StatusCompleted
	got.Observations = "concluído sem chuva"
	require.NoError(t, r.Update(got))

	again, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, again.Status)
	assert.Equal(t, "concluído sem chuva", again.Observations)
}

func TestSetSyncStatus(t *testing.T) {
	r, _ := newTestRepo(t)
	id, _ := r.Insert(&entities.Task{Name: "Plantio"})
	require.NoError(t, r.SetSyncStatus(id, entities.SyncSynced))
	got, _ := r.Get(id)
	assert.Equal(t, entities.SyncSynced, got.SyncStatus)
}

func TestWatchEmitsOnEveryChange(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.Watch(ctx)

	// initial snapshot
	first := recv(t, ch)
	assert.Empty(t, first)

	id, err := r.Insert(&entities.Task{Name: "Plantio"})
	require.NoError(t, err)
	second := recv(t, ch)
	require.Len(t, second, 1)
	assert.Equal(t, "Plantio", second[0].Name)

	require.NoError(t, r.Delete(id))
	third := recv(t, ch)
	assert.Empty(t, third)
}

func TestWatchStopsOnCancel(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Watch(ctx)
	recv(t, ch)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel did not close")
	}
}

func recv(t *testing.T, ch <-chan []entities.Task) []entities.Task {
	t.Helper()
	select {
	case ts := <-ch:
		return ts
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch emission")
		return nil
	}
}
