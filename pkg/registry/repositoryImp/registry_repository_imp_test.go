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
	"campo/pkg/registry/repository"
)

func newTestRepo(t *testing.T) repository.RegistryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "campo.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TaskRegistry{}, &entities.Task{}))
	return New(db, database.NewNotifier())
}

func TestInsertAndListNewestFirst(t *testing.T) {
	r := newTestRepo(t)

	require.NoError(t, r.Insert(&entities.TaskRegistry{Type: "Plantio", Area: "Talhão 1", StartTime: "08:00", EndTime: "10:00"}))
	require.NoError(t, r.Insert(&entities.TaskRegistry{Type: "Colheita", Area: "Talhão 2", StartTime: "11:00", EndTime: "12:00"}))

	all, err := r.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Colheita", all[0].Type, "newest identifier first")
	assert.Equal(t, "Plantio", all[1].Type)
	assert.False(t, all[0].IsModified)
	assert.False(t, all[0].IsDeleted)
}

func TestInsertReplacesOnIdentifierConflict(t *testing.T) {
	r := newTestRepo(t)

	require.NoError(t, r.Insert(&entities.TaskRegistry{ID: 7, Type: "Plantio", Area: "Talhão 1", StartTime: "08:00", EndTime: "10:00"}))
	require.NoError(t, r.Insert(&entities.TaskRegistry{ID: 7, Type: "Pulverização", Area: "Talhão 3", StartTime: "13:00", EndTime: "14:00"}))

	all, err := r.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, uint(7), all[0].ID)
	assert.Equal(t, "Pulverização", all[0].Type)
	assert.Equal(t, "Talhão 3", all[0].Area)
}

func TestInsertWithTaskPopulatesBothIdentifiers(t *testing.T) {
	r := newTestRepo(t)

	reg := &entities.TaskRegistry{Type: "Plantio", Area: "Talhão 1", StartTime: "08:00", EndTime: "10:00"}
	task := &entities.Task{Name: "Plantio", Area: "Talhão 1", ScheduledTime: "08:00", EndTime: "10:00"}
	require.NoError(t, r.InsertWithTask(reg, task))

	assert.NotZero(t, reg.ID)
	assert.NotZero(t, task.ID)
	assert.Equal(t, entities.StatusPending, task.Status)
	assert.Equal(t, entities.SyncLocal, task.SyncStatus)
}

func TestWatchEmitsOnEveryInsert(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.Watch(ctx)

	// initial snapshot
	first := recvRegs(t, ch)
	assert.Empty(t, first)

	require.NoError(t, r.Insert(&entities.TaskRegistry{Type: "Plantio", Area: "Talhão 1", StartTime: "08:00", EndTime: "10:00"}))
	second := recvRegs(t, ch)
	require.Len(t, second, 1)
	assert.Equal(t, "Plantio", second[0].Type)

	reg := &entities.TaskRegistry{Type: "Colheita", Area: "Talhão 2", StartTime: "11:00", EndTime: "12:00"}
	task := &entities.Task{Name: "Colheita", Area: "Talhão 2", ScheduledTime: "11:00", EndTime: "12:00"}
	require.NoError(t, r.InsertWithTask(reg, task))
	third := recvRegs(t, ch)
	require.Len(t, third, 2)
	assert.Equal(t, "Colheita", third[0].Type, "newest identifier first")
}

func TestWatchStopsOnCancel(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Watch(ctx)
	recvRegs(t, ch)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel did not close")
	}
}

func recvRegs(t *testing.T, ch <-chan []entities.TaskRegistry) []entities.TaskRegistry {
	t.Helper()
	select {
	case regs := <-ch:
		return regs
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch emission")
		return nil
	}
}
