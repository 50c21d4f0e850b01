package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campo/entities"
)

func openTemp(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campo.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func userVersion(t *testing.T, db *gorm.DB) int {
	t.Helper()
	var v int
	require.NoError(t, db.Raw(`PRAGMA user_version`).Scan(&v).Error)
	return v
}

func TestMigrateFreshStore(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db))
	assert.Equal(t, 3, userVersion(t, db))

	// schema is usable
	require.NoError(t, db.Create(&entities.Task{Name: "Plantio", Area: "Talhão 1", Status: entities.StatusPending, SyncStatus: entities.SyncLocal}).Error)
	require.NoError(t, db.Create(&entities.WeatherCache{ID: entities.WeatherCacheID, Temperature: 28}).Error)

	// second run is a no-op
	require.NoError(t, Migrate(db))
	assert.Equal(t, 3, userVersion(t, db))
}

func TestMigrateRebuildsLegacyTasksTable(t *testing.T) {
	db := openTemp(t)

	// a v2 store: tasks still carries the legacy remote sync column pair
	require.NoError(t, db.Exec(`
CREATE TABLE tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    area TEXT,
    scheduled_time TEXT,
    end_time TEXT,
    observations TEXT,
    status TEXT,
    sync_status TEXT,
    remote_id TEXT,
    last_synced_at INTEGER,
    created_at INTEGER,
    updated_at INTEGER
);`).Error)
	require.NoError(t, db.Exec(`
INSERT INTO tasks (name, area, scheduled_time, end_time, observations, status, sync_status, remote_id, last_synced_at, created_at, updated_at)
VALUES ('Plantio', 'Talhão 1', '08:00', '10:00', '', 'PENDING', 'LOCAL', '1', 0, 1000, 1000);`).Error)
	require.NoError(t, db.Exec(`PRAGMA user_version = 2`).Error)

	require.NoError(t, Migrate(db))
	assert.Equal(t, 3, userVersion(t, db))

	has, err := hasColumn(db, "tasks", "remote_id")
	require.NoError(t, err)
	assert.False(t, has, "legacy column dropped")

	var task entities.Task
	require.NoError(t, db.First(&task).Error)
	assert.Equal(t, "Plantio", task.Name)
	assert.Equal(t, "08:00", task.ScheduledTime)
	assert.Equal(t, entities.StatusPending, task.Status)
}

func TestMigrateRefusesFutureStore(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, db.Exec(`PRAGMA user_version = 99`).Error)
	assert.Error(t, Migrate(db))
}

func TestRecreateWipesAndRebuilds(t *testing.T) {
	db := openTemp(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&entities.Task{Name: "Plantio"}).Error)

	require.NoError(t, Recreate(db))
	assert.Equal(t, 3, userVersion(t, db))

	var n int64
	require.NoError(t, db.Model(&entities.Task{}).Count(&n).Error)
	assert.Zero(t, n)
}
