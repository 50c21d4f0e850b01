// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"campo/entities"
)

// schemaVersion is the current PRAGMA user_version. Upgrade steps run one by
// one; a missing or failed step falls back to a destructive recreate, which
// loses data but never leaves the store half-migrated.
const schemaVersion = 3

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Printf("[db] migration failed, recreating store (data loss): %v", err)
		if err := Recreate(db); err != nil {
			log.Fatalf("[db] recreate: %v", err)
		}
	}

	return db
}

type migrationStep func(*gorm.DB) error

var steps = map[int]migrationStep{
	0: migrateCreateBase,
	1: migrateAddObservations,
	2: migrateDropLegacySyncColumns,
}

// Migrate walks user_version up to schemaVersion, then lets GORM reconcile
// anything additive it knows about.
func Migrate(db *gorm.DB) error {
	var v int
	if err := db.Raw(`PRAGMA user_version`).Scan(&v).Error; err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if v > schemaVersion {
		return fmt.Errorf("store is at version %d, newer than this build (%d)", v, schemaVersion)
	}
	for ; v < schemaVersion; v++ {
		step, ok := steps[v]
		if !ok {
			return fmt.Errorf("no migration step from version %d", v)
		}
		if err := step(db); err != nil {
			return fmt.Errorf("migrate v%d -> v%d: %w", v, v+1, err)
		}
		if err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, v+1)).Error; err != nil {
			return err
		}
		log.Printf("[db] migrated store to version %d", v+1)
	}
	return autoMigrate(db)
}

// Recreate drops every table and rebuilds the current schema from scratch.
// Last resort only: all local data is lost.
func Recreate(db *gorm.DB) error {
	for _, t := range []string{"hourly_weather_caches", "weather_caches", "task_registries", "tasks"} {
		if err := db.Exec(`DROP TABLE IF EXISTS ` + t).Error; err != nil {
			return err
		}
	}
	if err := autoMigrate(db); err != nil {
		return err
	}
	return db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)).Error
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Task{},
		&entities.TaskRegistry{},
		&entities.WeatherCache{},
		&entities.HourlyWeatherCache{},
	)
}

func migrateCreateBase(db *gorm.DB) error {
	return autoMigrate(db)
}

// v1 stores predate free-text observations on tasks and registries.
func migrateAddObservations(db *gorm.DB) error {
	for _, tc := range []struct{ table, col string }{
		{"tasks", "observations"},
		{"task_registries", "observations"},
	} {
		has, err := hasColumn(db, tc.table, tc.col)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s TEXT`, tc.table, tc.col)).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrateDropLegacySyncColumns rebuilds tasks without the remote_id /
// last_synced_at pair that v2 stores carried. SQLite cannot drop columns on
// old versions, so: create new, copy, drop, rename, inside one transaction.
func migrateDropLegacySyncColumns(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='tasks'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}
	hasLegacy, err := hasColumn(db, "tasks", "remote_id")
	if err != nil {
		return err
	}
	if !hasLegacy {
		return nil
	}

	createSQL := `
CREATE TABLE tasks_new (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT,
    area TEXT,
    scheduled_time TEXT,
    end_time TEXT,
    observations TEXT,
    status TEXT,
    sync_status TEXT,
    created_at INTEGER,
    updated_at INTEGER
);
`
	copySQL := `
INSERT INTO tasks_new (id, name, area, scheduled_time, end_time, observations, status, sync_status, created_at, updated_at)
SELECT id, name, area, scheduled_time, end_time, observations, status, sync_status, created_at, updated_at FROM tasks;
`
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE tasks`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE tasks_new RENAME TO tasks`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}

func hasColumn(db *gorm.DB, table, col string) (bool, error) {
	type colInfo struct {
		Cid  int
		Name string
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(` + table + `)`).Scan(&cols).Error; err != nil {
		return false, fmt.Errorf("table_info: %w", err)
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name, col) {
			return true, nil
		}
	}
	return false, nil
}
