package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "task-tracker.com/td/internal/models"
)

const tasksTableDDL = `CREATE TABLE IF NOT EXISTS %s (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	task       TEXT    NOT NULL,
	status     INTEGER NOT NULL DEFAULT 0,
	priority   INTEGER NOT NULL DEFAULT 3,
	created_at INTEGER NOT NULL,
	due_at     INTEGER NULL
)`

// At most one row may be InProgress (status = 1).
const singleActiveIndexDDL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_single_active
	ON tasks (status) WHERE status = 1`

// NewDatabase opens (creating if needed) the SQLite file at path and brings
// its schema up to date.
func NewDatabase(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// A file: URI keeps '?' and '%' in the path from being read as parameters.
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// Migrate creates the tasks table and upgrades databases written before
// due dates existed. Tables created without AUTOINCREMENT are rebuilt so
// that ids of deleted tasks are never handed out again.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(fmt.Sprintf(tasksTableDDL, "tasks")).Error; err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}

	migrator := db.Migrator()
	if !migrator.HasColumn(&model.Task{}, "due_at") {
		if err := migrator.AddColumn(&model.Task{}, "DueAt"); err != nil {
			return fmt.Errorf("add due_at column: %w", err)
		}
	}

	var ddl string
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'tasks'").Scan(&ddl).Error; err != nil {
		return fmt.Errorf("read tasks schema: %w", err)
	}
	if !strings.Contains(strings.ToUpper(ddl), "AUTOINCREMENT") {
		if err := rebuildTasksTable(db); err != nil {
			return fmt.Errorf("rebuild tasks table: %w", err)
		}
	}

	if err := db.Exec(singleActiveIndexDDL).Error; err != nil {
		return fmt.Errorf("create single-active index: %w", err)
	}
	return nil
}

// rebuildTasksTable copies every row into a table with the current
// definition and swaps it in. Copying explicit ids seeds sqlite_sequence with
// the highest one.
func rebuildTasksTable(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		steps := []string{
			"DROP TABLE IF EXISTS tasks_new",
			fmt.Sprintf(tasksTableDDL, "tasks_new"),
			`INSERT INTO tasks_new (id, task, status, priority, created_at, due_at)
				SELECT id, task, status, priority, created_at, due_at FROM tasks`,
			"DROP TABLE tasks",
			"ALTER TABLE tasks_new RENAME TO tasks",
		}
		for _, stmt := range steps {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CloseDatabase releases the underlying connection pool.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
