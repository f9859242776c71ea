package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/akyairhashvil/sprout/internal/config"
)

const defaultDBTimeout = config.DBTimeout

// Database wraps the SQLite handle used for the catalog, the garden and the
// reminder queue.
type Database struct {
	DB     *sql.DB
	dbFile string
	now    func() time.Time
}

// Open connects to the database file, applies pragmas and migrates the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer keeps SQLite out of "database is locked" under tea.Cmd goroutines
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path, now: time.Now}
	if err := d.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) init(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := d.DB.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := d.createTables(ctx); err != nil {
		return err
	}
	return d.migrate(ctx)
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path is the database file this handle was opened on.
func (d *Database) Path() string {
	return d.dbFile
}

// SetClock replaces the time source used for created_at stamps.
func (d *Database) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	d.now = now
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS veggies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			image TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS stages (
			veggie_id INTEGER NOT NULL,
			stage_number INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT,
			stage_end_days REAL NOT NULL CHECK (stage_end_days > 0),
			PRIMARY KEY (veggie_id, stage_number),
			FOREIGN KEY(veggie_id) REFERENCES veggies(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS garden (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			veggie_id INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'ongoing',
			created_at INTEGER NOT NULL,
			FOREIGN KEY(veggie_id) REFERENCES veggies(id)
		);`,
		`CREATE TABLE IF NOT EXISTS reminders (
			key TEXT PRIMARY KEY,
			notification_id TEXT NOT NULL,
			plant_id INTEGER NOT NULL,
			stage_index INTEGER NOT NULL,
			stage_title TEXT NOT NULL,
			veggie_name TEXT NOT NULL DEFAULT '',
			final_stage INTEGER NOT NULL DEFAULT 0,
			fire_at INTEGER NOT NULL,
			fired_at INTEGER,
			created_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_garden_user ON garden(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(fired_at, fire_at);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// migrate brings databases created by older builds up to date.
func (d *Database) migrate(ctx context.Context) error {
	migrations := []string{
		"ALTER TABLE garden ADD COLUMN updated_at INTEGER",
		"ALTER TABLE reminders ADD COLUMN veggie_name TEXT NOT NULL DEFAULT ''",
	}
	for _, m := range migrations {
		if _, err := d.DB.ExecContext(ctx, m); err != nil && !isIgnorableMigrationErr(err) {
			return fmt.Errorf("migrate %q: %w", m, err)
		}
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}

// WithTx runs fn inside a transaction and rolls back when it returns an error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}
