package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"notes-api/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sqlx.DB
}

func New(cfg config.DBConfig) (*DB, error) {
	if cfg.Driver == config.DriverSQLite {
		// Ensure directory exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if cfg.Driver == config.DriverSQLite {
		// Enable WAL mode for better concurrency
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &DB{db}, nil
}

// NewFromSQL wraps an already opened handle. driverName selects the
// placeholder style used when rebinding queries.
func NewFromSQL(db *sql.DB, driverName string) *DB {
	return &DB{sqlx.NewDb(db, driverName)}
}

// WithConn acquires a single connection for the duration of fn and always
// returns it to the pool, including when fn fails or panics.
func (db *DB) WithConn(ctx context.Context, fn func(conn *sqlx.Conn) error) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

func (db *DB) Migrate(ctx context.Context) error {
	queries := postgresSchema
	if db.DriverName() == config.DriverSQLite {
		queries = sqliteSchema
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS notes (
		id SERIAL PRIMARY KEY,
		title VARCHAR NOT NULL CHECK (length(title) > 0),
		content VARCHAR NOT NULL CHECK (length(content) > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS ix_notes_id ON notes(id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL CHECK (length(title) > 0),
		content TEXT NOT NULL CHECK (length(content) > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS ix_notes_id ON notes(id)`,
}
