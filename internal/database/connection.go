package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DB is the global database connection
var DB *sqlx.DB

// Config describes a database connection target
type Config struct {
	Driver string
	DSN    string
}

// Connect establishes the database connection. The client binaries connect
// to a local SQLite file; the server connects to PostgreSQL, or SQLite when
// no DATABASE_URL is configured.
func Connect(cfg Config) error {
	if cfg.Driver == DriverSQLite && cfg.DSN != ":memory:" {
		// Create the data directory if it doesn't exist
		dir := filepath.Dir(cfg.DSN)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// rebind converts ? placeholders to the connected driver's bindvar format,
// so each query is written once and runs on both SQLite and PostgreSQL
func rebind(query string) string {
	return DB.Rebind(query)
}
