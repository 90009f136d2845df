package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. The driver is selected
// by the DB_TYPE environment variable ("sqlite" or "postgres", sqlite by
// default); sqlite uses DATABASE_PATH, postgres uses DATABASE_URL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dataDir := "data"
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
			dbPath = filepath.Join(dataDir, "vocablearner.db")
		}
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// ConnectSQLite opens a sqlite database at the given path. Used by tests.
func ConnectSQLite(path string) error {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// Deck entries, kept in load order
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			position INTEGER NOT NULL,
			word TEXT PRIMARY KEY,
			translation TEXT NOT NULL,
			example TEXT NOT NULL DEFAULT '',
			synonyms TEXT NOT NULL DEFAULT '',
			etymology TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create words table: %v", err)
	}

	// One spaced-repetition record per word
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS learning_records (
			word TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			ease_factor REAL NOT NULL,
			interval_days INTEGER NOT NULL,
			repetitions INTEGER NOT NULL,
			due_at TEXT NOT NULL DEFAULT '',
			last_reviewed_at TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learning_records table: %v", err)
	}

	// Singleton row holding notification, streak and introduction state
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY,
			last_notified_at TEXT NOT NULL DEFAULT '',
			quiet_start INTEGER NOT NULL DEFAULT 0,
			quiet_end INTEGER NOT NULL DEFAULT 0,
			frequency_minutes INTEGER NOT NULL DEFAULT 60,
			last_active_date TEXT NOT NULL DEFAULT '',
			current_streak INTEGER NOT NULL DEFAULT 0,
			intro_date TEXT NOT NULL DEFAULT '',
			intro_count INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create session_state table: %v", err)
	}

	return nil
}
