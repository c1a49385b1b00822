package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dvconsultores/rhino-bot/internal/config"
	"github.com/dvconsultores/rhino-bot/internal/lib/sl"
)

// SQLite is the relational store backing both the REST API and the bot.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

func New(conf *config.Config, log *slog.Logger) (*SQLite, error) {
	if dir := filepath.Dir(conf.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := conf.Database.Path + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLite{
		db:  db,
		log: log.With(sl.Module("repository")),
	}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLite) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		lastname TEXT NOT NULL,
		cedula INTEGER NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		date_of_birth TEXT NOT NULL,
		phone INTEGER NOT NULL,
		instagram TEXT UNIQUE,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		telegram_id INTEGER NOT NULL UNIQUE,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location TEXT NOT NULL,
		address TEXT NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS coaches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cedula TEXT NOT NULL UNIQUE,
		names TEXT NOT NULL,
		location_id INTEGER NOT NULL REFERENCES locations(id),
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS location_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		location_id INTEGER NOT NULL REFERENCES locations(id),
		status TEXT NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		location_id INTEGER NOT NULL REFERENCES locations(id),
		days TEXT NOT NULL,
		time_init TEXT NOT NULL,
		time_end TEXT NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS payment_methods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		method TEXT NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS payments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		date TEXT NOT NULL,
		amount REAL NOT NULL,
		reference TEXT,
		payment_method_id INTEGER NOT NULL REFERENCES payment_methods(id),
		proof_path TEXT,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		creation_date INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_payments_period ON payments(year, month);

	CREATE TABLE IF NOT EXISTS attendances (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		coach_id INTEGER NOT NULL REFERENCES coaches(id),
		location_id INTEGER NOT NULL REFERENCES locations(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		date INTEGER NOT NULL,
		creation_date INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS languages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		telegram_id INTEGER NOT NULL UNIQUE,
		language TEXT NOT NULL,
		creation_date INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// nullable maps empty strings to NULL so unique-but-optional columns
// (instagram, reference) do not collide on "".
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
