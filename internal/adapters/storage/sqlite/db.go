// Package sqlite implementa los repositorios sobre SQLite embebido.
// Pensado para instalaciones de un solo nodo y para la CLI; el esquema
// es el mismo que el de postgres, con tipos de SQLite.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base en path y deja el esquema listo.
// ":memory:" abre una base en memoria, útil en tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mejora la lectura concurrente; foreign_keys viene apagado
	// por defecto en SQLite y el esquema lo necesita.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// migrations se aplican en orden; todas las sentencias son idempotentes.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		version           INTEGER NOT NULL DEFAULT 1,
		first_name        TEXT NOT NULL,
		last_name         TEXT NOT NULL,
		email             TEXT NOT NULL,
		phone             TEXT NOT NULL,
		street            TEXT NOT NULL,
		city              TEXT NOT NULL,
		postal_code       TEXT NOT NULL,
		country           TEXT NOT NULL,
		registration_date TEXT NOT NULL,
		is_active         INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS owners_email_uq ON owners (email)`,

	`CREATE TABLE IF NOT EXISTS animals (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		version             INTEGER NOT NULL DEFAULT 1,
		kind                TEXT NOT NULL,
		name                TEXT NOT NULL,
		birth_date          TEXT NOT NULL,
		weight_kg           REAL NOT NULL,
		color               TEXT NOT NULL DEFAULT '',
		owner_id            INTEGER REFERENCES owners (id),
		breed               TEXT,
		is_dangerous        INTEGER,
		registration_number TEXT,
		is_indoor           INTEGER,
		is_hypoallergenic   INTEGER,
		species             TEXT,
		wing_span           REAL,
		can_talk            INTEGER,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS animals_owner_idx ON animals (owner_id)`,
	`CREATE INDEX IF NOT EXISTS animals_kind_idx ON animals (kind)`,

	`CREATE TABLE IF NOT EXISTS activity_entries (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		animal_id   INTEGER NOT NULL DEFAULT 0,
		owner_id    INTEGER NOT NULL DEFAULT 0,
		summary     TEXT NOT NULL,
		detail      TEXT NOT NULL DEFAULT '',
		occurred_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS activity_animal_idx ON activity_entries (animal_id)`,
	`CREATE INDEX IF NOT EXISTS activity_owner_idx ON activity_entries (owner_id)`,
	`CREATE INDEX IF NOT EXISTS activity_occurred_idx ON activity_entries (occurred_at DESC)`,
}

// Migrate aplica el esquema completo.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
