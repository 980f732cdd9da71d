package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id                BIGSERIAL PRIMARY KEY,
		version           BIGINT NOT NULL DEFAULT 1,
		first_name        TEXT NOT NULL,
		last_name         TEXT NOT NULL,
		email             TEXT NOT NULL,
		phone             TEXT NOT NULL,
		street            TEXT NOT NULL,
		city              TEXT NOT NULL,
		postal_code       TEXT NOT NULL,
		country           TEXT NOT NULL,
		registration_date TIMESTAMPTZ NOT NULL,
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS owners_email_uq ON owners (email)`,
	`CREATE TABLE IF NOT EXISTS animals (
		id         BIGSERIAL PRIMARY KEY,
		version    BIGINT NOT NULL DEFAULT 1,
		kind       TEXT NOT NULL,
		name       TEXT NOT NULL,
		birth_date DATE NOT NULL,
		weight_kg  DOUBLE PRECISION NOT NULL,
		color      TEXT NOT NULL DEFAULT '',
		owner_id   BIGINT NULL REFERENCES owners (id),

		breed               TEXT,
		is_dangerous        BOOLEAN,
		registration_number TEXT,

		is_indoor         BOOLEAN,
		is_hypoallergenic BOOLEAN,

		species   TEXT,
		wing_span DOUBLE PRECISION,
		can_talk  BOOLEAN,

		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS animals_owner_idx ON animals (owner_id)`,
	`CREATE INDEX IF NOT EXISTS animals_kind_idx ON animals (kind)`,
	`CREATE TABLE IF NOT EXISTS activity_entries (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		animal_id   BIGINT NOT NULL DEFAULT 0,
		owner_id    BIGINT NOT NULL DEFAULT 0,
		summary     TEXT NOT NULL,
		detail      TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS activity_animal_idx ON activity_entries (animal_id)`,
	`CREATE INDEX IF NOT EXISTS activity_owner_idx ON activity_entries (owner_id)`,
	`CREATE INDEX IF NOT EXISTS activity_occurred_idx ON activity_entries (occurred_at DESC)`,
}

// Migrate aplica el esquema; todas las sentencias son idempotentes.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// dbtx permite usar los mismos repos sobre *sql.DB o *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
