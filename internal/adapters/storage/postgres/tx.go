package postgres

import (
	"context"
	"database/sql"

	"pet-registry/internal/domain/registry"
)

// TxRunner ejecuta la función recibida dentro de una transacción real,
// con los tres repos atados al mismo *sql.Tx.
type TxRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

func (t *TxRunner) InTx(ctx context.Context, fn func(ctx context.Context, st registry.Stores) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	st := registry.Stores{
		Animals:  &AnimalsRepo{db: tx},
		Owners:   &OwnersRepo{db: tx},
		Activity: &ActivityRepo{db: tx},
	}

	if err := fn(ctx, st); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
