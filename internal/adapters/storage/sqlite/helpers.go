package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// dbtx permite usar los mismos repos sobre *sql.DB o *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ dbtx = (*sql.DB)(nil)
	_ dbtx = (*sql.Tx)(nil)
)

// Los timestamps se guardan como TEXT en RFC3339 con nanosegundos,
// siempre en UTC para que el orden lexicográfico siga al cronológico.
const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// isUniqueViolation detecta la violación de índice UNIQUE. El driver no
// expone un código tipado, así que se inspecciona el mensaje.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
