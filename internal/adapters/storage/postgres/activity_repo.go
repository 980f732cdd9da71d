package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-registry/internal/domain/activity"
)

type ActivityRepo struct {
	db dbtx
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Create(ctx context.Context, e activity.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_entries (
			id, type,
			animal_id, owner_id,
			summary, detail,
			occurred_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		string(e.Type),
		e.AnimalID,
		e.OwnerID,
		e.Summary,
		e.Detail,
		e.OccurredAt,
	)
	return err
}

func (r *ActivityRepo) List(ctx context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, type,
			animal_id, owner_id,
			summary, detail,
			occurred_at
		FROM activity_entries
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.AnimalID > 0 {
		sb.WriteString(fmt.Sprintf(" AND animal_id = $%d", argN))
		args = append(args, filter.AnimalID)
		argN++
	}
	if filter.OwnerID > 0 {
		sb.WriteString(fmt.Sprintf(" AND owner_id = $%d", argN))
		args = append(args, filter.OwnerID)
		argN++
	}

	// types filter
	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	// from/to
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	// q: búsqueda simple en summary + detail
	if strings.TrimSpace(filter.Query) != "" {
		sb.WriteString(fmt.Sprintf(" AND (summary ILIKE $%d OR detail ILIKE $%d)", argN, argN))
		args = append(args, "%"+strings.TrimSpace(filter.Query)+"%")
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY occurred_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.Entry, 0)
	for rows.Next() {
		var e activity.Entry
		var typ string

		if err := rows.Scan(
			&e.ID,
			&typ,
			&e.AnimalID,
			&e.OwnerID,
			&e.Summary,
			&e.Detail,
			&e.OccurredAt,
		); err != nil {
			return nil, err
		}

		e.Type = activity.EntryType(typ)
		out = append(out, e)
	}

	return out, rows.Err()
}
