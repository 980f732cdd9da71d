package sqlite

import (
	"context"
	"database/sql"
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
		) VALUES (?,?,?,?,?,?,?)
	`,
		e.ID,
		string(e.Type),
		e.AnimalID,
		e.OwnerID,
		e.Summary,
		e.Detail,
		formatTime(e.OccurredAt),
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

	if filter.AnimalID > 0 {
		sb.WriteString(" AND animal_id = ?")
		args = append(args, filter.AnimalID)
	}
	if filter.OwnerID > 0 {
		sb.WriteString(" AND owner_id = ?")
		args = append(args, filter.OwnerID)
	}

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, "?")
			args = append(args, string(t))
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(" AND occurred_at >= ?")
		args = append(args, formatTime(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(" AND occurred_at <= ?")
		args = append(args, formatTime(*filter.To))
	}

	// q: búsqueda simple en summary + detail (LIKE de SQLite ya ignora
	// mayúsculas en ASCII)
	if strings.TrimSpace(filter.Query) != "" {
		sb.WriteString(" AND (summary LIKE ? OR detail LIKE ?)")
		q := "%" + strings.TrimSpace(filter.Query) + "%"
		args = append(args, q, q)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY occurred_at DESC")
	sb.WriteString(" LIMIT ?")
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activity.Entry, 0)
	for rows.Next() {
		var e activity.Entry
		var typ, occurred string

		if err := rows.Scan(
			&e.ID,
			&typ,
			&e.AnimalID,
			&e.OwnerID,
			&e.Summary,
			&e.Detail,
			&occurred,
		); err != nil {
			return nil, err
		}

		e.Type = activity.EntryType(typ)
		if e.OccurredAt, err = parseTime(occurred); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
