package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/values"
)

type OwnersRepo struct {
	db dbtx
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

const ownerColumns = `
		id, version,
		first_name, last_name,
		email, phone,
		street, city, postal_code, country,
		registration_date, is_active,
		created_at, updated_at`

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (
			version,
			first_name, last_name,
			email, phone,
			street, city, postal_code, country,
			registration_date, is_active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`,
		o.Version,
		o.FirstName,
		o.LastName,
		o.Email.String(),
		o.Phone.String(),
		o.Address.Street(),
		o.Address.City(),
		o.Address.PostalCode(),
		o.Address.Country(),
		o.RegistrationDate,
		o.IsActive,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err := row.Scan(&o.ID); err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrEmailTaken
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+ownerColumns+`
		FROM owners
		WHERE id = $1
	`, id)

	o, err := scanOwner(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+ownerColumns+`
		FROM owners
		WHERE email = $1
	`, email)

	o, err := scanOwner(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM owners WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *OwnersRepo) List(ctx context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT` + ownerColumns + `
		FROM owners
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if filter.City != "" {
		// ILIKE sin comodines = igualdad sin distinguir mayúsculas
		sb.WriteString(fmt.Sprintf(" AND city ILIKE $%d", argN))
		args = append(args, filter.City)
		argN++
	}
	if filter.PostalCode != "" {
		sb.WriteString(fmt.Sprintf(" AND postal_code = $%d", argN))
		args = append(args, filter.PostalCode)
		argN++
	}

	sb.WriteString(" ORDER BY id ASC")

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
		args = append(args, filter.PerPage, (page-1)*filter.PerPage)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners SET
			version = version + 1,
			first_name = $1,
			last_name = $2,
			email = $3,
			phone = $4,
			street = $5,
			city = $6,
			postal_code = $7,
			country = $8,
			is_active = $9,
			updated_at = $10
		WHERE id = $11 AND version = $12
	`,
		o.FirstName,
		o.LastName,
		o.Email.String(),
		o.Phone.String(),
		o.Address.Street(),
		o.Address.City(),
		o.Address.PostalCode(),
		o.Address.Country(),
		o.IsActive,
		o.UpdatedAt,
		o.ID,
		o.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrEmailTaken
		}
		return owners.Owner{}, err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM owners WHERE id = $1)
		`, o.ID).Scan(&exists); err != nil {
			return owners.Owner{}, err
		}
		if !exists {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, owners.ErrVersionConflict
	}

	o.Version++
	return o, nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM owners
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func scanOwner(scan func(dest ...any) error) (owners.Owner, error) {
	var (
		o                          owners.Owner
		email, phone               string
		street, city, postal, ctry string
	)
	if err := scan(
		&o.ID,
		&o.Version,
		&o.FirstName,
		&o.LastName,
		&email,
		&phone,
		&street,
		&city,
		&postal,
		&ctry,
		&o.RegistrationDate,
		&o.IsActive,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return owners.Owner{}, err
	}

	// Los value objects se reconstruyen validando: una fila que no pasa
	// la validación es un dato corrupto y debe aflorar.
	ev, err := values.NewEmail(email)
	if err != nil {
		return owners.Owner{}, err
	}
	pv, err := values.NewPhoneNumber(phone)
	if err != nil {
		return owners.Owner{}, err
	}
	av, err := values.NewAddress(street, city, postal, ctry)
	if err != nil {
		return owners.Owner{}, err
	}

	o.Email = ev
	o.Phone = pv
	o.Address = av
	return o, nil
}
