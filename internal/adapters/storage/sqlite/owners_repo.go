package sqlite

import (
	"context"
	"database/sql"
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
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (
			version,
			first_name, last_name,
			email, phone,
			street, city, postal_code, country,
			registration_date, is_active,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
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
		formatTime(o.RegistrationDate),
		boolToInt(o.IsActive),
		formatTime(o.CreatedAt),
		formatTime(o.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.Owner{}, owners.ErrEmailTaken
		}
		return owners.Owner{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return owners.Owner{}, err
	}
	o.ID = id
	return o, nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+ownerColumns+`
		FROM owners
		WHERE id = ?
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
		WHERE email = ?
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
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM owners WHERE email = ?)
	`, email).Scan(&n)
	return n != 0, err
}

func (r *OwnersRepo) List(ctx context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT` + ownerColumns + `
		FROM owners
		WHERE 1=1
	`)

	args := []any{}

	if filter.City != "" {
		sb.WriteString(" AND city = ? COLLATE NOCASE")
		args = append(args, filter.City)
	}
	if filter.PostalCode != "" {
		sb.WriteString(" AND postal_code = ?")
		args = append(args, filter.PostalCode)
	}

	sb.WriteString(" ORDER BY id ASC")

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		sb.WriteString(" LIMIT ? OFFSET ?")
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
			first_name = ?,
			last_name = ?,
			email = ?,
			phone = ?,
			street = ?,
			city = ?,
			postal_code = ?,
			country = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ? AND version = ?
	`,
		o.FirstName,
		o.LastName,
		o.Email.String(),
		o.Phone.String(),
		o.Address.Street(),
		o.Address.City(),
		o.Address.PostalCode(),
		o.Address.Country(),
		boolToInt(o.IsActive),
		formatTime(o.UpdatedAt),
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
		var exists int
		if err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM owners WHERE id = ?)
		`, o.ID).Scan(&exists); err != nil {
			return owners.Owner{}, err
		}
		if exists == 0 {
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
		WHERE id = ?
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
		regDate, created, updated  string
		active                     int
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
		&regDate,
		&active,
		&created,
		&updated,
	); err != nil {
		return owners.Owner{}, err
	}

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
	o.IsActive = intToBool(active)

	if o.RegistrationDate, err = parseTime(regDate); err != nil {
		return owners.Owner{}, err
	}
	if o.CreatedAt, err = parseTime(created); err != nil {
		return owners.Owner{}, err
	}
	if o.UpdatedAt, err = parseTime(updated); err != nil {
		return owners.Owner{}, err
	}

	return o, nil
}
