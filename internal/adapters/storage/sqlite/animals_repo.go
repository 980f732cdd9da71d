package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pet-registry/internal/domain/animals"
)

type AnimalsRepo struct {
	db dbtx
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
		id, version, kind,
		name, birth_date, weight_kg, color, owner_id,
		breed, is_dangerous, registration_number,
		is_indoor, is_hypoallergenic,
		species, wing_span, can_talk,
		created_at, updated_at`

// variantValues devuelve las columnas dependientes del tipo como valores
// para el driver: solo la variante activa viaja con dato, el resto NULL.
func variantValues(a animals.Animal) (owner, breed, dangerous, regNumber, indoor, hypo, species, wingSpan, canTalk any) {
	if a.OwnerID > 0 {
		owner = a.OwnerID
	}
	switch {
	case a.Dog != nil:
		breed = a.Dog.Breed
		dangerous = boolToInt(a.Dog.IsDangerous)
		regNumber = a.Dog.RegistrationNumber
	case a.Cat != nil:
		indoor = boolToInt(a.Cat.IsIndoor)
		hypo = boolToInt(a.Cat.IsHypoallergenic)
	case a.Bird != nil:
		species = a.Bird.Species
		wingSpan = a.Bird.WingSpan
		canTalk = boolToInt(a.Bird.CanTalk)
	}
	return
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	owner, breed, dangerous, regNumber, indoor, hypo, species, wingSpan, canTalk := variantValues(a)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			version, kind,
			name, birth_date, weight_kg, color, owner_id,
			breed, is_dangerous, registration_number,
			is_indoor, is_hypoallergenic,
			species, wing_span, can_talk,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		a.Version,
		string(a.Kind),
		a.Name,
		formatTime(a.BirthDate),
		a.Weight,
		a.Color,
		owner,
		breed,
		dangerous,
		regNumber,
		indoor,
		hypo,
		species,
		wingSpan,
		canTalk,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return animals.Animal{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return animals.Animal{}, err
	}
	a.ID = id
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE id = ?
	`, id)

	a, err := scanAnimal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT` + animalColumns + `
		FROM animals
		WHERE 1=1
	`)

	args := []any{}

	if filter.Kind != "" {
		sb.WriteString(" AND kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.OwnerID > 0 {
		sb.WriteString(" AND owner_id = ?")
		args = append(args, filter.OwnerID)
	}

	// Orden estable por id asc (orden de alta).
	sb.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	owner, breed, dangerous, regNumber, indoor, hypo, species, wingSpan, canTalk := variantValues(a)

	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET
			version = version + 1,
			name = ?,
			weight_kg = ?,
			color = ?,
			owner_id = ?,
			breed = ?,
			is_dangerous = ?,
			registration_number = ?,
			is_indoor = ?,
			is_hypoallergenic = ?,
			species = ?,
			wing_span = ?,
			can_talk = ?,
			updated_at = ?
		WHERE id = ? AND version = ?
	`,
		a.Name,
		a.Weight,
		a.Color,
		owner,
		breed,
		dangerous,
		regNumber,
		indoor,
		hypo,
		species,
		wingSpan,
		canTalk,
		formatTime(a.UpdatedAt),
		a.ID,
		a.Version,
	)
	if err != nil {
		return animals.Animal{}, err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM animals WHERE id = ?)
		`, a.ID).Scan(&exists); err != nil {
			return animals.Animal{}, err
		}
		if exists == 0 {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, animals.ErrVersionConflict
	}

	a.Version++
	return a, nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animals
		WHERE id = ?
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animals
		WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanAnimal(scan func(dest ...any) error) (animals.Animal, error) {
	var (
		a                       animals.Animal
		kind                    string
		birth, created, updated string
		owner                   sql.NullInt64
		breed, regNum, species  sql.NullString
		dangerous, indoor       sql.NullInt64
		hypo, canTalk           sql.NullInt64
		wingSpan                sql.NullFloat64
	)
	if err := scan(
		&a.ID,
		&a.Version,
		&kind,
		&a.Name,
		&birth,
		&a.Weight,
		&a.Color,
		&owner,
		&breed,
		&dangerous,
		&regNum,
		&indoor,
		&hypo,
		&species,
		&wingSpan,
		&canTalk,
		&created,
		&updated,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Kind = animals.Kind(kind)
	if owner.Valid {
		a.OwnerID = owner.Int64
	}

	switch a.Kind {
	case animals.KindDog:
		a.Dog = &animals.DogTraits{
			Breed:              breed.String,
			IsDangerous:        intToBool(int(dangerous.Int64)),
			RegistrationNumber: regNum.String,
		}
	case animals.KindCat:
		a.Cat = &animals.CatTraits{
			IsIndoor:         intToBool(int(indoor.Int64)),
			IsHypoallergenic: intToBool(int(hypo.Int64)),
		}
	case animals.KindBird:
		a.Bird = &animals.BirdTraits{
			Species:  species.String,
			WingSpan: wingSpan.Float64,
			CanTalk:  intToBool(int(canTalk.Int64)),
		}
	}

	var err error
	if a.BirthDate, err = parseTime(birth); err != nil {
		return animals.Animal{}, err
	}
	if a.CreatedAt, err = parseTime(created); err != nil {
		return animals.Animal{}, err
	}
	if a.UpdatedAt, err = parseTime(updated); err != nil {
		return animals.Animal{}, err
	}

	return a, nil
}
