package postgres

import (
	"context"
	"database/sql"
	"fmt"
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

// animalNullables agrupa las columnas que dependen del tipo de animal.
// Solo las de la variante activa viajan con valor; el resto queda NULL.
type animalNullables struct {
	owner          sql.NullInt64
	breed          sql.NullString
	isDangerous    sql.NullBool
	regNumber      sql.NullString
	isIndoor       sql.NullBool
	hypoallergenic sql.NullBool
	species        sql.NullString
	wingSpan       sql.NullFloat64
	canTalk        sql.NullBool
}

func nullableFields(a animals.Animal) animalNullables {
	var nv animalNullables

	if a.OwnerID > 0 {
		nv.owner = sql.NullInt64{Int64: a.OwnerID, Valid: true}
	}

	switch {
	case a.Dog != nil:
		nv.breed = sql.NullString{String: a.Dog.Breed, Valid: true}
		nv.isDangerous = sql.NullBool{Bool: a.Dog.IsDangerous, Valid: true}
		nv.regNumber = sql.NullString{String: a.Dog.RegistrationNumber, Valid: true}
	case a.Cat != nil:
		nv.isIndoor = sql.NullBool{Bool: a.Cat.IsIndoor, Valid: true}
		nv.hypoallergenic = sql.NullBool{Bool: a.Cat.IsHypoallergenic, Valid: true}
	case a.Bird != nil:
		nv.species = sql.NullString{String: a.Bird.Species, Valid: true}
		nv.wingSpan = sql.NullFloat64{Float64: a.Bird.WingSpan, Valid: true}
		nv.canTalk = sql.NullBool{Bool: a.Bird.CanTalk, Valid: true}
	}

	return nv
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	nv := nullableFields(a)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO animals (
			version, kind,
			name, birth_date, weight_kg, color, owner_id,
			breed, is_dangerous, registration_number,
			is_indoor, is_hypoallergenic,
			species, wing_span, can_talk,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id
	`,
		a.Version,
		string(a.Kind),
		a.Name,
		a.BirthDate,
		a.Weight,
		a.Color,
		nv.owner,
		nv.breed,
		nv.isDangerous,
		nv.regNumber,
		nv.isIndoor,
		nv.hypoallergenic,
		nv.species,
		nv.wingSpan,
		nv.canTalk,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err := row.Scan(&a.ID); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE id = $1
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
	argN := 1

	if filter.Kind != "" {
		sb.WriteString(fmt.Sprintf(" AND kind = $%d", argN))
		args = append(args, string(filter.Kind))
		argN++
	}
	if filter.OwnerID > 0 {
		sb.WriteString(fmt.Sprintf(" AND owner_id = $%d", argN))
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
	nv := nullableFields(a)

	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET
			version = version + 1,
			name = $1,
			weight_kg = $2,
			color = $3,
			owner_id = $4,
			breed = $5,
			is_dangerous = $6,
			registration_number = $7,
			is_indoor = $8,
			is_hypoallergenic = $9,
			species = $10,
			wing_span = $11,
			can_talk = $12,
			updated_at = $13
		WHERE id = $14 AND version = $15
	`,
		a.Name,
		a.Weight,
		a.Color,
		nv.owner,
		nv.breed,
		nv.isDangerous,
		nv.regNumber,
		nv.isIndoor,
		nv.hypoallergenic,
		nv.species,
		nv.wingSpan,
		nv.canTalk,
		a.UpdatedAt,
		a.ID,
		a.Version,
	)
	if err != nil {
		return animals.Animal{}, err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM animals WHERE id = $1)
		`, a.ID).Scan(&exists); err != nil {
			return animals.Animal{}, err
		}
		if !exists {
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
		WHERE id = $1
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
		WHERE owner_id = $1
	`, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanAnimal(scan func(dest ...any) error) (animals.Animal, error) {
	var (
		a    animals.Animal
		kind string
		nv   animalNullables
	)
	if err := scan(
		&a.ID,
		&a.Version,
		&kind,
		&a.Name,
		&a.BirthDate,
		&a.Weight,
		&a.Color,
		&nv.owner,
		&nv.breed,
		&nv.isDangerous,
		&nv.regNumber,
		&nv.isIndoor,
		&nv.hypoallergenic,
		&nv.species,
		&nv.wingSpan,
		&nv.canTalk,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Kind = animals.Kind(kind)
	if nv.owner.Valid {
		a.OwnerID = nv.owner.Int64
	}

	switch a.Kind {
	case animals.KindDog:
		a.Dog = &animals.DogTraits{
			Breed:              nv.breed.String,
			IsDangerous:        nv.isDangerous.Bool,
			RegistrationNumber: nv.regNumber.String,
		}
	case animals.KindCat:
		a.Cat = &animals.CatTraits{
			IsIndoor:         nv.isIndoor.Bool,
			IsHypoallergenic: nv.hypoallergenic.Bool,
		}
	case animals.KindBird:
		a.Bird = &animals.BirdTraits{
			Species:  nv.species.String,
			WingSpan: nv.wingSpan.Float64,
			CanTalk:  nv.canTalk.Bool,
		}
	}

	return a, nil
}
