package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/registry"
	"pet-registry/internal/domain/values"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func testOwner(t *testing.T, email, city, postal string) owners.Owner {
	t.Helper()
	ev, err := values.NewEmail(email)
	require.NoError(t, err)
	pv, err := values.NewPhoneNumber("0612345678")
	require.NoError(t, err)
	av, err := values.NewAddress("10 rue de la République", city, postal, "France")
	require.NoError(t, err)

	return owners.Owner{
		Version:          1,
		FirstName:        "Jean",
		LastName:         "DUPONT",
		Email:            ev,
		Phone:            pv,
		Address:          av,
		RegistrationDate: fixedNow,
		IsActive:         true,
		CreatedAt:        fixedNow,
		UpdatedAt:        fixedNow,
	}
}

func testDog(name string, ownerID int64) animals.Animal {
	return animals.Animal{
		Version:   1,
		Kind:      animals.KindDog,
		Name:      name,
		BirthDate: time.Date(2021, time.May, 15, 0, 0, 0, 0, time.UTC),
		Weight:    25.5,
		Color:     "fauve",
		OwnerID:   ownerID,
		Dog: &animals.DogTraits{
			Breed:              "Berger Allemand",
			IsDangerous:        false,
			RegistrationNumber: "ABC123456789012",
		},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func TestOwnersRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOwnersRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jean", got.FirstName)
	assert.Equal(t, "DUPONT", got.LastName)
	assert.Equal(t, "jean.dupont@example.com", got.Email.String())
	assert.Equal(t, created.Phone.String(), got.Phone.String())
	assert.True(t, got.Address.Equals(created.Address))
	assert.True(t, got.IsActive)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, got.RegistrationDate.Equal(fixedNow))
	assert.True(t, got.CreatedAt.Equal(fixedNow))

	byEmail, err := repo.GetByEmail(ctx, "jean.dupont@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	exists, err := repo.ExistsByEmail(ctx, "jean.dupont@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByID(ctx, 99)
	require.ErrorIs(t, err, owners.ErrNotFound)
}

func TestOwnersDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewOwnersRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Lyon", "69001"))
	require.ErrorIs(t, err, owners.ErrEmailTaken)
}

func TestOwnersUpdateCAS(t *testing.T) {
	db := newTestDB(t)
	repo := NewOwnersRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	created.FirstName = "Marc"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// la copia vieja sigue con version 1: debe rechazarse
	created.FirstName = "Paul"
	_, err = repo.Update(ctx, created)
	require.ErrorIs(t, err, owners.ErrVersionConflict)

	missing := testOwner(t, "otro@example.com", "Paris", "75001")
	missing.ID = 999
	_, err = repo.Update(ctx, missing)
	require.ErrorIs(t, err, owners.ErrNotFound)
}

func TestOwnersListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewOwnersRepo(db)
	ctx := context.Background()

	for _, o := range []owners.Owner{
		testOwner(t, "a@example.com", "Paris", "75001"),
		testOwner(t, "b@example.com", "Lyon", "69001"),
		testOwner(t, "c@example.com", "Paris", "75002"),
	} {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	// city ignora mayúsculas
	got, err := repo.List(ctx, owners.ListFilter{City: "paris"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(ctx, owners.ListFilter{PostalCode: "69001"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b@example.com", got[0].Email.String())

	got, err = repo.List(ctx, owners.ListFilter{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestAnimalsVariantsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ownersRepo := NewOwnersRepo(db)
	repo := NewAnimalsRepo(db)
	ctx := context.Background()

	owner, err := ownersRepo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	dog, err := repo.Create(ctx, testDog("Rex", owner.ID))
	require.NoError(t, err)

	cat, err := repo.Create(ctx, animals.Animal{
		Version:   1,
		Kind:      animals.KindCat,
		Name:      "Luna",
		BirthDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Weight:    4.2,
		Cat:       &animals.CatTraits{IsIndoor: true, IsHypoallergenic: false},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	})
	require.NoError(t, err)

	bird, err := repo.Create(ctx, animals.Animal{
		Version:   1,
		Kind:      animals.KindBird,
		Name:      "Coco",
		BirthDate: time.Date(2019, time.July, 1, 0, 0, 0, 0, time.UTC),
		Weight:    0.4,
		Bird:      &animals.BirdTraits{Species: "Perroquet", WingSpan: 65.5, CanTalk: true},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	})
	require.NoError(t, err)

	gotDog, err := repo.GetByID(ctx, dog.ID)
	require.NoError(t, err)
	require.NotNil(t, gotDog.Dog)
	assert.Nil(t, gotDog.Cat)
	assert.Nil(t, gotDog.Bird)
	assert.Equal(t, "Berger Allemand", gotDog.Dog.Breed)
	assert.Equal(t, "ABC123456789012", gotDog.Dog.RegistrationNumber)
	assert.Equal(t, owner.ID, gotDog.OwnerID)
	assert.Equal(t, 25.5, gotDog.Weight)
	assert.True(t, gotDog.BirthDate.Equal(dog.BirthDate))

	gotCat, err := repo.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	require.NotNil(t, gotCat.Cat)
	assert.True(t, gotCat.Cat.IsIndoor)
	assert.Zero(t, gotCat.OwnerID)

	gotBird, err := repo.GetByID(ctx, bird.ID)
	require.NoError(t, err)
	require.NotNil(t, gotBird.Bird)
	assert.Equal(t, 65.5, gotBird.Bird.WingSpan)
	assert.True(t, gotBird.Bird.CanTalk)
}

func TestAnimalsListAndDeleteByOwner(t *testing.T) {
	db := newTestDB(t)
	ownersRepo := NewOwnersRepo(db)
	repo := NewAnimalsRepo(db)
	ctx := context.Background()

	owner, err := ownersRepo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testDog("Rex", owner.ID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testDog("Brutus", owner.ID))
	require.NoError(t, err)

	cat, err := repo.Create(ctx, animals.Animal{
		Version:   1,
		Kind:      animals.KindCat,
		Name:      "Luna",
		BirthDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Weight:    4.2,
		Cat:       &animals.CatTraits{IsIndoor: true},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	})
	require.NoError(t, err)

	all, err := repo.List(ctx, animals.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Rex", all[0].Name)

	dogs, err := repo.List(ctx, animals.ListFilter{Kind: animals.KindDog})
	require.NoError(t, err)
	assert.Len(t, dogs, 2)

	owned, err := repo.List(ctx, animals.ListFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	removed, err := repo.DeleteByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err = repo.List(ctx, animals.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, cat.ID, all[0].ID)

	require.NoError(t, repo.Delete(ctx, cat.ID))
	require.ErrorIs(t, repo.Delete(ctx, cat.ID), animals.ErrNotFound)
}

func TestAnimalsUpdateCAS(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnimalsRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testDog("Rex", 0))
	require.NoError(t, err)

	created.Weight = 27.0
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	created.Weight = 28.0
	_, err = repo.Update(ctx, created)
	require.ErrorIs(t, err, animals.ErrVersionConflict)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 27.0, got.Weight)
}

func TestActivityListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepo(db)
	ctx := context.Background()

	at := func(sec int) time.Time {
		return time.Date(2026, time.March, 10, 12, 0, sec, 0, time.UTC)
	}
	entries := []activity.Entry{
		{ID: "e1", Type: activity.EntryTypeAnimalRegistered, AnimalID: 1, Summary: "Rex registered", OccurredAt: at(0)},
		{ID: "e2", Type: activity.EntryTypeAnimalTransferred, AnimalID: 1, OwnerID: 2, Summary: "Rex transferred to Marie MARTIN", OccurredAt: at(1)},
		{ID: "e3", Type: activity.EntryTypeOwnerRegistered, OwnerID: 2, Summary: "Marie MARTIN registered", OccurredAt: at(2)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.List(ctx, activity.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e3", all[0].ID)
	assert.Equal(t, "e1", all[2].ID)

	byAnimal, err := repo.List(ctx, activity.ListFilter{AnimalID: 1})
	require.NoError(t, err)
	assert.Len(t, byAnimal, 2)

	byType, err := repo.List(ctx, activity.ListFilter{Types: []activity.EntryType{activity.EntryTypeAnimalTransferred}})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "e2", byType[0].ID)

	byQuery, err := repo.List(ctx, activity.ListFilter{Query: "transferred"})
	require.NoError(t, err)
	assert.Len(t, byQuery, 1)

	limited, err := repo.List(ctx, activity.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestTxRunnerRollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ownersRepo := NewOwnersRepo(db)
	runner := NewTxRunner(db)
	ctx := context.Background()

	owner, err := ownersRepo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = runner.InTx(ctx, func(ctx context.Context, st registry.Stores) error {
		o, err := st.Owners.GetByID(ctx, owner.ID)
		if err != nil {
			return err
		}
		o.FirstName = "Marc"
		if _, err := st.Owners.Update(ctx, o); err != nil {
			return err
		}
		if err := st.Activity.Create(ctx, activity.Entry{
			ID: "e1", Type: activity.EntryTypeOwnerUpdated, OwnerID: o.ID,
			Summary: "owner updated", OccurredAt: fixedNow,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := ownersRepo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jean", got.FirstName)
	assert.Equal(t, int64(1), got.Version)

	entries, err := NewActivityRepo(db).List(ctx, activity.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTxRunnerCommits(t *testing.T) {
	db := newTestDB(t)
	ownersRepo := NewOwnersRepo(db)
	runner := NewTxRunner(db)
	ctx := context.Background()

	owner, err := ownersRepo.Create(ctx, testOwner(t, "jean.dupont@example.com", "Paris", "75001"))
	require.NoError(t, err)

	err = runner.InTx(ctx, func(ctx context.Context, st registry.Stores) error {
		o, err := st.Owners.GetByID(ctx, owner.ID)
		if err != nil {
			return err
		}
		o.FirstName = "Marc"
		if _, err := st.Owners.Update(ctx, o); err != nil {
			return err
		}
		return st.Activity.Create(ctx, activity.Entry{
			ID: "e1", Type: activity.EntryTypeOwnerUpdated, OwnerID: o.ID,
			Summary: "owner updated", OccurredAt: fixedNow,
		})
	})
	require.NoError(t, err)

	got, err := ownersRepo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marc", got.FirstName)
	assert.Equal(t, int64(2), got.Version)

	entries, err := NewActivityRepo(db).List(ctx, activity.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
