package registry

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/values"
)

type fakeAnimalRepo struct {
	seq     int64
	animals map[int64]animals.Animal
}

func (r *fakeAnimalRepo) Create(_ context.Context, a animals.Animal) (animals.Animal, error) {
	r.seq++
	a.ID = r.seq
	r.animals[a.ID] = a
	return a, nil
}

func (r *fakeAnimalRepo) GetByID(_ context.Context, id int64) (animals.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *fakeAnimalRepo) List(_ context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	out := make([]animals.Animal, 0)
	for _, a := range r.animals {
		if filter.Kind != "" && a.Kind != filter.Kind {
			continue
		}
		if filter.OwnerID > 0 && a.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAnimalRepo) Update(_ context.Context, a animals.Animal) (animals.Animal, error) {
	stored, ok := r.animals[a.ID]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	if stored.Version != a.Version {
		return animals.Animal{}, animals.ErrVersionConflict
	}
	a.Version++
	r.animals[a.ID] = a
	return a, nil
}

func (r *fakeAnimalRepo) Delete(_ context.Context, id int64) error {
	delete(r.animals, id)
	return nil
}

func (r *fakeAnimalRepo) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	var n int64
	for id, a := range r.animals {
		if a.OwnerID == ownerID {
			delete(r.animals, id)
			n++
		}
	}
	return n, nil
}

type fakeOwnerRepo struct {
	owners map[int64]owners.Owner
}

func (r *fakeOwnerRepo) Create(_ context.Context, o owners.Owner) (owners.Owner, error) {
	r.owners[o.ID] = o
	return o, nil
}

func (r *fakeOwnerRepo) GetByID(_ context.Context, id int64) (owners.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *fakeOwnerRepo) GetByEmail(_ context.Context, _ string) (owners.Owner, error) {
	return owners.Owner{}, owners.ErrNotFound
}

func (r *fakeOwnerRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeOwnerRepo) List(_ context.Context, _ owners.ListFilter) ([]owners.Owner, error) {
	return nil, nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, o owners.Owner) (owners.Owner, error) {
	r.owners[o.ID] = o
	return o, nil
}

func (r *fakeOwnerRepo) Delete(_ context.Context, id int64) error {
	delete(r.owners, id)
	return nil
}

type fakeActivityRepo struct {
	entries []activity.Entry
	fail    bool
}

func (r *fakeActivityRepo) Create(_ context.Context, e activity.Entry) error {
	if r.fail {
		return errors.New("activity store down")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeActivityRepo) List(_ context.Context, _ activity.ListFilter) ([]activity.Entry, error) {
	return r.entries, nil
}

// passthroughTx ejecuta fn directamente sobre los repos compartidos.
type passthroughTx struct {
	st Stores
}

func (t passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context, st Stores) error) error {
	return fn(ctx, t.st)
}

type listerFunc func(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error)

func (f listerFunc) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	return f(ctx, filter)
}

func newTestService() (*Service, *fakeAnimalRepo, *fakeOwnerRepo, *fakeActivityRepo) {
	animalRepo := &fakeAnimalRepo{animals: map[int64]animals.Animal{}}
	ownerRepo := &fakeOwnerRepo{owners: map[int64]owners.Owner{
		1: {ID: 1, FirstName: "Jean", LastName: "DUPONT", IsActive: true, Version: 1},
		2: {ID: 2, FirstName: "Marie", LastName: "MARTIN", IsActive: true, Version: 1},
		3: {ID: 3, FirstName: "Paul", LastName: "BERNARD", IsActive: false, Version: 1},
	}}
	activityRepo := &fakeActivityRepo{}

	tx := passthroughTx{st: Stores{Animals: animalRepo, Owners: ownerRepo, Activity: activityRepo}}
	svc := NewService(tx, listerFunc(animalRepo.List))
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, animalRepo, ownerRepo, activityRepo
}

func seedDog(repo *fakeAnimalRepo, ownerID int64) animals.Animal {
	a, _ := repo.Create(context.Background(), animals.Animal{
		Kind:      animals.KindDog,
		Name:      "Rex",
		BirthDate: time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC),
		Weight:    25.5,
		OwnerID:   ownerID,
		Version:   1,
		Dog:       &animals.DogTraits{Breed: "Berger Allemand"},
	})
	return a
}

func TestService_Transfer(t *testing.T) {
	svc, animalRepo, _, activityRepo := newTestService()
	ctx := context.Background()
	a := seedDog(animalRepo, 1)

	got, err := svc.Transfer(ctx, a.ID, 2)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if got.OwnerID != 2 {
		t.Fatalf("OwnerID = %d, want 2", got.OwnerID)
	}
	if got.Version != a.Version+1 {
		t.Fatalf("Version = %d, want %d", got.Version, a.Version+1)
	}

	if len(activityRepo.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(activityRepo.entries))
	}
	e := activityRepo.entries[0]
	if e.Type != activity.EntryTypeAnimalTransferred {
		t.Fatalf("entry type = %s", e.Type)
	}
	if e.AnimalID != a.ID || e.OwnerID != 2 {
		t.Fatalf("entry targets wrong ids: %+v", e)
	}
	if e.ID == "" || e.OccurredAt.IsZero() {
		t.Fatalf("entry identity not stamped: %+v", e)
	}
}

func TestService_Transfer_SameOwnerIsNoop(t *testing.T) {
	svc, animalRepo, _, activityRepo := newTestService()
	ctx := context.Background()
	a := seedDog(animalRepo, 1)

	got, err := svc.Transfer(ctx, a.ID, 1)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if got.Version != a.Version {
		t.Fatalf("no-op transfer bumped the version")
	}
	if len(activityRepo.entries) != 0 {
		t.Fatalf("no-op transfer recorded activity")
	}
}

func TestService_Transfer_Checks(t *testing.T) {
	svc, animalRepo, _, _ := newTestService()
	ctx := context.Background()
	a := seedDog(animalRepo, 1)

	if _, err := svc.Transfer(ctx, 999, 2); !errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("missing animal: err = %v, want animals.ErrNotFound", err)
	}
	if _, err := svc.Transfer(ctx, a.ID, 999); !errors.Is(err, owners.ErrNotFound) {
		t.Fatalf("missing owner: err = %v, want owners.ErrNotFound", err)
	}
	if _, err := svc.Transfer(ctx, a.ID, 3); !errors.Is(err, animals.ErrOwnerInactive) {
		t.Fatalf("inactive owner: err = %v, want animals.ErrOwnerInactive", err)
	}
	if _, err := svc.Transfer(ctx, a.ID, 0); !values.IsValidation(err) {
		t.Fatalf("zero owner id: err = %v, want a validation error", err)
	}
}

func TestService_Transfer_ActivityFailureAborts(t *testing.T) {
	svc, animalRepo, _, activityRepo := newTestService()
	ctx := context.Background()
	a := seedDog(animalRepo, 1)
	activityRepo.fail = true

	if _, err := svc.Transfer(ctx, a.ID, 2); err == nil {
		t.Fatalf("expected the transactional write to surface the failure")
	}
}

func TestService_Release(t *testing.T) {
	svc, animalRepo, _, activityRepo := newTestService()
	ctx := context.Background()
	a := seedDog(animalRepo, 1)

	got, err := svc.Release(ctx, a.ID)
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got.OwnerID != 0 {
		t.Fatalf("OwnerID = %d, want 0", got.OwnerID)
	}

	entries := activityRepo.entries
	if len(entries) != 1 || entries[0].Type != activity.EntryTypeAnimalReleased {
		t.Fatalf("expected a release entry, got %+v", entries)
	}
	if entries[0].OwnerID != 1 {
		t.Fatalf("release entry must reference the previous owner: %+v", entries[0])
	}

	// Liberar de nuevo es un no-op silencioso.
	again, err := svc.Release(ctx, a.ID)
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if again.Version != got.Version {
		t.Fatalf("no-op release bumped the version")
	}
	if len(activityRepo.entries) != 1 {
		t.Fatalf("no-op release recorded activity")
	}
}

func TestService_Overview(t *testing.T) {
	svc, animalRepo, _, _ := newTestService()
	ctx := context.Background()

	seedDog(animalRepo, 1)
	_, _ = animalRepo.Create(ctx, animals.Animal{
		Kind: animals.KindDog, Name: "Brutus",
		BirthDate: time.Date(2015, time.January, 2, 0, 0, 0, 0, time.UTC),
		Weight:    40, OwnerID: 2, Version: 1,
		Dog: &animals.DogTraits{Breed: "Rottweiler", IsDangerous: true},
	})
	_, _ = animalRepo.Create(ctx, animals.Animal{
		Kind: animals.KindCat, Name: "Luna",
		BirthDate: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
		Weight:    4, OwnerID: 1, Version: 1,
		Cat: &animals.CatTraits{IsIndoor: true},
	})

	ov, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if ov.Census.Total != 3 {
		t.Fatalf("Total = %d, want 3", ov.Census.Total)
	}
	if ov.Census.ByKind[animals.KindDog] != 2 || ov.Census.ByKind[animals.KindCat] != 1 {
		t.Fatalf("ByKind = %v", ov.Census.ByKind)
	}
	// Edades al 2026-03-10: Rex 4, Brutus 11, Luna 2 -> media 5.7.
	if ov.Census.AverageAge != 5.7 {
		t.Fatalf("AverageAge = %v, want 5.7", ov.Census.AverageAge)
	}
	if !ov.Census.HasDangerousDog {
		t.Fatalf("expected a dangerous dog")
	}
	if len(ov.NeedingAttention) != 1 || ov.NeedingAttention[0].Name != "Brutus" {
		t.Fatalf("NeedingAttention = %v", ov.NeedingAttention)
	}
	// Rex 1230 + Brutus 1290 + Luna 500.
	if ov.AnnualCost.Total != 3020 {
		t.Fatalf("AnnualCost.Total = %v, want 3020", ov.AnnualCost.Total)
	}

	avg, err := svc.AverageAge(ctx)
	if err != nil || avg != 5.7 {
		t.Fatalf("AverageAge() = %v, %v", avg, err)
	}
}
