package memory

import (
	"context"
	"sort"

	"pet-registry/internal/domain/animals"
)

type animalRepo struct {
	s *Store
}

func (r *animalRepo) Create(_ context.Context, a animals.Animal) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.createAnimal(a)
}

func (r *animalRepo) GetByID(_ context.Context, id int64) (animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.getAnimal(id)
}

func (r *animalRepo) List(_ context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.listAnimals(filter), nil
}

func (r *animalRepo) Update(_ context.Context, a animals.Animal) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.updateAnimalCAS(a)
}

func (r *animalRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.deleteAnimal(id)
}

func (r *animalRepo) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.deleteAnimalsByOwner(ownerID), nil
}

// txAnimalRepo opera dentro de InTx, ya bajo el lock del Store.
type txAnimalRepo struct {
	d *data
}

func (r txAnimalRepo) Create(_ context.Context, a animals.Animal) (animals.Animal, error) {
	return r.d.createAnimal(a)
}

func (r txAnimalRepo) GetByID(_ context.Context, id int64) (animals.Animal, error) {
	return r.d.getAnimal(id)
}

func (r txAnimalRepo) List(_ context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	return r.d.listAnimals(filter), nil
}

func (r txAnimalRepo) Update(_ context.Context, a animals.Animal) (animals.Animal, error) {
	return r.d.updateAnimalCAS(a)
}

func (r txAnimalRepo) Delete(_ context.Context, id int64) error {
	return r.d.deleteAnimal(id)
}

func (r txAnimalRepo) DeleteByOwner(_ context.Context, ownerID int64) (int64, error) {
	return r.d.deleteAnimalsByOwner(ownerID), nil
}

func (d *data) createAnimal(a animals.Animal) (animals.Animal, error) {
	d.animalSeq++
	a.ID = d.animalSeq
	d.animals[a.ID] = a
	return a, nil
}

func (d *data) getAnimal(id int64) (animals.Animal, error) {
	a, ok := d.animals[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (d *data) listAnimals(filter animals.ListFilter) []animals.Animal {
	out := make([]animals.Animal, 0)
	for _, a := range d.animals {
		if filter.Kind != "" && a.Kind != filter.Kind {
			continue
		}
		if filter.OwnerID > 0 && a.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, a)
	}

	// Orden estable por id asc (orden de alta)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (d *data) updateAnimalCAS(a animals.Animal) (animals.Animal, error) {
	stored, ok := d.animals[a.ID]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	if stored.Version != a.Version {
		return animals.Animal{}, animals.ErrVersionConflict
	}
	a.Version++
	d.animals[a.ID] = a
	return a, nil
}

func (d *data) deleteAnimal(id int64) error {
	if _, ok := d.animals[id]; !ok {
		return animals.ErrNotFound
	}
	delete(d.animals, id)
	return nil
}

func (d *data) deleteAnimalsByOwner(ownerID int64) int64 {
	var n int64
	for id, a := range d.animals {
		if a.OwnerID == ownerID {
			delete(d.animals, id)
			n++
		}
	}
	return n
}
