package memory

import (
	"context"
	"sync"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/registry"
)

// Store es el backend in-memory para dev y tests: un solo lock y mapas por
// entidad. Las transacciones se emulan clonando el estado y publicándolo solo
// si la función termina sin error.
type Store struct {
	mu sync.RWMutex
	d  *data
}

type data struct {
	animalSeq int64
	ownerSeq  int64

	animals map[int64]animals.Animal
	owners  map[int64]owners.Owner
	entries []activity.Entry
}

func NewStore() *Store {
	return &Store{d: newData()}
}

func newData() *data {
	return &data{
		animals: make(map[int64]animals.Animal),
		owners:  make(map[int64]owners.Owner),
	}
}

func (d *data) clone() *data {
	c := &data{
		animalSeq: d.animalSeq,
		ownerSeq:  d.ownerSeq,
		animals:   make(map[int64]animals.Animal, len(d.animals)),
		owners:    make(map[int64]owners.Owner, len(d.owners)),
		entries:   make([]activity.Entry, len(d.entries)),
	}
	for id, a := range d.animals {
		c.animals[id] = a
	}
	for id, o := range d.owners {
		c.owners[id] = o
	}
	copy(c.entries, d.entries)
	return c
}

func (s *Store) Animals() animals.Repository   { return &animalRepo{s: s} }
func (s *Store) Owners() owners.Repository     { return &ownerRepo{s: s} }
func (s *Store) Activity() activity.Repository { return &activityRepo{s: s} }

// InTx implementa registry.TxRunner: fn trabaja contra un clon del estado,
// que se publica solo si fn no devuelve error.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, st registry.Stores) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.d.clone()
	st := registry.Stores{
		Animals:  txAnimalRepo{d: c},
		Owners:   txOwnerRepo{d: c},
		Activity: txActivityRepo{d: c},
	}
	if err := fn(ctx, st); err != nil {
		return err
	}
	s.d = c
	return nil
}
