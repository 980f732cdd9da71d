package memory

import (
	"context"
	"sort"
	"strings"

	"pet-registry/internal/domain/owners"
)

type ownerRepo struct {
	s *Store
}

func (r *ownerRepo) Create(_ context.Context, o owners.Owner) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.createOwner(o)
}

func (r *ownerRepo) GetByID(_ context.Context, id int64) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.getOwner(id)
}

func (r *ownerRepo) GetByEmail(_ context.Context, email string) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.getOwnerByEmail(email)
}

func (r *ownerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, err := r.s.d.getOwnerByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *ownerRepo) List(_ context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.listOwners(filter), nil
}

func (r *ownerRepo) Update(_ context.Context, o owners.Owner) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.updateOwnerCAS(o)
}

func (r *ownerRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.deleteOwner(id)
}

// txOwnerRepo opera dentro de InTx, ya bajo el lock del Store.
type txOwnerRepo struct {
	d *data
}

func (r txOwnerRepo) Create(_ context.Context, o owners.Owner) (owners.Owner, error) {
	return r.d.createOwner(o)
}

func (r txOwnerRepo) GetByID(_ context.Context, id int64) (owners.Owner, error) {
	return r.d.getOwner(id)
}

func (r txOwnerRepo) GetByEmail(_ context.Context, email string) (owners.Owner, error) {
	return r.d.getOwnerByEmail(email)
}

func (r txOwnerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.d.getOwnerByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r txOwnerRepo) List(_ context.Context, filter owners.ListFilter) ([]owners.Owner, error) {
	return r.d.listOwners(filter), nil
}

func (r txOwnerRepo) Update(_ context.Context, o owners.Owner) (owners.Owner, error) {
	return r.d.updateOwnerCAS(o)
}

func (r txOwnerRepo) Delete(_ context.Context, id int64) error {
	return r.d.deleteOwner(id)
}

func (d *data) createOwner(o owners.Owner) (owners.Owner, error) {
	// Misma garantía que el índice UNIQUE de los backends SQL.
	if _, err := d.getOwnerByEmail(o.Email.String()); err == nil {
		return owners.Owner{}, owners.ErrEmailTaken
	}

	d.ownerSeq++
	o.ID = d.ownerSeq
	d.owners[o.ID] = o
	return o, nil
}

func (d *data) getOwner(id int64) (owners.Owner, error) {
	o, ok := d.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (d *data) getOwnerByEmail(email string) (owners.Owner, error) {
	for _, o := range d.owners {
		if o.Email.String() == email {
			return o, nil
		}
	}
	return owners.Owner{}, owners.ErrNotFound
}

func (d *data) listOwners(filter owners.ListFilter) []owners.Owner {
	out := make([]owners.Owner, 0)
	for _, o := range d.owners {
		if filter.City != "" && !strings.EqualFold(o.Address.City(), filter.City) {
			continue
		}
		if filter.PostalCode != "" && o.Address.PostalCode() != filter.PostalCode {
			continue
		}
		out = append(out, o)
	}

	// Orden estable por id asc (orden de alta)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.PerPage
		if start >= len(out) {
			return []owners.Owner{}
		}
		end := start + filter.PerPage
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}

	return out
}

func (d *data) updateOwnerCAS(o owners.Owner) (owners.Owner, error) {
	stored, ok := d.owners[o.ID]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	if stored.Version != o.Version {
		return owners.Owner{}, owners.ErrVersionConflict
	}
	o.Version++
	d.owners[o.ID] = o
	return o, nil
}

func (d *data) deleteOwner(id int64) error {
	if _, ok := d.owners[id]; !ok {
		return owners.ErrNotFound
	}
	delete(d.owners, id)
	return nil
}
