package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-registry/internal/domain/activity"
)

type activityRepo struct {
	s *Store
}

func (r *activityRepo) Create(_ context.Context, e activity.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.d.createEntry(e)
}

func (r *activityRepo) List(_ context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.d.listEntries(filter), nil
}

// txActivityRepo opera dentro de InTx, ya bajo el lock del Store.
type txActivityRepo struct {
	d *data
}

func (r txActivityRepo) Create(_ context.Context, e activity.Entry) error {
	return r.d.createEntry(e)
}

func (r txActivityRepo) List(_ context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	return r.d.listEntries(filter), nil
}

func (d *data) createEntry(e activity.Entry) error {
	if e.ID == "" {
		return errors.New("entry id required")
	}
	d.entries = append(d.entries, e)
	return nil
}

func (d *data) listEntries(filter activity.ListFilter) []activity.Entry {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	out := make([]activity.Entry, 0)

	for _, e := range d.entries {
		if filter.AnimalID > 0 && e.AnimalID != filter.AnimalID {
			continue
		}
		if filter.OwnerID > 0 && e.OwnerID != filter.OwnerID {
			continue
		}

		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if filter.From != nil && e.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.OccurredAt.After(*filter.To) {
			continue
		}

		if q := strings.TrimSpace(filter.Query); q != "" {
			hay := strings.ToLower(e.Summary + " " + e.Detail)
			if !strings.Contains(hay, strings.ToLower(q)) {
				continue
			}
		}

		out = append(out, e)
	}

	// Orden por occurred_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
