package owners

import (
	"context"
	"errors"

	"pet-registry/internal/domain/animals"
)

// Summarize implementa animals.OwnerDirectory: la proyección mínima que el
// módulo animals necesita para validar y mostrar dueños.
func (s *Service) Summarize(ctx context.Context, ownerID int64) (animals.OwnerSummary, bool, error) {
	o, err := s.GetByID(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return animals.OwnerSummary{}, false, nil
	}
	if err != nil {
		return animals.OwnerSummary{}, false, err
	}
	return animals.OwnerSummary{ID: o.ID, FullName: o.FullName(), Active: o.IsActive}, true, nil
}

// Exists permite a otros módulos comprobar existencia sin acoplarse al repo.
func (s *Service) Exists(ctx context.Context, ownerID int64) (bool, error) {
	_, found, err := s.Summarize(ctx, ownerID)
	return found, err
}
