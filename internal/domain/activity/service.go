package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	Type     EntryType
	AnimalID int64
	OwnerID  int64
	Summary  string
	Detail   string
}

// Record agrega una entrada al historial. El instante lo pone el servicio;
// las entradas nunca se editan ni se borran.
func (s *Service) Record(ctx context.Context, in RecordInput) (Entry, error) {
	if in.Type == "" {
		return Entry{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Summary) == "" {
		return Entry{}, ErrInvalidInput
	}
	if in.AnimalID <= 0 && in.OwnerID <= 0 {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{
		ID:         uuid.NewString(),
		Type:       in.Type,
		AnimalID:   in.AnimalID,
		OwnerID:    in.OwnerID,
		Summary:    strings.TrimSpace(in.Summary),
		Detail:     strings.TrimSpace(in.Detail),
		OccurredAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID int64, filter ListFilter) ([]Entry, error) {
	if animalID <= 0 {
		return nil, ErrInvalidInput
	}
	filter.AnimalID = animalID
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64, filter ListFilter) ([]Entry, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidInput
	}
	filter.OwnerID = ownerID
	return s.repo.List(ctx, filter)
}
