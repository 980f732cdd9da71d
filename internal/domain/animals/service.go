package animals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/values"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("animal not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrOwnerInactive   = errors.New("owner is not active")
	ErrVersionConflict = errors.New("version conflict")
	ErrUnsupportedKind = errors.New("unsupported animal type")
)

// weightAlertRatio: un cambio de peso mayor a este porcentaje se anota en el
// historial, sin bloquear la actualización.
const weightAlertRatio = 0.10

// OwnerSummary es la proyección mínima de un dueño que necesita este módulo.
type OwnerSummary struct {
	ID       int64
	FullName string
	Active   bool
}

// OwnerDirectory resuelve dueños sin importar el módulo owners.
// owners importa animals, así que la interfaz rompe el ciclo
// (la implementa *owners.Service de forma estructural).
type OwnerDirectory interface {
	Summarize(ctx context.Context, ownerID int64) (OwnerSummary, bool, error)
}

// ActivityLog registra entradas del historial. La escritura es best-effort:
// un fallo del historial no aborta la operación de dominio.
type ActivityLog interface {
	Record(ctx context.Context, in activity.RecordInput) (activity.Entry, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	log    ActivityLog
	now    func() time.Time
}

func NewService(repo Repository, owners OwnerDirectory, log ActivityLog) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		log:    log,
		now:    time.Now,
	}
}

type CreateInput struct {
	Type      string
	Name      string
	BirthDate time.Time
	Weight    float64
	Color     string
	OwnerID   int64

	// Campos de variante; solo se leen los del tipo pedido.
	Breed              string
	IsDangerous        bool
	RegistrationNumber string

	IsIndoor         *bool // nil = true
	IsHypoallergenic bool

	Species  string
	WingSpan float64
	CanTalk  bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	kind, err := ParseKind(in.Type)
	if err != nil {
		return Animal{}, err
	}

	name, err := validateName(in.Name)
	if err != nil {
		return Animal{}, err
	}

	now := s.now()
	if err := validateBirthDate(in.BirthDate, now); err != nil {
		return Animal{}, err
	}
	if err := validateWeight(in.Weight); err != nil {
		return Animal{}, err
	}
	color, err := validateColor(in.Color)
	if err != nil {
		return Animal{}, err
	}

	// El dueño es obligatorio al crear, para cualquier variante.
	if in.OwnerID <= 0 {
		return Animal{}, values.NewValidationError("owner_id", "must be a positive id")
	}
	owner, found, err := s.owners.Summarize(ctx, in.OwnerID)
	if err != nil {
		return Animal{}, err
	}
	if !found {
		return Animal{}, ErrOwnerNotFound
	}
	if !owner.Active {
		return Animal{}, ErrOwnerInactive
	}

	a := Animal{
		Kind:      kind,
		Name:      name,
		BirthDate: in.BirthDate,
		Weight:    in.Weight,
		Color:     color,
		OwnerID:   in.OwnerID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case KindDog:
		a.Dog, err = validateDogTraits(DogTraits{
			Breed:              in.Breed,
			IsDangerous:        in.IsDangerous,
			RegistrationNumber: in.RegistrationNumber,
		})
	case KindCat:
		indoor := true
		if in.IsIndoor != nil {
			indoor = *in.IsIndoor
		}
		a.Cat, err = validateCatTraits(CatTraits{
			IsIndoor:         indoor,
			IsHypoallergenic: in.IsHypoallergenic,
		})
	case KindBird:
		a.Bird, err = validateBirdTraits(BirdTraits{
			Species:  in.Species,
			WingSpan: in.WingSpan,
			CanTalk:  in.CanTalk,
		})
	}
	if err != nil {
		return Animal{}, err
	}

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}

	s.record(ctx, activity.RecordInput{
		Type:     activity.EntryTypeAnimalRegistered,
		AnimalID: stored.ID,
		OwnerID:  stored.OwnerID,
		Summary:  fmt.Sprintf("%s (%s) registered", stored.Name, stored.Kind.Label()),
		Detail:   fmt.Sprintf("owner: %s", owner.FullName),
	})

	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Animal, error) {
	if id <= 0 {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Animal, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Animal, error) {
	return s.repo.List(ctx, ListFilter{OwnerID: ownerID})
}

// DeleteByOwner borra en cascada los animales de un dueño; lo usa el módulo
// owners al eliminar un dueño. Devuelve cuántos animales había.
func (s *Service) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	if ownerID <= 0 {
		return 0, nil
	}
	return s.repo.DeleteByOwner(ctx, ownerID)
}

// Exists permite a otros módulos comprobar existencia sin acoplarse al repo.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DescribeOwner expone el directorio de dueños a los handlers del módulo.
func (s *Service) DescribeOwner(ctx context.Context, ownerID int64) (OwnerSummary, bool, error) {
	if ownerID <= 0 {
		return OwnerSummary{}, false, nil
	}
	return s.owners.Summarize(ctx, ownerID)
}

type UpdateInput struct {
	Name   *string
	Color  *string
	Weight *float64

	// Version opcional: si viene, debe coincidir con la versión actual.
	Version *int64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Animal, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Version != nil && *in.Version != a.Version {
		return Animal{}, ErrVersionConflict
	}

	changed := false
	weightChanged := false
	prevWeight := a.Weight

	if in.Name != nil {
		ch, err := a.Rename(*in.Name)
		if err != nil {
			return Animal{}, err
		}
		changed = changed || ch
	}
	if in.Color != nil {
		ch, err := a.Recolor(*in.Color)
		if err != nil {
			return Animal{}, err
		}
		changed = changed || ch
	}
	if in.Weight != nil {
		ch, err := a.UpdateWeight(*in.Weight)
		if err != nil {
			return Animal{}, err
		}
		changed = changed || ch
		weightChanged = ch
	}

	// Sin cambio real no se toca updatedAt ni la versión.
	if !changed {
		return a, nil
	}

	a.touch(s.now())
	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return Animal{}, err
	}

	if weightChanged && prevWeight > 0 {
		delta := math.Abs(updated.Weight-prevWeight) / prevWeight
		if delta > weightAlertRatio {
			s.record(ctx, activity.RecordInput{
				Type:     activity.EntryTypeWeightAlert,
				AnimalID: updated.ID,
				OwnerID:  updated.OwnerID,
				Summary:  fmt.Sprintf("%s weight changed by %.0f%%", updated.Name, delta*100),
				Detail:   fmt.Sprintf("%.1f kg -> %.1f kg", prevWeight, updated.Weight),
			})
		}
	}

	s.record(ctx, activity.RecordInput{
		Type:     activity.EntryTypeAnimalUpdated,
		AnimalID: updated.ID,
		OwnerID:  updated.OwnerID,
		Summary:  fmt.Sprintf("%s profile updated", updated.Name),
	})

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, activity.RecordInput{
		Type:     activity.EntryTypeAnimalDeleted,
		AnimalID: a.ID,
		OwnerID:  a.OwnerID,
		Summary:  fmt.Sprintf("%s (%s) removed from the registry", a.Name, a.Kind.Label()),
	})

	return nil
}

func (s *Service) record(ctx context.Context, in activity.RecordInput) {
	if s.log == nil {
		return
	}
	_, _ = s.log.Record(ctx, in)
}
