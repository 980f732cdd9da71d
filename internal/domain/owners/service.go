package owners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/values"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("owner not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrVersionConflict = errors.New("version conflict")
)

const (
	defaultPerPage = 50
	maxPerPage     = 200
)

// AnimalSource es la vista del módulo animals que necesita este módulo:
// la colección de un dueño siempre se deriva por consulta, nunca se
// materializa aquí. La implementa *animals.Service.
type AnimalSource interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]animals.Animal, error)
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// ActivityLog registra entradas del historial. Best-effort, como en animals.
type ActivityLog interface {
	Record(ctx context.Context, in activity.RecordInput) (activity.Entry, error)
}

type Service struct {
	repo    Repository
	animals AnimalSource
	log     ActivityLog
	now     func() time.Time
}

// NewService no recibe el AnimalSource: owners y animals se referencian
// mutuamente, así que el router construye ambos y llama BindAnimals después.
func NewService(repo Repository, log ActivityLog) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) BindAnimals(src AnimalSource) { s.animals = src }

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   values.Address
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Owner, error) {
	first, err := validateFirstName(in.FirstName)
	if err != nil {
		return Owner{}, err
	}
	last, err := validateLastName(in.LastName)
	if err != nil {
		return Owner{}, err
	}
	email, err := values.NewEmail(in.Email)
	if err != nil {
		return Owner{}, err
	}
	phone, err := values.NewPhoneNumber(in.Phone)
	if err != nil {
		return Owner{}, err
	}
	if in.Address.IsZero() {
		return Owner{}, values.NewValidationError("address", "must not be empty")
	}

	taken, err := s.repo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return Owner{}, err
	}
	if taken {
		return Owner{}, ErrEmailTaken
	}

	now := s.now()
	o := Owner{
		FirstName:        first,
		LastName:         last,
		Email:            email,
		Phone:            phone,
		Address:          in.Address,
		RegistrationDate: now,
		IsActive:         true,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	stored, err := s.repo.Create(ctx, o)
	if err != nil {
		return Owner{}, err
	}

	s.record(ctx, activity.RecordInput{
		Type:    activity.EntryTypeOwnerRegistered,
		OwnerID: stored.ID,
		Summary: fmt.Sprintf("%s registered", stored.FullName()),
		Detail:  fmt.Sprintf("email: %s", stored.Email.String()),
	})

	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	if id <= 0 {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Owner, error) {
	e, err := values.NewEmail(email)
	if err != nil {
		return Owner{}, err
	}
	return s.repo.GetByEmail(ctx, e.String())
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Owner, error) {
	filter.City = strings.TrimSpace(filter.City)
	filter.PostalCode = strings.TrimSpace(filter.PostalCode)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}
	return s.repo.List(ctx, filter)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *values.Address

	// Version opcional: si viene, debe coincidir con la versión actual.
	Version *int64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.Version != nil && *in.Version != o.Version {
		return Owner{}, ErrVersionConflict
	}

	changed := false

	if in.FirstName != nil || in.LastName != nil {
		first, last := o.FirstName, o.LastName
		if in.FirstName != nil {
			first = *in.FirstName
		}
		if in.LastName != nil {
			last = *in.LastName
		}
		ch, err := o.UpdateName(first, last)
		if err != nil {
			return Owner{}, err
		}
		changed = changed || ch
	}

	if in.Email != nil || in.Phone != nil {
		email, phone := o.Email, o.Phone
		if in.Email != nil {
			e, err := values.NewEmail(*in.Email)
			if err != nil {
				return Owner{}, err
			}
			if !e.Equals(o.Email) {
				taken, err := s.repo.ExistsByEmail(ctx, e.String())
				if err != nil {
					return Owner{}, err
				}
				if taken {
					return Owner{}, ErrEmailTaken
				}
			}
			email = e
		}
		if in.Phone != nil {
			p, err := values.NewPhoneNumber(*in.Phone)
			if err != nil {
				return Owner{}, err
			}
			phone = p
		}
		changed = o.UpdateContactInfo(email, phone) || changed
	}

	if in.Address != nil {
		changed = o.UpdateAddress(*in.Address) || changed
	}

	// Sin cambio real no se toca updatedAt ni la versión.
	if !changed {
		return o, nil
	}

	o.touch(s.now())
	updated, err := s.repo.Update(ctx, o)
	if err != nil {
		return Owner{}, err
	}

	s.record(ctx, activity.RecordInput{
		Type:    activity.EntryTypeOwnerUpdated,
		OwnerID: updated.ID,
		Summary: fmt.Sprintf("%s profile updated", updated.FullName()),
	})

	return updated, nil
}

func (s *Service) Activate(ctx context.Context, id int64) (Owner, error) {
	return s.setActive(ctx, id, true)
}

func (s *Service) Deactivate(ctx context.Context, id int64) (Owner, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	var changed bool
	if active {
		changed = o.Activate()
	} else {
		changed = o.Deactivate()
	}
	if !changed {
		return o, nil
	}

	o.touch(s.now())
	updated, err := s.repo.Update(ctx, o)
	if err != nil {
		return Owner{}, err
	}

	entry := activity.EntryTypeOwnerDeactivated
	verb := "deactivated"
	if active {
		entry = activity.EntryTypeOwnerActivated
		verb = "activated"
	}
	s.record(ctx, activity.RecordInput{
		Type:    entry,
		OwnerID: updated.ID,
		Summary: fmt.Sprintf("%s %s", updated.FullName(), verb),
	})

	return updated, nil
}

// Delete elimina al dueño y, en cascada, sus animales: nunca quedan
// referencias Animal.OwnerID colgando hacia un dueño inexistente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var removed int64
	if s.animals != nil {
		removed, err = s.animals.DeleteByOwner(ctx, id)
		if err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, activity.RecordInput{
		Type:    activity.EntryTypeOwnerDeleted,
		OwnerID: o.ID,
		Summary: fmt.Sprintf("%s removed from the registry", o.FullName()),
		Detail:  fmt.Sprintf("cascade removed %d animals", removed),
	})

	return nil
}

// Animals devuelve la colección derivada del dueño, en orden de alta.
func (s *Service) Animals(ctx context.Context, ownerID int64) ([]animals.Animal, error) {
	if s.animals == nil {
		return []animals.Animal{}, nil
	}
	return s.animals.ListByOwner(ctx, ownerID)
}

// Statistics resume la colección del dueño: conteos por tipo, media de edad,
// banderas legales (perros peligrosos, techo de perros) y presupuesto anual.
type Statistics struct {
	TotalAnimals    int
	ByType          map[animals.Kind]int
	AverageAge      float64
	HasDangerousDog bool
	DogLimitReached bool
	AnnualCost      animals.CostSummary
}

func (s *Service) Statistics(ctx context.Context, ownerID int64) (Statistics, error) {
	list, err := s.Animals(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	census := animals.TakeCensus(list, s.now())
	return Statistics{
		TotalAnimals:    census.Total,
		ByType:          census.ByKind,
		AverageAge:      census.AverageAge,
		HasDangerousDog: census.HasDangerousDog,
		DogLimitReached: census.DogLimitReached,
		AnnualCost:      animals.TotalAnnualCost(list),
	}, nil
}

func (s *Service) record(ctx context.Context, in activity.RecordInput) {
	if s.log == nil {
		return
	}
	_, _ = s.log.Record(ctx, in)
}
