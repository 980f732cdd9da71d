package registry

import (
	"context"
	"fmt"
	"time"

	"pet-registry/internal/domain/activity"
	"pet-registry/internal/domain/animals"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/values"

	"github.com/google/uuid"
)

// Stores agrupa los repos que participan en una misma transacción.
type Stores struct {
	Animals  animals.Repository
	Owners   owners.Repository
	Activity activity.Repository
}

// TxRunner ejecuta fn con un juego de repos atado a una transacción: si fn
// devuelve error no queda nada persistido. El adaptador in-memory lo emula
// con un lock global.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, st Stores) error) error
}

// AnimalLister es la vista de solo lectura que necesitan las estadísticas.
// La implementa *animals.Service.
type AnimalLister interface {
	List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error)
}

// Service implementa las operaciones que cruzan agregados: transferir y
// liberar animales (transaccionales) y las estadísticas globales del registro.
type Service struct {
	tx     TxRunner
	lister AnimalLister
	now    func() time.Time
}

func NewService(tx TxRunner, lister AnimalLister) *Service {
	return &Service{
		tx:     tx,
		lister: lister,
		now:    time.Now,
	}
}

// Transfer cambia el dueño de un animal. La escritura del animal y la entrada
// del historial van en la misma transacción; transferir al dueño actual es un
// no-op que no persiste nada.
func (s *Service) Transfer(ctx context.Context, animalID, newOwnerID int64) (animals.Animal, error) {
	if animalID <= 0 {
		return animals.Animal{}, animals.ErrNotFound
	}
	if newOwnerID <= 0 {
		return animals.Animal{}, values.NewValidationError("new_owner_id", "must be a positive id")
	}

	var out animals.Animal
	err := s.tx.InTx(ctx, func(ctx context.Context, st Stores) error {
		a, err := st.Animals.GetByID(ctx, animalID)
		if err != nil {
			return err
		}
		o, err := st.Owners.GetByID(ctx, newOwnerID)
		if err != nil {
			return err
		}
		if !o.IsActive {
			return animals.ErrOwnerInactive
		}

		prev := a.OwnerID
		changed, err := a.AssignOwner(newOwnerID)
		if err != nil {
			return err
		}
		if !changed {
			out = a
			return nil
		}

		a.UpdatedAt = s.now()
		updated, err := st.Animals.Update(ctx, a)
		if err != nil {
			return err
		}

		entry := activity.Entry{
			ID:         uuid.NewString(),
			Type:       activity.EntryTypeAnimalTransferred,
			AnimalID:   updated.ID,
			OwnerID:    newOwnerID,
			Summary:    fmt.Sprintf("%s transferred to %s", updated.Name, o.FullName()),
			Detail:     fmt.Sprintf("previous owner id: %d", prev),
			OccurredAt: s.now().UTC(),
		}
		if err := st.Activity.Create(ctx, entry); err != nil {
			return err
		}

		out = updated
		return nil
	})
	if err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

// Release deja al animal sin dueño; no-op si ya no tiene.
func (s *Service) Release(ctx context.Context, animalID int64) (animals.Animal, error) {
	if animalID <= 0 {
		return animals.Animal{}, animals.ErrNotFound
	}

	var out animals.Animal
	err := s.tx.InTx(ctx, func(ctx context.Context, st Stores) error {
		a, err := st.Animals.GetByID(ctx, animalID)
		if err != nil {
			return err
		}

		prev := a.OwnerID
		if !a.ReleaseOwner() {
			out = a
			return nil
		}

		a.UpdatedAt = s.now()
		updated, err := st.Animals.Update(ctx, a)
		if err != nil {
			return err
		}

		entry := activity.Entry{
			ID:         uuid.NewString(),
			Type:       activity.EntryTypeAnimalReleased,
			AnimalID:   updated.ID,
			OwnerID:    prev,
			Summary:    fmt.Sprintf("%s released from its owner", updated.Name),
			OccurredAt: s.now().UTC(),
		}
		if err := st.Activity.Create(ctx, entry); err != nil {
			return err
		}

		out = updated
		return nil
	})
	if err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

// Overview agrega las estadísticas globales del registro en una sola lectura.
type Overview struct {
	Census           animals.Census
	NeedingAttention []animals.Animal
	AnnualCost       animals.CostSummary
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	list, err := s.lister.List(ctx, animals.ListFilter{})
	if err != nil {
		return Overview{}, err
	}

	now := s.now()
	return Overview{
		Census:           animals.TakeCensus(list, now),
		NeedingAttention: animals.FilterNeedingAttention(list, now),
		AnnualCost:       animals.TotalAnnualCost(list),
	}, nil
}

func (s *Service) StatisticsByType(ctx context.Context) (map[animals.Kind]int, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return ov.Census.ByKind, nil
}

func (s *Service) NeedingAttention(ctx context.Context) ([]animals.Animal, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return ov.NeedingAttention, nil
}

func (s *Service) AverageAge(ctx context.Context) (float64, error) {
	ov, err := s.Overview(ctx)
	if err != nil {
		return 0, err
	}
	return ov.Census.AverageAge, nil
}
