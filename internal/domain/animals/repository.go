package animals

import "context"

type Repository interface {
	// Create asigna el id y devuelve el animal almacenado.
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	List(ctx context.Context, filter ListFilter) ([]Animal, error)
	// Update es compare-and-swap sobre (id, version): si la versión cargada
	// ya no es la actual devuelve ErrVersionConflict.
	Update(ctx context.Context, a Animal) (Animal, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByOwner borra en cascada los animales de un dueño y devuelve
	// cuántos había.
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}

// ListFilter filtra el listado; los campos en cero no filtran.
type ListFilter struct {
	Kind    Kind
	OwnerID int64
}
