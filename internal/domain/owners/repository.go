package owners

import "context"

type Repository interface {
	// Create asigna el id y devuelve el dueño almacenado.
	Create(ctx context.Context, o Owner) (Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)
	GetByEmail(ctx context.Context, email string) (Owner, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Owner, error)
	// Update es compare-and-swap sobre (id, version): si la versión cargada
	// ya no es la actual devuelve ErrVersionConflict.
	Update(ctx context.Context, o Owner) (Owner, error)
	Delete(ctx context.Context, id int64) error
}

// ListFilter filtra y pagina el listado; los campos en cero no filtran.
// Page empieza en 1; PerPage en cero usa el valor por defecto del servicio.
type ListFilter struct {
	City       string
	PostalCode string
	Page       int
	PerPage    int
}
