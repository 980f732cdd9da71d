package activity

import "time"

// Entry es un registro inmutable del historial del sistema.
// AnimalID u OwnerID valen 0 cuando la entrada no concierne a esa entidad.
type Entry struct {
	ID string

	Type EntryType

	AnimalID int64
	OwnerID  int64

	Summary string
	Detail  string

	OccurredAt time.Time
}
