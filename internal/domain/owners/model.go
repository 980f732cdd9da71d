package owners

import (
	"strings"
	"time"

	"pet-registry/internal/domain/values"
)

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// Owner es la raíz de agregado de los dueños. No materializa su colección de
// animales: esa relación vive en Animal.OwnerID y se deriva por consulta.
type Owner struct {
	ID      int64
	Version int64

	FirstName string // normalizado: primera letra en mayúscula
	LastName  string // normalizado: todo en mayúsculas

	Email   values.Email
	Phone   values.PhoneNumber
	Address values.Address

	// RegistrationDate se fija al crear y nunca cambia.
	RegistrationDate time.Time
	IsActive         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

func validateFirstName(name string) (string, error) {
	return validatePersonName("first_name", name, values.CapitalizeFirst)
}

func validateLastName(name string) (string, error) {
	return validatePersonName("last_name", name, strings.ToUpper)
}

func validatePersonName(field, name string, normalize func(string) string) (string, error) {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < nameMinLen || n > nameMaxLen {
		return "", values.NewValidationError(field, "must be between %d and %d characters", nameMinLen, nameMaxLen)
	}
	if !values.ValidNameChars(name) {
		return "", values.NewValidationError(field, "must contain only letters, spaces, hyphens and apostrophes")
	}
	return normalize(name), nil
}

// Los mutadores devuelven si hubo cambio real; el servicio estampa
// updatedAt (y la versión) una sola vez por operación efectiva.

func (o *Owner) UpdateName(first, last string) (bool, error) {
	f, err := validateFirstName(first)
	if err != nil {
		return false, err
	}
	l, err := validateLastName(last)
	if err != nil {
		return false, err
	}
	if o.FirstName == f && o.LastName == l {
		return false, nil
	}
	o.FirstName = f
	o.LastName = l
	return true, nil
}

func (o *Owner) UpdateContactInfo(email values.Email, phone values.PhoneNumber) bool {
	if o.Email.Equals(email) && o.Phone.Equals(phone) {
		return false
	}
	o.Email = email
	o.Phone = phone
	return true
}

func (o *Owner) UpdateAddress(addr values.Address) bool {
	if o.Address.Equals(addr) {
		return false
	}
	o.Address = addr
	return true
}

// Activate es idempotente: activar un dueño activo no cambia nada.
func (o *Owner) Activate() bool {
	if o.IsActive {
		return false
	}
	o.IsActive = true
	return true
}

func (o *Owner) Deactivate() bool {
	if !o.IsActive {
		return false
	}
	o.IsActive = false
	return true
}

func (o *Owner) touch(now time.Time) { o.UpdatedAt = now }
