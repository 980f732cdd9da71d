package animals

import (
	"regexp"
	"strings"
	"time"

	"pet-registry/internal/domain/values"
)

// Kind define los tipos de animal soportados (representación canónica).
// @Enum dog, cat, bird
type Kind string

const (
	KindDog  Kind = "dog"
	KindCat  Kind = "cat"
	KindBird Kind = "bird"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindDog, KindCat, KindBird:
		return true
	default:
		return false
	}
}

// Label devuelve la etiqueta de presentación en francés.
// Es el único punto de mapeo entre la forma canónica y la etiqueta.
func (k Kind) Label() string {
	switch k {
	case KindDog:
		return "Chien"
	case KindCat:
		return "Chat"
	case KindBird:
		return "Oiseau"
	default:
		return string(k)
	}
}

// ParseKind normaliza y valida el tipo recibido por la API.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnsupportedKind
	}
	return k, nil
}

// Animal es una variante cerrada {dog, cat, bird} sobre un tronco común.
// Exactamente uno de Dog/Cat/Bird está poblado, según Kind.
type Animal struct {
	ID      int64
	Version int64

	Kind Kind

	Name      string
	BirthDate time.Time
	Weight    float64 // kg
	Color     string

	// OwnerID es el único lado autoritativo de la relación dueño-animal;
	// la colección del dueño siempre se deriva por consulta.
	// 0 = sin dueño (animal liberado).
	OwnerID int64

	Dog  *DogTraits
	Cat  *CatTraits
	Bird *BirdTraits

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DogTraits struct {
	Breed              string
	IsDangerous        bool
	RegistrationNumber string // opcional: LOF/identificación oficial
}

type CatTraits struct {
	IsIndoor         bool
	IsHypoallergenic bool
}

type BirdTraits struct {
	Species  string
	WingSpan float64 // cm
	CanTalk  bool
}

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	colorMaxLen   = 30
	weightMaxKg   = 500.0
	maxAgeYears   = 50
	breedMaxLen   = 100
	speciesMaxLen = 100
	wingSpanMaxCm = 300.0
)

// dangerousBreeds es la lista legal de razas categorizadas.
// La comparación es por subcadena, sin distinguir mayúsculas.
var dangerousBreeds = []string{
	"pitbull",
	"pit bull",
	"american staffordshire",
	"staffordshire terrier",
	"tosa",
	"mastiff",
	"rottweiler",
}

// registrationPattern: 3 letras mayúsculas + 12 dígitos, o 15 dígitos.
var registrationPattern = regexp.MustCompile(`^([A-Z]{3}\d{12}|\d{15})$`)

// IsDangerousBreed aplica la lista legal de razas por subcadena.
func IsDangerousBreed(breed string) bool {
	b := strings.ToLower(breed)
	for _, d := range dangerousBreeds {
		if strings.Contains(b, d) {
			return true
		}
	}
	return false
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < nameMinLen || n > nameMaxLen {
		return "", values.NewValidationError("name", "must be between %d and %d characters", nameMinLen, nameMaxLen)
	}
	return name, nil
}

func validateBirthDate(birthDate, now time.Time) error {
	if birthDate.IsZero() {
		return values.NewValidationError("birth_date", "must not be empty")
	}
	if birthDate.After(now) {
		return values.NewValidationError("birth_date", "must not be in the future")
	}
	if birthDate.Before(now.AddDate(-maxAgeYears, 0, 0)) {
		return values.NewValidationError("birth_date", "must not be more than %d years in the past", maxAgeYears)
	}
	return nil
}

func validateWeight(w float64) error {
	if w <= 0 || w > weightMaxKg {
		return values.NewValidationError("weight", "must be greater than 0 and at most %g kg", weightMaxKg)
	}
	return nil
}

func validateColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if len([]rune(color)) > colorMaxLen {
		return "", values.NewValidationError("color", "must not exceed %d characters", colorMaxLen)
	}
	return color, nil
}

func validateDogTraits(in DogTraits) (*DogTraits, error) {
	breed := strings.TrimSpace(in.Breed)
	if breed == "" {
		return nil, values.NewValidationError("breed", "must not be empty")
	}
	if len([]rune(breed)) > breedMaxLen {
		return nil, values.NewValidationError("breed", "must not exceed %d characters", breedMaxLen)
	}

	reg := strings.TrimSpace(in.RegistrationNumber)
	if reg != "" && !registrationPattern.MatchString(reg) {
		return nil, values.NewValidationError("registration_number", "must be 3 uppercase letters + 12 digits, or 15 digits")
	}

	d := DogTraits{Breed: breed, IsDangerous: in.IsDangerous, RegistrationNumber: reg}
	if IsDangerousBreed(breed) {
		// Elevación automática: la lista legal manda sobre lo declarado.
		d.IsDangerous = true
	}
	return &d, nil
}

func validateCatTraits(in CatTraits) (*CatTraits, error) {
	c := in
	return &c, nil
}

func validateBirdTraits(in BirdTraits) (*BirdTraits, error) {
	species := strings.TrimSpace(in.Species)
	if species == "" {
		return nil, values.NewValidationError("species", "must not be empty")
	}
	if len([]rune(species)) > speciesMaxLen {
		return nil, values.NewValidationError("species", "must not exceed %d characters", speciesMaxLen)
	}
	if in.WingSpan <= 0 || in.WingSpan > wingSpanMaxCm {
		return nil, values.NewValidationError("wing_span", "must be greater than 0 and at most %g cm", wingSpanMaxCm)
	}
	b := BirdTraits{Species: species, WingSpan: in.WingSpan, CanTalk: in.CanTalk}
	return &b, nil
}

// Los mutadores devuelven si hubo cambio real; el servicio estampa
// updatedAt (y la versión) una sola vez por operación efectiva.

func (a *Animal) Rename(name string) (bool, error) {
	name, err := validateName(name)
	if err != nil {
		return false, err
	}
	if a.Name == name {
		return false, nil
	}
	a.Name = name
	return true, nil
}

func (a *Animal) Recolor(color string) (bool, error) {
	color, err := validateColor(color)
	if err != nil {
		return false, err
	}
	if a.Color == color {
		return false, nil
	}
	a.Color = color
	return true, nil
}

func (a *Animal) UpdateWeight(w float64) (bool, error) {
	if err := validateWeight(w); err != nil {
		return false, err
	}
	if a.Weight == w {
		return false, nil
	}
	a.Weight = w
	return true, nil
}

// AssignOwner es idempotente: asignar el mismo dueño no cambia nada.
func (a *Animal) AssignOwner(ownerID int64) (bool, error) {
	if ownerID <= 0 {
		return false, values.NewValidationError("owner_id", "must be a positive id")
	}
	if a.OwnerID == ownerID {
		return false, nil
	}
	a.OwnerID = ownerID
	return true, nil
}

// ReleaseOwner deja el animal sin dueño; no-op si ya no tiene.
func (a *Animal) ReleaseOwner() bool {
	if a.OwnerID == 0 {
		return false
	}
	a.OwnerID = 0
	return true
}

func (a *Animal) HasOwner() bool { return a.OwnerID > 0 }

func (a *Animal) touch(now time.Time) { a.UpdatedAt = now }
