package values

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	frPostalPattern = regexp.MustCompile(`^\d{5}$`)
	bePostalPattern = regexp.MustCompile(`^\d{4}$`)
	caPostalPattern = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`)
	usPostalPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// Address es la dirección postal de un dueño. El formato del código postal
// depende del país declarado; la ciudad se guarda capitalizada.
// Inmutable: se valida al construir y se compara por valor.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string
}

func NewAddress(street, city, postalCode, country string) (Address, error) {
	street = strings.TrimSpace(street)
	if len(street) < 5 {
		return Address{}, NewValidationError("street", "must be at least 5 characters")
	}
	if len(street) > 255 {
		return Address{}, NewValidationError("street", "must not exceed 255 characters")
	}

	city = strings.TrimSpace(city)
	if n := len([]rune(city)); n < 2 || n > 100 {
		return Address{}, NewValidationError("city", "must be between 2 and 100 characters")
	}
	if !ValidNameChars(city) {
		return Address{}, NewValidationError("city", "contains invalid characters: %q", city)
	}

	country = strings.TrimSpace(country)
	if len([]rune(country)) < 2 {
		return Address{}, NewValidationError("country", "must be at least 2 characters")
	}
	country = CapitalizeFirst(country)

	postalCode = strings.ToUpper(strings.TrimSpace(postalCode))
	if err := validatePostalCode(postalCode, country); err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		city:       TitleWords(city),
		postalCode: postalCode,
		country:    country,
	}, nil
}

// validatePostalCode aplica el formato del país declarado; para países sin
// regla propia solo exige una longitud razonable.
func validatePostalCode(code, country string) error {
	if code == "" {
		return NewValidationError("postal_code", "must not be empty")
	}
	switch countryKey(country) {
	case "FR":
		if !frPostalPattern.MatchString(code) {
			return NewValidationError("postal_code", "must be 5 digits for %s", country)
		}
	case "BE", "CH":
		if !bePostalPattern.MatchString(code) {
			return NewValidationError("postal_code", "must be 4 digits for %s", country)
		}
	case "CA":
		if !caPostalPattern.MatchString(code) {
			return NewValidationError("postal_code", "must match A1A 1A1 for %s", country)
		}
	case "US":
		if !usPostalPattern.MatchString(code) {
			return NewValidationError("postal_code", "must be 5 or 5+4 digits for %s", country)
		}
	default:
		if len(code) < 3 || len(code) > 10 {
			return NewValidationError("postal_code", "must be between 3 and 10 characters")
		}
	}
	return nil
}

func countryKey(country string) string {
	switch strings.ToLower(country) {
	case "france", "fr":
		return "FR"
	case "belgique", "belgium", "be":
		return "BE"
	case "suisse", "switzerland", "ch":
		return "CH"
	case "canada", "ca":
		return "CA"
	case "usa", "us", "united states", "états-unis", "etats-unis":
		return "US"
	default:
		return ""
	}
}

// ParseAddress separa una dirección en texto libre por comas:
// "calle, código-postal ciudad, país" o "calle, ciudad, código-postal, país".
// Heurística pensada para direcciones francesas; el resultado pasa por la
// validación normal de NewAddress.
func ParseAddress(line string) (Address, error) {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch {
	case len(parts) >= 4:
		street := strings.Join(parts[:len(parts)-3], ", ")
		return NewAddress(street, parts[len(parts)-3], parts[len(parts)-2], parts[len(parts)-1])
	case len(parts) == 3:
		postal, city, err := splitPostalCity(parts[1])
		if err != nil {
			return Address{}, err
		}
		return NewAddress(parts[0], city, postal, parts[2])
	default:
		return Address{}, NewValidationError("address", "expected 'street, postal-code city, country', got %q", line)
	}
}

// splitPostalCity separa "75001 Paris" (o "Paris 75001") en sus dos mitades.
func splitPostalCity(s string) (postal, city string, err error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return "", "", NewValidationError("address", "expected 'postal-code city', got %q", s)
	}
	if startsWithDigit(tokens[0]) {
		return tokens[0], strings.Join(tokens[1:], " "), nil
	}
	last := tokens[len(tokens)-1]
	if startsWithDigit(last) {
		return last, strings.Join(tokens[:len(tokens)-1], " "), nil
	}
	return "", "", NewValidationError("address", "no postal code found in %q", s)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string    { return a.country }

func (a Address) IsZero() bool { return a == Address{} }

func (a Address) Equals(other Address) bool { return a == other }

// String devuelve la dirección en una línea, al estilo postal francés.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.postalCode, a.city, a.country)
}

// Region devuelve el departamento francés (dos primeros dígitos del código
// postal, tres para ultramar); para otros países, el país.
func (a Address) Region() string {
	if countryKey(a.country) == "FR" && len(a.postalCode) == 5 {
		if strings.HasPrefix(a.postalCode, "97") || strings.HasPrefix(a.postalCode, "98") {
			return a.postalCode[:3]
		}
		return a.postalCode[:2]
	}
	return a.country
}
