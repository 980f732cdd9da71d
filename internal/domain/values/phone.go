package values

import (
	"regexp"
	"strings"
)

var (
	// Internacional: + seguido de 10 a 15 dígitos (el indicativo nunca empieza por 0).
	intlPhonePattern = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	// Nacional francés: 0 seguido de 9 dígitos.
	frenchPhonePattern = regexp.MustCompile(`^0[1-9]\d{8}$`)
	// Genérico sin prefijo: 8 a 15 dígitos.
	genericPhonePattern = regexp.MustCompile(`^\d{8,15}$`)
)

// PhoneNumber guarda el número ya normalizado: separadores fuera y el
// prefijo internacional 00 reescrito como +.
// Inmutable: se valida al construir y se compara por valor.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(raw string) (PhoneNumber, error) {
	v := normalizePhone(raw)
	if v == "" {
		return PhoneNumber{}, NewValidationError("phone_number", "must not be empty")
	}
	if !intlPhonePattern.MatchString(v) && !frenchPhonePattern.MatchString(v) && !genericPhonePattern.MatchString(v) {
		return PhoneNumber{}, NewValidationError("phone_number", "invalid format: %q", strings.TrimSpace(raw))
	}
	return PhoneNumber{value: v}, nil
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	v := b.String()
	if strings.HasPrefix(v, "00") {
		v = "+" + v[2:]
	}
	return v
}

func (p PhoneNumber) String() string { return p.value }

func (p PhoneNumber) IsZero() bool { return p.value == "" }

func (p PhoneNumber) Equals(other PhoneNumber) bool { return p.value == other.value }

func (p PhoneNumber) IsInternational() bool { return strings.HasPrefix(p.value, "+") }

// Country clasifica el número por su prefijo.
func (p PhoneNumber) Country() string {
	switch {
	case strings.HasPrefix(p.value, "+33"):
		return "France"
	case strings.HasPrefix(p.value, "+32"):
		return "Belgique"
	case strings.HasPrefix(p.value, "+41"):
		return "Suisse"
	case strings.HasPrefix(p.value, "+1"):
		return "Amérique du Nord"
	case strings.HasPrefix(p.value, "+"):
		return "International"
	case len(p.value) == 10 && p.value[0] == '0':
		return "France"
	default:
		return "Inconnu"
	}
}

// Type distingue móvil y fijo según el plan de numeración francés.
// Para números no franceses devuelve "inconnu".
func (p PhoneNumber) Type() string {
	d := p.nationalDigits()
	if len(d) != 10 || d[0] != '0' {
		return "inconnu"
	}
	switch d[1] {
	case '6', '7':
		return "mobile"
	case '1', '2', '3', '4', '5', '9':
		return "fixe"
	default:
		return "inconnu"
	}
}

// nationalDigits reescribe +33XXXXXXXXX como 0XXXXXXXXX; deja el resto igual.
func (p PhoneNumber) nationalDigits() string {
	if strings.HasPrefix(p.value, "+33") && len(p.value) == 12 {
		return "0" + p.value[3:]
	}
	return p.value
}

// Formatted agrupa por pares a la francesa: "06 12 34 56 78" o
// "+33 6 12 34 56 78". Los demás números se devuelven tal cual.
func (p PhoneNumber) Formatted() string {
	if strings.HasPrefix(p.value, "+33") && len(p.value) == 12 {
		rest := p.value[3:]
		return "+33 " + rest[:1] + " " + joinPairs(rest[1:])
	}
	if len(p.value) == 10 && p.value[0] == '0' {
		return joinPairs(p.value)
	}
	return p.value
}

// Masked oculta todos los dígitos salvo los dos últimos.
func (p PhoneNumber) Masked() string {
	r := []rune(p.value)
	for i := 0; i < len(r)-2; i++ {
		if r[i] >= '0' && r[i] <= '9' {
			r[i] = '*'
		}
	}
	return string(r)
}

func joinPairs(digits string) string {
	parts := make([]string, 0, len(digits)/2+1)
	for i := 0; i < len(digits); i += 2 {
		end := i + 2
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}
