package values

import (
	"regexp"
	"strings"
)

// emailPattern es una validación RFC simplificada, suficiente para registro.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const emailMaxLen = 254

// Email es el correo de contacto de un dueño, normalizado a minúsculas.
// Inmutable: se valida al construir y se compara por valor.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, NewValidationError("email", "must not be empty")
	}
	if len(v) > emailMaxLen {
		return Email{}, NewValidationError("email", "must not exceed %d characters", emailMaxLen)
	}
	if !emailPattern.MatchString(v) {
		return Email{}, NewValidationError("email", "invalid format: %q", strings.TrimSpace(raw))
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }

func (e Email) Equals(other Email) bool { return e.value == other.value }

// Domain devuelve la parte posterior a la arroba.
func (e Email) Domain() string {
	i := strings.LastIndex(e.value, "@")
	if i < 0 {
		return ""
	}
	return e.value[i+1:]
}
