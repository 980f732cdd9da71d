package values

import (
	"errors"
	"fmt"
)

// ValidationError identifica el campo y la regla de dominio violada.
// Lo construyen los value objects y los constructores de entidades;
// los handlers lo mapean a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reporta si err (o alguno de su cadena) es un error de validación.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
