package values

import (
	"strings"
	"unicode"
)

// ValidNameChars acepta letras Unicode, espacios, guiones y apóstrofes.
// Es la clase de caracteres compartida por nombres de persona y ciudades.
func ValidNameChars(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '-' || r == '\'' || r == '’' {
			continue
		}
		return false
	}
	return true
}

// CapitalizeFirst pasa todo a minúsculas y sube la primera letra.
func CapitalizeFirst(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// TitleWords capitaliza la primera letra de cada palabra.
// Separadores: espacio, guion y apóstrofe (Saint-Denis, L'Haÿ-les-Roses).
func TitleWords(s string) string {
	r := []rune(strings.ToLower(strings.TrimSpace(s)))
	upper := true
	for i, c := range r {
		if upper && unicode.IsLetter(c) {
			r[i] = unicode.ToUpper(c)
			upper = false
		}
		if c == ' ' || c == '-' || c == '\'' || c == '’' {
			upper = true
		}
	}
	return string(r)
}
