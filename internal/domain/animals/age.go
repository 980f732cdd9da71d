package animals

import "time"

// La edad nunca se almacena: siempre se recalcula a partir de birthDate.
// El cálculo es de calendario (meses cumplidos), no una división de duración,
// para que nacimientos como el 29 de febrero se comporten con sensatez.

func (a Animal) AgeYears(now time.Time) int {
	y, _ := calendarDiff(a.BirthDate, now)
	return y
}

func (a Animal) AgeMonths(now time.Time) int {
	y, m := calendarDiff(a.BirthDate, now)
	return y*12 + m
}

func (a Animal) AgeDays(now time.Time) int {
	from := time.Date(a.BirthDate.Year(), a.BirthDate.Month(), a.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// calendarDiff cuenta los meses de calendario cumplidos entre from y to.
// Un mes no cuenta hasta alcanzar el día del mes de from; así un nacimiento
// el 31 de enero no cumple su primer mes hasta el 1 de marzo.
func calendarDiff(from, to time.Time) (years, months int) {
	if to.Before(from) {
		return 0, 0
	}

	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()

	total := (y2-y1)*12 + int(m2) - int(m1)
	if d2 < d1 {
		total--
	}
	if total < 0 {
		return 0, 0
	}
	return total / 12, total % 12
}
