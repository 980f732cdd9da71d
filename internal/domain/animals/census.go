package animals

import (
	"math"
	"time"
)

// dogLimit es el techo legal de perros por dueño.
const dogLimit = 5

// attentionAgeYears marca a partir de qué edad un animal requiere atención.
const attentionAgeYears = 10

// Census resume una colección de animales. Todas las cifras se derivan de la
// lista recibida; nada se materializa en las entidades.
type Census struct {
	Total           int
	ByKind          map[Kind]int
	AverageAge      float64 // años, redondeado a 1 decimal
	HasDangerousDog bool
	DogLimitReached bool
}

func TakeCensus(list []Animal, now time.Time) Census {
	c := Census{Total: len(list), ByKind: map[Kind]int{}}

	dogs := 0
	ageSum := 0
	for _, a := range list {
		c.ByKind[a.Kind]++
		ageSum += a.AgeYears(now)
		if a.Kind == KindDog {
			dogs++
			if a.Dog != nil && a.Dog.IsDangerous {
				c.HasDangerousDog = true
			}
		}
	}

	if c.Total > 0 {
		c.AverageAge = round1(float64(ageSum) / float64(c.Total))
	}
	c.DogLimitReached = dogs >= dogLimit

	return c
}

// FilterByKind devuelve los animales de un tipo, en el orden recibido.
func FilterByKind(list []Animal, k Kind) []Animal {
	out := make([]Animal, 0)
	for _, a := range list {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// FilterNeedingAttention devuelve los animales con edad >= 10 años.
func FilterNeedingAttention(list []Animal, now time.Time) []Animal {
	out := make([]Animal, 0)
	for _, a := range list {
		if a.AgeYears(now) >= attentionAgeYears {
			out = append(out, a)
		}
	}
	return out
}

// AverageAge calcula la media de edades, 0.0 con lista vacía.
func AverageAge(list []Animal, now time.Time) float64 {
	if len(list) == 0 {
		return 0
	}
	sum := 0
	for _, a := range list {
		sum += a.AgeYears(now)
	}
	return round1(float64(sum) / float64(len(list)))
}

// CostSummary agrega el presupuesto anual de una colección.
type CostSummary struct {
	Total     float64
	PerAnimal map[int64]CostBreakdown // por id de animal
	Currency  string
}

func TotalAnnualCost(list []Animal) CostSummary {
	s := CostSummary{PerAnimal: map[int64]CostBreakdown{}, Currency: costCurrency}
	for _, a := range list {
		b := a.AnnualCost()
		s.PerAnimal[a.ID] = b
		s.Total += b.Total
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
