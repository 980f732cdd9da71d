package animals

import (
	"fmt"
	"strings"
	"time"
)

// birdSounds mapea especies comunes a su canto; el resto cae en el genérico.
var birdSounds = map[string]string{
	"perroquet": "Coco !",
	"canari":    "Tui tui tui !",
	"perruche":  "Piou piou !",
	"corbeau":   "Croa croa !",
}

const defaultBirdSound = "Cui cui !"

// Sound devuelve la onomatopeya determinista de la variante.
func (a Animal) Sound() string {
	switch a.Kind {
	case KindDog:
		if a.Weight > 20 {
			return "WOOF WOOF!"
		}
		return "Woof woof!"
	case KindCat:
		return "Miaou!"
	case KindBird:
		if a.Bird != nil && a.Bird.CanTalk {
			return fmt.Sprintf("Bonjour, je m'appelle %s !", a.Name)
		}
		if a.Bird != nil {
			if s, ok := birdSounds[strings.ToLower(strings.TrimSpace(a.Bird.Species))]; ok {
				return s
			}
		}
		return defaultBirdSound
	default:
		return ""
	}
}

// SpecialNeeds compone la lista de cuidados: primero los comunes a todas las
// variantes, después los condicionales de cada una. Siempre aditiva.
func (a Animal) SpecialNeeds(now time.Time) []string {
	needs := []string{
		"Nourriture adaptée à l'espèce",
		"Accès permanent à de l'eau fraîche",
	}

	switch a.Kind {
	case KindDog:
		needs = append(needs, "Promenade quotidienne")
		if a.Weight > 30 {
			needs = append(needs, "Espace extérieur pour grand gabarit")
		}
		if a.Dog != nil && a.Dog.IsDangerous {
			needs = append(needs, "Muselière et permis de détention obligatoires")
		}
		if a.AgeYears(now) >= 8 {
			needs = append(needs, "Bilan vétérinaire senior annuel")
		}
	case KindCat:
		needs = append(needs, "Litière propre")
		if a.Cat != nil && a.Cat.IsIndoor {
			needs = append(needs, "Arbre à chat et jeux d'intérieur")
		} else {
			needs = append(needs, "Traitement antiparasitaire renforcé")
		}
	case KindBird:
		needs = append(needs, "Cage nettoyée chaque semaine")
		if a.Bird != nil && a.Bird.WingSpan > 100 {
			needs = append(needs, "Volière adaptée à son envergure")
		}
		if a.Bird != nil && a.Bird.CanTalk {
			needs = append(needs, "Stimulation vocale quotidienne")
		}
	}

	return needs
}

// Description arma una frase corta de presentación en francés.
func (a Animal) Description(now time.Time) string {
	years := a.AgeYears(now)
	unit := "ans"
	if years < 2 {
		unit = "an"
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "%s est un %s de %d %s", a.Name, strings.ToLower(a.Kind.Label()), years, unit)

	switch {
	case a.Kind == KindDog && a.Dog != nil:
		fmt.Fprintf(&b, " de race %s", a.Dog.Breed)
	case a.Kind == KindBird && a.Bird != nil:
		fmt.Fprintf(&b, " de l'espèce %s", a.Bird.Species)
	}

	b.WriteString(".")
	return b.String()
}
