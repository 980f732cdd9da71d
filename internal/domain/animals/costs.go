package animals

// CostBreakdown detalla el presupuesto anual estimado de un animal.
type CostBreakdown struct {
	Lines    map[string]float64
	Total    float64
	Currency string
}

const costCurrency = "EUR"

// flatAnnualCost es el forfait aplicado a las variantes sin desglose propio.
const flatAnnualCost = 500.0

// AnnualCost estima el presupuesto anual en euros. Solo el perro tiene un
// desglose detallado (comida por gabarit, veterinario, seguro); las demás
// variantes usan el forfait fijo.
func (a Animal) AnnualCost() CostBreakdown {
	if a.Kind != KindDog {
		return CostBreakdown{
			Lines:    map[string]float64{"forfait annuel": flatAnnualCost},
			Total:    flatAnnualCost,
			Currency: costCurrency,
		}
	}

	food := 360.0
	switch {
	case a.Weight > 25:
		food = 960.0
	case a.Weight > 10:
		food = 600.0
	}

	veterinary := 150.0

	insurance := 120.0
	if a.Dog != nil && a.Dog.IsDangerous {
		// Responsabilidad civil obligatoria para razas categorizadas.
		insurance = 180.0
	}

	return CostBreakdown{
		Lines: map[string]float64{
			"nourriture":  food,
			"vétérinaire": veterinary,
			"assurance":   insurance,
		},
		Total:    food + veterinary + insurance,
		Currency: costCurrency,
	}
}
