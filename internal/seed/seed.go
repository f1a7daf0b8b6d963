// Package seed inserts demo data on first startup so a fresh development
// database has something to render.
package seed

import (
	"context"
	"fmt"

	"github.com/Poldin/budgez-sub003/internal/engine"
	"github.com/Poldin/budgez-sub003/internal/store"
)

const (
	demoTitle = "Sito web vetrina"
	demoNotes = "Preventivo dimostrativo"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run seeds a demo budget when the store is empty. It is idempotent: a
// non-empty store is left untouched.
func Run(ctx context.Context, st *store.Store, currency string) (Stats, error) {
	count, err := st.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("check existing budgets: %w", err)
	}
	if count > 0 {
		return Stats{}, nil
	}

	def := demoBudget(currency)
	totals, err := engine.Compute(def)
	if err != nil {
		return Stats{}, fmt.Errorf("compute demo budget: %w", err)
	}
	if _, err := st.Save(ctx, demoTitle, demoNotes, def, totals); err != nil {
		return Stats{}, fmt.Errorf("save demo budget: %w", err)
	}

	return Stats{Inserts: 1}, nil
}

func demoBudget(currency string) engine.Input {
	return engine.Input{
		Currency: currency,
		Resources: engine.Catalog{
			"dev": {
				ID:           "dev",
				Name:         "Sviluppatore senior",
				CostModel:    engine.CostModelHourly,
				PricePerHour: 65,
			},
			"designer": {
				ID:           "designer",
				Name:         "Designer",
				CostModel:    engine.CostModelHourly,
				PricePerHour: 50,
			},
			"hosting": {
				ID:           "hosting",
				Name:         "Hosting (mesi)",
				CostModel:    engine.CostModelQuantity,
				PricePerHour: 25,
			},
			"dominio": {
				ID:        "dominio",
				Name:      "Registrazione dominio",
				CostModel: engine.CostModelFixed,
			},
		},
		Activities: []engine.Activity{
			{
				ID:      "design",
				Name:    "Design e prototipo",
				VATRate: 22,
				Assignments: []engine.Assignment{
					{ResourceID: "designer", Hours: 24},
				},
			},
			{
				ID:      "sviluppo",
				Name:    "Sviluppo e messa online",
				VATRate: 22,
				Assignments: []engine.Assignment{
					{ResourceID: "dev", Hours: 40},
					{ResourceID: "hosting", Hours: 12},
					{ResourceID: "dominio", FixedPrice: 15},
				},
				Discount: engine.Discount{
					Enabled: true,
					Kind:    engine.Percentage,
					Value:   5,
					ApplyOn: engine.OnTaxable,
				},
			},
		},
		GeneralDiscount: engine.Discount{
			Enabled: true,
			Kind:    engine.Percentage,
			Value:   10,
			ApplyOn: engine.OnTaxable,
		},
	}
}
