package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pet-registry/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

type seedOwner struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line"`
}

type seedAnimal struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	BirthDate string  `json:"birth_date"`
	Weight    float64 `json:"weight"`
	Color     string  `json:"color,omitempty"`
	OwnerID   int64   `json:"owner_id"`

	Breed              string  `json:"breed,omitempty"`
	RegistrationNumber string  `json:"registration_number,omitempty"`
	IsIndoor           *bool   `json:"is_indoor,omitempty"`
	Species            string  `json:"species,omitempty"`
	WingSpan           float64 `json:"wing_span,omitempty"`
	CanTalk            bool    `json:"can_talk,omitempty"`
}

// seedPlan: dueños y, por índice de dueño, sus animales.
var seedPlan = []struct {
	owner   seedOwner
	animals []seedAnimal
}{
	{
		owner: seedOwner{
			FirstName:   "Jean",
			LastName:    "Dupont",
			Email:       "jean.dupont@example.com",
			Phone:       "+33 6 12 34 56 78",
			AddressLine: "12 Rue de Rivoli, 75001 Paris, France",
		},
		animals: []seedAnimal{
			{Type: "dog", Name: "Rex", BirthDate: "2019-05-15", Weight: 32, Color: "noir", Breed: "Berger Allemand", RegistrationNumber: "ABC123456789012"},
			{Type: "cat", Name: "Misty", BirthDate: "2021-09-01", Weight: 4.2, Color: "gris"},
		},
	},
	{
		owner: seedOwner{
			FirstName:   "Claire",
			LastName:    "Martin",
			Email:       "claire.martin@example.com",
			Phone:       "0556443322",
			AddressLine: "8 Quai des Chartrons, 33000 Bordeaux, France",
		},
		animals: []seedAnimal{
			{Type: "bird", Name: "Coco", BirthDate: "2020-02-10", Weight: 0.9, Color: "vert", Species: "Perroquet", WingSpan: 45, CanTalk: true},
		},
	},
	{
		owner: seedOwner{
			FirstName:   "Luc",
			LastName:    "Bernard",
			Email:       "luc.bernard@example.com",
			Phone:       "0478123456",
			AddressLine: "5 Place Bellecour, 69002 Lyon, France",
		},
		animals: []seedAnimal{
			{Type: "dog", Name: "Volt", BirthDate: "2022-11-20", Weight: 38.5, Color: "brun", Breed: "Rottweiler"},
		},
	},
}

func newSeedCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga dueños y animales de ejemplo a través del API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := httpclient.New(addr, 15*time.Second)
			if err != nil {
				return err
			}
			ctx := context.Background()

			for _, row := range seedPlan {
				var created struct {
					ID int64 `json:"id"`
				}
				err := client.DoJSON(ctx, http.MethodPost, "/api/owners", row.owner, &created)
				if err != nil {
					return fmt.Errorf("seeding owner %s: %w", row.owner.Email, err)
				}
				fmt.Printf("owner %d: %s %s\n", created.ID, row.owner.FirstName, row.owner.LastName)

				for _, a := range row.animals {
					a.OwnerID = created.ID
					var ca struct {
						ID int64 `json:"id"`
					}
					if err := client.DoJSON(ctx, http.MethodPost, "/api/animals", a, &ca); err != nil {
						return fmt.Errorf("seeding animal %s: %w", a.Name, err)
					}
					fmt.Printf("  animal %d: %s (%s)\n", ca.ID, a.Name, a.Type)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "URL base del servidor")

	return cmd
}
