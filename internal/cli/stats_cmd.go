package cli

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"pet-registry/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Muestra las estadísticas globales del registro",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := httpclient.New(addr, 15*time.Second)
			if err != nil {
				return err
			}

			var resp struct {
				TotalAnimals     int            `json:"total_animals"`
				ByType           map[string]int `json:"by_type"`
				AverageAge       float64        `json:"average_age"`
				HasDangerousDog  bool           `json:"has_dangerous_dog"`
				NeedingAttention []struct {
					ID       int64  `json:"id"`
					Type     string `json:"type"`
					Name     string `json:"name"`
					AgeYears int    `json:"age_years"`
				} `json:"needing_attention"`
				AnnualCostTotal float64 `json:"annual_cost_total"`
				Currency        string  `json:"currency"`
			}
			if err := client.DoJSON(context.Background(), http.MethodGet, "/api/stats/animals", nil, &resp); err != nil {
				return err
			}

			fmt.Printf("Animals: %d\n", resp.TotalAnimals)
			kinds := make([]string, 0, len(resp.ByType))
			for k := range resp.ByType {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				fmt.Printf("  %-5s %d\n", k+":", resp.ByType[k])
			}
			fmt.Printf("Average age: %.1f years\n", resp.AverageAge)
			fmt.Printf("Dangerous dogs: %v\n", resp.HasDangerousDog)
			if len(resp.NeedingAttention) > 0 {
				fmt.Println("Needing attention:")
				for _, a := range resp.NeedingAttention {
					fmt.Printf("  #%d %s (%s, %d years)\n", a.ID, a.Name, a.Type, a.AgeYears)
				}
			}
			fmt.Printf("Annual cost: %.2f %s\n", resp.AnnualCostTotal, resp.Currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "URL base del servidor")

	return cmd
}
