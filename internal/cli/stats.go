package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fleet maintenance statistics",
	Long: `Show summary statistics for the fleet: totals, top serviced
equipment, intervention frequency by kind, and cost by equipment type.`,
	RunE: runStats,
}

var statsTopLimit int

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsTopLimit, "top", 5, "Number of top serviced equipment to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()
	ctx := context.Background()

	totalCost, err := app.Analytics.TotalCost(ctx)
	if err != nil {
		return err
	}
	count, err := app.Analytics.InterventionCount(ctx)
	if err != nil {
		return err
	}
	avgDuration, err := app.Analytics.AverageDuration(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== Fleet Maintenance Statistics ===")
	fmt.Printf("Total completed cost:  %.2f EUR\n", totalCost)
	fmt.Printf("Interventions:         %d\n", count)
	fmt.Printf("Average duration:      %.2f min\n", avgDuration)

	top, err := app.Analytics.TopServicedEquipment(ctx, statsTopLimit)
	if err != nil {
		return err
	}
	if len(top) > 0 {
		fmt.Println("\nMost serviced equipment:")
		for _, e := range top {
			fmt.Printf("  %-25s %3d interventions  %10.2f EUR\n", e.Name, e.InterventionCount, e.TotalCost)
		}
	}

	freq, err := app.Analytics.FrequencyByKind(ctx)
	if err != nil {
		return err
	}
	if len(freq) > 0 {
		fmt.Println("\nInterventions by kind:")
		for _, f := range freq {
			fmt.Printf("  %-13s %4d  total %10.2f EUR  avg %8.2f EUR  avg %6.1f min\n",
				f.Kind, f.Count, f.TotalCost, f.AverageCost, f.AverageDuration)
		}
	}

	byType, err := app.Analytics.CostByEquipmentType(ctx)
	if err != nil {
		return err
	}
	if len(byType) > 0 {
		fmt.Println("\nCost by equipment type:")
		for _, t := range byType {
			fmt.Printf("  %-13s %3d equipment  %4d interventions  %10.2f EUR\n",
				t.Type, t.EquipmentCount, t.InterventionCount, t.TotalCost)
		}
	}

	return nil
}
