package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Manage spare-part stock",
}

var partsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a spare part",
	RunE:  runPartsAdd,
}

var partsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spare parts and low-stock alerts",
	RunE:  runPartsList,
}

var partsUseCmd = &cobra.Command{
	Use:   "use <intervention-id> <part-id> <quantity>",
	Short: "Record part usage during an intervention",
	Args:  cobra.ExactArgs(3),
	RunE:  runPartsUse,
}

var partsRestockCmd = &cobra.Command{
	Use:   "restock <part-id> <quantity>",
	Short: "Add stock for a part",
	Args:  cobra.ExactArgs(2),
	RunE:  runPartsRestock,
}

var (
	partName      string
	partReference string
	partStock     int64
	partThreshold int64
	partUnitCost  float64
)

func init() {
	rootCmd.AddCommand(partsCmd)
	partsCmd.AddCommand(partsAddCmd)
	partsCmd.AddCommand(partsListCmd)
	partsCmd.AddCommand(partsUseCmd)
	partsCmd.AddCommand(partsRestockCmd)

	partsAddCmd.Flags().StringVar(&partName, "name", "", "Part name (required)")
	partsAddCmd.Flags().StringVar(&partReference, "reference", "", "Part reference (required)")
	partsAddCmd.Flags().Int64Var(&partStock, "stock", 0, "Initial stock quantity")
	partsAddCmd.Flags().Int64Var(&partThreshold, "threshold", 0, "Low-stock alert threshold")
	partsAddCmd.Flags().Float64Var(&partUnitCost, "unit-cost", 0, "Unit cost")
	_ = partsAddCmd.MarkFlagRequired("name")
	_ = partsAddCmd.MarkFlagRequired("reference")
}

func runPartsAdd(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	p := &domain.SparePart{
		Name:           partName,
		Reference:      partReference,
		StockQuantity:  partStock,
		AlertThreshold: partThreshold,
		UnitCost:       partUnitCost,
	}
	if err := app.Repos.Parts.Create(context.Background(), p); err != nil {
		return err
	}

	fmt.Printf("Part %d created: %s (%s)\n", p.ID, p.Name, p.Reference)
	return nil
}

func runPartsList(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	status, err := app.Stock.Status(context.Background())
	if err != nil {
		return err
	}

	if len(status.Parts) == 0 {
		fmt.Println("No spare parts registered")
		return nil
	}

	fmt.Printf("%-5s %-25s %-12s %8s %10s %10s\n", "ID", "NAME", "REFERENCE", "STOCK", "THRESHOLD", "UNIT COST")
	for _, p := range status.Parts {
		fmt.Printf("%-5d %-25s %-12s %8d %10d %10.2f\n",
			p.ID, p.Name, p.Reference, p.StockQuantity, p.AlertThreshold, p.UnitCost)
	}

	for _, alert := range status.Alerts {
		fmt.Println(alert)
	}
	return nil
}

func runPartsUse(cmd *cobra.Command, args []string) error {
	interventionID, err := parseID(args[0])
	if err != nil {
		return err
	}
	partID, err := parseID(args[1])
	if err != nil {
		return err
	}
	quantity, err := parseID(args[2])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[2])
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	low, err := app.Stock.Consume(context.Background(), interventionID, partID, quantity)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded usage of %d x part %d for intervention %d\n", quantity, partID, interventionID)
	if low {
		fmt.Println("Warning: part is now at or under its stock threshold")
	}
	return nil
}

func runPartsRestock(cmd *cobra.Command, args []string) error {
	partID, err := parseID(args[0])
	if err != nil {
		return err
	}
	quantity, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Repos.Parts.AdjustStock(context.Background(), partID, quantity); err != nil {
		return err
	}
	fmt.Printf("Added %d to part %d stock\n", quantity, partID)
	return nil
}
