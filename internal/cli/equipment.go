package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Manage the equipment fleet",
}

var equipmentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new equipment",
	Long: `Register a new equipment in the fleet.

Examples:
  maintenance equipment add --name "Lathe T-100" --type lathe --acquired 2021-05-10
  maintenance equipment add --name "Press P-2" --type press --acquired 2019-01-15 --location "Hall B" --hours 3500`,
	RunE: runEquipmentAdd,
}

var equipmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List equipment",
	RunE:  runEquipmentList,
}

var equipmentHoursCmd = &cobra.Command{
	Use:   "hours <id> <usage-hours>",
	Short: "Update an equipment's usage-hour counter",
	Args:  cobra.ExactArgs(2),
	RunE:  runEquipmentHours,
}

var equipmentStatusCmd = &cobra.Command{
	Use:   "status <id> <active|maintenance|retired>",
	Short: "Update an equipment's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runEquipmentStatus,
}

var (
	equipmentName     string
	equipmentType     string
	equipmentBrand    string
	equipmentModel    string
	equipmentSerial   string
	equipmentAcquired string
	equipmentLocation string
	equipmentHours    int64
	equipmentFilter   string
	equipmentByStatus string
)

func init() {
	rootCmd.AddCommand(equipmentCmd)
	equipmentCmd.AddCommand(equipmentAddCmd)
	equipmentCmd.AddCommand(equipmentListCmd)
	equipmentCmd.AddCommand(equipmentHoursCmd)
	equipmentCmd.AddCommand(equipmentStatusCmd)

	equipmentAddCmd.Flags().StringVar(&equipmentName, "name", "", "Equipment name (required)")
	equipmentAddCmd.Flags().StringVar(&equipmentType, "type", "", "Equipment type (required)")
	equipmentAddCmd.Flags().StringVar(&equipmentBrand, "brand", "", "Brand")
	equipmentAddCmd.Flags().StringVar(&equipmentModel, "model", "", "Model")
	equipmentAddCmd.Flags().StringVar(&equipmentSerial, "serial", "", "Serial number")
	equipmentAddCmd.Flags().StringVar(&equipmentAcquired, "acquired", "", "Acquisition date YYYY-MM-DD (required)")
	equipmentAddCmd.Flags().StringVar(&equipmentLocation, "location", "", "Location")
	equipmentAddCmd.Flags().Int64Var(&equipmentHours, "hours", 0, "Usage hours")
	_ = equipmentAddCmd.MarkFlagRequired("name")
	_ = equipmentAddCmd.MarkFlagRequired("type")
	_ = equipmentAddCmd.MarkFlagRequired("acquired")

	equipmentListCmd.Flags().StringVar(&equipmentFilter, "type", "", "Filter by type")
	equipmentListCmd.Flags().StringVar(&equipmentByStatus, "status", "", "Filter by status")
}

func runEquipmentAdd(cmd *cobra.Command, args []string) error {
	if err := validateDate(equipmentAcquired); err != nil {
		return err
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	e := &domain.Equipment{
		Name:         equipmentName,
		Type:         equipmentType,
		Brand:        equipmentBrand,
		Model:        equipmentModel,
		SerialNumber: equipmentSerial,
		AcquiredOn:   equipmentAcquired,
		Location:     equipmentLocation,
		UsageHours:   equipmentHours,
		Status:       domain.EquipmentActive,
	}
	if err := app.Repos.Equipment.Create(context.Background(), e); err != nil {
		return err
	}

	fmt.Printf("Equipment %d created: %s (%s)\n", e.ID, e.Name, e.Type)
	return nil
}

func runEquipmentList(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	var fleet []domain.Equipment
	switch {
	case equipmentFilter != "":
		fleet, err = app.Repos.Equipment.ListByType(ctx, equipmentFilter)
	case equipmentByStatus != "":
		fleet, err = app.Repos.Equipment.ListByStatus(ctx, equipmentByStatus)
	default:
		fleet, err = app.Repos.Equipment.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(fleet) == 0 {
		fmt.Println("No equipment found")
		return nil
	}

	fmt.Printf("%-5s %-25s %-12s %-12s %8s  %s\n", "ID", "NAME", "TYPE", "STATUS", "HOURS", "LOCATION")
	for _, e := range fleet {
		fmt.Printf("%-5d %-25s %-12s %-12s %8d  %s\n", e.ID, e.Name, e.Type, e.Status, e.UsageHours, e.Location)
	}
	return nil
}

func runEquipmentHours(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	hours, err := parseID(args[1])
	if err != nil {
		return fmt.Errorf("invalid usage hours %q", args[1])
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := requireEquipment(context.Background(), app, id); err != nil {
		return err
	}
	if err := app.Repos.Equipment.UpdateUsageHours(context.Background(), id, hours); err != nil {
		return err
	}
	fmt.Printf("Equipment %d now at %d hours\n", id, hours)
	return nil
}

func runEquipmentStatus(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	status := args[1]
	switch status {
	case domain.EquipmentActive, domain.EquipmentMaintenance, domain.EquipmentRetired:
	default:
		return fmt.Errorf("invalid status %q", status)
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := requireEquipment(context.Background(), app, id); err != nil {
		return err
	}
	if err := app.Repos.Equipment.UpdateStatus(context.Background(), id, status); err != nil {
		return err
	}
	fmt.Printf("Equipment %d is now %s\n", id, status)
	return nil
}

func requireEquipment(ctx context.Context, app *AppContext, id int64) error {
	e, err := app.Repos.Equipment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("equipment %d not found", id)
	}
	return nil
}
