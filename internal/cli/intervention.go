package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

var interventionCmd = &cobra.Command{
	Use:   "interventions",
	Short: "Manage maintenance interventions",
}

var interventionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an intervention",
	Long: `Record a maintenance intervention on an equipment.

Examples:
  maintenance interventions add --equipment 1 --technician 2 --date 2024-03-10 \
      --kind corrective --duration 90 --cost 250.50 --description "replaced bearing"
  maintenance interventions add --equipment 1 --technician 2 --date 2024-07-01 \
      --kind preventive --status planned --duration 60`,
	RunE: runInterventionAdd,
}

var interventionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interventions",
	RunE:  runInterventionList,
}

var interventionSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search interventions by technician, kind, or date range",
	Long: `Search interventions with optional filters.

Examples:
  maintenance interventions search --technician 2
  maintenance interventions search --kind corrective --from 2024-01-01 --to 2024-06-30`,
	RunE: runInterventionSearch,
}

var (
	ivEquipmentID  int64
	ivTechnicianID int64
	ivDate         string
	ivKind         string
	ivDescription  string
	ivDuration     int64
	ivCost         float64
	ivStatus       string

	searchTechnician int64
	searchKind       string
	searchFrom       string
	searchTo         string
)

func init() {
	rootCmd.AddCommand(interventionCmd)
	interventionCmd.AddCommand(interventionAddCmd)
	interventionCmd.AddCommand(interventionListCmd)
	interventionCmd.AddCommand(interventionSearchCmd)

	interventionAddCmd.Flags().Int64Var(&ivEquipmentID, "equipment", 0, "Equipment id (required)")
	interventionAddCmd.Flags().Int64Var(&ivTechnicianID, "technician", 0, "Technician id (required)")
	interventionAddCmd.Flags().StringVar(&ivDate, "date", "", "Date YYYY-MM-DD (required)")
	interventionAddCmd.Flags().StringVar(&ivKind, "kind", "", "Kind: preventive, corrective, installation, update (required)")
	interventionAddCmd.Flags().StringVar(&ivDescription, "description", "", "Description")
	interventionAddCmd.Flags().Int64Var(&ivDuration, "duration", 0, "Duration in minutes")
	interventionAddCmd.Flags().Float64Var(&ivCost, "cost", 0, "Cost")
	interventionAddCmd.Flags().StringVar(&ivStatus, "status", domain.StatusCompleted, "Status: completed, planned, cancelled")
	_ = interventionAddCmd.MarkFlagRequired("equipment")
	_ = interventionAddCmd.MarkFlagRequired("technician")
	_ = interventionAddCmd.MarkFlagRequired("date")
	_ = interventionAddCmd.MarkFlagRequired("kind")

	interventionSearchCmd.Flags().Int64Var(&searchTechnician, "technician", 0, "Filter by technician id")
	interventionSearchCmd.Flags().StringVar(&searchKind, "kind", "", "Filter by kind")
	interventionSearchCmd.Flags().StringVar(&searchFrom, "from", "", "Start date YYYY-MM-DD")
	interventionSearchCmd.Flags().StringVar(&searchTo, "to", "", "End date YYYY-MM-DD")
}

func runInterventionAdd(cmd *cobra.Command, args []string) error {
	if err := validateDate(ivDate); err != nil {
		return err
	}
	switch ivKind {
	case domain.KindPreventive, domain.KindCorrective, domain.KindInstallation, domain.KindUpdate:
	default:
		return fmt.Errorf("invalid kind %q", ivKind)
	}
	switch ivStatus {
	case domain.StatusCompleted, domain.StatusPlanned, domain.StatusCancelled:
	default:
		return fmt.Errorf("invalid status %q", ivStatus)
	}
	if ivCost < 0 {
		return fmt.Errorf("cost cannot be negative")
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()
	ctx := context.Background()

	if err := requireEquipment(ctx, app, ivEquipmentID); err != nil {
		return err
	}
	tech, err := app.Repos.Technicians.GetByID(ctx, ivTechnicianID)
	if err != nil {
		return err
	}
	if tech == nil {
		return fmt.Errorf("technician %d not found", ivTechnicianID)
	}

	iv := &domain.Intervention{
		EquipmentID:     ivEquipmentID,
		TechnicianID:    ivTechnicianID,
		PerformedOn:     ivDate,
		Kind:            ivKind,
		Description:     ivDescription,
		DurationMinutes: ivDuration,
		Cost:            ivCost,
		Status:          ivStatus,
	}
	if err := app.Repos.Interventions.Create(ctx, iv); err != nil {
		return err
	}

	fmt.Printf("Intervention %d recorded (%s, %s)\n", iv.ID, iv.Kind, iv.PerformedOn)
	return nil
}

func runInterventionList(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	details, err := app.Repos.Interventions.ListWithDetail(context.Background())
	if err != nil {
		return err
	}
	printInterventionDetails(details)
	return nil
}

func runInterventionSearch(cmd *cobra.Command, args []string) error {
	for _, d := range []string{searchFrom, searchTo} {
		if d != "" {
			if err := validateDate(d); err != nil {
				return err
			}
		}
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	details, err := app.Repos.Interventions.Search(context.Background(), ports.SearchInterventionsOptions{
		TechnicianID: searchTechnician,
		Kind:         searchKind,
		From:         searchFrom,
		To:           searchTo,
	})
	if err != nil {
		return err
	}
	printInterventionDetails(details)
	return nil
}

func printInterventionDetails(details []domain.InterventionDetail) {
	if len(details) == 0 {
		fmt.Println("No interventions found")
		return
	}

	fmt.Printf("%-5s %-12s %-13s %-25s %-20s %8s %10s  %s\n",
		"ID", "DATE", "KIND", "EQUIPMENT", "TECHNICIAN", "MIN", "COST", "STATUS")
	for _, d := range details {
		fmt.Printf("%-5d %-12s %-13s %-25s %-20s %8d %10.2f  %s\n",
			d.ID, d.PerformedOn, d.Kind, d.EquipmentName, d.TechnicianName,
			d.DurationMinutes, d.Cost, d.Status)
	}
}
