package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

var technicianCmd = &cobra.Command{
	Use:   "technicians",
	Short: "Manage technicians",
}

var technicianAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new technician",
	RunE:  runTechnicianAdd,
}

var technicianListCmd = &cobra.Command{
	Use:   "list",
	Short: "List technicians",
	RunE:  runTechnicianList,
}

var (
	technicianName      string
	technicianSpecialty string
	technicianEmail     string
	technicianHired     string
	technicianFilter    string
)

func init() {
	rootCmd.AddCommand(technicianCmd)
	technicianCmd.AddCommand(technicianAddCmd)
	technicianCmd.AddCommand(technicianListCmd)

	technicianAddCmd.Flags().StringVar(&technicianName, "name", "", "Technician name (required)")
	technicianAddCmd.Flags().StringVar(&technicianSpecialty, "specialty", "", "Specialty (required)")
	technicianAddCmd.Flags().StringVar(&technicianEmail, "email", "", "Email")
	technicianAddCmd.Flags().StringVar(&technicianHired, "hired", "", "Hire date YYYY-MM-DD")
	_ = technicianAddCmd.MarkFlagRequired("name")
	_ = technicianAddCmd.MarkFlagRequired("specialty")

	technicianListCmd.Flags().StringVar(&technicianFilter, "specialty", "", "Filter by specialty")
}

func runTechnicianAdd(cmd *cobra.Command, args []string) error {
	if technicianHired != "" {
		if err := validateDate(technicianHired); err != nil {
			return err
		}
	}

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	t := &domain.Technician{
		Name:      technicianName,
		Specialty: technicianSpecialty,
		Email:     technicianEmail,
		HiredOn:   technicianHired,
	}
	if err := app.Repos.Technicians.Create(context.Background(), t); err != nil {
		return err
	}

	fmt.Printf("Technician %d created: %s (%s)\n", t.ID, t.Name, t.Specialty)
	return nil
}

func runTechnicianList(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	var technicians []domain.Technician
	if technicianFilter != "" {
		technicians, err = app.Repos.Technicians.ListBySpecialty(ctx, technicianFilter)
	} else {
		technicians, err = app.Repos.Technicians.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(technicians) == 0 {
		fmt.Println("No technicians found")
		return nil
	}

	fmt.Printf("%-5s %-25s %-15s %s\n", "ID", "NAME", "SPECIALTY", "EMAIL")
	for _, t := range technicians {
		fmt.Printf("%-5d %-25s %-15s %s\n", t.ID, t.Name, t.Specialty, t.Email)
	}
	return nil
}
