package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export interventions as CSV",
	Long: `Export all interventions with equipment and technician detail as
CSV to stdout or a file.

Examples:
  maintenance export
  maintenance export --output interventions.csv`,
	RunE: runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	details, err := app.Repos.Interventions.ListWithDetail(context.Background())
	if err != nil {
		return err
	}

	content, err := export.InterventionsCSV(details)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported %d interventions to %s\n", len(details), exportOutput)
	return nil
}
