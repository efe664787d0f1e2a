package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show active maintenance alerts",
	Long: `Evaluate the alert rules over the fleet and print active alerts,
most severe first.`,
	RunE: runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	alerts, err := app.Analytics.MaintenanceAlerts(context.Background())
	if err != nil {
		return err
	}

	if len(alerts) == 0 {
		fmt.Println("No active alert")
		return nil
	}

	for _, a := range alerts {
		fmt.Printf("[%-9s] %-25s %s\n", a.Level, a.Equipment, a.Message)
	}
	return nil
}
