package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Fleet maintenance tracking and analytics",
	Long: `maintenance tracks an equipment fleet, its technicians and their
interventions, and derives the operational indicators: availability, MTBF,
cost trends, reliability scores, budget forecasts, and maintenance alerts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
