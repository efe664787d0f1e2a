package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Show computed maintenance indicators",
}

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Availability rate per equipment type",
	RunE:  runAvailability,
}

var mtbfCmd = &cobra.Command{
	Use:   "mtbf",
	Short: "Mean time between failures per equipment",
	RunE:  runMTBF,
}

var reliabilityCmd = &cobra.Command{
	Use:   "reliability",
	Short: "Reliability score per equipment",
	RunE:  runReliability,
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly cost trend for a year",
	RunE:  runTrend,
}

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Advanced fleet KPIs",
	RunE:  runKPIs,
}

var trendYear int

func init() {
	rootCmd.AddCommand(indicatorsCmd)
	indicatorsCmd.AddCommand(availabilityCmd)
	indicatorsCmd.AddCommand(mtbfCmd)
	indicatorsCmd.AddCommand(reliabilityCmd)
	indicatorsCmd.AddCommand(trendCmd)
	indicatorsCmd.AddCommand(kpisCmd)

	trendCmd.Flags().IntVar(&trendYear, "year", 0, "Year to analyze (default: most recent year with data)")
}

func runAvailability(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	rates, err := app.Analytics.AvailabilityByType(context.Background())
	if err != nil {
		return err
	}
	if len(rates) == 0 {
		fmt.Println("No equipment registered")
		return nil
	}

	types := make([]string, 0, len(rates))
	for t := range rates {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Println("Availability by equipment type:")
	for _, t := range types {
		fmt.Printf("  %-15s %6.2f %%\n", t, rates[t])
	}
	return nil
}

func runMTBF(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	mtbf, err := app.Analytics.MTBFPerEquipment(context.Background())
	if err != nil {
		return err
	}
	if len(mtbf) == 0 {
		fmt.Println("No completed interventions recorded")
		return nil
	}

	names := make([]string, 0, len(mtbf))
	for name := range mtbf {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("MTBF per equipment:")
	for _, name := range names {
		fmt.Printf("  %-25s %s\n", name, formatMTBF(mtbf[name]))
	}
	return nil
}

func runReliability(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	scores, err := app.Analytics.ReliabilityIndex(context.Background())
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Println("No equipment registered")
		return nil
	}

	fmt.Printf("%-25s %-12s %5s %9s %9s %10s %7s\n",
		"NAME", "TYPE", "AGE", "INTERV.", "FAILURES", "COST", "SCORE")
	for _, s := range scores {
		fmt.Printf("%-25s %-12s %5.1f %9d %9d %10.2f %7d\n",
			s.Name, s.Type, s.AgeYears, s.InterventionCount, s.FailureCount, s.TotalCost, s.Score)
	}
	return nil
}

func runTrend(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	trend, err := app.Analytics.CostTrend(context.Background(), trendYear)
	if err != nil {
		return err
	}

	fmt.Printf("Cost trend %d: %s\n", trend.Year, trend.Trend)
	if len(trend.ByMonth) > 0 {
		fmt.Println("Monthly costs:")
		for _, m := range trend.ByMonth {
			fmt.Printf("  month %2d  %10.2f EUR\n", m.Month, m.Cost)
		}
	}
	fmt.Printf("First half:  %10.2f EUR\n", trend.FirstHalf)
	fmt.Printf("Second half: %10.2f EUR\n", trend.SecondHalf)
	fmt.Printf("Variation:   %10.2f %%\n", trend.VariationPct)
	return nil
}

func runKPIs(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	kpis, err := app.Analytics.AdvancedKPIs(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("=== Advanced KPIs ===")
	fmt.Printf("Cost per usage hour:       %.4f EUR/h\n", kpis.CostPerUsageHour)
	fmt.Printf("Budget forecast (6 months): %.2f EUR\n", kpis.BudgetForecast6Months)
	fmt.Printf("Corrective / preventive:   %.1f %% / %.1f %% of %d interventions\n",
		kpis.KindRatio.CorrectivePct, kpis.KindRatio.PreventivePct, kpis.KindRatio.Total)

	if len(kpis.Technicians) > 0 {
		fmt.Println("\nTechnician efficiency:")
		for _, t := range kpis.Technicians {
			fmt.Printf("  %-20s %-15s %3d interventions  avg %6.1f min  avg %8.2f EUR\n",
				t.Name, t.Specialty, t.InterventionCount, t.AverageMinutes, t.AverageCost)
		}
	}
	return nil
}
