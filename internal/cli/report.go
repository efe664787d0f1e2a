package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/adapters/otel"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/analytics"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/export"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the weekly maintenance report",
	Long: `Build the synthesis report and the advanced KPIs, write them as a
CSV file into the reports directory, record the run, and push the fleet
totals to the metrics exporter when one is configured.

This command is designed to run unattended from cron or a task scheduler.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	report, err := app.Analytics.SynthesisReport(ctx)
	if err != nil {
		return fmt.Errorf("building synthesis report: %w", err)
	}
	kpis, err := app.Analytics.AdvancedKPIs(ctx)
	if err != nil {
		return fmt.Errorf("computing KPIs: %w", err)
	}

	to := time.Now()
	from := to.AddDate(0, 0, -7)

	content, err := export.WeeklyReportCSV(report, kpis, from, to)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(app.Config.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}
	path := filepath.Join(app.Config.ReportsDir, fmt.Sprintf("rapport_hebdo_%s.csv", to.Format("20060102")))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	run := &domain.ReportRun{
		ID:                uuid.NewString(),
		GeneratedAt:       to,
		OutputPath:        path,
		TotalCost:         report.Global.TotalCost,
		InterventionCount: report.Global.InterventionCount,
		AlertCount:        int64(len(report.Alerts)),
	}
	if err := app.Repos.ReportRuns.Create(ctx, run); err != nil {
		return fmt.Errorf("recording report run: %w", err)
	}

	if err := exportReportMetrics(ctx, app, report, kpis); err != nil {
		// the report itself already succeeded, do not fail the run
		app.Log.Error().Err(err).Msg("metrics export failed")
	}

	fmt.Printf("Report written to %s (%d alerts)\n", path, len(report.Alerts))
	return nil
}

func exportReportMetrics(ctx context.Context, app *AppContext, report analytics.SynthesisReport, kpis analytics.AdvancedKPIs) error {
	var exporter ports.MetricsExporter
	if exp, err := otel.NewExporter(ctx, otel.LoadConfig()); err == nil {
		exporter = exp
	} else {
		app.Log.Debug().Err(err).Msg("using no-op metrics exporter")
		exporter = otel.NewNoOpExporter()
	}
	defer func() { _ = exporter.Close(ctx) }()

	var critical, warning, info int64
	for _, a := range report.Alerts {
		switch a.Level {
		case analytics.LevelCritical:
			critical++
		case analytics.LevelWarning:
			warning++
		case analytics.LevelInfo:
			info++
		}
	}

	return exporter.ExportReportMetrics(ctx, &ports.ReportMetrics{
		TotalCost:         report.Global.TotalCost,
		InterventionCount: report.Global.InterventionCount,
		AverageDuration:   report.Global.AverageDurationMinutes,
		CriticalAlerts:    critical,
		WarningAlerts:     warning,
		InfoAlerts:        info,
		BudgetForecast:    kpis.BudgetForecast6Months,
		CostPerUsageHour:  kpis.CostPerUsageHour,
	})
}
