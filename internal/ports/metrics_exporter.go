package ports

import "context"

// MetricsExporter exports report indicators to an external observability
// system.
type MetricsExporter interface {
	// ExportReportMetrics exports fleet totals after a report run.
	ExportReportMetrics(ctx context.Context, m *ReportMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// ReportMetrics contains the fleet-level indicators published after a
// report run.
type ReportMetrics struct {
	TotalCost         float64
	InterventionCount int64
	AverageDuration   float64
	CriticalAlerts    int64
	WarningAlerts     int64
	InfoAlerts        int64
	BudgetForecast    float64
	CostPerUsageHour  float64
}
