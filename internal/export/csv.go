package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/analytics"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// InterventionsCSV renders interventions with detail as CSV. Returns the
// empty string when there are no rows, header included.
func InterventionsCSV(details []domain.InterventionDetail) (string, error) {
	if len(details) == 0 {
		return "", nil
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{"id", "date", "kind", "description", "duration_minutes", "cost", "equipment", "technician", "status"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, d := range details {
		row := []string{
			fmt.Sprintf("%d", d.ID),
			d.PerformedOn,
			d.Kind,
			d.Description,
			fmt.Sprintf("%d", d.DurationMinutes),
			fmt.Sprintf("%.2f", d.Cost),
			d.EquipmentName,
			d.TechnicianName,
			d.Status,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// WeeklyReportCSV renders the weekly maintenance report: global indicators,
// the advanced performance figures, and the active alerts, in labeled
// sections.
func WeeklyReportCSV(report analytics.SynthesisReport, kpis analytics.AdvancedKPIs, from, to time.Time) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"WEEKLY MAINTENANCE REPORT", fmt.Sprintf("Week of %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))},
		{},
		{"GLOBAL INDICATORS"},
		{"Total Maintenance Cost", fmt.Sprintf("%.2f EUR", report.Global.TotalCost)},
		{"Intervention Count", fmt.Sprintf("%d", report.Global.InterventionCount)},
		{"Average Duration", fmt.Sprintf("%.2f min", report.Global.AverageDurationMinutes)},
		{},
		{"PERFORMANCE & RELIABILITY"},
		{"Cost per Usage Hour", fmt.Sprintf("%.4f EUR/h", kpis.CostPerUsageHour)},
		{"Budget Forecast (6 months)", fmt.Sprintf("%.2f EUR", kpis.BudgetForecast6Months)},
		{},
		{"ACTIVE ALERTS"},
	}

	if len(report.Alerts) > 0 {
		rows = append(rows, []string{"Level", "Equipment", "Message"})
		for _, a := range report.Alerts {
			rows = append(rows, []string{a.Level, a.Equipment, a.Message})
		}
	} else {
		rows = append(rows, []string{"No active alert"})
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush report csv: %w", err)
	}
	return buf.String(), nil
}
