package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// StatsRepository exposes the grouped and aggregated queries the store can
// answer directly. The analytics engine uses these as cheap pre-aggregation;
// none of them mutate state.
type StatsRepository interface {
	// TotalCompletedCost sums the cost of completed interventions.
	TotalCompletedCost(ctx context.Context) (float64, error)
	// CountInterventions counts interventions of every status.
	CountInterventions(ctx context.Context) (int64, error)
	// AverageDuration returns the mean duration in minutes of completed
	// interventions, rounded to 2 decimals. Zero when there are none.
	AverageDuration(ctx context.Context) (float64, error)
	// TopServicedEquipment returns up to limit equipment ordered by
	// intervention count descending. Interventions of every status count;
	// equipment with zero interventions is excluded.
	TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error)
	// FrequencyByKind groups completed interventions by kind, most frequent
	// first.
	FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error)
	// CostByEquipmentType aggregates completed maintenance cost per
	// equipment type, most expensive first. Types without completed
	// interventions appear with zero totals.
	CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error)
	// MonthlyCosts aggregates completed interventions per month of the given
	// year. Months without interventions are absent.
	MonthlyCosts(ctx context.Context, year int) ([]domain.MonthlyCost, error)
	// TechnicianPerformance aggregates completed interventions per
	// technician, busiest first.
	TechnicianPerformance(ctx context.Context) ([]domain.TechnicianPerformance, error)
	// MostRecentYear returns the latest year with a completed intervention,
	// or 0 when there is none.
	MostRecentYear(ctx context.Context) (int, error)
}
