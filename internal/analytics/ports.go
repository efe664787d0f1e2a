package analytics

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// Repository is the read-only view of the record store the engine consumes.
// Raw record listings feed the computed indicators; the aggregate methods
// are cheap pre-aggregations the store answers directly.
type Repository interface {
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)

	// ListCompletedInterventions returns completed interventions joined with
	// equipment name and type, ordered by date ascending.
	ListCompletedInterventions(ctx context.Context) ([]domain.InterventionWithEquipment, error)

	// ListInterventionDetails returns all interventions regardless of
	// status, joined with equipment and technician detail.
	ListInterventionDetails(ctx context.Context) ([]domain.InterventionDetail, error)

	TotalCompletedCost(ctx context.Context) (float64, error)
	CountInterventions(ctx context.Context) (int64, error)
	AverageDuration(ctx context.Context) (float64, error)
	TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error)
	FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error)
	CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error)
	MonthlyCosts(ctx context.Context, year int) ([]domain.MonthlyCost, error)
	TechnicianPerformance(ctx context.Context) ([]domain.TechnicianPerformance, error)
	MostRecentYear(ctx context.Context) (int, error)
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string)
	Error(msg string)
}
