package sqlite

import (
	"context"
	"database/sql"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

// Repositories holds all sqlite repository implementations as port
// interfaces.
type Repositories struct {
	Equipment     ports.EquipmentRepository
	Technicians   ports.TechnicianRepository
	Interventions ports.InterventionRepository
	Parts         ports.PartRepository
	Stats         ports.StatsRepository
	ReportRuns    ports.ReportRunRepository
}

// NewRepositories creates all sqlite repository implementations from a
// database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Equipment:     NewEquipmentRepository(db),
		Technicians:   NewTechnicianRepository(db),
		Interventions: NewInterventionRepository(db),
		Parts:         NewPartRepository(db),
		Stats:         NewStatsRepository(db),
		ReportRuns:    NewReportRunRepository(db),
	}
}

// AnalyticsStore adapts the repositories to the read-only view the
// analytics engine consumes.
type AnalyticsStore struct {
	equipment     ports.EquipmentRepository
	interventions ports.InterventionRepository
	stats         ports.StatsRepository
}

// NewAnalyticsStore builds the analytics view over the given repositories.
func NewAnalyticsStore(r *Repositories) *AnalyticsStore {
	return &AnalyticsStore{
		equipment:     r.Equipment,
		interventions: r.Interventions,
		stats:         r.Stats,
	}
}

func (s *AnalyticsStore) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *AnalyticsStore) ListCompletedInterventions(ctx context.Context) ([]domain.InterventionWithEquipment, error) {
	return s.interventions.ListCompletedWithEquipment(ctx)
}

func (s *AnalyticsStore) ListInterventionDetails(ctx context.Context) ([]domain.InterventionDetail, error) {
	return s.interventions.ListWithDetail(ctx)
}

func (s *AnalyticsStore) TotalCompletedCost(ctx context.Context) (float64, error) {
	return s.stats.TotalCompletedCost(ctx)
}

func (s *AnalyticsStore) CountInterventions(ctx context.Context) (int64, error) {
	return s.stats.CountInterventions(ctx)
}

func (s *AnalyticsStore) AverageDuration(ctx context.Context) (float64, error) {
	return s.stats.AverageDuration(ctx)
}

func (s *AnalyticsStore) TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error) {
	return s.stats.TopServicedEquipment(ctx, limit)
}

func (s *AnalyticsStore) FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error) {
	return s.stats.FrequencyByKind(ctx)
}

func (s *AnalyticsStore) CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error) {
	return s.stats.CostByEquipmentType(ctx)
}

func (s *AnalyticsStore) MonthlyCosts(ctx context.Context, year int) ([]domain.MonthlyCost, error) {
	return s.stats.MonthlyCosts(ctx, year)
}

func (s *AnalyticsStore) TechnicianPerformance(ctx context.Context) ([]domain.TechnicianPerformance, error) {
	return s.stats.TechnicianPerformance(ctx)
}

func (s *AnalyticsStore) MostRecentYear(ctx context.Context) (int, error) {
	return s.stats.MostRecentYear(ctx)
}
