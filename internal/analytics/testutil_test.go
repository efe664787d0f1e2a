package analytics

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// fakeRepo is an in-memory Repository. Aggregate answers are precomputed
// fields; listing methods return the slices as-is.
type fakeRepo struct {
	equipment   []domain.Equipment
	completed   []domain.InterventionWithEquipment
	details     []domain.InterventionDetail
	totalCost   float64
	count       int64
	avgDuration float64
	top         []domain.ServicedEquipment
	freq        []domain.KindFrequency
	typeCosts   []domain.TypeCostRollup
	monthly     []domain.MonthlyCost
	performance []domain.TechnicianPerformance
	recentYear  int
}

func (f *fakeRepo) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return f.equipment, nil
}

func (f *fakeRepo) ListCompletedInterventions(ctx context.Context) ([]domain.InterventionWithEquipment, error) {
	return f.completed, nil
}

func (f *fakeRepo) ListInterventionDetails(ctx context.Context) ([]domain.InterventionDetail, error) {
	return f.details, nil
}

func (f *fakeRepo) TotalCompletedCost(ctx context.Context) (float64, error) {
	return f.totalCost, nil
}

func (f *fakeRepo) CountInterventions(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeRepo) AverageDuration(ctx context.Context) (float64, error) {
	return f.avgDuration, nil
}

func (f *fakeRepo) TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error) {
	if limit < len(f.top) {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeRepo) FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error) {
	return f.freq, nil
}

func (f *fakeRepo) CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error) {
	return f.typeCosts, nil
}

func (f *fakeRepo) MonthlyCosts(ctx context.Context, year int) ([]domain.MonthlyCost, error) {
	return f.monthly, nil
}

func (f *fakeRepo) TechnicianPerformance(ctx context.Context) ([]domain.TechnicianPerformance, error) {
	return f.performance, nil
}

func (f *fakeRepo) MostRecentYear(ctx context.Context) (int, error) {
	return f.recentYear, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string) {}
func (nopLogger) Error(msg string) {}

// testRef is the fixed reference time used by every analytics test.
var testRef = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	return NewService(repo, nopLogger{}).WithClock(func() time.Time { return testRef })
}

func completedIntervention(equipmentID int64, name, kind, date string, cost float64) domain.InterventionWithEquipment {
	return domain.InterventionWithEquipment{
		Intervention: domain.Intervention{
			EquipmentID: equipmentID,
			PerformedOn: date,
			Kind:        kind,
			Cost:        cost,
			Status:      domain.StatusCompleted,
		},
		EquipmentName: name,
	}
}

func assertFloatNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > 0.0001 {
		t.Errorf("%s: expected %.6f, got %.6f", name, expected, actual)
	}
}
