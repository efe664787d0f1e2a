package analytics

import (
	"context"
	"math"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

const dateLayout = "2006-01-02"

// Service computes the derived maintenance indicators. It holds no mutable
// state: every call re-reads its snapshot from the repository and samples
// the reference time once at entry, so concurrent calls are safe.
type Service struct {
	repo   Repository
	logger Logger
	now    func() time.Time
}

// NewService creates an analytics service reading from repo.
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service whose reference time comes from
// the given function instead of time.Now. Time-sensitive indicators (age,
// alert deadlines, MTBF windows) become deterministic for a fixed clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	clone := *s
	clone.now = now
	return &clone
}

// TotalCost returns the total cost of completed maintenance.
func (s *Service) TotalCost(ctx context.Context) (float64, error) {
	return s.repo.TotalCompletedCost(ctx)
}

// InterventionCount returns the number of interventions of every status.
func (s *Service) InterventionCount(ctx context.Context) (int64, error) {
	return s.repo.CountInterventions(ctx)
}

// AverageDuration returns the mean completed-intervention duration in
// minutes.
func (s *Service) AverageDuration(ctx context.Context) (float64, error) {
	return s.repo.AverageDuration(ctx)
}

// TopServicedEquipment returns up to limit equipment by intervention count
// descending. Equipment without interventions never appears.
func (s *Service) TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error) {
	return s.repo.TopServicedEquipment(ctx, limit)
}

// FrequencyByKind returns completed interventions grouped by kind.
func (s *Service) FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error) {
	return s.repo.FrequencyByKind(ctx)
}

// CostByEquipmentType returns completed maintenance cost grouped by
// equipment type.
func (s *Service) CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error) {
	return s.repo.CostByEquipmentType(ctx)
}

// SynthesisReport assembles the full indicator set into one structure. The
// cost trend uses the default reference year.
func (s *Service) SynthesisReport(ctx context.Context) (SynthesisReport, error) {
	s.logger.Debug("building synthesis report")

	totalCost, err := s.repo.TotalCompletedCost(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}
	count, err := s.repo.CountInterventions(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}
	avgDuration, err := s.repo.AverageDuration(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}
	availability, err := s.AvailabilityByType(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}
	trend, err := s.CostTrend(ctx, 0)
	if err != nil {
		return SynthesisReport{}, err
	}
	top, err := s.repo.TopServicedEquipment(ctx, 5)
	if err != nil {
		return SynthesisReport{}, err
	}
	freq, err := s.repo.FrequencyByKind(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}
	alerts, err := s.MaintenanceAlerts(ctx)
	if err != nil {
		return SynthesisReport{}, err
	}

	return SynthesisReport{
		Global: GlobalIndicators{
			TotalCost:              totalCost,
			InterventionCount:      count,
			AverageDurationMinutes: avgDuration,
		},
		Availability:    availability,
		CostTrend:       trend,
		TopServiced:     top,
		FrequencyByKind: freq,
		Alerts:          alerts,
	}, nil
}

// resolveYear returns the reference year for cost analytics: the most
// recent year with completed data, else the current year.
func (s *Service) resolveYear(ctx context.Context) (int, error) {
	year, err := s.repo.MostRecentYear(ctx)
	if err != nil {
		return 0, err
	}
	if year == 0 {
		year = s.now().Year()
	}
	return year, nil
}

// parseDate parses a YYYY-MM-DD record date.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysBetween returns the number of whole days from from to to, flooring
// toward minus infinity so a partial day before a deadline counts as zero
// and a partial day past it counts as overdue.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
