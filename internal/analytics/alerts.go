package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// Alert rule thresholds.
const (
	highUsageHours     = 2000
	staleAfterDays     = 180
	failureWindowDays  = 180
	failureClusterSize = 2
	highCostThreshold  = 1000
)

var levelPrecedence = map[string]int{
	LevelCritical: 0,
	LevelWarning:  1,
	LevelInfo:     2,
}

// MaintenanceAlerts evaluates the alert rules over the whole fleet and
// returns the alerts sorted by severity. Rules are independent: one
// equipment may raise several alerts. Within a severity level, schedule
// alerts come first, then per-equipment alerts in fleet order.
func (s *Service) MaintenanceAlerts(ctx context.Context) ([]Alert, error) {
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.ListCompletedInterventions(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.repo.ListInterventionDetails(ctx)
	if err != nil {
		return nil, err
	}

	ref := s.now()
	alerts := []Alert{}

	// Scheduled preventive maintenance: due within a week, or overdue.
	// Unparseable planned dates are skipped rather than surfaced.
	for _, iv := range all {
		if iv.Kind != domain.KindPreventive || iv.Status != domain.StatusPlanned {
			continue
		}
		planned, ok := parseDate(iv.PerformedOn)
		if !ok {
			continue
		}

		remaining := daysBetween(ref, planned) + 1 // today counts
		if remaining >= 0 && remaining <= 7 {
			alerts = append(alerts, Alert{
				Equipment: iv.EquipmentName,
				Level:     LevelInfo,
				Message:   fmt.Sprintf("Preventive maintenance scheduled on %s (in %d days)", iv.PerformedOn, remaining),
			})
		} else if remaining < 0 {
			alerts = append(alerts, Alert{
				Equipment: iv.EquipmentName,
				Level:     LevelWarning,
				Message:   fmt.Sprintf("Preventive maintenance overdue by %d days (scheduled on %s)", -remaining, iv.PerformedOn),
			})
		}
	}

	byEquipment := make(map[int64][]domain.InterventionWithEquipment)
	for _, iv := range completed {
		byEquipment[iv.EquipmentID] = append(byEquipment[iv.EquipmentID], iv)
	}

	for _, e := range equipment {
		if e.UsageHours > highUsageHours {
			alerts = append(alerts, Alert{
				Equipment: e.Name,
				Level:     LevelWarning,
				Message:   fmt.Sprintf("High usage: %d hours (> %dh)", e.UsageHours, highUsageHours),
			})
		}

		ivs := byEquipment[e.ID]
		if len(ivs) == 0 {
			alerts = append(alerts, Alert{
				Equipment: e.Name,
				Level:     LevelInfo,
				Message:   "No intervention recorded - check whether preventive maintenance is needed",
			})
			continue
		}

		if last, ok := lastInterventionDate(ivs); ok {
			if since := daysBetween(last, ref); since > staleAfterDays {
				alerts = append(alerts, Alert{
					Equipment: e.Name,
					Level:     LevelWarning,
					Message:   fmt.Sprintf("No maintenance for %d days", since),
				})
			}
		}

		cutoff := ref.AddDate(0, 0, -failureWindowDays)
		recentFailures := 0
		totalCost := 0.0
		for _, iv := range ivs {
			totalCost += iv.Cost
			if iv.Kind != domain.KindCorrective {
				continue
			}
			if d, ok := parseDate(iv.PerformedOn); ok && !d.Before(cutoff) {
				recentFailures++
			}
		}

		if recentFailures >= failureClusterSize {
			alerts = append(alerts, Alert{
				Equipment: e.Name,
				Level:     LevelCritical,
				Message:   fmt.Sprintf("%d failures in the last 6 months - consider replacement", recentFailures),
			})
		}

		if totalCost > highCostThreshold {
			alerts = append(alerts, Alert{
				Equipment: e.Name,
				Level:     LevelWarning,
				Message:   fmt.Sprintf("High maintenance cost: %.2f", totalCost),
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alertRank(alerts[i].Level) < alertRank(alerts[j].Level)
	})
	return alerts, nil
}

func alertRank(level string) int {
	if rank, ok := levelPrecedence[level]; ok {
		return rank
	}
	return len(levelPrecedence)
}

// lastInterventionDate returns the most recent parseable date of ivs.
func lastInterventionDate(ivs []domain.InterventionWithEquipment) (time.Time, bool) {
	var last time.Time
	found := false
	for _, iv := range ivs {
		d, ok := parseDate(iv.PerformedOn)
		if !ok {
			continue
		}
		if !found || d.After(last) {
			last = d
			found = true
		}
	}
	return last, found
}
