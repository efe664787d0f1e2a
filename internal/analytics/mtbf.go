package analytics

import (
	"context"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// MTBFPerEquipment computes the mean time between failures, in days, for
// every equipment with completed interventions. The value is nil when the
// equipment has fewer than two corrective interventions (a single failure
// bounds no interval) or when all its interventions fall on the same day.
//
// The observation period spans the full intervention history of the
// equipment, not only the corrective subset. That matches the historical
// formula this replaces; see DESIGN.md before changing it.
func (s *Service) MTBFPerEquipment(ctx context.Context) (map[string]*float64, error) {
	interventions, err := s.repo.ListCompletedInterventions(ctx)
	if err != nil {
		return nil, err
	}

	byEquipment := make(map[string][]domain.InterventionWithEquipment)
	for _, iv := range interventions {
		byEquipment[iv.EquipmentName] = append(byEquipment[iv.EquipmentName], iv)
	}

	results := make(map[string]*float64, len(byEquipment))
	for name, ivs := range byEquipment {
		failures := 0
		for _, iv := range ivs {
			if iv.Kind == domain.KindCorrective {
				failures++
			}
		}
		if failures < 2 {
			results[name] = nil
			continue
		}

		first, last, ok := interventionDateRange(ivs)
		if !ok {
			results[name] = nil
			continue
		}

		period := daysBetween(first, last)
		if period <= 0 {
			results[name] = nil
			continue
		}

		mtbf := round1(float64(period) / float64(failures))
		results[name] = &mtbf
	}
	return results, nil
}

// interventionDateRange returns the earliest and latest parseable dates of
// the given interventions. ok is false when no date parses.
func interventionDateRange(ivs []domain.InterventionWithEquipment) (first, last time.Time, ok bool) {
	for _, iv := range ivs {
		d, valid := parseDate(iv.PerformedOn)
		if !valid {
			continue
		}
		if !ok {
			first, last, ok = d, d, true
			continue
		}
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	return first, last, ok
}
