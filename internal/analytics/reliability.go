package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// ReliabilityIndex scores every equipment from 0 (replace it) to 100 (very
// reliable). Starting from 100, each corrective intervention costs 15
// points and each full 500 of cumulative maintenance cost 10 points; young
// equipment (under 2 years) gains 10, old equipment (over 5 years) loses
// 10. The result is clamped to [0,100] and truncated to an integer, then
// sorted by score descending; equal scores keep fleet order.
func (s *Service) ReliabilityIndex(ctx context.Context) ([]ReliabilityScore, error) {
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}
	interventions, err := s.repo.ListCompletedInterventions(ctx)
	if err != nil {
		return nil, err
	}

	byEquipment := make(map[int64][]domain.InterventionWithEquipment)
	for _, iv := range interventions {
		byEquipment[iv.EquipmentID] = append(byEquipment[iv.EquipmentID], iv)
	}

	ref := s.now()
	scores := make([]ReliabilityScore, 0, len(equipment))
	for _, e := range equipment {
		ivs := byEquipment[e.ID]

		failures := 0
		totalCost := 0.0
		for _, iv := range ivs {
			if iv.Kind == domain.KindCorrective {
				failures++
			}
			totalCost += iv.Cost
		}

		score := 100.0
		score -= float64(failures) * 15
		score -= math.Floor(totalCost/500) * 10

		ageYears := 0.0
		if acquired, ok := parseDate(e.AcquiredOn); ok {
			ageYears = float64(daysBetween(acquired, ref)) / 365
			if ageYears < 2 {
				score += 10
			} else if ageYears > 5 {
				score -= 10
			}
		}

		score = math.Max(0, math.Min(100, score))

		scores = append(scores, ReliabilityScore{
			EquipmentID:       e.ID,
			Name:              e.Name,
			Type:              e.Type,
			AgeYears:          round1(ageYears),
			InterventionCount: len(ivs),
			FailureCount:      failures,
			TotalCost:         round2(totalCost),
			Score:             int(score), // truncation, not rounding
		})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores, nil
}
