package analytics

import (
	"context"
	"sort"
)

// CostTrend analyzes the monthly spend of one year. Pass year 0 to use the
// default reference year (most recent year with data, else current year).
//
// With data in at least two distinct months, the year splits into halves
// (months 1-6 and 7-12) and the variation between them classifies the
// trend: above +10% rising, below -10% falling, stable in between. When
// the first half is empty the variation is pinned to 100 (or 0 when the
// second half is empty too).
func (s *Service) CostTrend(ctx context.Context, year int) (CostTrend, error) {
	if year == 0 {
		resolved, err := s.resolveYear(ctx)
		if err != nil {
			return CostTrend{}, err
		}
		year = resolved
	}

	interventions, err := s.repo.ListCompletedInterventions(ctx)
	if err != nil {
		return CostTrend{}, err
	}

	costByMonth := make(map[int]float64)
	for _, iv := range interventions {
		d, ok := parseDate(iv.PerformedOn)
		if !ok || d.Year() != year {
			continue
		}
		costByMonth[int(d.Month())] += iv.Cost
	}

	months := make([]MonthCost, 0, len(costByMonth))
	for m, cost := range costByMonth {
		months = append(months, MonthCost{Month: m, Cost: round2(cost)})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	if len(costByMonth) < 2 {
		return CostTrend{
			Year:    year,
			Trend:   TrendInsufficient,
			ByMonth: months,
		}, nil
	}

	var s1, s2 float64
	for m, cost := range costByMonth {
		if m <= 6 {
			s1 += cost
		} else {
			s2 += cost
		}
	}

	var variation float64
	switch {
	case s1 > 0:
		variation = (s2 - s1) / s1 * 100
	case s2 > 0:
		variation = 100
	default:
		variation = 0
	}

	trend := TrendStable
	if variation > 10 {
		trend = TrendRising
	} else if variation < -10 {
		trend = TrendFalling
	}

	return CostTrend{
		Year:         year,
		Trend:        trend,
		VariationPct: round2(variation),
		FirstHalf:    round2(s1),
		SecondHalf:   round2(s2),
		ByMonth:      months,
	}, nil
}
