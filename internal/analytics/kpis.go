package analytics

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// AdvancedKPIs computes the composite fleet indicators: per-technician
// efficiency, the corrective/preventive split, cost per fleet usage hour,
// a six-month budget forecast, and the MTBF map.
func (s *Service) AdvancedKPIs(ctx context.Context) (AdvancedKPIs, error) {
	s.logger.Debug("computing advanced KPIs")

	perf, err := s.repo.TechnicianPerformance(ctx)
	if err != nil {
		return AdvancedKPIs{}, err
	}

	technicians := make([]TechnicianEfficiency, 0, len(perf))
	for _, p := range perf {
		if p.InterventionCount == 0 {
			continue
		}
		technicians = append(technicians, TechnicianEfficiency{
			TechnicianID:      p.TechnicianID,
			Name:              p.Name,
			Specialty:         p.Specialty,
			InterventionCount: p.InterventionCount,
			AverageMinutes:    round1(p.AverageMinutes),
			AverageCost:       round2(p.TotalValue / float64(p.InterventionCount)),
		})
	}

	freq, err := s.repo.FrequencyByKind(ctx)
	if err != nil {
		return AdvancedKPIs{}, err
	}
	ratio := kindRatio(freq)

	costPerHour, err := s.costPerUsageHour(ctx)
	if err != nil {
		return AdvancedKPIs{}, err
	}

	forecast, err := s.budgetForecast(ctx)
	if err != nil {
		return AdvancedKPIs{}, err
	}

	mtbf, err := s.MTBFPerEquipment(ctx)
	if err != nil {
		return AdvancedKPIs{}, err
	}

	return AdvancedKPIs{
		Technicians:           technicians,
		KindRatio:             ratio,
		CostPerUsageHour:      costPerHour,
		BudgetForecast6Months: forecast,
		MTBF:                  mtbf,
	}, nil
}

func kindRatio(freq []domain.KindFrequency) KindRatio {
	var total, corrective, preventive int64
	for _, f := range freq {
		total += f.Count
		switch f.Kind {
		case domain.KindCorrective:
			corrective = f.Count
		case domain.KindPreventive:
			preventive = f.Count
		}
	}

	if total == 0 {
		return KindRatio{}
	}
	return KindRatio{
		CorrectivePct: round1(float64(corrective) / float64(total) * 100),
		PreventivePct: round1(float64(preventive) / float64(total) * 100),
		Total:         total,
	}
}

// costPerUsageHour divides total completed cost by the fleet's current
// usage-hour snapshot. Zero when the fleet has no recorded hours.
func (s *Service) costPerUsageHour(ctx context.Context) (float64, error) {
	totalCost, err := s.repo.TotalCompletedCost(ctx)
	if err != nil {
		return 0, err
	}
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return 0, err
	}

	var totalHours int64
	for _, e := range equipment {
		totalHours += e.UsageHours
	}
	if totalHours == 0 {
		return 0, nil
	}
	return round4(totalCost / float64(totalHours)), nil
}

// budgetForecast projects the next six months of maintenance spend from
// the reference year's monthly average, with a 10% safety margin. The
// margin applies to the already-rounded six-month base; the order matters
// for matching historical report figures.
func (s *Service) budgetForecast(ctx context.Context) (float64, error) {
	year, err := s.resolveYear(ctx)
	if err != nil {
		return 0, err
	}
	months, err := s.repo.MonthlyCosts(ctx, year)
	if err != nil {
		return 0, err
	}
	if len(months) == 0 {
		return 0, nil
	}

	var total float64
	for _, m := range months {
		total += m.TotalCost
	}
	avg := total / float64(len(months))
	base := round2(avg * 6)
	return round2(base * 1.1), nil
}
