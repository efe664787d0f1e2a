package analytics

import "context"

// AvailabilityByType computes, for each equipment type, the percentage of
// equipment currently active: active/total*100, rounded to 2 decimals.
// Returns an empty map when the fleet is empty. Types without equipment
// cannot appear since grouping only creates entries from existing records.
func (s *Service) AvailabilityByType(ctx context.Context) (map[string]float64, error) {
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	type typeCount struct {
		total  int
		active int
	}

	counts := make(map[string]*typeCount)
	for _, e := range equipment {
		c := counts[e.Type]
		if c == nil {
			c = &typeCount{}
			counts[e.Type] = c
		}
		c.total++
		if e.IsActive() {
			c.active++
		}
	}

	rates := make(map[string]float64, len(counts))
	for t, c := range counts {
		rates[t] = round2(float64(c.active) / float64(c.total) * 100)
	}
	return rates, nil
}
