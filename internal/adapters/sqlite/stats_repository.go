package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// StatsRepository answers the grouped and aggregated read-only queries.
// Rounding of averages happens in SQL so every consumer sees the same
// figures.
type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) TotalCompletedCost(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(cost), 0) FROM interventions WHERE status = 'completed'`
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("total completed cost: %w", err)
	}
	return total, nil
}

func (r *StatsRepository) CountInterventions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interventions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interventions: %w", err)
	}
	return count, nil
}

func (r *StatsRepository) AverageDuration(ctx context.Context) (float64, error) {
	var avg float64
	query := `
		SELECT COALESCE(ROUND(AVG(duration_minutes), 2), 0)
		FROM interventions WHERE status = 'completed'
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average duration: %w", err)
	}
	return avg, nil
}

func (r *StatsRepository) TopServicedEquipment(ctx context.Context, limit int) ([]domain.ServicedEquipment, error) {
	// Counts interventions of every status, planned included.
	query := `
		SELECT e.id, e.name, e.type, COALESCE(e.location, ''),
		       COUNT(i.id), COALESCE(SUM(i.cost), 0), COALESCE(SUM(i.duration_minutes), 0)
		FROM equipment e
		JOIN interventions i ON i.equipment_id = e.id
		GROUP BY e.id, e.name, e.type, e.location
		ORDER BY COUNT(i.id) DESC, e.id
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top serviced equipment: %w", err)
	}
	defer rows.Close()

	var result []domain.ServicedEquipment
	for rows.Next() {
		var s domain.ServicedEquipment
		err := rows.Scan(&s.EquipmentID, &s.Name, &s.Type, &s.Location,
			&s.InterventionCount, &s.TotalCost, &s.TotalMinutes)
		if err != nil {
			return nil, fmt.Errorf("scan serviced equipment: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *StatsRepository) FrequencyByKind(ctx context.Context) ([]domain.KindFrequency, error) {
	query := `
		SELECT kind, COUNT(*), COALESCE(SUM(cost), 0),
		       COALESCE(ROUND(AVG(cost), 2), 0), COALESCE(ROUND(AVG(duration_minutes), 2), 0)
		FROM interventions
		WHERE status = 'completed'
		GROUP BY kind
		ORDER BY COUNT(*) DESC, kind
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("frequency by kind: %w", err)
	}
	defer rows.Close()

	var result []domain.KindFrequency
	for rows.Next() {
		var f domain.KindFrequency
		err := rows.Scan(&f.Kind, &f.Count, &f.TotalCost, &f.AverageCost, &f.AverageDuration)
		if err != nil {
			return nil, fmt.Errorf("scan kind frequency: %w", err)
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

func (r *StatsRepository) CostByEquipmentType(ctx context.Context) ([]domain.TypeCostRollup, error) {
	// LEFT JOIN keeps types with no completed interventions at zero.
	query := `
		SELECT e.type, COUNT(DISTINCT e.id), COUNT(i.id),
		       COALESCE(SUM(i.cost), 0), COALESCE(ROUND(AVG(i.cost), 2), 0)
		FROM equipment e
		LEFT JOIN interventions i ON i.equipment_id = e.id AND i.status = 'completed'
		GROUP BY e.type
		ORDER BY COALESCE(SUM(i.cost), 0) DESC, e.type
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("cost by equipment type: %w", err)
	}
	defer rows.Close()

	var result []domain.TypeCostRollup
	for rows.Next() {
		var t domain.TypeCostRollup
		err := rows.Scan(&t.Type, &t.EquipmentCount, &t.InterventionCount,
			&t.TotalCost, &t.AverageCost)
		if err != nil {
			return nil, fmt.Errorf("scan type cost: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *StatsRepository) MonthlyCosts(ctx context.Context, year int) ([]domain.MonthlyCost, error) {
	query := `
		SELECT CAST(strftime('%m', performed_on) AS INTEGER),
		       COUNT(*), COALESCE(SUM(cost), 0), COALESCE(SUM(duration_minutes), 0)
		FROM interventions
		WHERE status = 'completed' AND strftime('%Y', performed_on) = ?
		GROUP BY strftime('%m', performed_on)
		ORDER BY 1
	`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("%04d", year))
	if err != nil {
		return nil, fmt.Errorf("monthly costs: %w", err)
	}
	defer rows.Close()

	var result []domain.MonthlyCost
	for rows.Next() {
		var m domain.MonthlyCost
		err := rows.Scan(&m.Month, &m.InterventionCount, &m.TotalCost, &m.TotalMinutes)
		if err != nil {
			return nil, fmt.Errorf("scan monthly cost: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *StatsRepository) TechnicianPerformance(ctx context.Context) ([]domain.TechnicianPerformance, error) {
	query := `
		SELECT t.id, t.name, t.specialty,
		       COUNT(i.id), COALESCE(SUM(i.duration_minutes), 0),
		       COALESCE(ROUND(AVG(i.duration_minutes), 2), 0),
		       COALESCE(SUM(i.cost), 0), COUNT(DISTINCT i.equipment_id)
		FROM technicians t
		LEFT JOIN interventions i ON i.technician_id = t.id AND i.status = 'completed'
		GROUP BY t.id, t.name, t.specialty
		ORDER BY COUNT(i.id) DESC, t.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("technician performance: %w", err)
	}
	defer rows.Close()

	var result []domain.TechnicianPerformance
	for rows.Next() {
		var p domain.TechnicianPerformance
		err := rows.Scan(&p.TechnicianID, &p.Name, &p.Specialty,
			&p.InterventionCount, &p.TotalMinutes, &p.AverageMinutes,
			&p.TotalValue, &p.EquipmentServiced)
		if err != nil {
			return nil, fmt.Errorf("scan technician performance: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *StatsRepository) MostRecentYear(ctx context.Context) (int, error) {
	var year sql.NullInt64
	query := `
		SELECT MAX(CAST(strftime('%Y', performed_on) AS INTEGER))
		FROM interventions WHERE status = 'completed'
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&year); err != nil {
		return 0, fmt.Errorf("most recent year: %w", err)
	}
	return int(year.Int64), nil
}
