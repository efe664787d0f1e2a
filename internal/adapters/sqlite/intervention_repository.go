package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/util"
)

type InterventionRepository struct {
	db *sql.DB
}

func NewInterventionRepository(db *sql.DB) *InterventionRepository {
	return &InterventionRepository{db: db}
}

const interventionColumns = `id, equipment_id, technician_id, performed_on, kind, description, duration_minutes, cost, status`

func (r *InterventionRepository) Create(ctx context.Context, iv *domain.Intervention) error {
	query := `
		INSERT INTO interventions (equipment_id, technician_id, performed_on, kind, description, duration_minutes, cost, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		iv.EquipmentID, iv.TechnicianID, iv.PerformedOn, iv.Kind,
		util.NullString(iv.Description), iv.DurationMinutes, iv.Cost, iv.Status,
	)
	if err != nil {
		return fmt.Errorf("insert intervention: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("intervention insert id: %w", err)
	}
	iv.ID = id
	return nil
}

func (r *InterventionRepository) GetByID(ctx context.Context, id int64) (*domain.Intervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM interventions WHERE id = ?`
	iv, err := scanIntervention(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get intervention: %w", err)
	}
	return iv, nil
}

func (r *InterventionRepository) ListCompletedWithEquipment(ctx context.Context) ([]domain.InterventionWithEquipment, error) {
	query := `
		SELECT i.id, i.equipment_id, i.technician_id, i.performed_on, i.kind,
		       i.description, i.duration_minutes, i.cost, i.status,
		       e.name, e.type
		FROM interventions i
		JOIN equipment e ON e.id = i.equipment_id
		WHERE i.status = 'completed'
		ORDER BY i.performed_on, i.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list completed interventions: %w", err)
	}
	defer rows.Close()

	var result []domain.InterventionWithEquipment
	for rows.Next() {
		var iv domain.InterventionWithEquipment
		var description sql.NullString
		err := rows.Scan(&iv.ID, &iv.EquipmentID, &iv.TechnicianID, &iv.PerformedOn,
			&iv.Kind, &description, &iv.DurationMinutes, &iv.Cost, &iv.Status,
			&iv.EquipmentName, &iv.EquipmentType)
		if err != nil {
			return nil, fmt.Errorf("scan completed intervention: %w", err)
		}
		iv.Description = description.String
		result = append(result, iv)
	}
	return result, rows.Err()
}

func (r *InterventionRepository) ListWithDetail(ctx context.Context) ([]domain.InterventionDetail, error) {
	query := detailQuery + ` ORDER BY i.performed_on DESC, i.id DESC`
	return r.listDetail(ctx, query)
}

func (r *InterventionRepository) Search(ctx context.Context, opts ports.SearchInterventionsOptions) ([]domain.InterventionDetail, error) {
	query := detailQuery + ` WHERE 1=1`
	var args []any

	if opts.TechnicianID != 0 {
		query += ` AND i.technician_id = ?`
		args = append(args, opts.TechnicianID)
	}
	if opts.Kind != "" {
		query += ` AND i.kind = ?`
		args = append(args, opts.Kind)
	}
	if opts.From != "" {
		query += ` AND i.performed_on >= ?`
		args = append(args, opts.From)
	}
	if opts.To != "" {
		query += ` AND i.performed_on <= ?`
		args = append(args, opts.To)
	}

	query += ` ORDER BY i.performed_on DESC, i.id DESC`
	return r.listDetail(ctx, query, args...)
}

const detailQuery = `
	SELECT i.id, i.equipment_id, i.technician_id, i.performed_on, i.kind,
	       i.description, i.duration_minutes, i.cost, i.status,
	       e.name, e.type, e.location,
	       t.name, t.specialty
	FROM interventions i
	JOIN equipment e ON e.id = i.equipment_id
	JOIN technicians t ON t.id = i.technician_id
`

func (r *InterventionRepository) listDetail(ctx context.Context, query string, args ...any) ([]domain.InterventionDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list intervention detail: %w", err)
	}
	defer rows.Close()

	var result []domain.InterventionDetail
	for rows.Next() {
		var d domain.InterventionDetail
		var description, location sql.NullString
		err := rows.Scan(&d.ID, &d.EquipmentID, &d.TechnicianID, &d.PerformedOn,
			&d.Kind, &description, &d.DurationMinutes, &d.Cost, &d.Status,
			&d.EquipmentName, &d.EquipmentType, &location,
			&d.TechnicianName, &d.Specialty)
		if err != nil {
			return nil, fmt.Errorf("scan intervention detail: %w", err)
		}
		d.Description = description.String
		d.Location = location.String
		result = append(result, d)
	}
	return result, rows.Err()
}

func scanIntervention(row rowScanner) (*domain.Intervention, error) {
	var iv domain.Intervention
	var description sql.NullString
	err := row.Scan(&iv.ID, &iv.EquipmentID, &iv.TechnicianID, &iv.PerformedOn,
		&iv.Kind, &description, &iv.DurationMinutes, &iv.Cost, &iv.Status)
	if err != nil {
		return nil, err
	}
	iv.Description = description.String
	return &iv, nil
}
