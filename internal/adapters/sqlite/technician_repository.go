package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/util"
)

type TechnicianRepository struct {
	db *sql.DB
}

func NewTechnicianRepository(db *sql.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *domain.Technician) error {
	query := `INSERT INTO technicians (name, specialty, email, hired_on) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Specialty, util.NullString(t.Email), util.NullString(t.HiredOn))
	if err != nil {
		return fmt.Errorf("insert technician: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("technician insert id: %w", err)
	}
	t.ID = id
	return nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	query := `SELECT id, name, specialty, email, hired_on FROM technicians WHERE id = ?`
	t, err := scanTechnician(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get technician: %w", err)
	}
	return t, nil
}

func (r *TechnicianRepository) List(ctx context.Context) ([]domain.Technician, error) {
	query := `SELECT id, name, specialty, email, hired_on FROM technicians ORDER BY name, id`
	return r.list(ctx, query)
}

func (r *TechnicianRepository) ListBySpecialty(ctx context.Context, specialty string) ([]domain.Technician, error) {
	query := `SELECT id, name, specialty, email, hired_on FROM technicians WHERE specialty = ? ORDER BY name, id`
	return r.list(ctx, query, specialty)
}

func (r *TechnicianRepository) list(ctx context.Context, query string, args ...any) ([]domain.Technician, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer rows.Close()

	var technicians []domain.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		technicians = append(technicians, *t)
	}
	return technicians, rows.Err()
}

func scanTechnician(row rowScanner) (*domain.Technician, error) {
	var t domain.Technician
	var email, hiredOn sql.NullString
	if err := row.Scan(&t.ID, &t.Name, &t.Specialty, &email, &hiredOn); err != nil {
		return nil, err
	}
	t.Email = email.String
	t.HiredOn = hiredOn.String
	return &t, nil
}
