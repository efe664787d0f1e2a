package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/util"
)

type EquipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

const equipmentColumns = `id, name, type, brand, model, serial_number, acquired_on, location, usage_hours, status`

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `
		INSERT INTO equipment (name, type, brand, model, serial_number, acquired_on, location, usage_hours, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.Type, util.NullString(e.Brand), util.NullString(e.Model), util.NullString(e.SerialNumber),
		e.AcquiredOn, util.NullString(e.Location), e.UsageHours, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("equipment insert id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = ?`
	e, err := scanEquipment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name, id`
	return r.list(ctx, query)
}

func (r *EquipmentRepository) ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE type = ? ORDER BY name, id`
	return r.list(ctx, query, equipmentType)
}

func (r *EquipmentRepository) ListByStatus(ctx context.Context, status string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE status = ? ORDER BY name, id`
	return r.list(ctx, query, status)
}

func (r *EquipmentRepository) UpdateUsageHours(ctx context.Context, id int64, hours int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE equipment SET usage_hours = ? WHERE id = ?`, hours, id)
	if err != nil {
		return fmt.Errorf("update usage hours: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE equipment SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var e domain.Equipment
	var brand, model, serial, location sql.NullString
	err := row.Scan(&e.ID, &e.Name, &e.Type, &brand, &model, &serial,
		&e.AcquiredOn, &location, &e.UsageHours, &e.Status)
	if err != nil {
		return nil, err
	}
	e.Brand = brand.String
	e.Model = model.String
	e.SerialNumber = serial.String
	e.Location = location.String
	return &e, nil
}
