package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

type PartRepository struct {
	db *sql.DB
}

func NewPartRepository(db *sql.DB) *PartRepository {
	return &PartRepository{db: db}
}

const partColumns = `id, name, reference, stock_quantity, alert_threshold, unit_cost`

func (r *PartRepository) Create(ctx context.Context, p *domain.SparePart) error {
	query := `
		INSERT INTO spare_parts (name, reference, stock_quantity, alert_threshold, unit_cost)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Reference, p.StockQuantity, p.AlertThreshold, p.UnitCost)
	if err != nil {
		return fmt.Errorf("insert spare part: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("spare part insert id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *PartRepository) List(ctx context.Context) ([]domain.SparePart, error) {
	query := `SELECT ` + partColumns + ` FROM spare_parts ORDER BY id`
	return r.list(ctx, query)
}

func (r *PartRepository) ListBelowThreshold(ctx context.Context) ([]domain.SparePart, error) {
	query := `SELECT ` + partColumns + ` FROM spare_parts WHERE stock_quantity <= alert_threshold ORDER BY id`
	return r.list(ctx, query)
}

func (r *PartRepository) AdjustStock(ctx context.Context, id int64, delta int64) error {
	query := `UPDATE spare_parts SET stock_quantity = stock_quantity + ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// RecordUsage stores the usage row and decrements the part's stock in one
// transaction.
func (r *PartRepository) RecordUsage(ctx context.Context, interventionID, partID, quantity int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin usage tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO part_usages (intervention_id, part_id, quantity) VALUES (?, ?, ?)`,
		interventionID, partID, quantity)
	if err != nil {
		return fmt.Errorf("insert part usage: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE spare_parts SET stock_quantity = stock_quantity - ? WHERE id = ?`,
		quantity, partID)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit usage tx: %w", err)
	}
	return nil
}

func (r *PartRepository) ListUsageByIntervention(ctx context.Context, interventionID int64) ([]domain.PartUsage, error) {
	query := `
		SELECT u.intervention_id, u.part_id, u.quantity, p.name, p.reference, p.unit_cost
		FROM part_usages u
		JOIN spare_parts p ON p.id = u.part_id
		WHERE u.intervention_id = ?
		ORDER BY u.part_id
	`
	rows, err := r.db.QueryContext(ctx, query, interventionID)
	if err != nil {
		return nil, fmt.Errorf("list part usage: %w", err)
	}
	defer rows.Close()

	var usages []domain.PartUsage
	for rows.Next() {
		var u domain.PartUsage
		err := rows.Scan(&u.InterventionID, &u.PartID, &u.Quantity,
			&u.PartName, &u.Reference, &u.UnitCost)
		if err != nil {
			return nil, fmt.Errorf("scan part usage: %w", err)
		}
		usages = append(usages, u)
	}
	return usages, rows.Err()
}

func (r *PartRepository) list(ctx context.Context, query string, args ...any) ([]domain.SparePart, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()

	var parts []domain.SparePart
	for rows.Next() {
		var p domain.SparePart
		err := rows.Scan(&p.ID, &p.Name, &p.Reference,
			&p.StockQuantity, &p.AlertThreshold, &p.UnitCost)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}
