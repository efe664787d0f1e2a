package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

type ReportRunRepository struct {
	db *sql.DB
}

func NewReportRunRepository(db *sql.DB) *ReportRunRepository {
	return &ReportRunRepository{db: db}
}

func (r *ReportRunRepository) Create(ctx context.Context, run *domain.ReportRun) error {
	query := `
		INSERT INTO report_runs (id, generated_at, output_path, total_cost, intervention_count, alert_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.GeneratedAt.Format(time.RFC3339), run.OutputPath,
		run.TotalCost, run.InterventionCount, run.AlertCount)
	if err != nil {
		return fmt.Errorf("insert report run: %w", err)
	}
	return nil
}

func (r *ReportRunRepository) List(ctx context.Context, limit int) ([]domain.ReportRun, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, generated_at, output_path, total_cost, intervention_count, alert_count
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list report runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ReportRun
	for rows.Next() {
		run, err := scanReportRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func scanReportRun(row rowScanner) (*domain.ReportRun, error) {
	var run domain.ReportRun
	var generatedAt string
	err := row.Scan(&run.ID, &generatedAt, &run.OutputPath,
		&run.TotalCost, &run.InterventionCount, &run.AlertCount)
	if err != nil {
		return nil, err
	}
	run.GeneratedAt, _ = time.Parse(time.RFC3339, generatedAt)
	return &run, nil
}
