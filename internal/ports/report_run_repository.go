package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// ReportRunRepository persists the history of generated reports.
type ReportRunRepository interface {
	Create(ctx context.Context, run *domain.ReportRun) error
	List(ctx context.Context, limit int) ([]domain.ReportRun, error)
}
