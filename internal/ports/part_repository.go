package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// PartRepository provides access to spare-part stock.
type PartRepository interface {
	Create(ctx context.Context, p *domain.SparePart) error
	List(ctx context.Context) ([]domain.SparePart, error)
	// ListBelowThreshold returns parts whose stock is at or under their
	// alert threshold.
	ListBelowThreshold(ctx context.Context) ([]domain.SparePart, error)
	// AdjustStock adds delta (possibly negative) to a part's stock quantity.
	AdjustStock(ctx context.Context, id int64, delta int64) error
	// RecordUsage stores a part usage for an intervention and decrements the
	// part's stock by the used quantity.
	RecordUsage(ctx context.Context, interventionID, partID, quantity int64) error
	ListUsageByIntervention(ctx context.Context, interventionID int64) ([]domain.PartUsage, error)
}
