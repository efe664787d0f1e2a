package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// SearchInterventionsOptions narrows an intervention search. Zero values
// mean "no filter". Dates are YYYY-MM-DD strings compared lexically.
type SearchInterventionsOptions struct {
	TechnicianID int64
	Kind         string
	From         string
	To           string
}

// InterventionRepository provides access to intervention records.
type InterventionRepository interface {
	Create(ctx context.Context, iv *domain.Intervention) error
	// GetByID returns (nil, nil) when no intervention matches.
	GetByID(ctx context.Context, id int64) (*domain.Intervention, error)

	// ListCompletedWithEquipment returns completed interventions joined with
	// equipment name and type, ordered by date ascending. This is the raw
	// input for the analytics engine.
	ListCompletedWithEquipment(ctx context.Context) ([]domain.InterventionWithEquipment, error)

	// ListWithDetail returns all interventions regardless of status, joined
	// with equipment and technician information, ordered by date descending.
	ListWithDetail(ctx context.Context) ([]domain.InterventionDetail, error)

	// Search returns interventions with detail matching the given filters,
	// ordered by date descending.
	Search(ctx context.Context, opts SearchInterventionsOptions) ([]domain.InterventionDetail, error)
}
