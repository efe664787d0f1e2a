package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// TechnicianRepository provides access to technician records.
type TechnicianRepository interface {
	Create(ctx context.Context, t *domain.Technician) error
	// GetByID returns (nil, nil) when no technician matches.
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	List(ctx context.Context) ([]domain.Technician, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]domain.Technician, error)
}
