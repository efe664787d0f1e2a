package ports

import (
	"context"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

// EquipmentRepository provides access to equipment records.
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	// GetByID returns (nil, nil) when no equipment matches.
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Equipment, error)
	UpdateUsageHours(ctx context.Context, id int64, hours int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}
