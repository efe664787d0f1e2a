package stock

import (
	"context"
	"fmt"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

// Status is a snapshot of the spare-part inventory.
type Status struct {
	Parts    []domain.SparePart `json:"parts"`
	LowStock []domain.SparePart `json:"low_stock"`
	Alerts   []string           `json:"alerts"`
}

// Service answers stock questions over the part repository.
type Service struct {
	parts ports.PartRepository
}

func NewService(parts ports.PartRepository) *Service {
	return &Service{parts: parts}
}

// Status returns the full inventory with the low-stock subset and one alert
// message per part at or under its threshold.
func (s *Service) Status(ctx context.Context) (Status, error) {
	parts, err := s.parts.List(ctx)
	if err != nil {
		return Status{}, err
	}
	low, err := s.parts.ListBelowThreshold(ctx)
	if err != nil {
		return Status{}, err
	}

	alerts := make([]string, 0, len(low))
	for _, p := range low {
		alerts = append(alerts, fmt.Sprintf("LOW STOCK: %s (%s) at %d, threshold %d",
			p.Name, p.Reference, p.StockQuantity, p.AlertThreshold))
	}

	return Status{Parts: parts, LowStock: low, Alerts: alerts}, nil
}

// Consume records the use of a part during an intervention and reports
// whether the part dropped to or under its alert threshold.
func (s *Service) Consume(ctx context.Context, interventionID, partID, quantity int64) (lowStock bool, err error) {
	if quantity <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if err := s.parts.RecordUsage(ctx, interventionID, partID, quantity); err != nil {
		return false, err
	}

	low, err := s.parts.ListBelowThreshold(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range low {
		if p.ID == partID {
			return true, nil
		}
	}
	return false, nil
}
