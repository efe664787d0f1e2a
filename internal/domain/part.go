package domain

// SparePart represents a stocked spare part.
type SparePart struct {
	ID             int64
	Name           string
	Reference      string
	StockQuantity  int64
	AlertThreshold int64
	UnitCost       float64
}

// BelowThreshold reports whether the part should raise a low-stock alert.
func (p SparePart) BelowThreshold() bool {
	return p.StockQuantity <= p.AlertThreshold
}

// PartUsage records the consumption of a part during an intervention.
type PartUsage struct {
	InterventionID int64
	PartID         int64
	Quantity       int64
	PartName       string
	Reference      string
	UnitCost       float64
}
