package domain

// Equipment status values.
const (
	EquipmentActive      = "active"
	EquipmentMaintenance = "maintenance"
	EquipmentRetired     = "retired"
)

// Equipment represents a tracked machine or device in the fleet.
type Equipment struct {
	ID           int64
	Name         string
	Type         string
	Brand        string
	Model        string
	SerialNumber string
	AcquiredOn   string // YYYY-MM-DD
	Location     string
	UsageHours   int64
	Status       string
}

// IsActive reports whether the equipment counts toward availability.
func (e Equipment) IsActive() bool {
	return e.Status == EquipmentActive
}
