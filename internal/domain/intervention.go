package domain

// Intervention kinds.
const (
	KindPreventive   = "preventive"
	KindCorrective   = "corrective"
	KindInstallation = "installation"
	KindUpdate       = "update"
)

// Intervention statuses. Completed interventions feed historical and cost
// analytics; planned preventive ones feed schedule alerts.
const (
	StatusCompleted = "completed"
	StatusPlanned   = "planned"
	StatusCancelled = "cancelled"
)

// Intervention represents a single maintenance act on one equipment,
// performed by one technician.
type Intervention struct {
	ID              int64
	EquipmentID     int64
	TechnicianID    int64
	PerformedOn     string // YYYY-MM-DD
	Kind            string
	Description     string
	DurationMinutes int64
	Cost            float64
	Status          string
}

// InterventionWithEquipment is an intervention row joined with the name and
// type of the equipment it was performed on. Used by the analytics engine,
// which groups by equipment.
type InterventionWithEquipment struct {
	Intervention
	EquipmentName string
	EquipmentType string
}

// InterventionDetail is an intervention joined with both equipment and
// technician information, regardless of status.
type InterventionDetail struct {
	Intervention
	EquipmentName  string
	EquipmentType  string
	Location       string
	TechnicianName string
	Specialty      string
}
