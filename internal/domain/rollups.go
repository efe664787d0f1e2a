package domain

// ServicedEquipment is a grouped rollup of intervention activity for one
// equipment. Equipment with zero interventions never appears.
type ServicedEquipment struct {
	EquipmentID       int64
	Name              string
	Type              string
	Location          string
	InterventionCount int64
	TotalCost         float64
	TotalMinutes      int64
}

// KindFrequency is a grouped rollup of completed interventions by kind.
type KindFrequency struct {
	Kind            string
	Count           int64
	TotalCost       float64
	AverageCost     float64
	AverageDuration float64
}

// TypeCostRollup aggregates completed maintenance cost per equipment type.
type TypeCostRollup struct {
	Type              string
	EquipmentCount    int64
	InterventionCount int64
	TotalCost         float64
	AverageCost       float64
}

// MonthlyCost aggregates completed interventions for one calendar month.
type MonthlyCost struct {
	Month             int // 1..12
	InterventionCount int64
	TotalCost         float64
	TotalMinutes      int64
}

// TechnicianPerformance is a grouped rollup of completed interventions per
// technician. Technicians with no interventions appear with a zero count.
type TechnicianPerformance struct {
	TechnicianID      int64
	Name              string
	Specialty         string
	InterventionCount int64
	TotalMinutes      int64
	AverageMinutes    float64
	TotalValue        float64
	EquipmentServiced int64
}
