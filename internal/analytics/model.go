package analytics

import "github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"

// Trend classifications for CostTrend.
const (
	TrendRising       = "rising"
	TrendFalling      = "falling"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient data"
)

// MonthCost is the completed-intervention cost of one calendar month.
type MonthCost struct {
	Month int     `json:"month"`
	Cost  float64 `json:"cost"`
}

// CostTrend compares first-half and second-half maintenance spend for one
// year. When fewer than two months carry data the trend is
// TrendInsufficient and only ByMonth is populated.
type CostTrend struct {
	Year         int         `json:"year"`
	Trend        string      `json:"trend"`
	VariationPct float64     `json:"variation_pct"`
	FirstHalf    float64     `json:"first_half_cost"`
	SecondHalf   float64     `json:"second_half_cost"`
	ByMonth      []MonthCost `json:"by_month"`
}

// ReliabilityScore is the 0-100 synthetic reliability index of one
// equipment, penalizing failures, cumulative cost, and age.
type ReliabilityScore struct {
	EquipmentID       int64   `json:"equipment_id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	AgeYears          float64 `json:"age_years"`
	InterventionCount int     `json:"intervention_count"`
	FailureCount      int     `json:"failure_count"`
	TotalCost         float64 `json:"total_cost"`
	Score             int     `json:"score"`
}

// TechnicianEfficiency summarizes the completed workload of one technician.
// Technicians with no interventions are excluded.
type TechnicianEfficiency struct {
	TechnicianID      int64   `json:"technician_id"`
	Name              string  `json:"name"`
	Specialty         string  `json:"specialty"`
	InterventionCount int64   `json:"intervention_count"`
	AverageMinutes    float64 `json:"average_minutes"`
	AverageCost       float64 `json:"average_cost"`
}

// KindRatio is the corrective/preventive split of all interventions.
type KindRatio struct {
	CorrectivePct float64 `json:"corrective_pct"`
	PreventivePct float64 `json:"preventive_pct"`
	Total         int64   `json:"total_interventions"`
}

// AdvancedKPIs bundles the composite fleet indicators.
type AdvancedKPIs struct {
	Technicians []TechnicianEfficiency `json:"technicians"`
	KindRatio   KindRatio              `json:"kind_ratio"`
	// CostPerUsageHour divides historical completed cost by the current
	// usage-hour snapshot of the whole fleet. The mismatch of timeframes is
	// a deliberate simplification.
	CostPerUsageHour      float64             `json:"cost_per_usage_hour"`
	BudgetForecast6Months float64             `json:"budget_forecast_6_months"`
	MTBF                  map[string]*float64 `json:"mtbf_days"`
}

// Alert levels, ordered by severity.
const (
	LevelCritical = "CRITIQUE"
	LevelWarning  = "ATTENTION"
	LevelInfo     = "INFO"
)

// Alert flags one equipment needing attention.
type Alert struct {
	Equipment string `json:"equipment"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// GlobalIndicators are the fleet-wide totals of the synthesis report.
type GlobalIndicators struct {
	TotalCost              float64 `json:"total_cost"`
	InterventionCount      int64   `json:"intervention_count"`
	AverageDurationMinutes float64 `json:"average_duration_minutes"`
}

// SynthesisReport assembles the engine's outputs into one structure for
// presentation and export. It introduces no computation of its own.
type SynthesisReport struct {
	Global          GlobalIndicators           `json:"global_indicators"`
	Availability    map[string]float64         `json:"availability_by_type"`
	CostTrend       CostTrend                  `json:"cost_trend"`
	TopServiced     []domain.ServicedEquipment `json:"top_serviced_equipment"`
	FrequencyByKind []domain.KindFrequency     `json:"frequency_by_kind"`
	Alerts          []Alert                    `json:"alerts"`
}
