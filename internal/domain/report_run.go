package domain

import "time"

// ReportRun records one execution of the weekly report job.
type ReportRun struct {
	ID                string // uuid
	GeneratedAt       time.Time
	OutputPath        string
	TotalCost         float64
	InterventionCount int64
	AlertCount        int64
}
