package domain

// Technician represents a maintenance technician.
type Technician struct {
	ID        int64
	Name      string
	Specialty string
	Email     string
	HiredOn   string // YYYY-MM-DD
}
