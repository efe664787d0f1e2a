package sqlite_test

import (
	"context"
	"testing"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/ports"
)

func TestInterventionRepository_CreateAndGet(t *testing.T) {
	repos := testRepos(t)
	techID, eqID := seedFleet(t, repos)
	ctx := context.Background()

	created := seedIntervention(t, repos, eqID, techID, "2024-03-10", domain.KindCorrective, domain.StatusCompleted, 250.50)
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repos.Interventions.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatalf("expected intervention, got nil")
	}
	if got.Kind != domain.KindCorrective || got.Cost != 250.50 || got.PerformedOn != "2024-03-10" {
		t.Errorf("unexpected intervention: %+v", got)
	}

	missing, err := repos.Interventions.GetByID(ctx, 9999)
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}

func TestInterventionRepository_ListCompletedWithEquipment(t *testing.T) {
	repos := testRepos(t)
	techID, eqID := seedFleet(t, repos)
	ctx := context.Background()

	seedIntervention(t, repos, eqID, techID, "2024-02-01", domain.KindPreventive, domain.StatusCompleted, 100)
	seedIntervention(t, repos, eqID, techID, "2024-01-01", domain.KindCorrective, domain.StatusCompleted, 300)
	seedIntervention(t, repos, eqID, techID, "2024-03-01", domain.KindPreventive, domain.StatusPlanned, 0)

	got, err := repos.Interventions.ListCompletedWithEquipment(ctx)
	if err != nil {
		t.Fatalf("ListCompletedWithEquipment: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 completed rows, got %d", len(got))
	}
	// Ordered by date ascending.
	if got[0].PerformedOn != "2024-01-01" || got[1].PerformedOn != "2024-02-01" {
		t.Errorf("unexpected order: %s then %s", got[0].PerformedOn, got[1].PerformedOn)
	}
	if got[0].EquipmentName != "Lathe T-100" || got[0].EquipmentType != "lathe" {
		t.Errorf("join columns missing: %+v", got[0])
	}
}

func TestInterventionRepository_ListWithDetail(t *testing.T) {
	repos := testRepos(t)
	techID, eqID := seedFleet(t, repos)
	ctx := context.Background()

	seedIntervention(t, repos, eqID, techID, "2024-03-01", domain.KindPreventive, domain.StatusPlanned, 0)
	seedIntervention(t, repos, eqID, techID, "2024-01-01", domain.KindCorrective, domain.StatusCompleted, 300)

	got, err := repos.Interventions.ListWithDetail(ctx)
	if err != nil {
		t.Fatalf("ListWithDetail: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows regardless of status, got %d", len(got))
	}
	// Ordered by date descending.
	if got[0].PerformedOn != "2024-03-01" {
		t.Errorf("expected newest first, got %s", got[0].PerformedOn)
	}
	if got[0].TechnicianName != "Dubois" || got[0].Specialty != "mechanical" {
		t.Errorf("technician join columns missing: %+v", got[0])
	}
	if got[0].Location != "Hall A" {
		t.Errorf("equipment location missing: %+v", got[0])
	}
}

func TestInterventionRepository_Search(t *testing.T) {
	repos := testRepos(t)
	techID, eqID := seedFleet(t, repos)
	ctx := context.Background()

	other := &domain.Technician{Name: "Martin", Specialty: "electrical"}
	if err := repos.Technicians.Create(ctx, other); err != nil {
		t.Fatalf("create technician: %v", err)
	}

	seedIntervention(t, repos, eqID, techID, "2024-01-15", domain.KindCorrective, domain.StatusCompleted, 100)
	seedIntervention(t, repos, eqID, techID, "2024-02-15", domain.KindPreventive, domain.StatusCompleted, 100)
	seedIntervention(t, repos, eqID, other.ID, "2024-03-15", domain.KindCorrective, domain.StatusCompleted, 100)

	tests := []struct {
		name     string
		opts     ports.SearchInterventionsOptions
		expected int
	}{
		{"no filters", ports.SearchInterventionsOptions{}, 3},
		{"by technician", ports.SearchInterventionsOptions{TechnicianID: techID}, 2},
		{"by kind", ports.SearchInterventionsOptions{Kind: domain.KindCorrective}, 2},
		{"by date range", ports.SearchInterventionsOptions{From: "2024-02-01", To: "2024-02-28"}, 1},
		{"combined", ports.SearchInterventionsOptions{TechnicianID: techID, Kind: domain.KindCorrective}, 1},
		{"no match", ports.SearchInterventionsOptions{Kind: domain.KindInstallation}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repos.Interventions.Search(ctx, tt.opts)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != tt.expected {
				t.Errorf("expected %d rows, got %d", tt.expected, len(got))
			}
		})
	}
}
