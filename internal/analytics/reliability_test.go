package analytics

import (
	"context"
	"testing"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

func TestReliabilityIndex(t *testing.T) {
	equipment := []domain.Equipment{
		// No history, under 2 years old: 100 + 10 clamps back to 100.
		{ID: 1, Name: "New Lathe", Type: "lathe", AcquiredOn: "2023-07-01", Status: domain.EquipmentActive},
		// 2 failures and 1200 total cost: 100 - 30 - 20 = 50, no age adjustment.
		{ID: 2, Name: "Mid Press", Type: "press", AcquiredOn: "2021-06-15", Status: domain.EquipmentActive},
		// Old and failure-heavy: floor at 0.
		{ID: 3, Name: "Old Drill", Type: "drill", AcquiredOn: "2015-01-01", Status: domain.EquipmentActive},
	}
	completed := []domain.InterventionWithEquipment{
		completedIntervention(2, "Mid Press", domain.KindCorrective, "2024-01-10", 700),
		completedIntervention(2, "Mid Press", domain.KindCorrective, "2024-03-10", 500),
		completedIntervention(3, "Old Drill", domain.KindCorrective, "2024-01-01", 600),
		completedIntervention(3, "Old Drill", domain.KindCorrective, "2024-02-01", 600),
		completedIntervention(3, "Old Drill", domain.KindCorrective, "2024-03-01", 600),
		completedIntervention(3, "Old Drill", domain.KindCorrective, "2024-04-01", 600),
		completedIntervention(3, "Old Drill", domain.KindCorrective, "2024-05-01", 600),
	}

	svc := newTestService(t, &fakeRepo{equipment: equipment, completed: completed})
	got, err := svc.ReliabilityIndex(context.Background())
	if err != nil {
		t.Fatalf("ReliabilityIndex: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(got))
	}

	byName := make(map[string]ReliabilityScore)
	for _, s := range got {
		byName[s.Name] = s
	}

	if s := byName["New Lathe"].Score; s != 100 {
		t.Errorf("New Lathe: expected 100, got %d", s)
	}
	if s := byName["Mid Press"].Score; s != 50 {
		t.Errorf("Mid Press: expected 50, got %d", s)
	}
	if s := byName["Old Drill"].Score; s != 0 {
		t.Errorf("Old Drill: expected clamp at 0, got %d", s)
	}

	if byName["Mid Press"].FailureCount != 2 {
		t.Errorf("Mid Press: expected 2 failures, got %d", byName["Mid Press"].FailureCount)
	}
	assertFloatNear(t, "Mid Press total cost", 1200, byName["Mid Press"].TotalCost)

	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("scores not sorted descending: %d before %d", got[i-1].Score, got[i].Score)
		}
	}
}

func TestReliabilityIndex_UnparseableAcquisitionDate(t *testing.T) {
	equipment := []domain.Equipment{
		{ID: 1, Name: "Mystery", Type: "misc", AcquiredOn: "unknown", Status: domain.EquipmentActive},
	}
	svc := newTestService(t, &fakeRepo{equipment: equipment})

	got, err := svc.ReliabilityIndex(context.Background())
	if err != nil {
		t.Fatalf("ReliabilityIndex: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 score, got %d", len(got))
	}
	// No age bonus or penalty when the acquisition date cannot be read.
	if got[0].Score != 100 {
		t.Errorf("expected 100, got %d", got[0].Score)
	}
	if got[0].AgeYears != 0 {
		t.Errorf("expected zero age, got %.1f", got[0].AgeYears)
	}
}

func TestReliabilityIndex_StableOrderOnTies(t *testing.T) {
	equipment := []domain.Equipment{
		{ID: 1, Name: "A", Type: "x", AcquiredOn: "2021-01-01", Status: domain.EquipmentActive},
		{ID: 2, Name: "B", Type: "x", AcquiredOn: "2021-01-01", Status: domain.EquipmentActive},
	}
	svc := newTestService(t, &fakeRepo{equipment: equipment})

	got, err := svc.ReliabilityIndex(context.Background())
	if err != nil {
		t.Fatalf("ReliabilityIndex: %v", err)
	}
	if got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("tied scores should keep fleet order, got %s then %s", got[0].Name, got[1].Name)
	}
}
