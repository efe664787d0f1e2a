package analytics

import (
	"context"
	"strings"
	"testing"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

func plannedPreventive(name, date string) domain.InterventionDetail {
	return domain.InterventionDetail{
		Intervention: domain.Intervention{
			PerformedOn: date,
			Kind:        domain.KindPreventive,
			Status:      domain.StatusPlanned,
		},
		EquipmentName: name,
	}
}

func findAlert(alerts []Alert, equipment, fragment string) *Alert {
	for i := range alerts {
		if alerts[i].Equipment == equipment && strings.Contains(alerts[i].Message, fragment) {
			return &alerts[i]
		}
	}
	return nil
}

func TestMaintenanceAlerts_ScheduledPreventive(t *testing.T) {
	// Reference time is 2024-06-15.
	repo := &fakeRepo{
		details: []domain.InterventionDetail{
			plannedPreventive("Lathe", "2024-06-18"),  // 3 days out
			plannedPreventive("Press", "2024-06-10"),  // 5 days overdue
			plannedPreventive("Drill", "2024-07-20"),  // too far out, no alert
			plannedPreventive("Pump", "not-a-date"),   // skipped
			plannedPreventive("Saw", "2024-06-15"),    // due today
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.MaintenanceAlerts(context.Background())
	if err != nil {
		t.Fatalf("MaintenanceAlerts: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 alerts, got %d: %+v", len(got), got)
	}

	due := findAlert(got, "Lathe", "in 3 days")
	if due == nil || due.Level != LevelInfo {
		t.Errorf("expected INFO due-soon alert for Lathe, got %+v", due)
	}
	overdue := findAlert(got, "Press", "overdue by 5 days")
	if overdue == nil || overdue.Level != LevelWarning {
		t.Errorf("expected ATTENTION overdue alert for Press, got %+v", overdue)
	}
	today := findAlert(got, "Saw", "in 0 days")
	if today == nil || today.Level != LevelInfo {
		t.Errorf("expected INFO same-day alert for Saw, got %+v", today)
	}
}

func TestMaintenanceAlerts_EquipmentRules(t *testing.T) {
	repo := &fakeRepo{
		equipment: []domain.Equipment{
			{ID: 1, Name: "Worn Lathe", Type: "lathe", UsageHours: 2500, Status: domain.EquipmentActive},
			{ID: 2, Name: "Fresh Press", Type: "press", UsageHours: 100, Status: domain.EquipmentActive},
			{ID: 3, Name: "Stale Drill", Type: "drill", UsageHours: 300, Status: domain.EquipmentActive},
			{ID: 4, Name: "Breaking Pump", Type: "pump", UsageHours: 400, Status: domain.EquipmentActive},
			{ID: 5, Name: "Costly Saw", Type: "saw", UsageHours: 500, Status: domain.EquipmentActive},
		},
		completed: []domain.InterventionWithEquipment{
			completedIntervention(1, "Worn Lathe", domain.KindPreventive, "2024-06-01", 50),
			// Last touched well over 180 days before the reference time.
			completedIntervention(3, "Stale Drill", domain.KindPreventive, "2023-09-01", 80),
			// Two failures inside the trailing 180 days.
			completedIntervention(4, "Breaking Pump", domain.KindCorrective, "2024-03-01", 200),
			completedIntervention(4, "Breaking Pump", domain.KindCorrective, "2024-05-01", 250),
			completedIntervention(5, "Costly Saw", domain.KindPreventive, "2024-04-01", 1200.50),
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.MaintenanceAlerts(context.Background())
	if err != nil {
		t.Fatalf("MaintenanceAlerts: %v", err)
	}

	usage := findAlert(got, "Worn Lathe", "High usage: 2500 hours")
	if usage == nil || usage.Level != LevelWarning {
		t.Errorf("expected ATTENTION high-usage alert, got %+v", usage)
	}

	noHistory := findAlert(got, "Fresh Press", "No intervention recorded")
	if noHistory == nil || noHistory.Level != LevelInfo {
		t.Errorf("expected INFO no-history alert, got %+v", noHistory)
	}
	for _, a := range got {
		if a.Equipment == "Fresh Press" && a.Level != LevelInfo {
			t.Errorf("no-history equipment must not trigger other rules: %+v", a)
		}
	}

	stale := findAlert(got, "Stale Drill", "No maintenance for")
	if stale == nil || stale.Level != LevelWarning {
		t.Errorf("expected ATTENTION stale alert, got %+v", stale)
	}

	failing := findAlert(got, "Breaking Pump", "2 failures in the last 6 months")
	if failing == nil || failing.Level != LevelCritical {
		t.Errorf("expected CRITIQUE repeated-failure alert, got %+v", failing)
	}

	costly := findAlert(got, "Costly Saw", "High maintenance cost: 1200.50")
	if costly == nil || costly.Level != LevelWarning {
		t.Errorf("expected ATTENTION high-cost alert, got %+v", costly)
	}
}

func TestMaintenanceAlerts_SeverityOrdering(t *testing.T) {
	repo := &fakeRepo{
		equipment: []domain.Equipment{
			{ID: 1, Name: "Quiet", Type: "misc", Status: domain.EquipmentActive},
			{ID: 2, Name: "Failing", Type: "misc", UsageHours: 3000, Status: domain.EquipmentActive},
		},
		completed: []domain.InterventionWithEquipment{
			completedIntervention(2, "Failing", domain.KindCorrective, "2024-04-01", 100),
			completedIntervention(2, "Failing", domain.KindCorrective, "2024-05-01", 100),
		},
		details: []domain.InterventionDetail{
			plannedPreventive("Quiet", "2024-06-16"),
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.MaintenanceAlerts(context.Background())
	if err != nil {
		t.Fatalf("MaintenanceAlerts: %v", err)
	}
	if len(got) < 4 {
		t.Fatalf("expected at least 4 alerts, got %d", len(got))
	}

	lastRank := -1
	for _, a := range got {
		rank := alertRank(a.Level)
		if rank < lastRank {
			t.Fatalf("alerts out of severity order: %+v", got)
		}
		lastRank = rank
	}
	if got[0].Level != LevelCritical {
		t.Errorf("expected CRITIQUE first, got %s", got[0].Level)
	}
	if got[len(got)-1].Level != LevelInfo {
		t.Errorf("expected INFO last, got %s", got[len(got)-1].Level)
	}
}

func TestMaintenanceAlerts_MultipleAlertsPerEquipment(t *testing.T) {
	repo := &fakeRepo{
		equipment: []domain.Equipment{
			{ID: 1, Name: "Wreck", Type: "misc", UsageHours: 5000, Status: domain.EquipmentActive},
		},
		completed: []domain.InterventionWithEquipment{
			completedIntervention(1, "Wreck", domain.KindCorrective, "2024-03-15", 800),
			completedIntervention(1, "Wreck", domain.KindCorrective, "2024-05-15", 900),
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.MaintenanceAlerts(context.Background())
	if err != nil {
		t.Fatalf("MaintenanceAlerts: %v", err)
	}
	// High usage, repeated failures, and high cost all fire independently.
	if len(got) != 3 {
		t.Fatalf("expected 3 alerts for one equipment, got %d: %+v", len(got), got)
	}
}
