package analytics

import (
	"context"
	"testing"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

func TestMTBFPerEquipment(t *testing.T) {
	tests := []struct {
		name      string
		completed []domain.InterventionWithEquipment
		expected  map[string]*float64
	}{
		{
			name: "single failure gives no interval",
			completed: []domain.InterventionWithEquipment{
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-10", 100),
				completedIntervention(1, "Lathe", domain.KindPreventive, "2024-02-10", 50),
			},
			expected: map[string]*float64{"Lathe": nil},
		},
		{
			name: "two failures over thirty days",
			completed: []domain.InterventionWithEquipment{
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-01", 100),
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-31", 120),
			},
			expected: map[string]*float64{"Lathe": ptr(15.0)},
		},
		{
			name: "period spans all interventions not only failures",
			completed: []domain.InterventionWithEquipment{
				completedIntervention(1, "Lathe", domain.KindPreventive, "2024-01-01", 30),
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-11", 100),
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-21", 120),
				completedIntervention(1, "Lathe", domain.KindPreventive, "2024-01-31", 30),
			},
			expected: map[string]*float64{"Lathe": ptr(15.0)},
		},
		{
			name: "same-day failures give zero period",
			completed: []domain.InterventionWithEquipment{
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-03-05", 100),
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-03-05", 80),
			},
			expected: map[string]*float64{"Lathe": nil},
		},
		{
			name: "independent per equipment",
			completed: []domain.InterventionWithEquipment{
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-01", 100),
				completedIntervention(1, "Lathe", domain.KindCorrective, "2024-01-11", 100),
				completedIntervention(2, "Press", domain.KindCorrective, "2024-01-01", 100),
			},
			expected: map[string]*float64{
				"Lathe": ptr(5.0),
				"Press": nil,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &fakeRepo{completed: tt.completed})

			got, err := svc.MTBFPerEquipment(context.Background())
			if err != nil {
				t.Fatalf("MTBFPerEquipment: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d (%v)", len(tt.expected), len(got), got)
			}
			for name, want := range tt.expected {
				actual, ok := got[name]
				if !ok {
					t.Errorf("%s: missing entry", name)
					continue
				}
				if want == nil {
					if actual != nil {
						t.Errorf("%s: expected nil, got %.1f", name, *actual)
					}
					continue
				}
				if actual == nil {
					t.Errorf("%s: expected %.1f, got nil", name, *want)
					continue
				}
				assertFloatNear(t, name, *want, *actual)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
