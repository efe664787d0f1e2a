package sqlite_test

import (
	"context"
	"testing"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
)

func TestPartRepository_StockLifecycle(t *testing.T) {
	repos := testRepos(t)
	techID, eqID := seedFleet(t, repos)
	ctx := context.Background()

	part := &domain.SparePart{Name: "Bearing 6204", Reference: "BRG-6204", StockQuantity: 10, AlertThreshold: 3, UnitCost: 12.50}
	if err := repos.Parts.Create(ctx, part); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if part.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	iv := seedIntervention(t, repos, eqID, techID, "2024-04-01", domain.KindCorrective, domain.StatusCompleted, 80)

	if err := repos.Parts.RecordUsage(ctx, iv.ID, part.ID, 4); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}

	parts, err := repos.Parts.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(parts) != 1 || parts[0].StockQuantity != 6 {
		t.Fatalf("expected stock 6 after usage, got %+v", parts)
	}

	usages, err := repos.Parts.ListUsageByIntervention(ctx, iv.ID)
	if err != nil {
		t.Fatalf("ListUsageByIntervention: %v", err)
	}
	if len(usages) != 1 || usages[0].Quantity != 4 || usages[0].PartName != "Bearing 6204" {
		t.Fatalf("unexpected usage rows: %+v", usages)
	}

	// Drop under the threshold and check the low-stock listing.
	if err := repos.Parts.AdjustStock(ctx, part.ID, -4); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	low, err := repos.Parts.ListBelowThreshold(ctx)
	if err != nil {
		t.Fatalf("ListBelowThreshold: %v", err)
	}
	if len(low) != 1 || low[0].StockQuantity != 2 {
		t.Fatalf("expected one low-stock part at 2, got %+v", low)
	}
}

func TestPartRepository_ListBelowThreshold_Boundary(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	atThreshold := &domain.SparePart{Name: "Filter", Reference: "FLT-1", StockQuantity: 3, AlertThreshold: 3}
	above := &domain.SparePart{Name: "Belt", Reference: "BLT-1", StockQuantity: 4, AlertThreshold: 3}
	for _, p := range []*domain.SparePart{atThreshold, above} {
		if err := repos.Parts.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	low, err := repos.Parts.ListBelowThreshold(ctx)
	if err != nil {
		t.Fatalf("ListBelowThreshold: %v", err)
	}
	// Stock equal to the threshold already alerts.
	if len(low) != 1 || low[0].Reference != "FLT-1" {
		t.Fatalf("expected only the at-threshold part, got %+v", low)
	}
}
