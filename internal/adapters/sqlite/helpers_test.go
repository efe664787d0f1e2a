package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/adapters/sqlite"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/domain"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/migrate"
)

// testDBSeq gives each test its own named in-memory database so state
// cannot leak between tests sharing the anonymous ":memory:" cache.
var testDBSeq atomic.Int64

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	ctx := context.Background()
	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testRepos(t *testing.T) *sqlite.Repositories {
	t.Helper()
	return sqlite.NewRepositories(testDB(t))
}

// seedFleet inserts one technician and one equipment and returns their ids.
func seedFleet(t *testing.T, repos *sqlite.Repositories) (technicianID, equipmentID int64) {
	t.Helper()
	ctx := context.Background()

	tech := &domain.Technician{Name: "Dubois", Specialty: "mechanical", Email: "dubois@example.com", HiredOn: "2020-03-01"}
	if err := repos.Technicians.Create(ctx, tech); err != nil {
		t.Fatalf("Failed to create technician: %v", err)
	}

	eq := &domain.Equipment{
		Name:       "Lathe T-100",
		Type:       "lathe",
		Brand:      "Makino",
		AcquiredOn: "2021-05-10",
		Location:   "Hall A",
		UsageHours: 1200,
		Status:     domain.EquipmentActive,
	}
	if err := repos.Equipment.Create(ctx, eq); err != nil {
		t.Fatalf("Failed to create equipment: %v", err)
	}
	return tech.ID, eq.ID
}

func seedIntervention(t *testing.T, repos *sqlite.Repositories, equipmentID, technicianID int64, date, kind, status string, cost float64) *domain.Intervention {
	t.Helper()
	iv := &domain.Intervention{
		EquipmentID:     equipmentID,
		TechnicianID:    technicianID,
		PerformedOn:     date,
		Kind:            kind,
		Description:     "seeded",
		DurationMinutes: 60,
		Cost:            cost,
		Status:          status,
	}
	if err := repos.Interventions.Create(context.Background(), iv); err != nil {
		t.Fatalf("Failed to create intervention: %v", err)
	}
	return iv
}
