package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  maintenance migrate      # Run all pending migrations
  maintenance migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := NewAppContext()
	if err != nil {
		return err
	}
	defer app.Close()

	if len(args) == 0 {
		if err := migrate.RunAll(ctx, app.DB); err != nil {
			return err
		}
		version, _, err := migrate.GetCurrentVersion(ctx, app.DB)
		if err != nil {
			return err
		}
		fmt.Printf("Database migrated to version %d\n", version)
		return nil
	}

	target, err := strconv.Atoi(args[0])
	if err != nil || target < 0 {
		return fmt.Errorf("invalid target version %q", args[0])
	}

	if err := migrate.EnsureMigrationsTable(ctx, app.DB); err != nil {
		return err
	}
	current, dirty, err := migrate.GetCurrentVersion(ctx, app.DB)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", current)
	}

	all, err := migrate.LoadMigrations()
	if err != nil {
		return err
	}

	switch {
	case target < current:
		if err := migrate.MigrateDownTo(ctx, app.DB, all, current, target); err != nil {
			return err
		}
	case target > current:
		for _, m := range all {
			if m.Version <= current || m.Version > target {
				continue
			}
			if err := migrate.RunMigration(ctx, app.DB, m, true); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Database migrated to version %d\n", target)
	return nil
}
