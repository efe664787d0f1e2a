package cli

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/adapters/sqlite"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/analytics"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/database"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/logging"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/stock"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config    Config
	DB        *sql.DB
	Repos     *sqlite.Repositories
	Analytics *analytics.Service
	Stock     *stock.Service
	Log       zerolog.Logger
}

// NewAppContext creates an AppContext with all dependencies initialized.
func NewAppContext() (*AppContext, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel, cfg.LogPretty)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos := sqlite.NewRepositories(db)
	svc := analytics.NewService(sqlite.NewAnalyticsStore(repos), logging.NewAdapter(log))

	return &AppContext{
		Config:    cfg,
		DB:        db,
		Repos:     repos,
		Analytics: svc,
		Stock:     stock.NewService(repos.Parts),
		Log:       log,
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
