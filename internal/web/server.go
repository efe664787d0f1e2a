package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/analytics"
	"github.com/JMDcoding/Dashboard-Maintenance-Appareil/internal/stock"
)

// Server exposes the analytics indicators over a read-only JSON API.
type Server struct {
	router    *http.ServeMux
	port      int
	analytics *analytics.Service
	stock     *stock.Service
	log       zerolog.Logger
}

func NewServer(port int, svc *analytics.Service, stockSvc *stock.Service, log zerolog.Logger) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		port:      port,
		analytics: svc,
		stock:     stockSvc,
		log:       log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.HandleFunc("GET /api/availability", s.handleAvailability)
	s.router.HandleFunc("GET /api/mtbf", s.handleMTBF)
	s.router.HandleFunc("GET /api/cost-trend", s.handleCostTrend)
	s.router.HandleFunc("GET /api/reliability", s.handleReliability)
	s.router.HandleFunc("GET /api/kpis", s.handleKPIs)
	s.router.HandleFunc("GET /api/alerts", s.handleAlerts)
	s.router.HandleFunc("GET /api/report", s.handleReport)
	s.router.HandleFunc("GET /api/stock", s.handleStock)
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info().Int("port", s.port).Msg("starting API server")

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
