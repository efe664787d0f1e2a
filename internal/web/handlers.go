package web

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.log.Error().Err(err).Msg("request failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	rates, err := s.analytics.AvailabilityByType(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"availability_by_type": rates})
}

func (s *Server) handleMTBF(w http.ResponseWriter, r *http.Request) {
	mtbf, err := s.analytics.MTBFPerEquipment(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"mtbf_days": mtbf})
}

func (s *Server) handleCostTrend(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	trend, err := s.analytics.CostTrend(r.Context(), year)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, trend)
}

func (s *Server) handleReliability(w http.ResponseWriter, r *http.Request) {
	scores, err := s.analytics.ReliabilityIndex(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"reliability": scores})
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := s.analytics.AdvancedKPIs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, kpis)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.analytics.MaintenanceAlerts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, map[string]any{"alerts": alerts})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.analytics.SynthesisReport(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	status, err := s.stock.Status(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, status)
}
