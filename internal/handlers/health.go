package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/transport"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health reports whether the storage backend answers. A missing key still
// counts as reachable.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if _, err := s.Store.Read(ctx, "projects"); err != nil && !errors.Is(err, blob.ErrNotExist) {
		s.logWithRequest(r).Error("health: storage error", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Storage: s.Cfg.StorageBackend})
		return
	}
	transport.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Storage: s.Cfg.StorageBackend})
}
