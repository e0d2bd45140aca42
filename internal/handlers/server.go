package handlers

import (
	"log/slog"
	"net/http"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
)

// Server serves the endpoints that do not belong to a single resource.
type Server struct {
	Cfg   *config.Config
	Log   *slog.Logger
	Gate  *auth.Secret
	Store blob.Store
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
