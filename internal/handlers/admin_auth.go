package handlers

import (
	"net/http"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/transport"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the admin panel password. Nothing is issued on success:
// the panel only unlocks its own screens.
func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminLoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if !s.Gate.Configured() {
		log.Warn("admin login: not configured")
		transport.WriteFailure(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if !s.Gate.Matches(req.Password) {
		log.Warn("admin login: incorrect password")
		transport.WriteFailure(w, http.StatusUnauthorized, "Incorrect password", nil)
		return
	}

	log.Info("admin login: ok")
	transport.WriteSuccess(w, "")
}
