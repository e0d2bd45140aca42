package resume

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if r.URL.Query().Get("download") == "json" {
		raw, err := h.service.Raw(ctx)
		if err != nil {
			log.Error("resume download: storage error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Failed to download resume.", nil)
			return
		}
		log.Info("resume download: ok", slog.Int("bytes", len(raw)))
		transport.WriteAttachment(w, "application/json", "resume.json", raw)
		return
	}

	doc, err := h.service.Get(ctx)
	if err != nil {
		log.Error("resume get: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to load resume.", nil)
		return
	}

	log.Info("resume get: ok")
	transport.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SaveRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("resume save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.Replace(ctx, req.Password, req.Resume); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			log.Warn("resume save: unauthorized")
			transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		if errors.Is(err, ErrInvalidDocument) {
			var details map[string]string
			var verr *ValidationError
			if errors.As(err, &verr) {
				details = verr.Details
			}
			log.Warn("resume save: invalid document", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, "invalid resume", details)
			return
		}
		log.Error("resume save: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to save resume.", nil)
		return
	}

	log.Info("resume save: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 90*time.Second)
	defer cancel()

	out, err := h.service.PDF(ctx)
	if err != nil {
		log.Error("resume pdf: render error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to generate resume.", nil)
		return
	}

	log.Info("resume pdf: ok", slog.Int("bytes", len(out)))
	transport.WriteAttachment(w, "application/pdf", "resume.pdf", out)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
