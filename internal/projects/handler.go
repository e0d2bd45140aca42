package projects

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/records"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	visibleOnly, _ := strconv.ParseBool(r.URL.Query().Get("visible"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx, ListFilter{VisibleOnly: visibleOnly})
	if err != nil {
		log.Error("projects list: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to load projects.", nil)
		return
	}

	log.Info("projects list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("projects create: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("projects create: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, records.ErrDuplicateID) {
			log.Warn("projects create: duplicate id", slog.String("project_id", req.ID))
			transport.WriteFailure(w, http.StatusConflict, "Project already exists", nil)
			return
		}
		h.storageFailure(w, log, "projects create", err)
		return
	}

	log.Info("projects create: ok", slog.String("project_id", item.ID))
	transport.WriteSuccess(w, item.ID)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("projects update: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("projects update: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, req)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("projects update: not found", slog.String("project_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Project not found", nil)
			return
		}
		h.storageFailure(w, log, "projects update", err)
		return
	}

	log.Info("projects update: ok", slog.String("project_id", item.ID))
	transport.WriteSuccess(w, item.ID)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req DeleteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("projects delete: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("projects delete: missing id")
		transport.WriteFailure(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("projects delete: not found", slog.String("project_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Project not found", nil)
			return
		}
		h.storageFailure(w, log, "projects delete", err)
		return
	}

	log.Info("projects delete: ok", slog.String("project_id", req.ID))
	transport.WriteSuccess(w, "")
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ReorderRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("projects reorder: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("projects reorder: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.Reorder(ctx, req.ID, req.Direction); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("projects reorder: not found", slog.String("project_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Project not found", nil)
			return
		}
		h.storageFailure(w, log, "projects reorder", err)
		return
	}

	log.Info("projects reorder: ok", slog.String("project_id", req.ID), slog.Int("direction", req.Direction))
	transport.WriteSuccess(w, req.ID)
}

func (h *Handler) storageFailure(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	log.Error(op+": storage error", slog.String("error", err.Error()))
	transport.WriteFailure(w, http.StatusInternalServerError, "storage unavailable", nil)
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
