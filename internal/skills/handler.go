package skills

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

	items, err := h.service.List(ctx, ListFilter{
		VisibleOnly: visibleOnly,
		Category:    r.URL.Query().Get("category"),
	})
	if err != nil {
		log.Error("skills list: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to load skills.", nil)
		return
	}

	log.Info("skills list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("skills create: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("skills create: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, records.ErrDuplicateID) {
			log.Warn("skills create: duplicate id", slog.String("skill_id", req.ID))
			transport.WriteFailure(w, http.StatusConflict, "Skill already exists", nil)
			return
		}
		h.storageFailure(w, log, "skills create", err)
		return
	}

	log.Info("skills create: ok", slog.String("skill_id", item.ID))
	transport.WriteSuccess(w, item.ID)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("skills update: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("skills update: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, req)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("skills update: not found", slog.String("skill_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Skill not found", nil)
			return
		}
		h.storageFailure(w, log, "skills update", err)
		return
	}

	log.Info("skills update: ok", slog.String("skill_id", item.ID))
	transport.WriteSuccess(w, item.ID)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req DeleteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("skills delete: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("skills delete: missing id")
		transport.WriteFailure(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("skills delete: not found", slog.String("skill_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Skill not found", nil)
			return
		}
		h.storageFailure(w, log, "skills delete", err)
		return
	}

	log.Info("skills delete: ok", slog.String("skill_id", req.ID))
	transport.WriteSuccess(w, "")
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ReorderRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("skills reorder: invalid json")
		transport.WriteFailure(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("skills reorder: validation error")
		transport.WriteFailure(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.Reorder(ctx, req.ID, req.Direction); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			log.Warn("skills reorder: not found", slog.String("skill_id", req.ID))
			transport.WriteFailure(w, http.StatusNotFound, "Skill not found", nil)
			return
		}
		h.storageFailure(w, log, "skills reorder", err)
		return
	}

	log.Info("skills reorder: ok", slog.String("skill_id", req.ID), slog.Int("direction", req.Direction))
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
