package skills

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"
)

func TestHandlerLevelRange(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/skills", strings.NewReader(`{"id":"1","name":"Go","level":140}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var res transport.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Details["Level"] != "lte" {
		t.Fatalf("expected lte detail, got %+v", res.Details)
	}
}

func TestHandlerDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewHandler(svc, validation.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	req := httptest.NewRequest(http.MethodDelete, "/api/skills", strings.NewReader(`{"id":"1"}`))
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var res transport.Result
	_ = json.NewDecoder(rec.Body).Decode(&res)
	if res.Error != "Skill not found" {
		t.Fatalf("unexpected error message %q", res.Error)
	}
}
