package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/transport"
)

type brokenStore struct{}

func (brokenStore) Read(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Write(ctx context.Context, key string, data []byte) error {
	return errors.New("disk on fire")
}

func newTestServer(gate *auth.Secret, store blob.Store) *Server {
	return &Server{
		Cfg:   &config.Config{StorageBackend: config.BackendMemory},
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gate:  gate,
		Store: store,
	}
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name    string
		gate    *auth.Secret
		body    string
		status  int
		success bool
		errMsg  string
	}{
		{"correct", auth.NewSecret("s3cret", ""), `{"password":"s3cret"}`, http.StatusOK, true, ""},
		{"wrong", auth.NewSecret("s3cret", ""), `{"password":"nope"}`, http.StatusUnauthorized, false, "Incorrect password"},
		{"empty", auth.NewSecret("s3cret", ""), `{}`, http.StatusUnauthorized, false, "Incorrect password"},
		{"unconfigured", auth.NewSecret("", ""), `{"password":"x"}`, http.StatusServiceUnavailable, false, "admin auth not configured"},
		{"bad json", auth.NewSecret("s3cret", ""), `{`, http.StatusBadRequest, false, "invalid json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.gate, blob.NewMemory())
			rec := httptest.NewRecorder()
			s.AdminLogin(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			var res transport.Result
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res.Success != tt.success || res.Error != tt.errMsg {
				t.Fatalf("unexpected body %+v", res)
			}
		})
	}
}

func TestAdminLoginWithHash(t *testing.T) {
	hash, err := auth.HashPassword("hashed-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	s := newTestServer(auth.NewSecret("", hash), blob.NewMemory())

	rec := httptest.NewRecorder()
	s.AdminLogin(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"hashed-pass"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil, blob.NewMemory())
	rec := httptest.NewRecorder()
	s.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on empty store, got %d", rec.Code)
	}

	s = newTestServer(nil, brokenStore{})
	rec = httptest.NewRecorder()
	s.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 on broken store, got %d", rec.Code)
	}
}
