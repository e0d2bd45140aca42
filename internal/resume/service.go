package resume

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/pdf"
	"portfolio-backend/internal/records"
)

var ErrUnauthorized = errors.New("unauthorized")

type Service struct {
	store    blob.Store
	secret   *auth.Secret
	renderer pdf.Renderer
	cache    cache.Cache
	pdfTTL   time.Duration
	log      *slog.Logger
}

func NewService(store blob.Store, secret *auth.Secret, renderer pdf.Renderer, c cache.Cache, pdfTTL time.Duration, log *slog.Logger) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Service{
		store:    store,
		secret:   secret,
		renderer: renderer,
		cache:    c,
		pdfTTL:   pdfTTL,
		log:      log,
	}
}

// Raw returns the stored document bytes unchanged.
func (s *Service) Raw(ctx context.Context) ([]byte, error) {
	raw, err := s.store.Read(ctx, DocumentKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", records.ErrStorageUnavailable, DocumentKey, err)
	}
	return raw, nil
}

func (s *Service) Get(ctx context.Context) (Resume, error) {
	raw, err := s.Raw(ctx)
	if err != nil {
		return Resume{}, err
	}
	var doc Resume
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Resume{}, fmt.Errorf("%w: parse %s: %v", records.ErrStorageUnavailable, DocumentKey, err)
	}
	doc.normalize()
	return doc, nil
}

// Replace overwrites the whole document. Fields missing from raw are not
// carried over from the previous version.
func (s *Service) Replace(ctx context.Context, password string, raw []byte) error {
	if !s.secret.Matches(password) {
		return ErrUnauthorized
	}
	if err := validate(raw); err != nil {
		return err
	}
	var doc Resume
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return s.Save(ctx, doc)
}

// Save writes doc without checking the secret. Used by the seed command.
func (s *Service) Save(ctx context.Context, doc Resume) error {
	doc.normalize()
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := s.store.Write(ctx, DocumentKey, out); err != nil {
		return fmt.Errorf("%w: write %s: %v", records.ErrStorageUnavailable, DocumentKey, err)
	}
	return nil
}

// PDF renders the stored document. Output is cached per document content, so
// an edit naturally produces a new cache key.
func (s *Service) PDF(ctx context.Context) ([]byte, error) {
	raw, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(raw)
	key := "resume:pdf:" + hex.EncodeToString(sum[:])

	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.log.Warn("resume pdf: cache read failed", slog.String("error", err.Error()))
	}

	var doc Resume
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", records.ErrStorageUnavailable, DocumentKey, err)
	}
	doc.normalize()

	html, err := RenderHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("render resume html: %w", err)
	}
	out, err := s.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("render resume pdf: %w", err)
	}

	if err := s.cache.Set(ctx, key, out, s.pdfTTL); err != nil {
		s.log.Warn("resume pdf: cache write failed", slog.String("error", err.Error()))
	}
	return out, nil
}
