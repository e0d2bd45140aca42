package resume

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/records"
)

type fakeRenderer struct {
	mu    sync.Mutex
	calls int
	html  string
	err   error
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

type memoryCache struct {
	items map[string][]byte
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.items[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}

const testSecret = "letmein"

const sampleDoc = `{
  "name": "Ada Lovelace",
  "title": "Engineer",
  "summary": "Writes programs.",
  "contact": {"email": "ada@example.com", "github": "github.com/ada"},
  "education": [{"degree": "BSc", "school": "London", "year": "1835"}],
  "experience": [{"role": "Analyst", "company": "Engine Co", "year": "1843", "description": "Notes"}],
  "skills": ["Go", "SQL"],
  "certifications": ["Math"]
}`

func newTestService(t *testing.T, seed string) (*Service, *blob.MemoryStore, *fakeRenderer) {
	t.Helper()
	mem := blob.NewMemory()
	if seed != "" {
		if err := mem.Write(context.Background(), DocumentKey, []byte(seed)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	r := &fakeRenderer{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(mem, auth.NewSecret(testSecret, ""), r, &memoryCache{items: map[string][]byte{}}, time.Minute, log)
	return svc, mem, r
}

func TestGetParsesDocument(t *testing.T) {
	svc, _, _ := newTestService(t, sampleDoc)

	doc, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if doc.Name != "Ada Lovelace" || len(doc.Experience) != 1 || doc.Contact.Email != "ada@example.com" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestGetMissingIsUnavailable(t *testing.T) {
	svc, _, _ := newTestService(t, "")

	if _, err := svc.Get(context.Background()); !errors.Is(err, records.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestReplaceWrongSecretLeavesDocument(t *testing.T) {
	svc, mem, _ := newTestService(t, sampleDoc)

	err := svc.Replace(context.Background(), "nope", []byte(`{"name":"Mallory"}`))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	raw, _ := mem.Read(context.Background(), DocumentKey)
	if !bytes.Equal(raw, []byte(sampleDoc)) {
		t.Fatalf("document changed after rejected write: %s", raw)
	}
	if mem.Writes() != 1 {
		t.Fatalf("expected only the seed write, got %d", mem.Writes())
	}
}

func TestReplaceEmptySecretRejected(t *testing.T) {
	svc, _, _ := newTestService(t, sampleDoc)

	if err := svc.Replace(context.Background(), "", []byte(`{}`)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestReplaceOverwritesWholeDocument(t *testing.T) {
	svc, _, _ := newTestService(t, sampleDoc)
	ctx := context.Background()

	if err := svc.Replace(ctx, testSecret, []byte(`{"name":"Grace","skills":["COBOL"]}`)); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	doc, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if doc.Name != "Grace" || doc.Title != "" || doc.Contact.Email != "" {
		t.Fatalf("expected absent fields removed, got %+v", doc)
	}
	if len(doc.Experience) != 0 || doc.Experience == nil {
		t.Fatalf("expected empty experience list, got %#v", doc.Experience)
	}
	if len(doc.Skills) != 1 || doc.Skills[0] != "COBOL" {
		t.Fatalf("unexpected skills %v", doc.Skills)
	}
}

func TestReplaceRejectsWrongTypes(t *testing.T) {
	svc, mem, _ := newTestService(t, sampleDoc)

	err := svc.Replace(context.Background(), testSecret, []byte(`{"name":42,"skills":"Go"}`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Details) == 0 {
		t.Fatalf("expected field details, got %v", err)
	}
	if mem.Writes() != 1 {
		t.Fatalf("invalid document must not be written")
	}
}

func TestPDFIsCachedByContent(t *testing.T) {
	svc, _, r := newTestService(t, sampleDoc)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := svc.PDF(ctx)
		if err != nil {
			t.Fatalf("PDF error: %v", err)
		}
		if string(out) != "%PDF-fake" {
			t.Fatalf("unexpected pdf bytes %q", out)
		}
	}
	if r.calls != 1 {
		t.Fatalf("expected one render, got %d", r.calls)
	}
	if !strings.Contains(r.html, "Ada Lovelace") || !strings.Contains(r.html, "Engine Co") {
		t.Fatalf("rendered html missing content")
	}

	if err := svc.Replace(ctx, testSecret, []byte(`{"name":"Grace"}`)); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if _, err := svc.PDF(ctx); err != nil {
		t.Fatalf("PDF error: %v", err)
	}
	if r.calls != 2 {
		t.Fatalf("expected a fresh render after edit, got %d calls", r.calls)
	}
}

func TestPDFRenderFailure(t *testing.T) {
	svc, _, r := newTestService(t, sampleDoc)
	r.err = errors.New("chrome missing")

	if _, err := svc.PDF(context.Background()); err == nil {
		t.Fatalf("expected render error")
	}
}
