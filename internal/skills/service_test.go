package skills

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/records"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newTestService(t *testing.T, seed ...Skill) (*Service, *blob.MemoryStore) {
	t.Helper()
	mem := blob.NewMemory()
	if seed == nil {
		seed = []Skill{}
	}
	raw, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := mem.Write(context.Background(), CollectionKey, raw); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return NewService(mem), mem
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newTestService(t, Skill{ID: "a"}, Skill{ID: "b", Order: 1})
	created, err := svc.Create(context.Background(), UpsertRequest{ID: "go", Name: strPtr("Go"), Level: intPtr(90)})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	want := Skill{
		ID:          "go",
		Name:        "Go",
		Icon:        DefaultIcon,
		Category:    DefaultCategory,
		Proficiency: DefaultProficiency,
		Level:       90,
		Order:       2,
		Visible:     true,
	}
	if created != want {
		t.Fatalf("unexpected skill:\n got %+v\nwant %+v", created, want)
	}
}

func TestUpdateCoalesce(t *testing.T) {
	svc, _ := newTestService(t, Skill{
		ID: "go", Name: "Go", Icon: "🐹", Category: "Backend & Tools", Proficiency: "Expert", Level: 95, Order: 3, Visible: true,
	})

	updated, err := svc.Update(context.Background(), UpsertRequest{ID: "go", Category: strPtr(""), Order: records.Int(0)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Category != "Backend & Tools" || updated.Icon != "🐹" || updated.Proficiency != "Expert" {
		t.Fatalf("omitted fields not preserved: %+v", updated)
	}
	if updated.Order != 0 || updated.Level != 95 || !updated.Visible {
		t.Fatalf("unexpected values: %+v", updated)
	}
}

func TestUpdateTwiceIsIdempotent(t *testing.T) {
	svc, mem := newTestService(t, Skill{ID: "go", Name: "Go"})
	req := UpsertRequest{ID: "go", Name: strPtr("Golang"), Level: intPtr(70)}

	if _, err := svc.Update(context.Background(), req); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	once, _ := mem.Read(context.Background(), CollectionKey)
	if _, err := svc.Update(context.Background(), req); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	twice, _ := mem.Read(context.Background(), CollectionKey)
	if string(once) != string(twice) {
		t.Fatalf("second update changed stored data:\n%s\n%s", once, twice)
	}
}

func TestListSortedAndFiltered(t *testing.T) {
	svc, _ := newTestService(t,
		Skill{ID: "c", Order: 2, Visible: true, Category: "Frontend"},
		Skill{ID: "a", Order: 0, Visible: true, Category: "Other"},
		Skill{ID: "b", Order: 1, Category: "Frontend"},
	)

	items, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if items[0].ID != "a" || items[1].ID != "b" || items[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", items)
	}

	frontend, _ := svc.List(context.Background(), ListFilter{VisibleOnly: true, Category: "frontend"})
	if len(frontend) != 1 || frontend[0].ID != "c" {
		t.Fatalf("unexpected filtered list: %+v", frontend)
	}
}

func TestReorderSwap(t *testing.T) {
	svc, _ := newTestService(t, Skill{ID: "a", Order: 3}, Skill{ID: "b", Order: 4})
	if err := svc.Reorder(context.Background(), "a", 1); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	items, _ := svc.List(context.Background(), ListFilter{})
	if items[0].ID != "b" || items[0].Order != 3 || items[1].ID != "a" || items[1].Order != 4 {
		t.Fatalf("unexpected result: %+v", items)
	}
}

func TestReorderEdgesDoNotWrite(t *testing.T) {
	svc, mem := newTestService(t, Skill{ID: "a", Order: 0}, Skill{ID: "b", Order: 1})
	writes := mem.Writes()
	if err := svc.Reorder(context.Background(), "a", -1); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if err := svc.Reorder(context.Background(), "b", 1); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if mem.Writes() != writes {
		t.Fatalf("edge reorder wrote to storage")
	}
}

func TestDeleteMissing(t *testing.T) {
	svc, _ := newTestService(t, Skill{ID: "a"})
	if err := svc.Delete(context.Background(), "zzz"); !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	items, _ := svc.List(context.Background(), ListFilter{})
	if len(items) != 1 {
		t.Fatalf("collection changed: %+v", items)
	}
}
