package skills

import (
	"context"
	"strings"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/records"

	"github.com/google/uuid"
)

var policy = records.Policy[Skill]{
	ID:    func(s *Skill) string { return s.ID },
	Order: func(s *Skill) *int { return &s.Order },
	Less:  records.ByOrder(func(s *Skill) *int { return &s.Order }),
}

type Service struct {
	store *records.Store[Skill]
	newID func() string
}

func NewService(store blob.Store) *Service {
	col := records.NewCollection[Skill](store, CollectionKey)
	return &Service{
		store: records.NewStore(col, policy),
		newID: uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Skill, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(filter.Category)
	if !filter.VisibleOnly && category == "" {
		return items, nil
	}
	out := make([]Skill, 0, len(items))
	for _, item := range items {
		if filter.VisibleOnly && !item.Visible {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Skill, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = s.newID()
	}
	return s.store.Create(ctx, id, func(size int) Skill {
		item := Skill{
			ID:      id,
			Visible: true,
			Order:   req.Order.Or(records.NextOrder(size)),
		}
		apply(&item, req)
		item.Icon = records.Coalesce(item.Icon, DefaultIcon)
		item.Category = records.Coalesce(item.Category, DefaultCategory)
		item.Proficiency = records.Coalesce(item.Proficiency, DefaultProficiency)
		return item
	})
}

func (s *Service) Update(ctx context.Context, req UpsertRequest) (Skill, error) {
	id := strings.TrimSpace(req.ID)
	return s.store.Update(ctx, id, func(existing Skill) Skill {
		prev := existing
		apply(&existing, req)
		existing.Icon = records.Coalesce(existing.Icon, prev.Icon, DefaultIcon)
		existing.Category = records.Coalesce(existing.Category, prev.Category, DefaultCategory)
		existing.Proficiency = records.Coalesce(existing.Proficiency, prev.Proficiency, DefaultProficiency)
		existing.Order = req.Order.Or(existing.Order)
		return existing
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, strings.TrimSpace(id))
}

func (s *Service) Reorder(ctx context.Context, id string, direction int) error {
	return s.store.Reorder(ctx, strings.TrimSpace(id), direction)
}

func apply(item *Skill, req UpsertRequest) {
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		item.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Proficiency != nil {
		item.Proficiency = strings.TrimSpace(*req.Proficiency)
	}
	if req.Level != nil {
		item.Level = *req.Level
	}
	if req.Visible != nil {
		item.Visible = *req.Visible
	}
}
