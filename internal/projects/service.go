package projects

import (
	"context"
	"strings"

	"portfolio-backend/internal/blob"
	"portfolio-backend/internal/records"

	"github.com/google/uuid"
)

var policy = records.Policy[Project]{
	ID:    func(p *Project) string { return p.ID },
	Order: func(p *Project) *int { return &p.Order },
	Less: func(a, b *Project) bool {
		if a.Featured != b.Featured {
			return a.Featured
		}
		return a.Order < b.Order
	},
}

type Service struct {
	store *records.Store[Project]
	newID func() string
}

func NewService(store blob.Store) *Service {
	col := records.NewCollection[Project](store, CollectionKey)
	return &Service{
		store: records.NewStore(col, policy),
		newID: uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Project, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if !filter.VisibleOnly {
		return items, nil
	}
	visible := make([]Project, 0, len(items))
	for _, item := range items {
		if item.Visible {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Project, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = s.newID()
	}
	return s.store.Create(ctx, id, func(size int) Project {
		item := Project{
			ID:      id,
			Icon:    DefaultIcon,
			Visible: true,
			Order:   req.Order.Or(records.NextOrder(size)),
		}
		apply(&item, req)
		item.Icon = records.Coalesce(item.Icon, DefaultIcon)
		return item
	})
}

func (s *Service) Update(ctx context.Context, req UpsertRequest) (Project, error) {
	id := strings.TrimSpace(req.ID)
	return s.store.Update(ctx, id, func(existing Project) Project {
		icon := existing.Icon
		apply(&existing, req)
		existing.Icon = records.Coalesce(existing.Icon, icon, DefaultIcon)
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

// apply copies every field present in req onto item.
func apply(item *Project, req UpsertRequest) {
	if req.Icon != nil {
		item.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.Title != nil {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}
	if req.Tech != nil {
		item.Tech = strings.TrimSpace(string(*req.Tech))
	}
	if req.Live != nil {
		item.Live = strings.TrimSpace(*req.Live)
	}
	if req.Github != nil {
		item.Github = strings.TrimSpace(*req.Github)
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Visible != nil {
		item.Visible = *req.Visible
	}
}
