package records

import (
	"context"
	"slices"
)

// Store implements list/create/update/delete/reorder for one ordered
// collection. Each call is a single read of the whole collection followed by
// at most one whole-collection write.
type Store[T any] struct {
	col    *Collection[T]
	policy Policy[T]
}

func NewStore[T any](col *Collection[T], policy Policy[T]) *Store[T] {
	return &Store[T]{col: col, policy: policy}
}

// List returns every record in presentation order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	return SortStable(items, s.policy.Less), nil
}

// Get returns the record with the given id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := s.col.Load(ctx)
	if err != nil {
		return zero, err
	}
	if i := s.indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, ErrNotFound
}

// Create appends the record produced by build. build receives the current
// collection size so it can derive the default order key.
func (s *Store[T]) Create(ctx context.Context, id string, build func(size int) T) (T, error) {
	var created T
	err := s.col.Mutate(ctx, func(items []T) ([]T, bool, error) {
		if s.indexOf(items, id) >= 0 {
			return nil, false, ErrDuplicateID
		}
		created = build(len(items))
		return append(items, created), true, nil
	})
	return created, err
}

// Update replaces the record with the value returned by merge, which gets a
// copy of the stored record.
func (s *Store[T]) Update(ctx context.Context, id string, merge func(existing T) T) (T, error) {
	var updated T
	err := s.col.Mutate(ctx, func(items []T) ([]T, bool, error) {
		i := s.indexOf(items, id)
		if i < 0 {
			return nil, false, ErrNotFound
		}
		updated = merge(items[i])
		items[i] = updated
		return items, true, nil
	})
	return updated, err
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	return s.col.Mutate(ctx, func(items []T) ([]T, bool, error) {
		before := len(items)
		items = slices.DeleteFunc(items, func(item T) bool {
			return s.policy.ID(&item) == id
		})
		if len(items) == before {
			return nil, false, ErrNotFound
		}
		return items, true, nil
	})
}

// Reorder moves a record one display position up (-1) or down (+1) by
// swapping order keys with its neighbour. Both keys are written together.
func (s *Store[T]) Reorder(ctx context.Context, id string, direction int) error {
	return s.col.Mutate(ctx, func(items []T) ([]T, bool, error) {
		changed, err := SwapAdjacent(items, s.policy, id, direction)
		if err != nil {
			return nil, false, err
		}
		return items, changed, nil
	})
}

func (s *Store[T]) indexOf(items []T, id string) int {
	for i := range items {
		if s.policy.ID(&items[i]) == id {
			return i
		}
	}
	return -1
}
