package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-backend/internal/blob"
)

// Collection is a list of records persisted as one JSON array under a single
// blob key. There is no caching: every Load reads the backing store.
type Collection[T any] struct {
	store        blob.Store
	key          string
	missingEmpty bool
}

func NewCollection[T any](store blob.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// MissingAsEmpty makes Load treat an absent key as an empty collection
// instead of a storage failure.
func (c *Collection[T]) MissingAsEmpty() *Collection[T] {
	c.missingEmpty = true
	return c
}

func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Read(ctx, c.key)
	if err != nil {
		if c.missingEmpty && errors.Is(err, blob.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Write(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.key, err)
	}
	return nil
}

// Mutate runs one read-modify-write cycle. fn reports whether it changed
// anything; unchanged collections are not written back.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, bool, error)) error {
	items, err := c.Load(ctx)
	if err != nil {
		return err
	}
	next, changed, err := fn(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return c.Save(ctx, next)
}
