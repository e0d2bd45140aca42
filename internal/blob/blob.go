package blob

import (
	"context"
	"errors"
)

var ErrNotExist = errors.New("blob does not exist")

// Store persists opaque documents under string keys. Every write replaces the
// whole value stored under the key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}
