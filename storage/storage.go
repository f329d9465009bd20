package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists under a key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a durable string-keyed blob store. Values are whole JSON
// snapshots of an aggregate, written atomically per key. There are no
// partial or range reads.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
