// Package metadata implements the persistent key-value store the client keeps
// its local state in. Values are opaque strings; callers own their encoding.
package metadata

import (
	"context"
)

// Repository is a string-keyed, string-valued persistent store.
//
// Get reports ok=false when the key is absent. Set overwrites any previous
// value.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
