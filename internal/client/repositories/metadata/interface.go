package metadata

import (
	"context"
)

// Repository is a key/value table in the local database.
// Get returns (nil, nil) for an absent key; Delete of an absent key succeeds.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
