package domain

import "context"

// KeyValueStore is durable local key/value storage.
// Get returns nil without error when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
