package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache region prefixes. Keys are "<region>:<rest>".
const (
	RegionClients    = "clients"
	RegionBasket     = "basket"
	RegionOrders     = "orders"
	RegionPagination = "pagination"
)

// Cache is the key-value memoization layer sitting in front of the domain
// services. Values are JSON-encoded; the implementation owns the TTL.
// Entries are invalidated explicitly on delete operations only.
type Cache interface {
	// Get unmarshals the cached value into dest, or returns ErrCacheMiss.
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}
