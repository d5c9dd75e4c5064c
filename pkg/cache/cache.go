// Package cache provides caching for computed layouts and rendered debug
// artifacts.
//
// Layout computation is deterministic: the same document, config, and
// archetype always produce the same layout. That makes layouts ideal cache
// entries keyed by content hash. The package offers three backends behind
// one interface:
//   - FileCache: per-machine cache for CLI usage
//   - RedisCache: shared cache for the API server
//   - NullCache: caching disabled (tests, --refresh)
//
// Keys are built by a [Keyer] so CLI, API, and pipeline all agree on the
// key schema, and can be namespaced with [NewScopedKeyer] when several
// tenants share one Redis.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A non-positive TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind. Layouts are cheap to recompute, so these are
// generous rather than critical.
const (
	DefaultLayoutTTL   = 24 * time.Hour
	DefaultArtifactTTL = 7 * 24 * time.Hour
)
