// Package cache provides the artifact cache for rendered droplet images.
//
// Re-rendering the same parameter set is pure CPU work with a deterministic
// result, so finished PNG artifacts are cached keyed by a hash of the full
// generation parameters. Three backends are provided:
//   - file: directory-based cache for CLI usage
//   - redis: shared cache for server deployments
//   - null: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Artifacts are
// deterministic in their key, so the TTL only bounds disk usage.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
