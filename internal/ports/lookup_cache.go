package ports

import (
	"context"
	"time"
)

// Port: a shared cache for external lookup results (geocode, route,
// attraction queries). Keys are canonical representations of the lookup
// parameters; values are serialized payloads. Implementations must be safe
// for concurrent use and must never serve an entry past its TTL.
type LookupCache interface {
	// Fetch a cached payload. The second return reports whether a live
	// (non-expired) entry was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Store a payload with the given time-to-live, replacing any
	// existing entry for the key.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
