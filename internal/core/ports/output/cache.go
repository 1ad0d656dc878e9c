package ports

import (
	"context"
	"time"
)

// Cache holds serialized list responses. Implementations must degrade
// gracefully: a failing backend reads as a miss, never as an error surfaced
// to the request path.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Clear(ctx context.Context)
	Close() error
}
