package interfaces

import (
	"context"
	"time"
)

// IReportCache abstracts the short-TTL cache in front of the reporting
// aggregates. A miss is (nil, nil); errors degrade to recomputation.
type IReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
