// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// ProjectionCache caches computed projection windows keyed by a snapshot
// hash. The key covers every projection input, so a stale entry can never be
// served for changed data; expiry only bounds memory.
type ProjectionCache interface {
	// Get returns the cached summaries for the key, with false when absent.
	Get(ctx context.Context, key string) ([]entity.MonthSummary, bool, error)

	// Set stores the summaries under the key with the given expiry.
	Set(ctx context.Context, key string, summaries []entity.MonthSummary, ttl time.Duration) error
}
