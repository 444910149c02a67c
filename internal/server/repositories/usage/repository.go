// Package usage keeps the per-identity daily count of free operations.
// Both implementations key the counter by UTC calendar day, so a new day
// starts from zero without any reset job.
package usage

import (
	"context"
	"time"
)

type Repository interface {
	// Get returns the count for identity on the UTC day of day, or 0.
	Get(ctx context.Context, identity string, day time.Time) (int, error)
	// Increment adds one and returns the new count.
	Increment(ctx context.Context, identity string, day time.Time) (int, error)
}
