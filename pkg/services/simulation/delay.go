package simulation

import (
	"context"
	"time"
)

// Wait stands in for a remote call that always succeeds after d. It returns
// early with ctx.Err() when the caller goes away.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
