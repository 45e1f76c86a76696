// Package clock provides the wall-clock implementation of ports.Clock.
package clock

import (
	"context"
	"time"

	"github.com/xvierd/dusk/internal/ports"
)

// System reads the local wall clock.
type System struct{}

// Ensure System implements ports.Clock.
var _ ports.Clock = System{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is done.
func (System) Sleep(ctx context.Context, d time.Duration) error {
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
