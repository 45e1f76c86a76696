package ports

import (
	"context"
	"time"
)

// Clock is the source of wall-clock time for the scheduler.
// This is a driven port (implemented by adapters).
type Clock interface {
	// Now returns the current local time.
	Now() time.Time

	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}
