package replay

import (
	"context"
	"time"
)

// Drive ticks p every interval until the replay finishes or ctx is done.
// It returns nil when p reaches Idle (immediately if p is already Idle),
// ErrBadInterval for a non-positive interval, and ctx.Err() on cancellation.
//
// Drive owns p while it runs; the caller must not call Start, Tick or Cancel
// concurrently.
func Drive(ctx context.Context, p *Replayer, interval time.Duration) error {
	if interval <= 0 {
		return ErrBadInterval
	}
	if !p.Active() {
		return nil
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !p.Tick() {
				return nil
			}
		}
	}
}
