package board

import (
	"context"
	"time"
)

// Clock is where the board takes the time from, tests replace it.
type Clock interface {
	Now() time.Time
	// Sleep returns after d, or earlier when ctx is done.
	Sleep(ctx context.Context, d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
