package archive

import (
	"context"
	"time"
)

// ParseUnpackErrors exposes tar stderr parsing for tests.
var ParseUnpackErrors = parseUnpackErrors

// SetLookPath replaces the PATH lookup used in auto mode.
func (e *Engine) SetLookPath(fn func(string) (string, error)) {
	e.lookPath = fn
}

// SetInterval replaces the tick interval.
func (e *Engine) SetInterval(d time.Duration) {
	e.interval = d
}

// Monitor exposes the tick monitor for tests.
func Monitor(ctx context.Context, interval time.Duration, onTick func(), work func(context.Context) (int, error)) (int, error) {
	return monitor(ctx, interval, onTick, work)
}
