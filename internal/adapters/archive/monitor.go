package archive

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultTickInterval is how often onTick fires while work is running.
const defaultTickInterval = time.Second

// monitor runs work while calling onTick every interval. Ticks stop as soon as work
// returns, and monitor returns only after work's result has been collected.
func monitor[T any](ctx context.Context, interval time.Duration, onTick func(), work func(context.Context) (T, error)) (T, error) {
	var result T
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		var err error
		result, err = work(gctx)
		return err
	})
	g.Go(func() error {
		if onTick == nil {
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				onTick()
			}
		}
	})

	err := g.Wait()
	return result, err
}
