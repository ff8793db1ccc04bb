package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/panics"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Guard bounds the wall-clock duration of one operation.
type Guard struct {
	logger ports.Logger
}

// NewGuard creates a Guard that reports timeouts through logger.
func NewGuard(logger ports.Logger) *Guard {
	return &Guard{logger: logger}
}

// Run executes fn with a context that is cancelled once timeout elapses. On expiry it
// logs which operation was aborted and returns domain.ErrOperationTimedOut without
// waiting for fn; anything fn already persisted is left in place. A panic in fn is
// returned as domain.ErrOperationPanicked.
func (g *Guard) Run(
	ctx context.Context,
	op domain.Operation,
	args []string,
	timeout time.Duration,
	fn func(context.Context) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		var err error
		var catcher panics.Catcher
		catcher.Try(func() { err = fn(ctx) })
		if r := catcher.Recovered(); r != nil {
			err = zerr.With(zerr.With(domain.ErrOperationPanicked, "operation", string(op)), "panic", fmt.Sprint(r.Value))
		}
		done <- err
	}()

	select {
	case err := <-done:
		// An operation failing because the deadline cut it short still counts as a timeout.
		if err == nil || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return err
		}
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ctx.Err()
		}
	}

	g.logger.Warn(fmt.Sprintf("%s %s took longer than %d seconds and was aborted",
		op, describeArgs(op, args), int(timeout.Seconds())))
	return zerr.With(domain.ErrOperationTimedOut, "operation", string(op))
}

// describeArgs renders operation arguments for logs, keeping credentials in URLs out.
func describeArgs(op domain.Operation, args []string) string {
	if op == domain.OperationAdd {
		return strings.Join(args, " ")
	}
	safe := make([]string, len(args))
	for i, a := range args {
		safe[i] = domain.SafeURL(a)
	}
	return strings.Join(safe, " ")
}
