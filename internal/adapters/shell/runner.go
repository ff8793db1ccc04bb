// Package shell runs external commands from explicit argument vectors.
package shell

import (
	"context"
	"errors"
	osexec "os/exec"
	"strings"

	"github.com/jmgilman/go/exec"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner. No shell is involved, so arguments are passed
// to the process verbatim.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes argv with the inherited environment and captures its output.
func (r *Runner) Run(ctx context.Context, argv []string) (*domain.CommandResult, error) {
	cmdline := strings.Join(argv, " ")

	res, err := exec.New(exec.WithInheritEnv(), exec.WithContext(ctx)).Run(argv...)
	if res == nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmdline)
	}

	result := &domain.CommandResult{
		Args:     argv,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	}
	if err == nil {
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, zerr.With(zerr.Wrap(ctxErr, "command aborted"), "command", cmdline)
	}

	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return result, nil
	}

	return result, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", cmdline)
}
