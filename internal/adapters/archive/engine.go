// Package archive packs tracked paths into compressed tar archives and extracts them
// again, either through a tar child process or in-process.
package archive

import (
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"
	"time"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

var _ ports.Archiver = (*Engine)(nil)

type backend interface {
	name() string
	pack(ctx context.Context, target string, paths []string) (*domain.CommandResult, error)
	unpack(ctx context.Context, archive string, paths []string) (*domain.ExtractResult, error)
}

// Engine implements ports.Archiver.
type Engine struct {
	mode     domain.ArchiverMode
	state    ports.CacheState
	tar      backend
	native   backend
	lookPath func(string) (string, error)
	interval time.Duration
}

// NewEngine creates an Engine. Child processes are started through runner, and their
// captured output is written to the state directory's log files.
func NewEngine(mode domain.ArchiverMode, state ports.CacheState, runner ports.CommandRunner) *Engine {
	return &Engine{
		mode:     mode,
		state:    state,
		tar:      &tarBackend{runner: runner},
		native:   &nativeBackend{},
		lookPath: osexec.LookPath,
		interval: defaultTickInterval,
	}
}

// Backend names the backend the next operation will use.
func (e *Engine) Backend() string {
	return e.backend().name()
}

func (e *Engine) backend() backend {
	switch e.mode {
	case domain.ArchiverTar:
		return e.tar
	case domain.ArchiverNative:
		return e.native
	default:
		if _, err := e.lookPath(tarBinary); err == nil {
			return e.tar
		}
		return e.native
	}
}

// Pack archives exactly paths into target. Any failure is fatal for the pack and the
// partial target is removed.
func (e *Engine) Pack(ctx context.Context, target string, paths []string, onTick func()) (*domain.CommandResult, error) {
	b := e.backend()
	res, err := monitor(ctx, e.interval, onTick, func(ctx context.Context) (*domain.CommandResult, error) {
		return b.pack(ctx, target, paths)
	})
	e.captureOutput("pack", res)
	return res, err
}

// Unpack extracts paths from archive. Requested paths without entries are reported as
// missing and do not fail the extraction; any other failure returns
// domain.ErrExtractFailed alongside whatever was learned.
func (e *Engine) Unpack(ctx context.Context, archive string, paths []string, onTick func()) (*domain.ExtractResult, error) {
	b := e.backend()
	res, err := monitor(ctx, e.interval, onTick, func(ctx context.Context) (*domain.ExtractResult, error) {
		return b.unpack(ctx, archive, paths)
	})
	if res != nil {
		e.captureOutput("unpack", res.Output)
	}
	return res, err
}

// captureOutput keeps the child's output for diagnosis. Failures to write it are ignored.
func (e *Engine) captureOutput(name string, res *domain.CommandResult) {
	if res == nil {
		return
	}

	stdoutPath := e.state.LogPath(name, "stdout")
	if err := os.MkdirAll(filepath.Dir(stdoutPath), domain.DirPerm); err != nil {
		return
	}
	_ = os.WriteFile(stdoutPath, []byte(res.Stdout), domain.FilePerm)
	_ = os.WriteFile(e.state.LogPath(name, "stderr"), []byte(res.Stderr), domain.FilePerm)
}
