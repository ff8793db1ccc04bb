// Package app implements the fetch, add and push operations of carry.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	state    ports.CacheState
	detector ports.ChangeDetector
	archiver ports.Archiver
	transfer ports.Transfer
	progress ports.Progress
	guard    *Guard
	timeout  time.Duration
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	log ports.Logger,
	state ports.CacheState,
	detector ports.ChangeDetector,
	archiver ports.Archiver,
	transfer ports.Transfer,
	progress ports.Progress,
) *App {
	return &App{
		logger:   log,
		state:    state,
		detector: detector,
		archiver: archiver,
		transfer: transfer,
		progress: progress,
		guard:    NewGuard(log),
		timeout:  cfg.Timeout,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Timeout overrides the configured timeout when positive.
	Timeout time.Duration
}

// Run validates the arguments of op and executes it under the execution guard.
// Only usage errors are returned: every failure past validation, including a timeout,
// is logged and swallowed so the surrounding build job carries on.
func (a *App) Run(ctx context.Context, op domain.Operation, args []string, opts RunOptions) error {
	if err := op.ValidateArgs(args); err != nil {
		return err
	}

	timeout := a.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	err := a.guard.Run(ctx, op, args, timeout, func(ctx context.Context) error {
		switch op {
		case domain.OperationFetch:
			return a.Fetch(ctx, args)
		case domain.OperationAdd:
			return a.Add(ctx, args)
		default:
			return a.Push(ctx, args[0])
		}
	})
	if err != nil && !errors.Is(err, domain.ErrOperationTimedOut) {
		a.logger.Error(err)
	}
	return nil
}

// Fetch downloads the first available archive among urls into the state directory.
func (a *App) Fetch(ctx context.Context, urls []string) error {
	a.logger.Info("attempting to download cache archive")

	if _, err := a.transfer.FetchFirstAvailable(ctx, urls); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.logger.Warn("could not download cache")
			return nil
		}
		return err
	}

	a.logger.Info("found cache")
	return nil
}

// Add registers paths for caching, restores them from the fetched archive if there is
// one and records the baseline the next push compares against.
func (a *App) Add(ctx context.Context, paths []string) error {
	resolved, err := a.state.RegisterPaths(paths)
	if err != nil {
		return err
	}
	for _, p := range resolved {
		a.logger.Info("adding " + p + " to cache")
	}

	archive, ok := a.state.FetchedArchive()
	if !ok {
		// Nothing was restored, so the baseline stays empty and the next push uploads.
		for _, p := range resolved {
			a.logger.Warn(p + " is not yet cached")
		}
		return a.detector.Baseline(ctx, nil)
	}

	step := a.progress.Record("unpack")
	res, err := a.archiver.Unpack(ctx, archive, resolved, step.Tick)
	step.Complete(err)
	if res != nil {
		for _, p := range res.Missing {
			a.logger.Warn(p + " is not yet cached")
		}
	}
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.logger.Error(err)
	}

	return a.detector.Baseline(ctx, resolved)
}

// Push packs and uploads the tracked paths to url when they changed since the baseline.
func (a *App) Push(ctx context.Context, url string) error {
	report, err := a.detector.Detect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.logger.Error(err)
		report = domain.ChangeReport{Changed: true}
	}

	if !report.Changed {
		a.logger.Info("nothing changed, not updating cache")
		return nil
	}
	if report.Summary != "" {
		a.logger.Info(report.Summary)
	}

	paths, err := a.state.TrackedPaths()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.logger.Warn("no paths are tracked, not updating cache")
		return nil
	}

	a.logger.Info("changes detected, packing new archive")
	target := a.state.PushArchivePath(domain.CompressionFor(url))
	step := a.progress.Record("pack")
	_, err = a.archiver.Pack(ctx, target, paths, step.Tick)
	step.Complete(err)
	if err != nil {
		return err
	}

	a.logger.Info("uploading archive")
	if err := a.transfer.Upload(ctx, target, url); err != nil {
		a.logger.Warn("failed to upload cache")
		return err
	}

	a.logger.Info("cache uploaded")
	return nil
}
