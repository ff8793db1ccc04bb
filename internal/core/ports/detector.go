package ports

import (
	"context"

	"go.trai.ch/carry/internal/core/domain"
)

// ChangeDetector decides whether tracked content changed since the baseline snapshot.
//
//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ChangeDetector interface {
	// Mode returns the strategy in use for this run.
	Mode() domain.DetectorMode

	// Baseline records the snapshot of paths taken right after extraction.
	Baseline(ctx context.Context, paths []string) error

	// Detect compares the current state of every tracked path against the baseline.
	Detect(ctx context.Context) (domain.ChangeReport, error)
}
