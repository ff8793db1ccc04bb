package detector

import (
	"context"
	"sync"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

var _ ports.ChangeDetector = (*Selector)(nil)

// Selector picks one strategy on first use and keeps it for the rest of the run.
type Selector struct {
	configured domain.DetectorMode
	hasher     ports.Hasher
	content    ports.ChangeDetector
	mtime      ports.ChangeDetector

	once   sync.Once
	chosen ports.ChangeDetector
}

// NewSelector creates a Selector. In auto mode the content strategy is used when the
// hasher is available and the timestamp strategy otherwise.
func NewSelector(
	configured domain.DetectorMode,
	hasher ports.Hasher,
	content, mtime ports.ChangeDetector,
) *Selector {
	return &Selector{configured: configured, hasher: hasher, content: content, mtime: mtime}
}

func (s *Selector) resolve(ctx context.Context) ports.ChangeDetector {
	s.once.Do(func() {
		switch s.configured {
		case domain.DetectorContent:
			s.chosen = s.content
		case domain.DetectorMtime:
			s.chosen = s.mtime
		default:
			if s.hasher.Available(ctx) {
				s.chosen = s.content
			} else {
				s.chosen = s.mtime
			}
		}
	})
	return s.chosen
}

// Mode returns the mode of the chosen strategy.
func (s *Selector) Mode() domain.DetectorMode {
	return s.resolve(context.Background()).Mode()
}

// Baseline delegates to the chosen strategy.
func (s *Selector) Baseline(ctx context.Context, paths []string) error {
	return s.resolve(ctx).Baseline(ctx, paths)
}

// Detect delegates to the chosen strategy.
func (s *Selector) Detect(ctx context.Context) (domain.ChangeReport, error) {
	return s.resolve(ctx).Detect(ctx)
}
