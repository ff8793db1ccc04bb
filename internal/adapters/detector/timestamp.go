package detector

import (
	"context"
	"fmt"
	iofs "io/fs"
	"iter"
	"time"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

var _ ports.ChangeDetector = (*TimestampDetector)(nil)

// Walker enumerates the non-directory entries under a root.
type Walker interface {
	WalkFiles(root string) iter.Seq2[string, iofs.DirEntry]
}

// TimestampDetector compares modification times against per-path baseline times.
// It cannot see rewrites that keep an older or equal modification time.
type TimestampDetector struct {
	state  ports.CacheState
	walker Walker
	now    func() time.Time
}

// NewTimestampDetector creates a TimestampDetector.
func NewTimestampDetector(state ports.CacheState, walker Walker) *TimestampDetector {
	return &TimestampDetector{state: state, walker: walker, now: time.Now}
}

// Mode returns domain.DetectorMtime.
func (d *TimestampDetector) Mode() domain.DetectorMode {
	return domain.DetectorMtime
}

// Baseline records the current time for every path.
func (d *TimestampDetector) Baseline(_ context.Context, paths []string) error {
	at := d.now()
	for _, p := range paths {
		if err := d.state.RecordBaselineTimestamp(p, at); err != nil {
			return err
		}
	}
	return nil
}

// Detect reports the first entry whose modification time, in whole seconds, is after
// the baseline time of the tracked path containing it. An empty index counts as changed.
func (d *TimestampDetector) Detect(ctx context.Context) (domain.ChangeReport, error) {
	report := domain.ChangeReport{Mode: domain.DetectorMtime}

	index, err := d.state.BaselineTimestamps()
	if err != nil {
		return report, err
	}
	if len(index) == 0 {
		report.Changed = true
		report.Summary = noBaselineSummary
		return report, nil
	}

	paths, err := d.state.TrackedPaths()
	if err != nil {
		return report, err
	}

	seen := make(map[string]struct{}, len(paths))
	for _, root := range paths {
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}

		baseline, ok := index[root]
		if !ok {
			continue
		}

		for path, entry := range d.walker.WalkFiles(root) {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Unix() > baseline {
				report.Changed = true
				report.Trigger = path
				report.Summary = fmt.Sprintf("%s was modified after %s", path,
					time.Unix(baseline, 0).UTC().Format(time.RFC3339))
				return report, nil
			}
		}
	}

	return report, nil
}
