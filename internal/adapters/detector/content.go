// Package detector implements the change-detection strategies.
package detector

import (
	"context"

	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

const noBaselineSummary = "no baseline snapshot"

var _ ports.ChangeDetector = (*ContentDetector)(nil)

// ContentDetector compares content fingerprints against the baseline listing.
type ContentDetector struct {
	state  ports.CacheState
	hasher ports.Hasher
}

// NewContentDetector creates a ContentDetector.
func NewContentDetector(state ports.CacheState, hasher ports.Hasher) *ContentDetector {
	return &ContentDetector{state: state, hasher: hasher}
}

// Mode returns domain.DetectorContent.
func (d *ContentDetector) Mode() domain.DetectorMode {
	return domain.DetectorContent
}

// Baseline appends the fingerprints of paths to the baseline listing.
func (d *ContentDetector) Baseline(ctx context.Context, paths []string) error {
	listing, err := d.hasher.Listing(ctx, paths)
	if err != nil {
		return err
	}
	return d.state.AppendBaseline(listing)
}

// Detect fingerprints every tracked path and diffs the result against the baseline.
// An empty baseline always counts as changed.
func (d *ContentDetector) Detect(ctx context.Context) (domain.ChangeReport, error) {
	report := domain.ChangeReport{Mode: domain.DetectorContent}

	baseline, err := d.state.Baseline()
	if err != nil {
		return report, err
	}
	if len(baseline) == 0 {
		report.Changed = true
		report.Summary = noBaselineSummary
		return report, nil
	}

	paths, err := d.state.TrackedPaths()
	if err != nil {
		return report, err
	}
	post, err := d.hasher.Listing(ctx, paths)
	if err != nil {
		return report, err
	}
	if err := d.state.WritePost(post); err != nil {
		return report, err
	}

	report.Removed, report.Added = domain.DiffListings(baseline, post)
	if len(report.Removed) == 0 && len(report.Added) == 0 {
		return report, d.state.WriteDiff("")
	}
	report.Changed = true

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(baseline.SortedUnique().Lines()),
		B:        withNewlines(post.SortedUnique().Lines()),
		FromFile: domain.BaselineListingFileName,
		ToFile:   domain.PostListingFileName,
		Context:  0,
	})
	if err != nil {
		return report, zerr.Wrap(err, "failed to render change summary")
	}
	if err := d.state.WriteDiff(text); err != nil {
		return report, err
	}

	report.Summary = domain.Truncate(text, domain.SummaryLimit)
	return report, nil
}

func withNewlines(lines []string) []string {
	for i := range lines {
		lines[i] += "\n"
	}
	return lines
}
