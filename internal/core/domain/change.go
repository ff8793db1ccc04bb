package domain

import "unicode/utf8"

// DetectorMode names the change-detection strategy in use for a run.
type DetectorMode string

const (
	// DetectorAuto probes the fingerprint capability and falls back to timestamps.
	DetectorAuto DetectorMode = "auto"
	// DetectorContent compares content-hash listings.
	DetectorContent DetectorMode = "content"
	// DetectorMtime compares modification times against baseline timestamps.
	DetectorMtime DetectorMode = "mtime"
)

// ChangeReport is the outcome of a change check.
type ChangeReport struct {
	// Changed reports whether the tracked content differs from the baseline.
	Changed bool
	// Mode is the strategy that produced the report.
	Mode DetectorMode
	// Summary is a bounded, human-readable description of the change.
	Summary string
	// Removed and Added hold the differing listing lines in content mode.
	Removed Listing
	Added   Listing
	// Trigger names the entry that flagged the change in mtime mode.
	Trigger string
}

// Truncate bounds text to limit bytes, appending an ellipsis marker when cut. The cut
// never splits a multi-byte character.
func Truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
