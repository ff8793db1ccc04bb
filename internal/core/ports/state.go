package ports

import (
	"time"

	"go.trai.ch/carry/internal/core/domain"
)

// CacheState is the durable record of one cache slot, kept under the state directory.
//
//go:generate mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks
type CacheState interface {
	// Dir returns the absolute state directory.
	Dir() string

	// RegisterPaths resolves paths to absolute form, creates missing ones as empty
	// directories and appends them to the tracked list. It returns the resolved paths.
	RegisterPaths(paths []string) ([]string, error)

	// TrackedPaths returns every path registered so far, in registration order.
	TrackedPaths() ([]string, error)

	// RecordBaselineTimestamp stores the baseline time for path in the mtime index.
	RecordBaselineTimestamp(path string, at time.Time) error

	// BaselineTimestamps returns the mtime index as path to epoch seconds.
	BaselineTimestamps() (map[string]int64, error)

	// AppendBaseline appends listing to the baseline listing, creating it if needed.
	AppendBaseline(listing domain.Listing) error

	// Baseline reads the baseline listing. A missing file yields an empty listing.
	Baseline() (domain.Listing, error)

	// WritePost replaces the post listing.
	WritePost(listing domain.Listing) error

	// WriteDiff replaces the change-summary log.
	WriteDiff(text string) error

	// FetchArchivePath returns where a downloaded archive of compression c is stored.
	FetchArchivePath(c domain.Compression) string

	// PushArchivePath returns where an archive of compression c is packed before upload.
	PushArchivePath(c domain.Compression) string

	// FetchedArchive returns the path of a previously downloaded archive, if any.
	FetchedArchive() (string, bool)

	// LogPath returns the capture file for one output stream of a named subprocess.
	LogPath(name, stream string) string
}
