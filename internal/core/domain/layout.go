package domain

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultStateDirName is the name of the state directory created under the user's home.
	DefaultStateDirName = ".carry"

	// PathsFileName holds the newline-delimited list of tracked paths.
	PathsFileName = "paths"

	// MtimesFileName holds the YAML mapping of tracked path to baseline epoch seconds.
	MtimesFileName = "mtimes.yaml"

	// BaselineListingFileName holds the fingerprint listing captured after extraction.
	BaselineListingFileName = "fingerprints.before"

	// PostListingFileName holds the fingerprint listing recomputed at push time.
	PostListingFileName = "fingerprints.after"

	// DiffLogFileName holds the full diff of the last change check.
	DiffLogFileName = "diff.log"

	// FetchArchiveBaseName is the base name of downloaded archives.
	FetchArchiveBaseName = "fetch"

	// PushArchiveBaseName is the base name of archives packed for upload.
	PushArchiveBaseName = "push"

	// LogsDirName is the directory holding captured subprocess output.
	LogsDirName = "logs"

	// DefaultTimeoutSeconds is the wall-clock bound applied to every operation.
	DefaultTimeoutSeconds = 180

	// SummaryLimit is the number of diff bytes surfaced in a change summary.
	SummaryLimit = 1000

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StatePath joins a file name onto the state directory.
func StatePath(stateDir, name string) string {
	return filepath.Join(stateDir, name)
}

// LogPath returns the capture file for one stream of a named subprocess invocation.
// stream is "stdout" or "stderr".
func LogPath(stateDir, name, stream string) string {
	return filepath.Join(stateDir, LogsDirName, name+"."+stream+".log")
}

// ExpandHome replaces a leading "~" or "~/" in path with home.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
