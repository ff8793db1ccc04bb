package domain

import "time"

// ArchiverMode selects the archive backend.
type ArchiverMode string

const (
	// ArchiverAuto uses tar when it is on PATH and the in-process archiver otherwise.
	ArchiverAuto ArchiverMode = "auto"
	// ArchiverTar spawns a tar child process.
	ArchiverTar ArchiverMode = "tar"
	// ArchiverNative packs and unpacks in-process.
	ArchiverNative ArchiverMode = "native"
)

// Config is the configuration of one process run, built once at startup.
type Config struct {
	// StateDir is the absolute path of the cache state directory.
	StateDir string
	// Timeout bounds the wall-clock duration of one operation.
	Timeout time.Duration
	// OSHint identifies the build image's operating system.
	OSHint string
	// Detector selects the change-detection strategy.
	Detector DetectorMode
	// Archiver selects the archive backend.
	Archiver ArchiverMode
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}
