package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOperation is returned when the requested operation is not one of fetch, add or push.
	ErrUnknownOperation = zerr.New("unknown operation, expected one of fetch, add, push")

	// ErrInvalidArguments is returned when an operation receives the wrong number of arguments.
	ErrInvalidArguments = zerr.New("invalid arguments for operation")

	// ErrOperationTimedOut is returned when an operation exceeds the configured wall-clock bound.
	ErrOperationTimedOut = zerr.New("operation timed out")

	// ErrOperationPanicked is returned when an operation panics inside the execution guard.
	ErrOperationPanicked = zerr.New("operation panicked")

	// ErrInvalidConfig is returned when a configuration value is out of range or not recognised.
	ErrInvalidConfig = zerr.New("invalid configuration value")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrNotFound is returned when no candidate URL yielded a downloadable archive.
	ErrNotFound = zerr.New("could not download cache")

	// ErrTransferFailed is returned when uploading an archive fails.
	ErrTransferFailed = zerr.New("failed to upload cache")

	// ErrPackFailed is returned when the archiver exits non-zero while packing.
	ErrPackFailed = zerr.New("failed to pack archive")

	// ErrExtractFailed is returned when extraction fails for a reason other than missing entries.
	ErrExtractFailed = zerr.New("failed to extract archive")

	// ErrUnsupportedCompression is returned when a backend cannot produce the requested compression.
	ErrUnsupportedCompression = zerr.New("unsupported compression for this archiver")

	// ErrUnsafeArchiveEntry is returned when an archive entry resolves outside the requested paths.
	ErrUnsafeArchiveEntry = zerr.New("archive entry escapes requested paths")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrStateDirCreateFailed is returned when the state directory cannot be created.
	ErrStateDirCreateFailed = zerr.New("failed to create state directory")

	// ErrStateReadFailed is returned when a state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read cache state")

	// ErrStateWriteFailed is returned when a state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write cache state")

	// ErrStateUnmarshalFailed is returned when the mtime index cannot be decoded.
	ErrStateUnmarshalFailed = zerr.New("failed to unmarshal mtime index")

	// ErrStateMarshalFailed is returned when the mtime index cannot be encoded.
	ErrStateMarshalFailed = zerr.New("failed to marshal mtime index")

	// ErrPathResolveFailed is returned when a tracked path cannot be made absolute.
	ErrPathResolveFailed = zerr.New("failed to resolve path")

	// ErrPathCreateFailed is returned when a tracked path cannot be created.
	ErrPathCreateFailed = zerr.New("failed to create tracked path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")
)
