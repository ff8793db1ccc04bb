package domain

// CommandResult captures the outcome of one external command.
type CommandResult struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *CommandResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// ExtractResult describes a best-effort extraction.
type ExtractResult struct {
	// Missing lists requested paths that had no entries in the archive.
	Missing []string
	// Output is the captured archiver output, nil for in-process extraction.
	Output *CommandResult
}
