package ports

import (
	"context"

	"go.trai.ch/carry/internal/core/domain"
)

// CommandRunner runs external commands from an explicit argument vector.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv and captures its output. A non-zero exit is reported through
	// CommandResult.ExitCode with a nil error. Cancelling ctx kills the process.
	Run(ctx context.Context, argv []string) (*domain.CommandResult, error)
}
