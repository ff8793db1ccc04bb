package ports

import (
	"context"

	"go.trai.ch/carry/internal/core/domain"
)

// Archiver packs tracked paths into a compressed archive and extracts them again.
// onTick is invoked periodically while the work is in progress; it may be nil.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Pack writes an archive of exactly paths into target. The compression is chosen
	// by target's suffix.
	Pack(ctx context.Context, target string, paths []string, onTick func()) (*domain.CommandResult, error)

	// Unpack extracts paths from archive on a best-effort basis. Requested paths with
	// no entries in the archive are reported in ExtractResult.Missing.
	Unpack(ctx context.Context, archive string, paths []string, onTick func()) (*domain.ExtractResult, error)
}
