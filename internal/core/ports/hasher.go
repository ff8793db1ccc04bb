package ports

import (
	"context"

	"go.trai.ch/carry/internal/core/domain"
)

// Hasher computes content fingerprints of tracked paths.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Available reports whether content fingerprinting can be used on this host.
	Available(ctx context.Context) bool

	// Listing walks every path recursively and fingerprints each file found.
	// Paths that do not exist contribute nothing.
	Listing(ctx context.Context, paths []string) (domain.Listing, error)
}
