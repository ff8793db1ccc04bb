package fs

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints tracked paths with xxhash.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Available reports true: fingerprinting runs in-process and needs no external tool.
func (h *Hasher) Available(_ context.Context) bool {
	return true
}

// Listing fingerprints every regular file and symlink under paths. Regular files are
// hashed by content, symlinks by their target. Other entries are skipped.
func (h *Hasher) Listing(ctx context.Context, paths []string) (domain.Listing, error) {
	var listing domain.Listing

	for _, root := range paths {
		for path, d := range h.walker.WalkFiles(root) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			var sum uint64
			switch {
			case d.Type().IsRegular():
				s, err := h.ComputeFileHash(path)
				if err != nil {
					return nil, err
				}
				sum = s
			case d.Type()&iofs.ModeSymlink != 0:
				target, err := os.Readlink(path)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
				}
				sum = xxhash.Sum64String(target)
			default:
				continue
			}

			listing = append(listing, domain.Fingerprint{Hash: fmt.Sprintf("%016x", sum), Path: path})
		}
	}

	return listing, nil
}

// ComputeFileHash computes the xxhash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking a tracked path
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}
