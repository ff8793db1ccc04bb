// Package fs provides file system adapters for walking and fingerprinting tracked paths.
package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"
)

// Walker enumerates the contents of tracked paths.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every non-directory entry under root in lexical order, including
// root itself when it is not a directory. Symlinks are yielded, not followed. A missing
// root yields nothing, and unreadable entries are skipped.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, iofs.DirEntry] {
	return func(yield func(string, iofs.DirEntry) bool) {
		_ = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}

			if !yield(path, d) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
