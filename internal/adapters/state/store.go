// Package state implements ports.CacheState as plain files under the state directory.
package state

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.CacheState.
type Store struct {
	dir     string
	homeDir func() (string, error)
}

// NewStore creates the state directory at dir if needed and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	return newStoreWithHome(dir, os.UserHomeDir)
}

func newStoreWithHome(dir string, homeDir func() (string, error)) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateDirCreateFailed.Error()), "dir", cleanDir)
	}
	return &Store{dir: cleanDir, homeDir: homeDir}, nil
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// RegisterPaths expands "~", resolves each path to absolute form, creates missing paths
// as empty directories and appends the results to the tracked list.
func (s *Store) RegisterPaths(paths []string) ([]string, error) {
	home, _ := s.homeDir()

	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(domain.ExpandHome(p, home))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", p)
		}

		if _, err := os.Lstat(abs); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", abs)
			}
			if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrPathCreateFailed.Error()), "path", abs)
			}
		}
		resolved = append(resolved, abs)
	}

	var b strings.Builder
	for _, p := range resolved {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if err := s.appendFile(domain.PathsFileName, b.String()); err != nil {
		return nil, err
	}

	return resolved, nil
}

// TrackedPaths returns the tracked list in registration order. Without a tracked list it
// falls back to the sorted keys of the mtime index.
func (s *Store) TrackedPaths() ([]string, error) {
	data, err := s.readFile(domain.PathsFileName)
	if err != nil {
		return nil, err
	}
	if data == nil {
		index, err := s.BaselineTimestamps()
		if err != nil {
			return nil, err
		}
		return slices.Sorted(maps.Keys(index)), nil
	}

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStateReadFailed.Error())
	}
	return paths, nil
}

// RecordBaselineTimestamp stores at, truncated to whole seconds, for path.
func (s *Store) RecordBaselineTimestamp(path string, at time.Time) error {
	index, err := s.BaselineTimestamps()
	if err != nil {
		return err
	}
	index[path] = at.Unix()

	data, err := yaml.Marshal(index)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateMarshalFailed.Error())
	}
	return s.atomicWriteFile(domain.MtimesFileName, data)
}

// BaselineTimestamps reads the mtime index. A missing index yields an empty map.
func (s *Store) BaselineTimestamps() (map[string]int64, error) {
	data, err := s.readFile(domain.MtimesFileName)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int64)
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateUnmarshalFailed.Error()), "file", domain.MtimesFileName)
	}
	return index, nil
}

// AppendBaseline appends listing to the baseline listing. The file is created even when
// listing is empty.
func (s *Store) AppendBaseline(listing domain.Listing) error {
	return s.appendFile(domain.BaselineListingFileName, listing.String())
}

// Baseline reads the baseline listing.
func (s *Store) Baseline() (domain.Listing, error) {
	data, err := s.readFile(domain.BaselineListingFileName)
	if err != nil {
		return nil, err
	}
	return domain.ParseListing(string(data)), nil
}

// WritePost replaces the post listing.
func (s *Store) WritePost(listing domain.Listing) error {
	return s.atomicWriteFile(domain.PostListingFileName, []byte(listing.String()))
}

// WriteDiff replaces the diff log.
func (s *Store) WriteDiff(text string) error {
	return s.atomicWriteFile(domain.DiffLogFileName, []byte(text))
}

// FetchArchivePath returns the download target for compression c.
func (s *Store) FetchArchivePath(c domain.Compression) string {
	return domain.StatePath(s.dir, domain.FetchArchiveBaseName+"."+c.Ext())
}

// PushArchivePath returns the pack target for compression c.
func (s *Store) PushArchivePath(c domain.Compression) string {
	return domain.StatePath(s.dir, domain.PushArchiveBaseName+"."+c.Ext())
}

// FetchedArchive returns the first downloaded archive present in the state directory.
func (s *Store) FetchedArchive() (string, bool) {
	for _, c := range domain.Compressions() {
		path := s.FetchArchivePath(c)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// LogPath returns the capture file for one stream of a named subprocess.
func (s *Store) LogPath(name, stream string) string {
	return domain.LogPath(s.dir, name, stream)
}

// readFile returns nil data and no error when the file does not exist.
func (s *Store) readFile(name string) ([]byte, error) {
	path := domain.StatePath(s.dir, name)
	//nolint:gosec // Path is constructed from the state directory and a fixed file name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "file", path)
	}
	return data, nil
}

func (s *Store) appendFile(name, text string) error {
	path := domain.StatePath(s.dir, name)
	//nolint:gosec // Path is constructed from the state directory and a fixed file name
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "file", path)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "file", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "file", path)
	}
	return nil
}

// atomicWriteFile replaces name through a temp file and rename so readers never see a
// partial write.
func (s *Store) atomicWriteFile(name string, data []byte) error {
	path := domain.StatePath(s.dir, name)
	fail := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "file", path)
	}

	tmpFile, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fail(err)
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fail(err)
	}
	if err := tmpFile.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return nil
}
