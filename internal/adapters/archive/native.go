package archive

import (
	"archive/tar"
	"compress/bzip2"
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/zerr"
)

// nativeBackend packs and unpacks in-process. Entry names are absolute, matching
// archives produced by "tar -P", so either backend can read the other's output.
type nativeBackend struct{}

func (b *nativeBackend) name() string {
	return "native"
}

func (b *nativeBackend) pack(ctx context.Context, target string, paths []string) (*domain.CommandResult, error) {
	c := domain.CompressionFor(target)
	if c == domain.CompressionBzip2 {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedCompression,
			"packing bzip2 archives requires tar on PATH, use a .tgz or .tzst URL instead"), "target", target)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "target", target)
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeArchive(ctx, tmp, c, paths); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "target", target)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "target", target)
	}
	return nil, nil
}

func writeArchive(ctx context.Context, w io.Writer, c domain.Compression, paths []string) error {
	var cw io.WriteCloser
	switch c {
	case domain.CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return zerr.Wrap(err, domain.ErrPackFailed.Error())
		}
		cw = enc
	default:
		cw = gzip.NewWriter(w)
	}

	tw := tar.NewWriter(cw)
	for _, root := range paths {
		if err := addTree(ctx, tw, root); err != nil {
			_ = tw.Close()
			_ = cw.Close()
			return err
		}
	}

	if err := tw.Close(); err != nil {
		_ = cw.Close()
		return zerr.Wrap(err, domain.ErrPackFailed.Error())
	}
	if err := cw.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrPackFailed.Error())
	}
	return nil
}

func addTree(ctx context.Context, tw *tar.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return zerr.With(zerr.Wrap(walkErr, domain.ErrPackFailed.Error()), "path", path)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
		}

		var link string
		switch {
		case info.Mode().IsRegular(), info.IsDir():
		case info.Mode()&iofs.ModeSymlink != 0:
			if link, err = os.Readlink(path); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
			}
		default:
			return nil
		}

		hdr, err := tar.FileInfoHeader(info, link)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
		}
		hdr.Name = filepath.ToSlash(path)
		if info.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return copyFileInto(tw, path)
	})
}

func copyFileInto(w io.Writer, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking a tracked path
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackFailed.Error()), "path", path)
	}
	return nil
}

func (b *nativeBackend) unpack(ctx context.Context, archive string, paths []string) (*domain.ExtractResult, error) {
	f, err := os.Open(archive) //nolint:gosec // Archive lives in the state directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	r, closeReader, err := decompressor(f, domain.CompressionFor(archive))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive)
	}
	defer closeReader()

	x := newExtractor(paths)
	defer x.close()

	tr := tar.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &domain.ExtractResult{Missing: x.missing()},
				zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive)
		}

		if err := x.extract(hdr, tr); err != nil {
			return &domain.ExtractResult{Missing: x.missing()},
				zerr.With(zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive), "entry", hdr.Name)
		}
	}

	return &domain.ExtractResult{Missing: x.missing()}, nil
}

func decompressor(r io.Reader, c domain.Compression) (io.Reader, func(), error) {
	switch c {
	case domain.CompressionGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gr, func() { _ = gr.Close() }, nil
	case domain.CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	default:
		return bzip2.NewReader(r), func() {}, nil
	}
}

// extractor writes the entries that fall under the requested paths. Writes below a
// requested directory go through an os.Root so that neither ".." nor symlinks planted
// by earlier entries can reach outside it.
type extractor struct {
	requested []string
	found     map[string]bool
	roots     map[string]*os.Root
}

func newExtractor(paths []string) *extractor {
	requested := make([]string, len(paths))
	for i, p := range paths {
		requested[i] = filepath.Clean(p)
	}
	return &extractor{
		requested: requested,
		found:     make(map[string]bool, len(paths)),
		roots:     make(map[string]*os.Root),
	}
}

func (x *extractor) close() {
	for _, r := range x.roots {
		_ = r.Close()
	}
}

// match returns the requested path containing name and name relative to it.
func (x *extractor) match(name string) (root, rel string, ok bool) {
	for _, p := range x.requested {
		if name == p {
			return p, ".", true
		}
		prefix := p + string(filepath.Separator)
		if p == string(filepath.Separator) {
			prefix = p
		}
		if rest, found := strings.CutPrefix(name, prefix); found {
			return p, rest, true
		}
	}
	return "", "", false
}

func (x *extractor) extract(hdr *tar.Header, r io.Reader) error {
	if slices.Contains(strings.Split(hdr.Name, "/"), "..") {
		return domain.ErrUnsafeArchiveEntry
	}

	name := filepath.Clean(filepath.FromSlash(hdr.Name))
	root, rel, ok := x.match(name)
	if !ok {
		return nil
	}

	switch hdr.Typeflag {
	case tar.TypeDir, tar.TypeReg, tar.TypeSymlink:
	default:
		return nil
	}
	x.found[root] = true

	if rel == "." {
		return extractRoot(hdr, name, r)
	}

	dir, err := x.openRoot(root)
	if err != nil {
		return err
	}

	switch hdr.Typeflag {
	case tar.TypeDir:
		return dir.MkdirAll(rel, domain.DirPerm)
	case tar.TypeSymlink:
		if err := mkdirParent(dir, rel); err != nil {
			return err
		}
		if err := dir.Remove(rel); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		return dir.Symlink(hdr.Linkname, rel)
	default:
		if err := mkdirParent(dir, rel); err != nil {
			return err
		}
		f, err := dir.OpenFile(rel, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, hdr.FileInfo().Mode().Perm())
		if err != nil {
			return err
		}
		//nolint:gosec // Archive size is bounded by what this tool packed
		if _, err := io.Copy(f, r); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		return dir.Chtimes(rel, hdr.ModTime, hdr.ModTime)
	}
}

func mkdirParent(dir *os.Root, rel string) error {
	parent := filepath.Dir(rel)
	if parent == "." {
		return nil
	}
	return dir.MkdirAll(parent, domain.DirPerm)
}

func (x *extractor) openRoot(path string) (*os.Root, error) {
	if r, ok := x.roots[path]; ok {
		return r, nil
	}
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return nil, err
	}
	r, err := os.OpenRoot(path)
	if err != nil {
		return nil, err
	}
	x.roots[path] = r
	return r, nil
}

// extractRoot writes an entry that is itself a requested path.
func extractRoot(hdr *tar.Header, name string, r io.Reader) error {
	switch hdr.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(name, domain.DirPerm)
	case tar.TypeSymlink:
		if err := os.Remove(name); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		return os.Symlink(hdr.Linkname, name)
	default:
		if err := os.MkdirAll(filepath.Dir(name), domain.DirPerm); err != nil {
			return err
		}
		if err := removeEmptyDir(name); err != nil {
			return err
		}
		//nolint:gosec // name is a path the caller asked to extract
		f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, hdr.FileInfo().Mode().Perm())
		if err != nil {
			return err
		}
		//nolint:gosec // Archive size is bounded by what this tool packed
		if _, err := io.Copy(f, r); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		return os.Chtimes(name, hdr.ModTime, hdr.ModTime)
	}
}

// removeEmptyDir clears the empty directory registration leaves at a tracked path so
// that a regular file can be restored in its place. A non-empty directory is kept and
// the subsequent open reports the conflict.
func removeEmptyDir(name string) error {
	info, err := os.Lstat(name)
	if err != nil || !info.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(name)
	if err != nil || len(entries) > 0 {
		return nil
	}
	return os.Remove(name)
}

func (x *extractor) missing() []string {
	var out []string
	for _, p := range x.requested {
		if !x.found[p] {
			out = append(out, p)
		}
	}
	return out
}
