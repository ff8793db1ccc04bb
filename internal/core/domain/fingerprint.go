package domain

import (
	"slices"
	"strings"
)

// Fingerprint pairs a content hash with the path it was computed for.
type Fingerprint struct {
	Hash string
	Path string
}

// String renders the fingerprint as a listing line: hash, two spaces, path.
func (f Fingerprint) String() string {
	return f.Hash + "  " + f.Path
}

// Listing is an unordered collection of fingerprints.
type Listing []Fingerprint

// ParseListing reads listing lines of the form "<hash><whitespace><path>".
// Blank lines and lines without a path are ignored. Paths may contain spaces.
func ParseListing(text string) Listing {
	var out Listing
	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		line = strings.TrimLeft(line, " \t")
		sep := strings.IndexAny(line, " \t")
		if sep < 0 {
			continue
		}
		hash := line[:sep]
		path := strings.TrimLeft(line[sep:], " \t")
		if hash == "" || path == "" {
			continue
		}
		out = append(out, Fingerprint{Hash: hash, Path: path})
	}
	return out
}

// String renders every fingerprint on its own line, each terminated by a newline.
func (l Listing) String() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines returns the rendered lines without terminators.
func (l Listing) Lines() []string {
	lines := make([]string, len(l))
	for i, f := range l {
		lines[i] = f.String()
	}
	return lines
}

// SortedUnique returns a copy ordered by rendered line with duplicate lines removed.
func (l Listing) SortedUnique() Listing {
	out := slices.Clone(l)
	slices.SortFunc(out, func(a, b Fingerprint) int {
		return strings.Compare(a.String(), b.String())
	})
	return slices.Compact(out)
}

// DiffListings compares two listings as sets of lines. removed holds lines only in
// before, added holds lines only in after; both are sorted. A rename shows up as one
// removal plus one addition, an in-place edit as a removal and an addition of the
// same path.
func DiffListings(before, after Listing) (removed, added Listing) {
	a := before.SortedUnique()
	b := after.SortedUnique()

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch cmp := strings.Compare(a[i].String(), b[j].String()); {
		case cmp == 0:
			i++
			j++
		case cmp < 0:
			removed = append(removed, a[i])
			i++
		default:
			added = append(added, b[j])
			j++
		}
	}
	removed = append(removed, a[i:]...)
	added = append(added, b[j:]...)
	return removed, added
}
