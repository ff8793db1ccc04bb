package domain

import (
	"net/url"
	"strings"
)

// Compression identifies the algorithm wrapping a tar stream.
// It is inferred purely from a file name or URL suffix on both ends of a transfer.
type Compression int

const (
	// CompressionBzip2 is the heavier default, used for any unrecognised suffix.
	CompressionBzip2 Compression = iota
	// CompressionGzip is the lighter alternate.
	CompressionGzip
	// CompressionZstd trades a little size for much faster packing.
	CompressionZstd
)

type suffixRule struct {
	suffix      string
	compression Compression
}

// Longer suffixes first so ".tar.gz" is not mistaken for something else.
var suffixRules = []suffixRule{
	{".tar.bz2", CompressionBzip2},
	{".tar.gz", CompressionGzip},
	{".tar.zst", CompressionZstd},
	{".tbz", CompressionBzip2},
	{".tgz", CompressionGzip},
	{".tzst", CompressionZstd},
}

// CompressionFor returns the compression implied by the suffix of a file name or URL.
// Query strings and fragments of URLs are ignored.
func CompressionFor(name string) Compression {
	p := name
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		p = u.Path
	}
	p = strings.ToLower(p)
	for _, rule := range suffixRules {
		if strings.HasSuffix(p, rule.suffix) {
			return rule.compression
		}
	}
	return CompressionBzip2
}

// Ext returns the canonical file extension, without the leading dot.
func (c Compression) Ext() string {
	switch c {
	case CompressionGzip:
		return "tgz"
	case CompressionZstd:
		return "tzst"
	default:
		return "tbz"
	}
}

// TarFlag returns the tar command-line flag selecting this compression.
func (c Compression) TarFlag() string {
	switch c {
	case CompressionGzip:
		return "-z"
	case CompressionZstd:
		return "--zstd"
	default:
		return "-j"
	}
}

func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return "bzip2"
	}
}

// Compressions lists every supported compression.
func Compressions() []Compression {
	return []Compression{CompressionBzip2, CompressionGzip, CompressionZstd}
}
