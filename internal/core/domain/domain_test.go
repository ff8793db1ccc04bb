package domain_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCompressionFor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Compression
	}{
		{name: "tgz url", in: "https://cache.example.com/slot/cache.tgz", want: domain.CompressionGzip},
		{name: "tgz url with signature", in: "https://cache.example.com/slot/cache.tgz?sig=abc.tbz", want: domain.CompressionGzip},
		{name: "tbz url", in: "https://cache.example.com/slot/cache.tbz", want: domain.CompressionBzip2},
		{name: "tar.gz file", in: "/tmp/state/fetch.tar.gz", want: domain.CompressionGzip},
		{name: "tzst file", in: "/tmp/state/fetch.tzst", want: domain.CompressionZstd},
		{name: "tar.zst url", in: "http://host/a.TAR.ZST", want: domain.CompressionZstd},
		{name: "unknown suffix defaults to bzip2", in: "https://host/cache", want: domain.CompressionBzip2},
		{name: "empty", in: "", want: domain.CompressionBzip2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CompressionFor(tt.in))
		})
	}
}

func TestCompression_ExtRoundTrip(t *testing.T) {
	for _, c := range domain.Compressions() {
		assert.Equal(t, c, domain.CompressionFor("fetch."+c.Ext()), "suffix must select %s", c)
	}
}

func TestParseOperation(t *testing.T) {
	for _, op := range domain.Operations() {
		got, err := domain.ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	_, err := domain.ParseOperation("Fetch")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownOperation))

	_, err = domain.ParseOperation("instance_eval")
	assert.True(t, errors.Is(err, domain.ErrUnknownOperation))
}

func TestOperation_ValidateArgs(t *testing.T) {
	tests := []struct {
		op      domain.Operation
		args    []string
		wantErr bool
	}{
		{domain.OperationFetch, []string{"u1", "u2"}, false},
		{domain.OperationFetch, nil, true},
		{domain.OperationAdd, []string{"/a"}, false},
		{domain.OperationAdd, []string{}, true},
		{domain.OperationPush, []string{"u"}, false},
		{domain.OperationPush, []string{"u", "v"}, true},
		{domain.OperationPush, nil, true},
	}

	for _, tt := range tests {
		err := tt.op.ValidateArgs(tt.args)
		if tt.wantErr {
			require.Error(t, err, "%s %v", tt.op, tt.args)
			assert.True(t, errors.Is(err, domain.ErrInvalidArguments))
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, string(tt.op), zErr.Metadata()["operation"])
		} else {
			require.NoError(t, err, "%s %v", tt.op, tt.args)
		}
	}
}

func TestParseListing(t *testing.T) {
	text := "aaaa  /tmp/x/one\n\nbbbb\t/tmp/x/with space\nmalformed\ncccc  /tmp/x/two\r\n"

	got := domain.ParseListing(text)

	assert.Equal(t, domain.Listing{
		{Hash: "aaaa", Path: "/tmp/x/one"},
		{Hash: "bbbb", Path: "/tmp/x/with space"},
		{Hash: "cccc", Path: "/tmp/x/two"},
	}, got)
}

func TestListing_StringParsesBack(t *testing.T) {
	l := domain.Listing{{Hash: "01", Path: "/a"}, {Hash: "02", Path: "/b c"}}
	assert.Equal(t, "01  /a\n02  /b c\n", l.String())
	assert.Equal(t, l, domain.ParseListing(l.String()))
	assert.Empty(t, domain.Listing(nil).String())
}

func TestListing_SortedUnique(t *testing.T) {
	l := domain.Listing{
		{Hash: "bb", Path: "/z"},
		{Hash: "aa", Path: "/a"},
		{Hash: "bb", Path: "/z"},
	}

	assert.Equal(t, domain.Listing{{Hash: "aa", Path: "/a"}, {Hash: "bb", Path: "/z"}}, l.SortedUnique())
	assert.Len(t, l, 3, "input must not be modified")
}

func TestDiffListings(t *testing.T) {
	before := domain.Listing{
		{Hash: "11", Path: "/c/kept"},
		{Hash: "22", Path: "/c/edited"},
		{Hash: "33", Path: "/c/deleted"},
		{Hash: "44", Path: "/c/old-name"},
		{Hash: "11", Path: "/c/kept"},
	}
	after := domain.Listing{
		{Hash: "44", Path: "/c/new-name"},
		{Hash: "11", Path: "/c/kept"},
		{Hash: "99", Path: "/c/edited"},
		{Hash: "55", Path: "/c/created"},
	}

	removed, added := domain.DiffListings(before, after)

	assert.Equal(t, domain.Listing{
		{Hash: "22", Path: "/c/edited"},
		{Hash: "33", Path: "/c/deleted"},
		{Hash: "44", Path: "/c/old-name"},
	}, removed)
	assert.Equal(t, domain.Listing{
		{Hash: "44", Path: "/c/new-name"},
		{Hash: "55", Path: "/c/created"},
		{Hash: "99", Path: "/c/edited"},
	}, added)
}

func TestDiffListings_OrderAndDuplicatesDoNotMatter(t *testing.T) {
	before := domain.Listing{{Hash: "2", Path: "/b"}, {Hash: "1", Path: "/a"}, {Hash: "1", Path: "/a"}}
	after := domain.Listing{{Hash: "1", Path: "/a"}, {Hash: "2", Path: "/b"}}

	removed, added := domain.DiffListings(before, after)

	assert.Empty(t, removed)
	assert.Empty(t, added)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", domain.Truncate("short", 10))
	assert.Equal(t, "0123456789", domain.Truncate("0123456789", 10))
	assert.Equal(t, "01234...", domain.Truncate("0123456789", 5))

	long := strings.Repeat("x", domain.SummaryLimit+50)
	got := domain.Truncate(long, domain.SummaryLimit)
	assert.Len(t, got, domain.SummaryLimit+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// "é" and "ü" are two bytes each, so a cut at 5 falls inside "ü".
	text := "/é/ü/x"

	got := domain.Truncate(text, 5)

	assert.Equal(t, "/é/...", got)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, utf8.ValidString(domain.Truncate(strings.Repeat("日本", 400), domain.SummaryLimit)))
}

func TestLogPath(t *testing.T) {
	assert.Equal(t, "/state/logs/unpack.stderr.log", domain.LogPath("/state", "unpack", "stderr"))
	assert.Equal(t, "/state/paths", domain.StatePath("/state", domain.PathsFileName))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/ci", domain.ExpandHome("~", "/home/ci"))
	assert.Equal(t, "/home/ci/.cache/pip", domain.ExpandHome("~/.cache/pip", "/home/ci"))
	assert.Equal(t, "~other/x", domain.ExpandHome("~other/x", "/home/ci"))
	assert.Equal(t, "/abs", domain.ExpandHome("/abs", "/home/ci"))
	assert.Equal(t, "~/x", domain.ExpandHome("~/x", ""))
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://bucket.s3.amazonaws.com/ci/project/main/cache.tgz?X-Amz-Signature=secret", "main/cache.tgz"},
		{"https://host/cache.tbz", "cache.tbz"},
		{"https://host/", "host"},
		{"http://host:8080/a//b/", "a/b"},
		{"::not a url", "<invalid url>"},
	}

	for _, tt := range tests {
		got := domain.SafeURL(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.NotContains(t, got, "secret")
	}
}
