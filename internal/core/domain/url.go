package domain

import (
	"net/url"
	"strings"
)

// SafeURL renders a cache URL for logs. Only the last two path segments are kept;
// the query string, which often carries credentials or signatures, is dropped.
func SafeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}

	var segments []string
	for s := range strings.SplitSeq(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return u.Host
	}
	if len(segments) > 2 {
		segments = segments[len(segments)-2:]
	}
	return strings.Join(segments, "/")
}
