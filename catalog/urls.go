// Package catalog — URL helpers.
// The catalog identifies courses, paths, and modules by the last segment of
// their public URLs, so identifier extraction lives next to the client.
package catalog

import (
	"net/url"
	"strings"
)

// CourseSlug extracts the catalog identifier from a course URL. A bare slug
// passes through unchanged, so callers can accept either form.
func CourseSlug(urlOrSlug string) string {
	s := CleanURL(urlOrSlug)
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// CleanURL strips query parameters and fragments. Catalog URLs carry locale
// and tracking parameters that must not leak into identifiers or output.
func CleanURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		// Not parseable as a URL; treat as an opaque identifier.
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}
