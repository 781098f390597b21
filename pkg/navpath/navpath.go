// Package navpath validates and decomposes navigation paths.
//
// The route table is strict about paths (case-sensitive, slash-sensitive),
// so this package deliberately does not normalize trailing slashes. Its job
// is to reject paths that must never enter the dispatcher (absolute URLs,
// smuggled bytes, malformed escapes) and to split a location into the parts
// the dispatcher works with.
package navpath

import (
	"errors"
	"net/url"
	"strings"
)

// Navigation path errors.
var (
	ErrInvalidPath          = errors.New("invalid path")
	ErrAbsoluteURL          = errors.New("path is an absolute URL")
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
)

// ValidateNavPath checks that a path is safe to navigate to.
//
// Navigation targets MUST be app-relative paths:
//   - MUST start with "/"
//   - MUST NOT be a full URL ("http://", "https://", "//")
//
// Backslashes, NUL bytes and malformed percent-escapes are rejected.
// The path is returned unchanged on success; trailing slashes are
// significant to the route table and are preserved.
func ValidateNavPath(path string) (string, error) {
	// SECURITY: reject absolute URLs to prevent open-redirect targets
	// from entering the dispatcher.
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "//") {
		return "", ErrAbsoluteURL
	}
	if !strings.HasPrefix(path, "/") {
		return "", ErrInvalidPath
	}
	if strings.Contains(path, "\\") {
		return "", ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return "", ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// validatePercentEscapes checks that all percent-escapes are %XX with
// two hex digits.
func validatePercentEscapes(path string) error {
	i := 0
	for i < len(path) {
		if path[i] == '%' {
			if i+2 >= len(path) {
				return ErrInvalidPercentEscape
			}
			if !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
				return ErrInvalidPercentEscape
			}
			i += 3
		} else {
			i++
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// SplitPathAndQuery splits a location into path and query components.
// The query is returned without the leading "?".
func SplitPathAndQuery(location string) (path, query string) {
	path, query, _ = strings.Cut(location, "?")
	return path, query
}

// StripBase removes a configured base-path prefix from a path.
// An empty result becomes "/". A path outside the base is returned
// unchanged; the route table will treat it as unmatched.
func StripBase(path, base string) string {
	if base == "" || base == "/" {
		return path
	}
	base = strings.TrimSuffix(base, "/")
	if path == base {
		return "/"
	}
	if strings.HasPrefix(path, base+"/") {
		return path[len(base):]
	}
	return path
}

// DecodeSegment decodes a single captured path segment.
// Malformed escapes fall back to the raw segment rather than failing the
// whole navigation; the handler sees what was actually in the URL.
func DecodeSegment(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}
