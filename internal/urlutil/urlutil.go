package urlutil

import (
	"net/url"
	"strings"
)

// SplitLocation splits a full or path-relative URL into its path and
// fragment. Scheme, host and query are dropped; an empty path becomes "/".
func SplitLocation(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "/", ""
	}

	parsed, err := url.Parse(trimmed)
	if err == nil {
		return normalizePath(parsed.EscapedPath()), parsed.EscapedFragment()
	}

	path, fragment, _ := strings.Cut(trimmed, "#")
	path, _, _ = strings.Cut(path, "?")
	return normalizePath(path), fragment
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
