// Package textutil provides the string and path helpers shared by the
// snapshot parsing pipeline: quote stripping, comma-list splitting,
// full-consumption unsigned parsing, and path normalization that is
// independent of the host platform.
//
// Path joining takes an explicit target separator instead of consulting a
// compiled-in platform constant, so the same code path can be exercised for
// unix-style, drive-letter and UNC-style inputs from any host.
package textutil

import (
	"strconv"
	"strings"
)

// TrimQuotes strips one outer matching pair of single or double quotes from s.
// Unbalanced or mismatched quotes are left untouched.
func TrimQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first := s[0]
	if (first == '"' || first == '\'') && s[len(s)-1] == first {
		return s[1 : len(s)-1]
	}
	return s
}

// SplitCommaList splits value at commas, trims each element, and drops empty
// elements. Returns nil when no non-empty elements remain.
func SplitCommaList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseUnsigned parses value as an unsigned 64-bit integer with automatic
// base detection (0x/0X hex, leading-zero octal, decimal). The whole string
// must be consumed for the parse to succeed.
func ParseUnsigned(value string) (uint64, bool) {
	v, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizePath rewrites all backslashes in path to forward slashes.
// When stripTrailing is set, trailing slashes are removed as well.
func NormalizePath(path string, stripTrailing bool) string {
	out := strings.ReplaceAll(path, "\\", "/")
	if stripTrailing {
		out = strings.TrimRight(out, "/")
	}
	return out
}

// IsAbsPath reports whether path is absolute under unix ("/..."),
// UNC ("\\...") or drive-letter ("C:...") conventions.
func IsAbsPath(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' || path[0] == '\\' {
		return true
	}
	if len(path) > 1 && path[1] == ':' && isLetter(path[0]) {
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// JoinPath joins rel onto base using sep as the target separator.
// An absolute rel replaces base entirely; an empty rel returns base.
func JoinPath(base, rel string, sep byte) string {
	if rel == "" {
		return base
	}
	if IsAbsPath(rel) {
		return rel
	}
	if base == "" {
		return rel
	}
	last := base[len(base)-1]
	if last != sep && last != '/' && last != '\\' {
		return base + string(sep) + rel
	}
	return base + rel
}
