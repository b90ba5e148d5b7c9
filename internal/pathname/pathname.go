// Package pathname implements the POSIX basename and dirname component
// rules, including the trailing-slash and all-slash edge cases the stdlib
// filepath helpers resolve differently.
package pathname

import "strings"

// Base returns the final path component with trailing slashes removed.
// An empty path yields the empty string; a path of only slashes yields "/".
func Base(path string) string {
	if path == "" {
		return ""
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// TrimSuffix removes suffix from name unless it is empty or would consume
// the whole name.
func TrimSuffix(name, suffix string) string {
	if suffix == "" || name == suffix {
		return name
	}
	return strings.TrimSuffix(name, suffix)
}

// Dir returns the parent-directory component. A path with no slash yields
// "."; a path of only slashes yields "/".
func Dir(path string) string {
	if path == "" {
		return "."
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	i := strings.LastIndexByte(trimmed, '/')
	if i < 0 {
		return "."
	}
	parent := strings.TrimRight(trimmed[:i], "/")
	if parent == "" {
		return "/"
	}
	return parent
}
