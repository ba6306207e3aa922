// Package pathutil implements the resolver's path normalization and
// item-name validation primitives. Both are pure syntactic operations: they
// never consult the filesystem.
package pathutil

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes a path without touching the filesystem. It drops
// "." components and resolves ".." components against the nearest preceding
// normal component, stopping at a root (a ".." applied to a root is a
// no-op) or accumulating at the start of a relative path. An empty path
// normalizes to ".".
//
// This mirrors filepath.Clean's component-stack algorithm but is spelled out
// explicitly here because Clean's rules around a leading ".." on a relative
// path and a volume/root prefix need to match the resolver's own contract
// (ground: original_source/src/helpers.rs's normalize).
func Normalize(p string) string {
	if p == "" {
		return "."
	}

	volume := filepath.VolumeName(p)
	rest := p[len(volume):]
	rooted := len(rest) > 0 && isPathSeparator(rest[0])

	components := splitComponents(rest)

	stack := make([]string, 0, len(components))
	for _, c := range components {
		switch c {
		case ".":
			// Drop current-directory components entirely.
			continue
		case "..":
			if len(stack) > 0 && stack[len(stack)-1] != ".." {
				// Pop the preceding normal component.
				stack = stack[:len(stack)-1]
			} else if rooted {
				// ".." applied to a root is a no-op.
				continue
			} else {
				// Accumulate at the start of a relative path.
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, c)
		}
	}

	var b strings.Builder
	b.WriteString(volume)
	if rooted {
		b.WriteRune(filepath.Separator)
	}
	for i, c := range stack {
		if i > 0 {
			b.WriteRune(filepath.Separator)
		}
		b.WriteString(c)
	}

	result := b.String()
	if result == "" || result == volume {
		return "."
	}
	return result
}

// NormalizeNFC behaves like Normalize but additionally applies Unicode NFC
// normalization to each path component. Libraries rooted on an
// NFD-decomposing filesystem (classic HFS+/APFS-in-HFS-mode on macOS) can
// request this via Library's UnicodeNormalization option so that item names
// compare equal regardless of how the filesystem returned their bytes.
//
// Ground: filesystem/directory_darwin.go's composed/decomposed filename
// handling in the teacher repository.
func NormalizeNFC(p string) string {
	normalized := Normalize(p)
	volume := filepath.VolumeName(normalized)
	rest := normalized[len(volume):]
	rooted := len(rest) > 0 && isPathSeparator(rest[0])

	components := splitComponents(rest)
	for i, c := range components {
		components[i] = norm.NFC.String(c)
	}

	var b strings.Builder
	b.WriteString(volume)
	if rooted {
		b.WriteRune(filepath.Separator)
	}
	for i, c := range components {
		if i > 0 {
			b.WriteRune(filepath.Separator)
		}
		b.WriteString(c)
	}

	result := b.String()
	if result == "" || result == volume {
		return "."
	}
	return result
}

// splitComponents splits a (volume-stripped) path into its non-empty
// components, treating any of the platform's path separators as a divider.
func splitComponents(p string) []string {
	var components []string
	start := 0
	for i := 0; i < len(p); i++ {
		if isPathSeparator(p[i]) {
			if i > start {
				components = append(components, p[start:i])
			}
			start = i + 1
		}
	}
	if start < len(p) {
		components = append(components, p[start:])
	}
	return components
}

// isPathSeparator mirrors os.IsPathSeparator without importing os, since
// this package must remain filesystem-free (separators are pure syntax).
func isPathSeparator(c byte) bool {
	if c == '/' {
		return true
	}
	return filepath.Separator == '\\' && c == '\\'
}
