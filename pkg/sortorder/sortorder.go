// Package sortorder implements the two orderings a library can impose on a
// directory's children: by final path component name, or by modification
// time.
//
// Ground: original_source/src/library/sort_order.rs.
package sortorder

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mutagen-io/extstat"
)

// SortOrder identifies which comparison Compare should use.
type SortOrder uint8

const (
	// Name orders paths by their final path component, lexicographically.
	Name SortOrder = iota
	// ModTime orders paths by last-modified time, with paths whose mtime
	// can't be determined sorting before any path with a real mtime.
	ModTime
)

// Compare returns a negative number if a sorts before b, a positive number
// if a sorts after b, and zero if they are equal under order. Ties (equal
// names, or equal/indeterminate mtimes) are broken by comparing the full
// path strings so that Compare defines a total order.
func Compare(a, b string, order SortOrder) int {
	switch order {
	case ModTime:
		return compareModTime(a, b)
	default:
		return compareName(a, b)
	}
}

func compareName(a, b string) int {
	na, nb := filepath.Base(a), filepath.Base(b)
	if na < nb {
		return -1
	} else if na > nb {
		return 1
	}
	return comparePathFallback(a, b)
}

func compareModTime(a, b string) int {
	ta, haveA := modTime(a)
	tb, haveB := modTime(b)

	if !haveA && !haveB {
		return comparePathFallback(a, b)
	} else if !haveA {
		return -1
	} else if !haveB {
		return 1
	}

	if ta.Before(tb) {
		return -1
	} else if ta.After(tb) {
		return 1
	}
	return comparePathFallback(a, b)
}

func comparePathFallback(a, b string) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// modTime acquires a's modification time, preferring extstat (which can
// read extended timestamp metadata not always surfaced by os.Stat) and
// falling back to os.Stat when extstat fails. The bool result reports
// whether a modification time could be determined at all.
func modTime(path string) (time.Time, bool) {
	if stat, err := extstat.NewFromFileName(path); err == nil {
		return stat.ModificationTime, true
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
