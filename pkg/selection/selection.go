// Package selection implements the recursive predicate tree used to decide
// which directory entries a library considers when it looks for sibling
// items or children to descend into.
//
// Ground: original_source/src/library/selection.rs.
package selection

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind identifies which predicate a Selection node evaluates.
type Kind uint8

const (
	// KindExt matches on the path's final extension.
	KindExt Kind = iota
	// KindRegex matches the final filename component against a regular
	// expression.
	KindRegex
	// KindGlob matches the final filename component against a doublestar
	// glob pattern.
	KindGlob
	// KindIsFile matches regular files.
	KindIsFile
	// KindIsDir matches directories.
	KindIsDir
	// KindAnd is the conjunction of two child selections.
	KindAnd
	// KindOr is the disjunction of two child selections.
	KindOr
	// KindXor is the exclusive disjunction of two child selections.
	KindXor
	// KindNot negates a child selection.
	KindNot
	// KindTrue always matches (subject to the existence short-circuit).
	KindTrue
	// KindFalse never matches (subject to the existence short-circuit).
	KindFalse
)

// Selection is a node in the predicate tree. The zero value is not valid;
// construct instances with the Ext/Regex/Glob/... constructors below.
type Selection struct {
	kind  Kind
	ext   string
	regex *regexp.Regexp
	glob  string
	left  *Selection
	right *Selection
}

// Ext constructs a Selection that matches paths whose final extension
// (without the leading dot) equals ext.
func Ext(ext string) *Selection {
	return &Selection{kind: KindExt, ext: ext}
}

// Regex constructs a Selection that matches paths whose final filename
// component is matched by r.
func Regex(r *regexp.Regexp) *Selection {
	return &Selection{kind: KindRegex, regex: r}
}

// Glob constructs a Selection that matches paths whose final filename
// component matches the doublestar glob pattern.
//
// This fills the role the original source's dropped "glob" crate usage
// played in helpers.rs; it has no counterpart in spec.md's enumerated
// variants and is additive.
func Glob(pattern string) *Selection {
	return &Selection{kind: KindGlob, glob: pattern}
}

// IsFile constructs a Selection that matches regular files.
func IsFile() *Selection {
	return &Selection{kind: KindIsFile}
}

// IsDir constructs a Selection that matches directories.
func IsDir() *Selection {
	return &Selection{kind: KindIsDir}
}

// And constructs a Selection that matches when both a and b match.
func And(a, b *Selection) *Selection {
	return &Selection{kind: KindAnd, left: a, right: b}
}

// Or constructs a Selection that matches when either a or b matches.
func Or(a, b *Selection) *Selection {
	return &Selection{kind: KindOr, left: a, right: b}
}

// Xor constructs a Selection that matches when exactly one of a or b
// matches.
func Xor(a, b *Selection) *Selection {
	return &Selection{kind: KindXor, left: a, right: b}
}

// Not constructs a Selection that matches when a does not.
func Not(a *Selection) *Selection {
	return &Selection{kind: KindNot, left: a}
}

// True returns a Selection that always matches, subject to the existence
// short-circuit in IsSelected.
func True() *Selection {
	return &Selection{kind: KindTrue}
}

// False returns a Selection that never matches.
func False() *Selection {
	return &Selection{kind: KindFalse}
}

// IsSelected reports whether path satisfies the selection. A path that does
// not exist is never selected, regardless of the selection tree — this
// holds even for True and False leaves.
func (s *Selection) IsSelected(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return s.evaluate(path, info)
}

// evaluate assumes path exists and info describes it; it never touches the
// filesystem again except for And/Or/Xor/Not recursion, which re-derives
// info via IsSelected so that each subtree sees the same existence gate.
func (s *Selection) evaluate(path string, info os.FileInfo) bool {
	switch s.kind {
	case KindExt:
		ext := filepath.Ext(path)
		if ext == "" {
			return false
		}
		// filepath.Ext includes the leading dot; the configured extension
		// does not.
		return ext[1:] == s.ext
	case KindRegex:
		return s.regex.MatchString(filepath.Base(path))
	case KindGlob:
		matched, err := doublestar.Match(s.glob, filepath.Base(path))
		return err == nil && matched
	case KindIsFile:
		return info.Mode().IsRegular()
	case KindIsDir:
		return info.IsDir()
	case KindAnd:
		return s.left.IsSelected(path) && s.right.IsSelected(path)
	case KindOr:
		return s.left.IsSelected(path) || s.right.IsSelected(path)
	case KindXor:
		return s.left.IsSelected(path) != s.right.IsSelected(path)
	case KindNot:
		return !s.left.IsSelected(path)
	case KindTrue:
		return true
	case KindFalse:
		return false
	default:
		return false
	}
}

// SelectedEntriesInDir enumerates the direct entries of dir and returns the
// names of those satisfying the selection. Order is unspecified; callers
// that need a deterministic order should sort with package sortorder.
func SelectedEntriesInDir(dir string, s *Selection) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if s.IsSelected(full) {
			selected = append(selected, entry.Name())
		}
	}
	return selected, nil
}
