// Package taggerr defines the hard-error kinds that cross the library's
// external boundary, matching the error catalogue spec'd for the resolver:
// NotADirectory, NotAFile, DoesNotExist, InvalidSubPath, InvalidMetaFileName,
// and EmptyMetaFile. Each kind carries the path(s) involved so that callers
// can render a useful message without re-deriving context.
//
// Callers in this repository return these values unwrapped, so IsKind can
// recognize them with a plain type assertion.
package taggerr

import (
	"fmt"
)

// Kind identifies which hard-error case occurred.
type Kind uint8

const (
	// KindNotADirectory indicates a path was expected to be a directory but
	// wasn't (or doesn't exist).
	KindNotADirectory Kind = iota
	// KindNotAFile indicates a path was expected to be a regular file but
	// wasn't (or doesn't exist).
	KindNotAFile
	// KindDoesNotExist indicates a path was expected to exist but doesn't.
	KindDoesNotExist
	// KindInvalidSubPath indicates a path is not a descendant of a library's
	// root.
	KindInvalidSubPath
	// KindInvalidMetaFileName indicates a configured meta-file name fails
	// item-name validation.
	KindInvalidMetaFileName
	// KindEmptyMetaFile indicates a meta-file was read successfully but
	// contained no data at all.
	KindEmptyMetaFile
)

// Error is a hard error carrying a Kind and the path(s) that triggered it.
type Error struct {
	// Kind is the error category.
	Kind Kind
	// Path is the primary path involved.
	Path string
	// Root is the library root, populated only for KindInvalidSubPath.
	Root string
	// Name is the offending name, populated only for KindInvalidMetaFileName.
	Name string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotADirectory:
		return fmt.Sprintf("not a directory: %q", e.Path)
	case KindNotAFile:
		return fmt.Sprintf("not a file: %q", e.Path)
	case KindDoesNotExist:
		return fmt.Sprintf("path does not exist: %q", e.Path)
	case KindInvalidSubPath:
		return fmt.Sprintf("subpath is not a descendant of root: %q, %q", e.Path, e.Root)
	case KindInvalidMetaFileName:
		return fmt.Sprintf("meta file name is invalid: %q", e.Name)
	case KindEmptyMetaFile:
		return fmt.Sprintf("meta file did not contain any data: %q", e.Path)
	default:
		return "unknown taggu error"
	}
}

// NotADirectory constructs a KindNotADirectory error.
func NotADirectory(path string) *Error {
	return &Error{Kind: KindNotADirectory, Path: path}
}

// NotAFile constructs a KindNotAFile error.
func NotAFile(path string) *Error {
	return &Error{Kind: KindNotAFile, Path: path}
}

// DoesNotExist constructs a KindDoesNotExist error.
func DoesNotExist(path string) *Error {
	return &Error{Kind: KindDoesNotExist, Path: path}
}

// InvalidSubPath constructs a KindInvalidSubPath error.
func InvalidSubPath(path, root string) *Error {
	return &Error{Kind: KindInvalidSubPath, Path: path, Root: root}
}

// InvalidMetaFileName constructs a KindInvalidMetaFileName error.
func InvalidMetaFileName(name string) *Error {
	return &Error{Kind: KindInvalidMetaFileName, Name: name}
}

// EmptyMetaFile constructs a KindEmptyMetaFile error.
func EmptyMetaFile(path string) *Error {
	return &Error{Kind: KindEmptyMetaFile, Path: path}
}

// IsKind reports whether err is itself a *Error of the given kind. It does
// not unwrap err, so a *Error wrapped inside another error does not match.
func IsKind(err error, kind Kind) bool {
	te, ok := err.(*Error)
	if !ok {
		return false
	}
	return te.Kind == kind
}
