// Package metatarget implements the binding discipline that tells the
// plexer whether a meta-file's data belongs to the directory that contains
// it or to that directory's selected children.
//
// Ground: original_source/src/metadata/target.rs and spec's own §4.5
// (the original source carries several divergent refactor-branch copies of
// this type; spec.md's distillation is treated as authoritative where they
// disagree).
package metatarget

import "path/filepath"

// MetaTarget is the binding discipline for a meta-file.
type MetaTarget uint8

const (
	// Contains binds a meta-file's data to the directory that holds it.
	Contains MetaTarget = iota
	// Siblings binds a meta-file's data to the children of the directory
	// that holds it.
	Siblings
)

// TargetDirFromMeta returns the working directory that a meta-file at
// metaPath binds against: the meta-file's parent directory, for both
// Contains and Siblings. (The two disciplines differ in how blocks inside
// that directory are then bound to items, not in which directory is used.)
func TargetDirFromMeta(t MetaTarget, metaPath string) string {
	return filepath.Dir(metaPath)
}

// TargetDirFromItem returns the meta-directory that should be searched for
// a candidate meta-file covering itemPath, given that itemPath is a
// directory (for Contains) or has itemParent as its parent (for Siblings).
// ok reports whether a candidate directory exists for this target/item
// combination — Contains has none when itemPath is not itself a directory.
func TargetDirFromItem(t MetaTarget, itemPath string, itemIsDir bool, itemParent string) (dir string, ok bool) {
	switch t {
	case Contains:
		if !itemIsDir {
			return "", false
		}
		return itemPath, true
	default: // Siblings
		return itemParent, true
	}
}
