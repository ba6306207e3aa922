// Package metadata implements the resolver's value tree: MetaKey, MetaValue,
// MetaBlock, and the per-meta-file Metadata variant that the plexer binds to
// items.
//
// Ground: original_source/src/metadata.rs.
package metadata

// MetaKey is either Nil or a string. It orders Nil before any Str, and
// Str values lexicographically.
type MetaKey struct {
	isNil bool
	str   string
}

// NilKey is the singleton null key.
var NilKey = MetaKey{isNil: true}

// StrKey constructs a string-valued MetaKey.
func StrKey(s string) MetaKey {
	return MetaKey{str: s}
}

// IsNil reports whether k is the null key.
func (k MetaKey) IsNil() bool {
	return k.isNil
}

// Str returns k's string payload. It is only meaningful when !k.IsNil().
func (k MetaKey) Str() string {
	return k.str
}

// Compare returns a negative number if k sorts before other, a positive
// number if it sorts after, and zero if they are equal.
func (k MetaKey) Compare(other MetaKey) int {
	if k.isNil && other.isNil {
		return 0
	} else if k.isNil {
		return -1
	} else if other.isNil {
		return 1
	}
	if k.str < other.str {
		return -1
	} else if k.str > other.str {
		return 1
	}
	return 0
}

// Equal reports whether k and other are the same key.
func (k MetaKey) Equal(other MetaKey) bool {
	return k.Compare(other) == 0
}
