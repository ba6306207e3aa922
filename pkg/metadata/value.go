package metadata

import "sort"

// ValueKind identifies which variant a MetaValue holds.
type ValueKind uint8

const (
	// KindNil is the null value.
	KindNil ValueKind = iota
	// KindStr is a string scalar.
	KindStr
	// KindSeq is an ordered sequence of MetaValue.
	KindSeq
	// KindMap is a key-sorted mapping from MetaKey to MetaValue.
	KindMap
)

// KV is one entry of a MetaValue Map. (MetaBlock entries are FieldKV.)
type KV struct {
	Key   MetaKey
	Value MetaValue
}

// MetaValue is a tagged union: Nil, a string scalar, an ordered sequence of
// MetaValue, or a key-sorted mapping from MetaKey to MetaValue. Container
// orderings are part of equality — Map entries are kept sorted by
// MetaKey.Compare rather than held in a Go map, and Seq order is
// significant.
type MetaValue struct {
	Kind ValueKind
	Str  string
	Seq  []MetaValue
	Map  []KV
}

// Nil is the null MetaValue.
func Nil() MetaValue {
	return MetaValue{Kind: KindNil}
}

// Str constructs a string-scalar MetaValue.
func Str(s string) MetaValue {
	return MetaValue{Kind: KindStr, Str: s}
}

// Seq constructs a sequence MetaValue, preserving the given order.
func Seq(values []MetaValue) MetaValue {
	return MetaValue{Kind: KindSeq, Seq: values}
}

// Map constructs a mapping MetaValue, sorting entries by MetaKey.Compare.
// The input slice is not mutated; a sorted copy is stored.
func Map(entries []KV) MetaValue {
	sorted := make([]KV, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Compare(sorted[j].Key) < 0
	})
	return MetaValue{Kind: KindMap, Map: sorted}
}

// Equal reports whether v and other are the same value, recursively.
// Sequence order and map order (post-sort) both participate in equality.
func (v MetaValue) Equal(other MetaValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindStr:
		return v.Str == other.Str
	case KindSeq:
		if len(v.Seq) != len(other.Seq) {
			return false
		}
		for i := range v.Seq {
			if !v.Seq[i].Equal(other.Seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Map) != len(other.Map) {
			return false
		}
		for i := range v.Map {
			if !v.Map[i].Key.Equal(other.Map[i].Key) || !v.Map[i].Value.Equal(other.Map[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
