package metadata

// MetadataKind identifies which binding shape a parsed meta-file produced.
type MetadataKind uint8

const (
	// MetadataContains binds a single block to the containing directory.
	MetadataContains MetadataKind = iota
	// MetadataSiblingsSeq binds blocks positionally to siblings in
	// selection/sort order.
	MetadataSiblingsSeq
	// MetadataSiblingsMap binds blocks to siblings by exact filename.
	MetadataSiblingsMap
)

// SiblingKV is one name/block entry of a MetadataSiblingsMap, in the
// insertion order the document reader produced.
type SiblingKV struct {
	Name  string
	Block MetaBlock
}

// Metadata is the typed result of reading one meta-file: exactly one of a
// single contained block, a positional sequence of sibling blocks, or a
// name-keyed mapping of sibling blocks.
type Metadata struct {
	Kind        MetadataKind
	ContainsBlk MetaBlock
	SiblingsSeq []MetaBlock
	SiblingsMap []SiblingKV
}

// Contains constructs a MetadataContains value.
func Contains(block MetaBlock) Metadata {
	return Metadata{Kind: MetadataContains, ContainsBlk: block}
}

// SiblingsSeqOf constructs a MetadataSiblingsSeq value.
func SiblingsSeqOf(blocks []MetaBlock) Metadata {
	return Metadata{Kind: MetadataSiblingsSeq, SiblingsSeq: blocks}
}

// SiblingsMapOf constructs a MetadataSiblingsMap value, preserving the
// supplied entry order.
func SiblingsMapOf(entries []SiblingKV) Metadata {
	return Metadata{Kind: MetadataSiblingsMap, SiblingsMap: entries}
}
