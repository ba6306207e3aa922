// Package reader translates a generic docmodel.Node document tree into a
// typed metadata.Metadata, the way a meta-file's bytes get turned into
// bindable data.
//
// Ground: original_source/src/metadata/reader/yaml.rs's
// yaml_as_meta_value/yaml_as_meta_block/yaml_as_metadata family, adapted
// from yaml_rust::Yaml onto docmodel.Node.
package reader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taggu-go/taggu/pkg/docmodel"
	"github.com/taggu-go/taggu/pkg/metadata"
	"github.com/taggu-go/taggu/pkg/metatarget"
)

// ErrEmptyMetaFile indicates the document contained no data at all.
var ErrEmptyMetaFile = errors.New("meta file did not contain any data")

// ReadFile parses the YAML document at path and translates it into a typed
// Metadata according to target. This is the concrete document reader
// adapter spec.md §4.7 treats as an external collaborator: the core only
// depends on the docmodel.Node/FromNode contract above it.
func ReadFile(path string, target metatarget.MetaTarget) (metadata.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metadata.Metadata{}, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return metadata.Metadata{}, fmt.Errorf("cannot parse YAML: %w", err)
	}

	node, err := docmodel.FromYAML(&doc)
	if err != nil {
		return metadata.Metadata{}, err
	}

	return FromNode(node, target)
}

// NotAMetaBlockError indicates a node did not have the shape required for
// the context it was read in (a MetaBlock, a sequence of blocks, or a
// mapping of name to block).
type NotAMetaBlockError struct {
	Want string
}

func (e *NotAMetaBlockError) Error() string {
	return fmt.Sprintf("cannot convert document node to %s", e.Want)
}

// FromNode translates root into a typed Metadata according to target.
// An empty document (KindNull at the top level) is always ErrEmptyMetaFile,
// regardless of target.
func FromNode(root docmodel.Node, target metatarget.MetaTarget) (metadata.Metadata, error) {
	if root.Kind == docmodel.KindNull {
		return metadata.Metadata{}, ErrEmptyMetaFile
	}

	switch target {
	case metatarget.Contains:
		block, err := nodeToBlock(root)
		if err != nil {
			return metadata.Metadata{}, err
		}
		return metadata.Contains(block), nil
	default: // Siblings
		if seq, err := nodeToBlockSeq(root); err == nil {
			return metadata.SiblingsSeqOf(seq), nil
		}
		m, err := nodeToBlockMap(root)
		if err != nil {
			return metadata.Metadata{}, &NotAMetaBlockError{Want: "a sibling sequence or mapping"}
		}
		return metadata.SiblingsMapOf(m), nil
	}
}

// nodeToString renders a scalar node as a string. Non-scalar nodes cannot
// be converted.
func nodeToString(n docmodel.Node) (string, error) {
	if n.Kind != docmodel.KindScalar {
		return "", fmt.Errorf("cannot convert %s to string", kindName(n.Kind))
	}
	return n.Scalar, nil
}

// nodeToMetaKey converts a node to a MetaKey: Null becomes MetaKey.Nil,
// everything else must convert via nodeToString.
func nodeToMetaKey(n docmodel.Node) (metadata.MetaKey, error) {
	if n.Kind == docmodel.KindNull {
		return metadata.NilKey, nil
	}
	s, err := nodeToString(n)
	if err != nil {
		return metadata.MetaKey{}, fmt.Errorf("cannot convert node to meta key: %w", err)
	}
	return metadata.StrKey(s), nil
}

// nodeToMetaValue recursively converts a node into a MetaValue.
func nodeToMetaValue(n docmodel.Node) (metadata.MetaValue, error) {
	switch n.Kind {
	case docmodel.KindNull:
		return metadata.Nil(), nil
	case docmodel.KindSeq:
		values := make([]metadata.MetaValue, len(n.Seq))
		for i, child := range n.Seq {
			v, err := nodeToMetaValue(child)
			if err != nil {
				return metadata.MetaValue{}, err
			}
			values[i] = v
		}
		return metadata.Seq(values), nil
	case docmodel.KindMap:
		entries := make([]metadata.KV, len(n.Map))
		for i, e := range n.Map {
			key, err := nodeToMetaKey(e.Key)
			if err != nil {
				return metadata.MetaValue{}, err
			}
			value, err := nodeToMetaValue(e.Value)
			if err != nil {
				return metadata.MetaValue{}, err
			}
			entries[i] = metadata.KV{Key: key, Value: value}
		}
		return metadata.Map(entries), nil
	default:
		s, err := nodeToString(n)
		if err != nil {
			return metadata.MetaValue{}, fmt.Errorf("cannot convert node to meta value: %w", err)
		}
		return metadata.Str(s), nil
	}
}

// nodeToBlock converts a mapping node into a MetaBlock. Keys must be
// strings — a bare null key is only accepted inside MetaValue.Map, never
// as a field name.
func nodeToBlock(n docmodel.Node) (metadata.MetaBlock, error) {
	if n.Kind != docmodel.KindMap {
		return metadata.MetaBlock{}, &NotAMetaBlockError{Want: "a meta block"}
	}

	fields := make([]metadata.FieldKV, len(n.Map))
	for i, e := range n.Map {
		name, err := nodeToString(e.Key)
		if err != nil {
			return metadata.MetaBlock{}, fmt.Errorf("meta block field name must be a string: %w", err)
		}
		value, err := nodeToMetaValue(e.Value)
		if err != nil {
			return metadata.MetaBlock{}, err
		}
		fields[i] = metadata.FieldKV{Field: name, Value: value}
	}
	return metadata.NewBlock(fields), nil
}

// nodeToBlockSeq converts a sequence node into a slice of MetaBlock.
func nodeToBlockSeq(n docmodel.Node) ([]metadata.MetaBlock, error) {
	if n.Kind != docmodel.KindSeq {
		return nil, &NotAMetaBlockError{Want: "a meta block sequence"}
	}

	blocks := make([]metadata.MetaBlock, len(n.Seq))
	for i, child := range n.Seq {
		block, err := nodeToBlock(child)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return blocks, nil
}

// nodeToBlockMap converts a mapping node into name→MetaBlock entries,
// preserving the document's insertion order. Keys must be strings; whether
// a key is a *valid item name* is the plexer's concern (§4.9 warns and
// skips invalid names rather than failing the whole document), so it is
// not enforced here.
func nodeToBlockMap(n docmodel.Node) ([]metadata.SiblingKV, error) {
	if n.Kind != docmodel.KindMap {
		return nil, &NotAMetaBlockError{Want: "a meta block mapping"}
	}

	entries := make([]metadata.SiblingKV, len(n.Map))
	for i, e := range n.Map {
		name, err := nodeToString(e.Key)
		if err != nil {
			return nil, fmt.Errorf("meta block mapping key must be a string: %w", err)
		}
		block, err := nodeToBlock(e.Value)
		if err != nil {
			return nil, err
		}
		entries[i] = metadata.SiblingKV{Name: name, Block: block}
	}
	return entries, nil
}

func kindName(k docmodel.NodeKind) string {
	switch k {
	case docmodel.KindNull:
		return "null"
	case docmodel.KindScalar:
		return "scalar"
	case docmodel.KindSeq:
		return "sequence"
	case docmodel.KindMap:
		return "mapping"
	default:
		return "unknown"
	}
}
