// Package docmodel defines the generic value tree that a document reader
// adapter hands to the core: null, a scalar string, an ordered sequence, or
// an insertion-ordered mapping. It is implemented directly over
// gopkg.in/yaml.v3's yaml.Node, which already distinguishes these shapes
// and preserves mapping insertion order.
//
// Ground: spec.md §4.7's reader contract, adapted onto yaml.Node rather
// than a hand-rolled tree because yaml.Node already carries exactly the
// shape distinctions the contract needs.
package docmodel

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// NodeKind identifies which shape a Node holds.
type NodeKind uint8

const (
	// KindNull is the null value.
	KindNull NodeKind = iota
	// KindScalar is a scalar rendered as its string form.
	KindScalar
	// KindSeq is an ordered sequence of Node.
	KindSeq
	// KindMap is an insertion-ordered mapping of Node to Node.
	KindMap
)

// MapEntry is one key/value pair of a Map node, in document order.
type MapEntry struct {
	Key   Node
	Value Node
}

// Node is a generic document value: Null, a string Scalar, an ordered Seq,
// or an insertion-ordered Map.
type Node struct {
	Kind   NodeKind
	Scalar string
	Seq    []Node
	Map    []MapEntry
}

// FromYAML translates a decoded yaml.Node into a docmodel.Node. It expects
// the document-level node (Kind == yaml.DocumentNode) or a content node
// directly.
func FromYAML(n *yaml.Node) (Node, error) {
	if n == nil {
		return Node{Kind: KindNull}, nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return Node{Kind: KindNull}, nil
		}
		return FromYAML(n.Content[0])
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return Node{Kind: KindNull}, nil
		}
		return Node{Kind: KindScalar, Scalar: scalarString(n)}, nil
	case yaml.SequenceNode:
		seq := make([]Node, len(n.Content))
		for i, child := range n.Content {
			converted, err := FromYAML(child)
			if err != nil {
				return Node{}, err
			}
			seq[i] = converted
		}
		return Node{Kind: KindSeq, Seq: seq}, nil
	case yaml.MappingNode:
		entries := make([]MapEntry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := FromYAML(n.Content[i])
			if err != nil {
				return Node{}, err
			}
			value, err := FromYAML(n.Content[i+1])
			if err != nil {
				return Node{}, err
			}
			entries = append(entries, MapEntry{Key: key, Value: value})
		}
		return Node{Kind: KindMap, Map: entries}, nil
	case yaml.AliasNode:
		return FromYAML(n.Alias)
	default:
		return Node{Kind: KindNull}, nil
	}
}

// scalarString renders a scalar node's printed string form. yaml.v3 leaves
// the literal text in n.Value for every scalar tag (string, int, float,
// bool, timestamp); re-parsing numeric/boolean tags and reformatting with
// strconv keeps the printed form canonical rather than echoing the
// document's original spelling (e.g. "0x10" becomes "16").
func scalarString(n *yaml.Node) string {
	switch n.Tag {
	case "!!int":
		if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return strconv.FormatInt(v, 10)
		}
	case "!!float":
		if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	case "!!bool":
		if v, err := strconv.ParseBool(n.Value); err == nil {
			return strconv.FormatBool(v)
		}
	}
	return n.Value
}
