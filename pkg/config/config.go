// Package config loads the YAML-based configuration file that describes a
// media library: its root, its (meta-file name, binding) pairs, its
// selection predicate, and its sort order.
//
// Ground: teacher's pkg/configuration/project (Configuration struct shape,
// LoadConfiguration over pkg/encoding.LoadAndUnmarshalYAML).
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/taggu-go/taggu/pkg/encoding"
	"github.com/taggu-go/taggu/pkg/library"
	"github.com/taggu-go/taggu/pkg/metatarget"
	"github.com/taggu-go/taggu/pkg/pathutil"
	"github.com/taggu-go/taggu/pkg/selection"
	"github.com/taggu-go/taggu/pkg/sortorder"
	"github.com/taggu-go/taggu/pkg/taggerr"
)

// PairConfiguration encodes a single meta-file name and the binding
// discipline it uses.
type PairConfiguration struct {
	// Name is the exact meta-file name, e.g. "self.yml".
	Name string `yaml:"name"`
	// Target is either "contains" or "siblings".
	Target string `yaml:"target"`
}

// toMetaTarget resolves the configured Target string to a
// metatarget.MetaTarget, defaulting to Siblings for an unrecognized or
// empty value. (metatarget.MetaTarget's own zero value is Contains.)
func (p PairConfiguration) toMetaTarget() metatarget.MetaTarget {
	if p.Target == "contains" {
		return metatarget.Contains
	}
	return metatarget.Siblings
}

// SelectionConfiguration encodes a flat, ORed selection: any item matching
// an extension or a glob is selected. An empty configuration selects
// everything.
type SelectionConfiguration struct {
	// Extensions is a list of file extensions, with or without a leading
	// dot (e.g. ".flac" or "flac"), that select a file.
	Extensions []string `yaml:"extensions"`
	// Globs is a list of doublestar glob patterns that select a path.
	Globs []string `yaml:"globs"`
}

// Build compiles c into a *selection.Selection.
func (c SelectionConfiguration) Build() *selection.Selection {
	var leaves []*selection.Selection
	for _, ext := range c.Extensions {
		leaves = append(leaves, selection.Ext(strings.TrimPrefix(ext, ".")))
	}
	for _, pattern := range c.Globs {
		leaves = append(leaves, selection.Glob(pattern))
	}
	if len(leaves) == 0 {
		return selection.True()
	}
	result := leaves[0]
	for _, leaf := range leaves[1:] {
		result = selection.Or(result, leaf)
	}
	return result
}

// Configuration is the top-level media library configuration object.
type Configuration struct {
	// Root is the library's root directory.
	Root string `yaml:"root"`
	// Pairs are the configured (meta-file name, binding) entries, in
	// resolution-priority order.
	Pairs []PairConfiguration `yaml:"pairs"`
	// Selection determines which filesystem entries participate as items.
	Selection SelectionConfiguration `yaml:"selection"`
	// SortOrder is either "name" or "modtime"; defaults to "name".
	SortOrder string `yaml:"sortOrder"`
	// UnicodeNormalization enables NFC path normalization for libraries
	// rooted on an NFD-decomposing filesystem.
	UnicodeNormalization bool `yaml:"unicodeNormalization"`
}

// toSortOrder resolves the configured SortOrder string.
func (c *Configuration) toSortOrder() sortorder.SortOrder {
	if c.SortOrder == "modtime" {
		return sortorder.ModTime
	}
	return sortorder.Name
}

// Load reads and decodes a Configuration from the YAML file at path.
func Load(path string) (*Configuration, error) {
	result := &Configuration{}
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}
	if result.Root == "" {
		return nil, fmt.Errorf("config: root is required")
	}
	if len(result.Pairs) == 0 {
		return nil, fmt.Errorf("config: at least one pair is required")
	}
	for _, pair := range result.Pairs {
		if !pathutil.IsValidItemName(pair.Name) {
			return nil, taggerr.InvalidMetaFileName(pair.Name)
		}
	}
	return result, nil
}

// BuildLibrary constructs a *library.Library from the configuration.
func (c *Configuration) BuildLibrary() (*library.Library, error) {
	pairs := make([]library.Pair, len(c.Pairs))
	for i, p := range c.Pairs {
		pairs[i] = library.Pair{Name: p.Name, Target: p.toMetaTarget()}
	}
	return library.New(c.Root, pairs, c.Selection.Build(), c.toSortOrder(), library.Options{
		UnicodeNormalization: c.UnicodeNormalization,
	})
}

// Save encodes c as YAML and writes it atomically to path, for writing a
// default or updated library configuration file.
func Save(path string, c *Configuration) error {
	return encoding.MarshalAndSave(path, func() ([]byte, error) {
		return yaml.Marshal(c)
	})
}
