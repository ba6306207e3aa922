// Package library implements the resolver's façade: it binds a root
// directory, a meta-target configuration list, a Selection, and a
// SortOrder, and resolves the item↔meta-path relations that the lookup
// engine and plexer build on.
//
// Ground: original_source/src/library.rs (MediaLibrary) and
// spec.md §4.6.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/metadata"
	"github.com/taggu-go/taggu/pkg/metatarget"
	"github.com/taggu-go/taggu/pkg/pathutil"
	"github.com/taggu-go/taggu/pkg/plexer"
	"github.com/taggu-go/taggu/pkg/reader"
	"github.com/taggu-go/taggu/pkg/selection"
	"github.com/taggu-go/taggu/pkg/sortorder"
	"github.com/taggu-go/taggu/pkg/taggerr"
)

// Pair is one (meta-file-name, MetaTarget) entry in a Library's
// configuration. Resolution order is the order pairs appear in this list:
// earlier entries are consulted first when an item is covered by more than
// one meta-file.
type Pair struct {
	Name   string
	Target metatarget.MetaTarget
}

// Library is an immutable configuration root: a canonicalized root path
// (which must be an existing directory at construction time), an ordered
// meta-target pair list, a Selection, and a SortOrder. It is created once
// per logical library and consulted by every lookup over that library.
type Library struct {
	root       string
	pairs      []Pair
	sel        *selection.Selection
	order      sortorder.SortOrder
	normalizer func(string) string
}

// Options configures New beyond the required root, pairs, selection, and
// sort order.
type Options struct {
	// UnicodeNormalization, when true, normalizes every path this Library
	// produces through pathutil.NormalizeNFC instead of pathutil.Normalize
	// — for libraries rooted on an NFD-decomposing filesystem.
	UnicodeNormalization bool
}

// New constructs a Library. root must already exist as a directory;
// otherwise New returns a taggerr.NotADirectory error.
func New(root string, pairs []Pair, sel *selection.Selection, order sortorder.SortOrder, opts Options) (*Library, error) {
	normalizer := pathutil.Normalize
	if opts.UnicodeNormalization {
		normalizer = pathutil.NormalizeNFC
	}

	canonicalRoot := normalizer(root)
	info, err := os.Stat(canonicalRoot)
	if err != nil || !info.IsDir() {
		return nil, taggerr.NotADirectory(canonicalRoot)
	}

	pairsCopy := make([]Pair, len(pairs))
	copy(pairsCopy, pairs)

	return &Library{
		root:       canonicalRoot,
		pairs:      pairsCopy,
		sel:        sel,
		order:      order,
		normalizer: normalizer,
	}, nil
}

// Root returns the Library's canonicalized root path.
func (l *Library) Root() string {
	return l.root
}

// Selection returns the Library's selection predicate.
func (l *Library) Selection() *selection.Selection {
	return l.sel
}

// SortOrder returns the Library's sort order.
func (l *Library) SortOrder() sortorder.SortOrder {
	return l.order
}

// IsProperSubPath reports whether p, once normalized, falls under the
// Library's root.
func (l *Library) IsProperSubPath(p string) bool {
	normalized := l.normalizer(p)
	if normalized == l.root {
		return true
	}
	return strings.HasPrefix(normalized, l.root+string(filepath.Separator))
}

// MetaPathsForItem returns the candidate meta-file paths that could cover
// itemPath, in the Library's configuration order. The normalized item path
// must be a descendant of the root and must exist, or the result is empty.
func (l *Library) MetaPathsForItem(itemPath string) []string {
	normalized := l.normalizer(itemPath)
	if !l.IsProperSubPath(normalized) {
		return nil
	}
	info, err := os.Stat(normalized)
	if err != nil {
		return nil
	}

	var metaPaths []string
	for _, pair := range l.pairs {
		dir, ok := metatarget.TargetDirFromItem(pair.Target, normalized, info.IsDir(), filepath.Dir(normalized))
		if !ok {
			continue
		}
		candidate := filepath.Join(dir, pair.Name)
		if _, err := os.Stat(candidate); err == nil {
			metaPaths = append(metaPaths, candidate)
		}
	}
	return metaPaths
}

// FindPair returns the configured Pair whose Name exactly matches
// metaPath's final path component, and whether one was found. The first
// match in configuration order wins.
func (l *Library) FindPair(metaPath string) (Pair, bool) {
	name := filepath.Base(metaPath)
	for _, pair := range l.pairs {
		if pair.Name == name {
			return pair, true
		}
	}
	return Pair{}, false
}

// ItemBinding pairs a resolved item path with the block bound to it by a
// single meta-file.
type ItemBinding struct {
	ItemPath string
	Block    metadata.MetaBlock
}

// ItemPathsForMeta reads and plexes the meta-file at metaPath, returning
// the (item-path, block) bindings it produces. metaPath (once normalized)
// must be an existing file that is a descendant of the root, and its
// parent directory must also be a descendant of the root. logger may be
// nil.
func (l *Library) ItemPathsForMeta(metaPath string, logger *logging.Logger) ([]ItemBinding, error) {
	normalized := l.normalizer(metaPath)
	if !l.IsProperSubPath(normalized) {
		return nil, taggerr.InvalidSubPath(normalized, l.root)
	}
	info, err := os.Stat(normalized)
	if err != nil || info.IsDir() {
		return nil, taggerr.NotAFile(normalized)
	}

	wd := filepath.Dir(normalized)
	if !l.IsProperSubPath(wd) {
		return nil, taggerr.InvalidSubPath(wd, l.root)
	}

	pair, ok := l.FindPair(normalized)
	if !ok {
		return nil, nil
	}

	md, err := reader.ReadFile(normalized, pair.Target)
	if err != nil {
		return nil, err
	}

	records := plexer.Plex(md, wd, l.sel, l.order, logger)

	bindings := make([]ItemBinding, len(records))
	for i, record := range records {
		itemPath := wd
		if record.Target.Kind == plexer.TargetSubItem {
			itemPath = filepath.Join(wd, record.Target.Name)
		}
		bindings[i] = ItemBinding{ItemPath: itemPath, Block: record.Block}
	}
	return bindings, nil
}

// ChildrenPaths returns the selection-filtered, sort-ordered direct
// children of dir.
func (l *Library) ChildrenPaths(dir string) ([]string, error) {
	names, err := selection.SelectedEntriesInDir(dir, l.sel)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return sortorder.Compare(paths[i], paths[j], l.order) < 0
	})
	return paths, nil
}
