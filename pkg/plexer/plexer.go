// Package plexer implements the binding algorithm that turns a parsed
// Metadata document plus a working directory into (item, block) pairs.
//
// Ground: original_source/src/plexer.rs's plex_container_new /
// plex_alongside_new.
package plexer

import (
	"path/filepath"
	"sort"

	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/metadata"
	"github.com/taggu-go/taggu/pkg/pathutil"
	"github.com/taggu-go/taggu/pkg/selection"
	"github.com/taggu-go/taggu/pkg/sortorder"
)

// TargetKind identifies which of the two PlexTarget shapes a PlexRecord
// carries.
type TargetKind uint8

const (
	// TargetWorkingDir resolves to the working directory itself.
	TargetWorkingDir TargetKind = iota
	// TargetSubItem resolves to a named child of the working directory.
	TargetSubItem
)

// PlexTarget identifies which item a PlexRecord's block is bound to.
type PlexTarget struct {
	Kind TargetKind
	Name string // populated only when Kind == TargetSubItem
}

// PlexRecord pairs a resolved target with the block bound to it.
type PlexRecord struct {
	Target PlexTarget
	Block  metadata.MetaBlock
}

// Plex binds md against workingDir using sel and order to resolve sibling
// targets, emitting a warning via logger for every recoverable mismatch
// (an invalid or absent item name, a sequence/selection length mismatch).
// logger may be nil; logging.Logger tolerates nil receivers.
func Plex(md metadata.Metadata, workingDir string, sel *selection.Selection, order sortorder.SortOrder, logger *logging.Logger) []PlexRecord {
	switch md.Kind {
	case metadata.MetadataContains:
		return []PlexRecord{{Target: PlexTarget{Kind: TargetWorkingDir}, Block: md.ContainsBlk}}
	case metadata.MetadataSiblingsMap:
		return plexSiblingsMap(md.SiblingsMap, workingDir, sel, logger)
	default: // MetadataSiblingsSeq
		return plexSiblingsSeq(md.SiblingsSeq, workingDir, sel, order, logger)
	}
}

func plexSiblingsMap(entries []metadata.SiblingKV, workingDir string, sel *selection.Selection, logger *logging.Logger) []PlexRecord {
	selectedNames, err := selection.SelectedEntriesInDir(workingDir, sel)
	if err != nil {
		logger.Warnf("unable to enumerate directory %q: %v", workingDir, err)
		return nil
	}

	remaining := make(map[string]bool, len(selectedNames))
	for _, name := range selectedNames {
		remaining[name] = true
	}

	var results []PlexRecord
	for _, entry := range entries {
		if !pathutil.IsValidItemName(entry.Name) {
			logger.Warnf("item name %q is invalid", entry.Name)
			continue
		}
		if !remaining[entry.Name] {
			logger.Warnf("item name %q was not found in the directory", entry.Name)
			continue
		}
		delete(remaining, entry.Name)
		results = append(results, PlexRecord{
			Target: PlexTarget{Kind: TargetSubItem, Name: entry.Name},
			Block:  entry.Block,
		})
	}

	if len(remaining) > 0 {
		logger.Warnf("there are unaccounted-for item names remaining in %q", workingDir)
	}

	return results
}

func plexSiblingsSeq(blocks []metadata.MetaBlock, workingDir string, sel *selection.Selection, order sortorder.SortOrder, logger *logging.Logger) []PlexRecord {
	names, err := selection.SelectedEntriesInDir(workingDir, sel)
	if err != nil {
		logger.Warnf("unable to enumerate directory %q: %v", workingDir, err)
		return nil
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(workingDir, name)
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return sortorder.Compare(paths[i], paths[j], order) < 0
	})

	if len(blocks) != len(paths) {
		logger.Warnf("selected item count (%d) does not match metadata block count (%d) in %q", len(paths), len(blocks), workingDir)
	}

	n := len(blocks)
	if len(paths) < n {
		n = len(paths)
	}

	results := make([]PlexRecord, n)
	for i := 0; i < n; i++ {
		results[i] = PlexRecord{
			Target: PlexTarget{Kind: TargetSubItem, Name: filepath.Base(paths[i])},
			Block:  blocks[i],
		}
	}
	return results
}
