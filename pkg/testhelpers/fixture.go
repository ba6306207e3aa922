// Package testhelpers builds the canonical fixture directory tree used by
// acceptance tests across the resolver: five albums of varying
// well-formedness, each directory carrying a Contains self.yml and a
// Siblings item.yml describing its direct children positionally.
//
// Ground: original_source/src/test_helpers/mod.rs's
// default_dir_hierarchy/create_test_dir_entries.
package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// entry is one node of the fixture tree: either a directory with
// sub-entries or a leaf media file.
type entry struct {
	name     string
	children []entry
}

func dir(name string, children ...entry) entry {
	return entry{name: name, children: children}
}

func file(name string) entry {
	return entry{name: name}
}

// defaultHierarchy mirrors the five-album fixture: a well-behaved album, an
// album with loose tracks alongside a disc, an album with subtracks nested
// under one disc, a single-file album, and a messed-up album mixing all of
// the above.
func defaultHierarchy() []entry {
	return []entry{
		dir("ALBUM_01",
			dir("DISC_01", file("TRACK_01"), file("TRACK_02"), file("TRACK_03")),
			dir("DISC_02", file("TRACK_01"), file("TRACK_02"), file("TRACK_03")),
		),
		dir("ALBUM_02",
			dir("DISC_01", file("TRACK_01"), file("TRACK_02"), file("TRACK_03")),
			file("TRACK_01"), file("TRACK_02"), file("TRACK_03"),
		),
		dir("ALBUM_03",
			dir("DISC_01", file("TRACK_01"), file("TRACK_02"), file("TRACK_03")),
			dir("DISC_02",
				dir("TRACK_01", file("SUBTRACK_01"), file("SUBTRACK_02")),
				dir("TRACK_02", file("SUBTRACK_01"), file("SUBTRACK_02")),
				file("TRACK_03"), file("TRACK_04"),
			),
		),
		file("ALBUM_04"),
		dir("ALBUM_05",
			dir("DISC_01", file("SUBTRACK_01"), file("SUBTRACK_02"), file("SUBTRACK_03")),
			dir("DISC_02", dir("TRACK_01", file("SUBTRACK_01"), file("SUBTRACK_02"))),
			file("TRACK_01"), file("TRACK_02"), file("TRACK_03"),
		),
	}
}

const mediaExt = ".flac"

// Build materializes the canonical fixture tree under a fresh temporary
// directory and returns its root path. Every entry not itself a directory
// is created as an empty ".flac" file.
func Build(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	createEntries("ROOT", root, defaultHierarchy())
	return root
}

func createEntries(identifier, targetDir string, entries []entry) {
	selfContent := fmt.Sprintf("const_key: const_val\nself_key: self_val\n%s_self_key: %s_self_val\n", identifier, identifier)
	if err := os.WriteFile(filepath.Join(targetDir, "self.yml"), []byte(selfContent), 0644); err != nil {
		panic(err)
	}

	var itemMeta strings.Builder
	for _, e := range entries {
		if len(e.children) > 0 {
			subdir := filepath.Join(targetDir, e.name)
			if err := os.MkdirAll(subdir, 0755); err != nil {
				panic(err)
			}
			createEntries(e.name, subdir, e.children)
		} else {
			path := filepath.Join(targetDir, e.name+mediaExt)
			if err := os.WriteFile(path, nil, 0644); err != nil {
				panic(err)
			}
		}
		fmt.Fprintf(&itemMeta, "- const_key: const_val\n  item_key: item_val\n  %s_item_key: %s_item_val\n", e.name, e.name)
	}

	if err := os.WriteFile(filepath.Join(targetDir, "item.yml"), []byte(itemMeta.String()), 0644); err != nil {
		panic(err)
	}
}
