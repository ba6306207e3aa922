package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taggu-go/taggu/pkg/metatarget"
	"github.com/taggu-go/taggu/pkg/selection"
	"github.com/taggu-go/taggu/pkg/sortorder"
)

func mustTempLibrary(t *testing.T) (*Library, string) {
	t.Helper()
	root, err := os.MkdirTemp("", "library")
	if err != nil {
		t.Fatalf("unable to create temporary directory: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(root) })

	pairs := []Pair{
		{Name: "self.yml", Target: metatarget.Contains},
		{Name: "item.yml", Target: metatarget.Siblings},
	}
	lib, err := New(root, pairs, selection.True(), sortorder.Name, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return lib, root
}

func TestNewRequiresExistingDirectory(t *testing.T) {
	root, err := os.MkdirTemp("", "library")
	if err != nil {
		t.Fatalf("unable to create temporary directory: %v", err)
	}
	defer os.RemoveAll(root)

	missing := filepath.Join(root, "does-not-exist")
	if _, err := New(missing, nil, selection.True(), sortorder.Name, Options{}); err == nil {
		t.Error("expected New to fail for a nonexistent root")
	}
}

func TestIsProperSubPath(t *testing.T) {
	lib, root := mustTempLibrary(t)

	if !lib.IsProperSubPath(root) {
		t.Error("expected the root itself to be a proper sub-path")
	}
	if !lib.IsProperSubPath(filepath.Join(root, "album")) {
		t.Error("expected a child of root to be a proper sub-path")
	}
	if lib.IsProperSubPath(filepath.Dir(root)) {
		t.Error("expected the root's parent not to be a proper sub-path")
	}
}

func TestMetaPathsForItemContainsAndSiblings(t *testing.T) {
	lib, root := mustTempLibrary(t)

	album := filepath.Join(root, "album")
	if err := os.Mkdir(album, 0755); err != nil {
		t.Fatalf("unable to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(album, "self.yml"), nil, 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "item.yml"), nil, 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	metaPaths := lib.MetaPathsForItem(album)
	if len(metaPaths) != 2 {
		t.Fatalf("expected 2 candidate meta-paths, got %d: %v", len(metaPaths), metaPaths)
	}
	if metaPaths[0] != filepath.Join(album, "self.yml") {
		t.Errorf("expected self.yml first (configuration order), got %q", metaPaths[0])
	}
	if metaPaths[1] != filepath.Join(root, "item.yml") {
		t.Errorf("expected item.yml from the parent directory, got %q", metaPaths[1])
	}
}

func TestMetaPathsForItemNonexistentItem(t *testing.T) {
	lib, root := mustTempLibrary(t)

	if paths := lib.MetaPathsForItem(filepath.Join(root, "missing")); paths != nil {
		t.Errorf("expected no candidate meta-paths for a nonexistent item, got %v", paths)
	}
}

func TestFindPair(t *testing.T) {
	lib, root := mustTempLibrary(t)

	pair, ok := lib.FindPair(filepath.Join(root, "album", "self.yml"))
	if !ok || pair.Target != metatarget.Contains {
		t.Errorf("expected self.yml to resolve to Contains, got %v, %v", pair, ok)
	}

	if _, ok := lib.FindPair(filepath.Join(root, "unknown.yml")); ok {
		t.Error("expected no pair match for an unconfigured meta-file name")
	}
}

func TestItemPathsForMetaContains(t *testing.T) {
	lib, root := mustTempLibrary(t)

	album := filepath.Join(root, "album")
	if err := os.Mkdir(album, 0755); err != nil {
		t.Fatalf("unable to create directory: %v", err)
	}
	metaPath := filepath.Join(album, "self.yml")
	if err := os.WriteFile(metaPath, []byte("title: Album One\n"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	bindings, err := lib.ItemPathsForMeta(metaPath, nil)
	if err != nil {
		t.Fatalf("ItemPathsForMeta failed: %v", err)
	}
	if len(bindings) != 1 || bindings[0].ItemPath != album {
		t.Fatalf("expected a single binding to %q, got %+v", album, bindings)
	}
	if v, ok := bindings[0].Block.Get("title"); !ok || v.Str != "Album One" {
		t.Errorf("expected title Album One, got %v, %v", v, ok)
	}
}

func TestItemPathsForMetaSiblingsMap(t *testing.T) {
	lib, root := mustTempLibrary(t)

	if err := os.WriteFile(filepath.Join(root, "a.flac"), nil, 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	metaPath := filepath.Join(root, "item.yml")
	content := "a.flac:\n  title: Track A\n"
	if err := os.WriteFile(metaPath, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	bindings, err := lib.ItemPathsForMeta(metaPath, nil)
	if err != nil {
		t.Fatalf("ItemPathsForMeta failed: %v", err)
	}
	if len(bindings) != 1 || bindings[0].ItemPath != filepath.Join(root, "a.flac") {
		t.Fatalf("expected a single binding to a.flac, got %+v", bindings)
	}
}

func TestItemPathsForMetaUnconfiguredName(t *testing.T) {
	lib, root := mustTempLibrary(t)

	metaPath := filepath.Join(root, "unknown.yml")
	if err := os.WriteFile(metaPath, []byte("title: X\n"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	bindings, err := lib.ItemPathsForMeta(metaPath, nil)
	if err != nil {
		t.Fatalf("expected no error for a meta-file name not in the configured pair list, got %v", err)
	}
	if len(bindings) != 0 {
		t.Errorf("expected no bindings for an unconfigured meta-file name, got %+v", bindings)
	}
}

func TestChildrenPaths(t *testing.T) {
	lib, root := mustTempLibrary(t)

	for _, name := range []string{"b", "a", "c"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("unable to create directory: %v", err)
		}
	}

	children, err := lib.ChildrenPaths(root)
	if err != nil {
		t.Fatalf("ChildrenPaths failed: %v", err)
	}
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if filepath.Base(children[0]) != "a" || filepath.Base(children[1]) != "b" || filepath.Base(children[2]) != "c" {
		t.Errorf("expected children in name order, got %v", children)
	}
}
