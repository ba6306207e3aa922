package plexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/metadata"
	"github.com/taggu-go/taggu/pkg/selection"
	"github.com/taggu-go/taggu/pkg/sortorder"
)

func block(title string) metadata.MetaBlock {
	return metadata.NewBlock([]metadata.FieldKV{{Field: "title", Value: metadata.Str(title)}})
}

func TestPlexContains(t *testing.T) {
	md := metadata.Contains(block("Album"))
	records := Plex(md, "/library/album", selection.True(), sortorder.Name, nil)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Target.Kind != TargetWorkingDir {
		t.Errorf("expected WorkingDir target, got %+v", records[0].Target)
	}
}

func TestPlexSiblingsMap(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.flac", "b.flac"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
	}

	md := metadata.SiblingsMapOf([]metadata.SiblingKV{
		{Name: "a.flac", Block: block("A")},
		{Name: "missing.flac", Block: block("Missing")},
	})

	records := Plex(md, dir, selection.True(), sortorder.Name, logging.RootLogger)
	if len(records) != 1 {
		t.Fatalf("expected 1 record (missing.flac should be skipped), got %d", len(records))
	}
	if records[0].Target.Name != "a.flac" {
		t.Errorf("expected a.flac, got %q", records[0].Target.Name)
	}
}

func TestPlexSiblingsMapInvalidName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.flac"), nil, 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	md := metadata.SiblingsMapOf([]metadata.SiblingKV{
		{Name: "..", Block: block("Bad")},
	})

	records := Plex(md, dir, selection.True(), sortorder.Name, nil)
	if len(records) != 0 {
		t.Errorf("expected 0 records for an invalid item name, got %d", len(records))
	}
}

func TestPlexSiblingsSeq(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.flac", "a.flac"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
	}

	md := metadata.SiblingsSeqOf([]metadata.MetaBlock{block("First"), block("Second")})
	records := Plex(md, dir, selection.True(), sortorder.Name, nil)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Name order: a.flac, b.flac.
	if records[0].Target.Name != "a.flac" || records[1].Target.Name != "b.flac" {
		t.Errorf("expected [a.flac, b.flac] in sort order, got [%q, %q]", records[0].Target.Name, records[1].Target.Name)
	}
	if v, _ := records[0].Block.Get("title"); v.Str != "First" {
		t.Errorf("expected first zipped block to be First, got %q", v.Str)
	}
}

func TestPlexSiblingsSeqLengthMismatchTruncates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.flac", "b.flac", "c.flac"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("unable to write file: %v", err)
		}
	}

	md := metadata.SiblingsSeqOf([]metadata.MetaBlock{block("Only")})
	records := Plex(md, dir, selection.True(), sortorder.Name, logging.RootLogger)

	if len(records) != 1 {
		t.Fatalf("expected zip-truncate to yield 1 record, got %d", len(records))
	}
	if records[0].Target.Name != "a.flac" {
		t.Errorf("expected a.flac (first in sort order), got %q", records[0].Target.Name)
	}
}
