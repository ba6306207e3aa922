package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndBuildLibrary(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "self.yml"), []byte("title: Test\n"), 0644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}

	configPath := filepath.Join(root, "taggu.yml")
	contents := "root: " + root + "\n" +
		"pairs:\n" +
		"  - name: self.yml\n" +
		"    target: contains\n" +
		"selection:\n" +
		"  extensions:\n" +
		"    - .flac\n" +
		"sortOrder: name\n"
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != root {
		t.Errorf("expected root %q, got %q", root, cfg.Root)
	}

	lib, err := cfg.BuildLibrary()
	if err != nil {
		t.Fatalf("BuildLibrary failed: %v", err)
	}
	if lib.Root() != root {
		t.Errorf("expected library root %q, got %q", root, lib.Root())
	}
}

func TestLoadRequiresRoot(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "taggu.yml")
	if err := os.WriteFile(configPath, []byte("pairs:\n  - name: self.yml\n    target: contains\n"), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestLoadRejectsInvalidMetaFileName(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "taggu.yml")
	contents := "root: " + dir + "\n" +
		"pairs:\n" +
		"  - name: ../escape.yml\n" +
		"    target: contains\n"
	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected an error for a pair name that fails item-name validation")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "taggu.yml")

	cfg := &Configuration{
		Root:      dir,
		Pairs:     []PairConfiguration{{Name: "self.yml", Target: "contains"}},
		SortOrder: "name",
	}
	if err := Save(configPath, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if loaded.Root != dir {
		t.Errorf("expected root %q, got %q", dir, loaded.Root)
	}
	if len(loaded.Pairs) != 1 || loaded.Pairs[0].Name != "self.yml" {
		t.Errorf("unexpected pairs after round-trip: %+v", loaded.Pairs)
	}
}

func TestSelectionConfigurationBuildDefaultsToTrue(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "anything"), nil, 0644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}

	sel := SelectionConfiguration{}.Build()
	if !sel.IsSelected(filepath.Join(dir, "anything")) {
		t.Error("expected an empty selection configuration to select everything")
	}
}
