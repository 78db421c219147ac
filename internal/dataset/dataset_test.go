package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"datasplit/internal/testsupport"
)

func TestBasenameKey(t *testing.T) {
	tests := map[string]string{
		"img.png":   "img",
		"a.tar.gz":  "a.tar",
		"noext":     "noext",
		".env":      ".env",
		"..a.b":     "..a",
		"trailing.": "trailing",
		"":          "",
	}
	for name, want := range tests {
		if got := BasenameKey(name); got != want {
			t.Errorf("BasenameKey(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestListSortsTopLevelRegularFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteNamed(t, dir, "b.png", "a.png", "c.png")
	testsupport.WriteNamed(t, filepath.Join(dir, "train"), "z.png")
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "deep.png"), 10)

	set, err := List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := []string{"a.png", "b.png", "c.png"}
	if !reflect.DeepEqual(set.Names, want) {
		t.Fatalf("Names = %v, want %v", set.Names, want)
	}
	if set.Len() != 3 {
		t.Fatalf("Len = %d, want 3", set.Len())
	}
	if got := set.Path(1); got != filepath.Join(dir, "b.png") {
		t.Fatalf("Path(1) = %q", got)
	}
	if got := set.TotalBytes(); got != int64(len("a.png")*3) {
		t.Fatalf("TotalBytes = %d", got)
	}
}

func TestListFollowsSymlinksToFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteNamed(t, dir, "real.png")
	if err := os.Symlink(filepath.Join(dir, "real.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "missing.png"), filepath.Join(dir, "dangling.png")); err != nil {
		t.Fatal(err)
	}

	set, err := List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := []string{"link.png", "real.png"}
	if !reflect.DeepEqual(set.Names, want) {
		t.Fatalf("Names = %v, want %v", set.Names, want)
	}
}

func TestListMissingDirectory(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestCheckPairingAcceptsDifferentExtensions(t *testing.T) {
	inputs := FileSet{Names: []string{"1.png", "2.png"}}
	targets := FileSet{Names: []string{"1.jpg", "2.tif"}}
	if err := CheckPairing(inputs, targets); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckPairingReportsMismatch(t *testing.T) {
	inputs := FileSet{Names: []string{"a.png", "b.png"}}
	targets := FileSet{Names: []string{"a.jpg", "c.jpg"}}

	err := CheckPairing(inputs, targets)
	var pairErr *PairingError
	if !errors.As(err, &pairErr) {
		t.Fatalf("expected PairingError, got %v", err)
	}
	if pairErr.Index != 1 || pairErr.Input != "b.png" || pairErr.Target != "c.jpg" {
		t.Fatalf("unexpected mismatch details: %+v", pairErr)
	}
}

func TestCheckPairingReportsLengthMismatch(t *testing.T) {
	inputs := FileSet{Names: []string{"a.png", "b.png", "c.png"}}
	targets := FileSet{Names: []string{"a.jpg", "b.jpg"}}

	err := CheckPairing(inputs, targets)
	var pairErr *PairingError
	if !errors.As(err, &pairErr) {
		t.Fatalf("expected PairingError, got %v", err)
	}
	if pairErr.Index != 2 || pairErr.Input != "c.png" || pairErr.Target != "" {
		t.Fatalf("unexpected mismatch details: %+v", pairErr)
	}
	if pairErr.InputCount != 3 || pairErr.TargetCount != 2 {
		t.Fatalf("unexpected counts: %+v", pairErr)
	}
}

func TestCheckPairingEmptySets(t *testing.T) {
	if err := CheckPairing(FileSet{}, FileSet{}); err != nil {
		t.Fatalf("unexpected error for empty sets: %v", err)
	}
}
