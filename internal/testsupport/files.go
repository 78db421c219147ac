package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteNamed creates each name under dir with content equal to the name, so
// copies can be traced back to their source.
func WriteNamed(t testing.TB, dir string, names ...string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// PairedDataset creates sibling input and target directories holding one file
// per basename, using the given extensions. It returns both directory paths.
func PairedDataset(t testing.TB, inputExt, targetExt string, basenames ...string) (string, string) {
	t.Helper()

	root := t.TempDir()
	inputDir := filepath.Join(root, "dataset_A")
	targetDir := filepath.Join(root, "dataset_B")
	inputs := make([]string, 0, len(basenames))
	targets := make([]string, 0, len(basenames))
	for _, base := range basenames {
		inputs = append(inputs, base+inputExt)
		targets = append(targets, base+targetExt)
	}
	WriteNamed(t, inputDir, inputs...)
	WriteNamed(t, targetDir, targets...)
	return inputDir, targetDir
}

// ListNames returns the sorted entry names of dir, or nil when dir is absent.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

// ListFiles returns the sorted names of regular files directly inside dir.
func ListFiles(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
