package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSet is the sorted list of regular files found directly inside Dir.
type FileSet struct {
	Dir   string
	Names []string
	Sizes []int64
}

// List reads the top level of dir and returns its regular files sorted by
// name. Symlinks count when they resolve to a regular file; dangling links and
// subdirectories are skipped.
func List(dir string) (FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return FileSet{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	type file struct {
		name string
		size int64
	}
	files := make([]file, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return FileSet{}, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, file{name: entry.Name(), size: info.Size()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	set := FileSet{
		Dir:   dir,
		Names: make([]string, len(files)),
		Sizes: make([]int64, len(files)),
	}
	for i, f := range files {
		set.Names[i] = f.name
		set.Sizes[i] = f.size
	}
	return set, nil
}

// Len reports the number of files in the set.
func (s FileSet) Len() int {
	return len(s.Names)
}

// Path returns the absolute location of the i-th file.
func (s FileSet) Path(i int) string {
	return filepath.Join(s.Dir, s.Names[i])
}

// TotalBytes sums the sizes of every file in the set.
func (s FileSet) TotalBytes() int64 {
	var total int64
	for _, size := range s.Sizes {
		total += size
	}
	return total
}

// BasenameKey strips the final extension from name. Leading dots do not start
// an extension, so ".env" stays ".env" while "a.tar.gz" becomes "a.tar".
func BasenameKey(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	dot := strings.LastIndexByte(trimmed, '.')
	if dot < 0 {
		return name
	}
	return name[:len(name)-len(trimmed)+dot]
}
