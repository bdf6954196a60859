// Package loader resolves the --src CLI argument into an ordered list of
// .vm input files (spec.md §6 CLI surface). This is the "directory
// traversal" external collaborator the spec names as out of the core's
// scope, kept thin and separate from the Parser/CodeGen pipeline.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve returns the ordered list of .vm files named by src. If src is a
// single file, it must have a .vm extension. If src is a directory, every
// top-level *.vm file is returned in filesystem-enumeration order, which
// this implementation defines as lexicographic by filename (os.ReadDir's
// natural order).
func Resolve(src string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	if !info.IsDir() {
		if strings.ToLower(filepath.Ext(src)) != ".vm" {
			return nil, fmt.Errorf("loader: %s is not a .vm file", src)
		}
		return []string{src}, nil
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ".vm" {
			continue
		}
		files = append(files, filepath.Join(src, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("loader: no .vm files found in %s", src)
	}
	return files, nil
}

// FilePrefix derives the static-variable file_prefix from a .vm path:
// the base filename without its extension (spec.md §3 file_prefix).
func FilePrefix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
