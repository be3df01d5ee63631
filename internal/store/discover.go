package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one named item inside a category directory. Skills are
// directories; the remaining categories hold single markdown files.
type Entry struct {
	Name     string
	Category string
	Path     string
	IsDir    bool
}

// ListCategory returns the entries of one category in name order (os.ReadDir
// sorts). Hidden files are skipped. File entries drop their .md suffix so
// names read the same across categories.
func (s *Store) ListCategory(category string) ([]Entry, error) {
	dir := s.CategoryPath(category)
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading category %s: %w", category, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entry := Entry{
			Name:     name,
			Category: category,
			Path:     filepath.Join(dir, name),
			IsDir:    de.IsDir(),
		}
		if !de.IsDir() {
			entry.Name = strings.TrimSuffix(name, ".md")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// HasEntry reports whether a named entry exists in a category, matching
// either a directory or a markdown file.
func (s *Store) HasEntry(category, name string) bool {
	if _, err := os.Stat(filepath.Join(s.CategoryPath(category), name)); err == nil {
		return true
	}
	_, err := os.Stat(filepath.Join(s.CategoryPath(category), name+".md"))
	return err == nil
}
