package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidev-labs/aidev/internal/branding"
	"github.com/aidev-labs/aidev/internal/config"
)

// Directory and file name constants for the store layout.
const (
	CoreDirName     = "core"
	AdaptersDirName = "adapters"
	ManifestName    = "store.yaml"

	// StoreDirName is the store's directory name under ~/.aidev/ and next
	// to the executable.
	StoreDirName = "store"
)

// DefaultCategories returns the entry categories a store provides when its
// manifest does not say otherwise.
func DefaultCategories() []string {
	return []string{"skills", "agents", "workflows", "templates", "rules"}
}

// LinkedCategories returns the categories every initialized project links
// under .agent/, independent of platform selection.
func LinkedCategories() []string {
	return []string{"skills", "agents", "workflows", "templates"}
}

// Store is a resolved template store on disk.
type Store struct {
	Root string
}

// NotFoundError means no template store exists at any searched location.
type NotFoundError struct {
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no template store found; searched: %s", strings.Join(e.Candidates, ", "))
}

// Resolve locates the template store, returning the first candidate that
// contains a core/ directory. The search order is the AIDEV_STORE
// environment variable, the store.path config key, a store/ directory next
// to the executable, then the per-user default.
func Resolve() (*Store, error) {
	candidates := Candidates()
	for _, c := range candidates {
		if isStoreRoot(c) {
			return &Store{Root: c}, nil
		}
	}
	return nil, &NotFoundError{Candidates: candidates}
}

// Candidates returns every location Resolve searches, in order.
func Candidates() []string {
	var out []string
	if v := os.Getenv(branding.EnvVar("STORE")); v != "" {
		out = append(out, v)
	}
	if v := config.Get("store.path"); v != "" {
		out = append(out, v)
	}
	if exe, err := os.Executable(); err == nil {
		out = append(out, filepath.Join(filepath.Dir(exe), StoreDirName))
	}
	return append(out, DefaultRoot())
}

// DefaultRoot returns the per-user store location, ~/.aidev/store.
func DefaultRoot() string {
	return filepath.Join(config.Dir(), StoreDirName)
}

// isStoreRoot reports whether root looks like a template store.
func isStoreRoot(root string) bool {
	info, err := os.Stat(filepath.Join(root, CoreDirName))
	return err == nil && info.IsDir()
}

// CorePath returns the absolute path of the store's core/ directory.
func (s *Store) CorePath() string {
	return filepath.Join(s.Root, CoreDirName)
}

// CategoryPath returns the absolute path of one category directory.
func (s *Store) CategoryPath(category string) string {
	return filepath.Join(s.Root, CoreDirName, category)
}

// TemplatePath resolves a slash-separated store-relative template path,
// e.g. "adapters/claude/templates/base.md".
func (s *Store) TemplatePath(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// ManifestPath returns the absolute path of the store.yaml manifest.
func (s *Store) ManifestPath() string {
	return filepath.Join(s.Root, ManifestName)
}

// Categories returns the categories this store provides, from store.yaml
// when present and the defaults otherwise.
func (s *Store) Categories() []string {
	m, err := LoadManifest(s.Root)
	if err == nil && m != nil && len(m.Categories) > 0 {
		return m.Categories
	}
	return DefaultCategories()
}

// Validate checks that the store is usable for scaffolding. It returns an
// error when core/ is missing or completely empty, and a warning per
// category directory that is absent (links to it will dangle until the
// store grows one).
func (s *Store) Validate() ([]string, error) {
	core := s.CorePath()
	info, err := os.Stat(core)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a template store: missing %s/ directory", s.Root, CoreDirName)
	}

	entries, err := os.ReadDir(core)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", core, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("template store at %s is empty", s.Root)
	}

	var warnings []string
	for _, category := range s.Categories() {
		if _, err := os.Stat(s.CategoryPath(category)); err != nil {
			warnings = append(warnings, fmt.Sprintf("store has no %s/%s directory", CoreDirName, category))
		}
	}
	return warnings, nil
}
