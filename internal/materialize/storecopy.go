package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/platform"
)

// excludedNames are never copied from the store into a project.
var excludedNames = map[string]bool{
	"node_modules": true,
	".git":         true,
	".DS_Store":    true,
}

// ensureStoreCopy copies the store's core/ tree into the target once. The
// copy is staged in a temp sibling directory and renamed into place, so a
// crashed run never leaves a partial core/ that a rerun would mistake for
// a complete one.
func (m *Materializer) ensureStoreCopy(a planner.Artifact) Result {
	dest := m.destPath(a)
	if info, err := os.Lstat(dest); err == nil {
		if !info.IsDir() {
			return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("%s exists and is not a directory", a.Dest)}
		}
		return Result{Artifact: a, Outcome: AlreadyPresent}
	}

	src := filepath.Join(m.Store.Root, filepath.FromSlash(a.Source))
	srcInfo, err := os.Stat(src)
	if err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("store source %s: %w", a.Source, err)}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: err}
	}
	tmp, err := os.MkdirTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-")
	if err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: err}
	}
	defer os.RemoveAll(tmp)

	platform.Chmod(tmp, srcInfo.Mode().Perm())
	if err := copyDir(src, tmp); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("copying template store: %w", err)}
	}
	if err := os.Rename(tmp, dest); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("finalizing %s: %w", a.Dest, err)}
	}
	return Result{Artifact: a, Outcome: Created}
}

// copyDir recursively copies the contents of src into dst, skipping
// excluded names and symlinks.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, preserving its mode.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func shouldExclude(name string) bool {
	return excludedNames[name]
}
