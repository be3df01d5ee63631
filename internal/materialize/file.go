package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/platform"
)

// ensureFileCopy copies one adapter template into the target, creating
// parent directories as needed. Existing files are never overwritten, so
// user edits to rule files survive reruns. A template absent from the
// store skips the artifact with a warning rather than failing, letting
// thin stores initialize what they can.
func (m *Materializer) ensureFileCopy(a planner.Artifact) Result {
	dest := m.destPath(a)
	if _, err := os.Lstat(dest); err == nil {
		return Result{Artifact: a, Outcome: AlreadyPresent}
	}

	data, err := os.ReadFile(m.Store.TemplatePath(a.Source))
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Artifact: a, Outcome: Skipped, Warning: fmt.Sprintf("no %s template in store", a.Platform)}
		}
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("reading template %s: %w", a.Source, err)}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: err}
	}
	if err := writeFileAtomic(dest, data, 0644); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("writing %s: %w", a.Dest, err)}
	}
	return Result{Artifact: a, Outcome: Created}
}

// writeFileAtomic writes through a temp file and rename so a crashed run
// never leaves a half-written rule file behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := platform.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
