package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/platform"
)

// ensureDirLink creates the planned link unless its path is already
// occupied. A link pointing at the planned target counts as present.
// Anything else at the path, including a link pointing elsewhere, is
// skipped with a warning; user content is never replaced by a link.
func (m *Materializer) ensureDirLink(a planner.Artifact) Result {
	outcome, warning := m.linkState(a)
	switch outcome {
	case AlreadyPresent:
		return Result{Artifact: a, Outcome: AlreadyPresent}
	case Skipped:
		return Result{Artifact: a, Outcome: Skipped, Warning: warning}
	}

	dest := m.destPath(a)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: err}
	}

	// Link relatively so the project tree survives being moved.
	target := m.sourceInTarget(a)
	if rel, err := filepath.Rel(filepath.Dir(dest), target); err == nil {
		target = rel
	}
	if err := platform.CreateDirLink(target, dest); err != nil {
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("creating link: %w", err)}
	}
	return Result{Artifact: a, Outcome: Created}
}

// linkState classifies whatever currently sits at a link artifact's path:
// Pending when the path is free, AlreadyPresent when the planned link
// exists, Skipped (with reason) when the path is occupied by anything else.
func (m *Materializer) linkState(a planner.Artifact) (Outcome, string) {
	dest := m.destPath(a)
	if _, err := os.Lstat(dest); err != nil {
		return Pending, ""
	}
	if !platform.IsDirLink(dest) {
		return Skipped, "exists and is not a link; left untouched"
	}

	current, err := platform.ReadDirLinkTarget(dest)
	if err != nil {
		return Skipped, fmt.Sprintf("unreadable link: %v", err)
	}
	if !sameLinkTarget(dest, current, m.sourceInTarget(a)) {
		return Skipped, fmt.Sprintf("links to %s instead of %s; left untouched", current, a.Source)
	}
	return AlreadyPresent, ""
}

// sameLinkTarget reports whether an existing link's target resolves to the
// planned destination. Relative targets resolve against the link's parent.
func sameLinkTarget(linkPath, current, want string) bool {
	resolved := current
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(linkPath), resolved)
	}
	return filepath.Clean(resolved) == filepath.Clean(want)
}
