package materialize

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/store"
)

// Materializer executes a plan against one target project directory.
type Materializer struct {
	Store  *store.Store
	Target string

	// FailFast stops the run at the first failed artifact instead of
	// attempting the rest.
	FailFast bool
}

// Run materializes every artifact in plan order, writing one progress line
// per artifact to w. Failures are recorded in the results and the run
// continues unless FailFast is set.
func (m *Materializer) Run(w io.Writer, artifacts []planner.Artifact) []Result {
	results := make([]Result, 0, len(artifacts))
	for _, a := range artifacts {
		r := m.apply(a)
		printProgress(w, r)
		results = append(results, r)
		if m.FailFast && r.Outcome == Failed {
			break
		}
	}
	return results
}

func (m *Materializer) apply(a planner.Artifact) Result {
	switch a.Kind {
	case planner.KindStoreCopy:
		return m.ensureStoreCopy(a)
	case planner.KindDirLink:
		return m.ensureDirLink(a)
	case planner.KindFileCopy:
		return m.ensureFileCopy(a)
	default:
		return Result{Artifact: a, Outcome: Failed, Err: fmt.Errorf("unknown artifact kind %d", a.Kind)}
	}
}

// destPath converts an artifact's slash-separated Dest into an absolute
// path inside the target.
func (m *Materializer) destPath(a planner.Artifact) string {
	return filepath.Join(m.Target, filepath.FromSlash(a.Dest))
}

// sourceInTarget resolves a target-relative artifact source, e.g. the
// core/skills directory a link points at.
func (m *Materializer) sourceInTarget(a planner.Artifact) string {
	return filepath.Join(m.Target, filepath.FromSlash(a.Source))
}

func printProgress(w io.Writer, r Result) {
	a := r.Artifact
	switch {
	case r.Outcome == Created && a.Kind == planner.KindDirLink:
		fmt.Fprintf(w, "  [ OK ] Linked %s -> %s\n", a.Dest, a.Source)
	case r.Outcome == Created:
		fmt.Fprintf(w, "  [ OK ] Created %s\n", a.Dest)
	case r.Outcome == AlreadyPresent:
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", a.Dest)
	case r.Outcome == Skipped:
		fmt.Fprintf(w, "  [WARN] %s: %s\n", a.Dest, r.Warning)
	case r.Outcome == Failed:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", a.Dest, r.Err)
	}
}
