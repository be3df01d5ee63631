package materialize

import (
	"os"

	"github.com/aidev-labs/aidev/internal/planner"
)

// Inspect reports the current state of each planned artifact without
// touching the filesystem: AlreadyPresent for materialized artifacts,
// Pending for absent ones, Skipped for paths occupied by something a run
// would refuse to replace. Idempotence means project state is always
// derivable this way; no state file exists.
func (m *Materializer) Inspect(artifacts []planner.Artifact) []Result {
	results := make([]Result, 0, len(artifacts))
	for _, a := range artifacts {
		results = append(results, m.inspectOne(a))
	}
	return results
}

func (m *Materializer) inspectOne(a planner.Artifact) Result {
	dest := m.destPath(a)

	switch a.Kind {
	case planner.KindDirLink:
		outcome, warning := m.linkState(a)
		return Result{Artifact: a, Outcome: outcome, Warning: warning}

	case planner.KindStoreCopy:
		info, err := os.Lstat(dest)
		if err != nil {
			return Result{Artifact: a, Outcome: Pending}
		}
		if !info.IsDir() {
			return Result{Artifact: a, Outcome: Skipped, Warning: "exists and is not a directory"}
		}
		return Result{Artifact: a, Outcome: AlreadyPresent}

	default:
		info, err := os.Lstat(dest)
		if err != nil {
			return Result{Artifact: a, Outcome: Pending}
		}
		if info.IsDir() {
			return Result{Artifact: a, Outcome: Skipped, Warning: "exists and is a directory"}
		}
		return Result{Artifact: a, Outcome: AlreadyPresent}
	}
}
