package materialize

import (
	"fmt"
	"io"

	"github.com/aidev-labs/aidev/internal/planner"
)

// PrintSummary renders the final tree-style report, grouping artifact
// results under the target root with one annotation per artifact.
func PrintSummary(w io.Writer, target string, results []Result) {
	items := make([]planner.TreeItem, 0, len(results))
	for _, r := range results {
		items = append(items, planner.TreeItem{Path: r.Artifact.Dest, Note: note(r)})
	}
	fmt.Fprintln(w, "Project structure:")
	planner.PrintTree(w, planner.BuildTree(target, items))
}

func note(r Result) string {
	arrow := ""
	if r.Artifact.Kind == planner.KindDirLink {
		arrow = "-> " + r.Artifact.Source + " "
	}
	switch r.Outcome {
	case Created:
		return arrow + "(created)"
	case AlreadyPresent:
		return arrow + "(present)"
	case Pending:
		return arrow + "(missing)"
	case Skipped:
		return arrow + "(skipped: " + r.Warning + ")"
	case Failed:
		return arrow + "(failed: " + r.Err.Error() + ")"
	default:
		return arrow + "(" + r.Outcome.String() + ")"
	}
}
