package materialize

import (
	"fmt"
	"strings"

	"github.com/aidev-labs/aidev/internal/planner"
)

// Outcome is the terminal state of one artifact after a run or inspection.
type Outcome int

const (
	// Pending means the artifact does not exist yet; only Inspect reports it.
	Pending Outcome = iota

	// Created means this run materialized the artifact.
	Created

	// AlreadyPresent means a prior run (or the user) supplied the artifact.
	AlreadyPresent

	// Skipped means the path is occupied by something unexpected and was
	// deliberately left untouched; Result.Warning says why.
	Skipped

	// Failed means an I/O error prevented materialization; Result.Err has it.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Created:
		return "created"
	case AlreadyPresent:
		return "present"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result pairs an artifact with what happened to it.
type Result struct {
	Artifact planner.Artifact
	Outcome  Outcome
	Warning  string
	Err      error
}

// Summary aggregates outcome counts across one run.
type Summary struct {
	Created int
	Present int
	Missing int
	Skipped int
	Failed  int
}

// Summarize tallies results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case Created:
			s.Created++
		case AlreadyPresent:
			s.Present++
		case Pending:
			s.Missing++
		case Skipped:
			s.Skipped++
		case Failed:
			s.Failed++
		}
	}
	return s
}

// String renders the nonzero counts, e.g. "3 created, 2 present".
func (s Summary) String() string {
	var parts []string
	if s.Created > 0 {
		parts = append(parts, fmt.Sprintf("%d created", s.Created))
	}
	if s.Present > 0 {
		parts = append(parts, fmt.Sprintf("%d present", s.Present))
	}
	if s.Missing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", s.Missing))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}
