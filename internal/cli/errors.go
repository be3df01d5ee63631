package cli

import (
	"errors"
	"fmt"
)

// PartialFailureError reports a materialization that completed with some
// artifacts failed. It maps to exit code 2 so scripts can distinguish
// "ran but incomplete" from argument or environment errors.
type PartialFailureError struct {
	Failed int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%d artifact(s) failed; the rest were applied", e.Failed)
}

// ExitCode translates an Execute error into a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var partial *PartialFailureError
	if errors.As(err, &partial) {
		return 2
	}
	return 1
}
