// Package materialize executes planned artifacts against a target project.
// Every operation is idempotent and non-destructive: existing content is
// reported as already present, paths occupied by something unexpected are
// skipped with a warning, and nothing a user created is ever overwritten or
// deleted. Failures are collected per artifact so one bad rule file does
// not abort the rest of a run.
package materialize
