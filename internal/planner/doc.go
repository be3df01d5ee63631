// Package planner turns a platform selection into the ordered list of
// artifacts to materialize in a target project. Planning is pure: it reads
// the adapter registry and touches no filesystem, so plans can be shown as
// a dry run and re-executed idempotently. Order is deterministic with the
// store copy first, directory links second, and rule files last.
package planner
