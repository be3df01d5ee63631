// Package adapters defines the static registry of supported AI coding
// assistants and the per-platform configuration artifacts each one expects.
// Adding a platform means adding a constant, a registry entry, and nothing
// else; the planner derives everything from the table.
package adapters
