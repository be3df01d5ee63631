// Package store locates, validates, and fetches the template store: the
// read-only tree of shared AI configuration (core/) plus per-platform
// adapter templates (adapters/). Resolution checks an environment override,
// the user config, the executable's directory, and the per-user default, in
// that order. An optional store.yaml manifest declares the store's name,
// version, and format compatibility.
package store
