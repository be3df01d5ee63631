package planner

import "github.com/aidev-labs/aidev/internal/adapters"

// Kind classifies a planned artifact.
type Kind int

const (
	// KindStoreCopy copies the store's core/ tree into the target.
	KindStoreCopy Kind = iota

	// KindDirLink links a target path to a directory of the copied core/.
	KindDirLink

	// KindFileCopy copies one adapter template to a target file.
	KindFileCopy
)

func (k Kind) String() string {
	switch k {
	case KindStoreCopy:
		return "store-copy"
	case KindDirLink:
		return "directory-link"
	case KindFileCopy:
		return "file-copy"
	default:
		return "unknown"
	}
}

// Artifact is one planned operation against the target project.
//
// Dest is relative to the target root. Source holds the link destination
// (target-relative) for KindDirLink, the store-relative template path for
// KindFileCopy, and the store subtree name for KindStoreCopy. Both are
// slash-separated regardless of host OS; the materializer converts.
type Artifact struct {
	Kind   Kind
	Dest   string
	Source string

	// Platform is the adapter that requested this artifact; empty for the
	// shared artifacts every platform gets.
	Platform adapters.Platform
}
