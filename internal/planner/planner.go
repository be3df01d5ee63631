package planner

import (
	"fmt"
	"path"
	"strings"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/store"
)

// AgentDir is the target-relative directory holding the shared category
// links every platform may consult.
const AgentDir = ".agent"

// ValidationError reports bad input rejected before any filesystem mutation.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q (valid: %s)", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// Plan computes the ordered artifact list for a platform selection and the
// given linked categories. The order is fixed: the core store copy, the
// shared .agent/ links, per-platform links in registration order, then rule
// files in registration order. Duplicate destinations keep the first
// artifact and add a warning per duplicate, so overlapping adapters can
// never clobber each other.
func Plan(selector adapters.Platform, categories []string) ([]Artifact, []string, error) {
	platforms, err := expandSelector(selector)
	if err != nil {
		return nil, nil, err
	}

	var (
		artifacts []Artifact
		warnings  []string
		claimed   = make(map[string]adapters.Platform)
	)
	add := func(a Artifact) {
		if first, dup := claimed[a.Dest]; dup {
			warnings = append(warnings, fmt.Sprintf("%s already planned by %s; dropping duplicate from %s", a.Dest, owner(first), owner(a.Platform)))
			return
		}
		claimed[a.Dest] = a.Platform
		artifacts = append(artifacts, a)
	}

	add(Artifact{Kind: KindStoreCopy, Dest: store.CoreDirName, Source: store.CoreDirName})

	for _, category := range categories {
		add(Artifact{
			Kind:   KindDirLink,
			Dest:   path.Join(AgentDir, category),
			Source: path.Join(store.CoreDirName, category),
		})
	}

	for _, p := range platforms {
		a, ok := adapters.Lookup(p)
		if !ok {
			continue
		}
		for _, dl := range a.DirLinks {
			add(Artifact{Kind: KindDirLink, Dest: dl.Link, Source: dl.Target, Platform: p})
		}
	}

	for _, p := range platforms {
		a, ok := adapters.Lookup(p)
		if !ok {
			continue
		}
		for _, rf := range a.RuleFiles {
			add(Artifact{Kind: KindFileCopy, Dest: rf.Dest, Source: rf.Template, Platform: p})
		}
	}

	return artifacts, warnings, nil
}

// expandSelector resolves "all" to every registered platform and rejects
// unknown names.
func expandSelector(selector adapters.Platform) ([]adapters.Platform, error) {
	if selector == adapters.All {
		return adapters.AllPlatforms(), nil
	}
	if _, ok := adapters.Lookup(selector); !ok {
		return nil, &ValidationError{Field: "platform", Value: string(selector), Valid: adapters.ValidNames()}
	}
	return []adapters.Platform{selector}, nil
}

func owner(p adapters.Platform) string {
	if p == "" {
		return "the shared plan"
	}
	return string(p)
}
