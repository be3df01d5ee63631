package adapters

import "strings"

// Platform identifies a supported AI coding assistant.
type Platform string

const (
	Claude      Platform = "claude"
	Cursor      Platform = "cursor"
	Windsurf    Platform = "windsurf"
	Kiro        Platform = "kiro"
	Codex       Platform = "codex"
	Copilot     Platform = "copilot"
	Antigravity Platform = "antigravity"

	// All selects every registered platform.
	All Platform = "all"
)

// RuleFile describes one instruction file a platform reads, and the store
// template it is copied from.
type RuleFile struct {
	// Dest is the target-relative path, slash-separated.
	Dest string

	// Template is the store-relative template path, slash-separated.
	Template string
}

// DirLink describes a platform-specific directory link beyond the shared
// .agent/ links every project gets.
type DirLink struct {
	// Link is the target-relative link path, slash-separated.
	Link string

	// Target is the link destination relative to the project root,
	// slash-separated.
	Target string
}

// Adapter holds everything the planner needs to materialize one platform.
type Adapter struct {
	RuleFiles []RuleFile
	DirLinks  []DirLink
}

// adapterRegistry maps each platform to its artifacts. Every platform also
// receives the shared .agent/<category> links; only extras are listed here.
var adapterRegistry = map[Platform]Adapter{
	Claude: {
		RuleFiles: []RuleFile{{Dest: "CLAUDE.md", Template: "adapters/claude/templates/base.md"}},
		DirLinks:  []DirLink{{Link: ".claude/skills", Target: "core/skills"}},
	},
	Cursor: {
		RuleFiles: []RuleFile{{Dest: ".cursorrules", Template: "adapters/cursor/templates/base.md"}},
	},
	Windsurf: {
		RuleFiles: []RuleFile{{Dest: ".windsurfrules", Template: "adapters/windsurf/templates/base.md"}},
	},
	Kiro: {
		RuleFiles: []RuleFile{{Dest: ".kiro/steering/project.md", Template: "adapters/kiro/templates/project.md"}},
	},
	Codex: {
		RuleFiles: []RuleFile{{Dest: "AGENTS.md", Template: "adapters/codex/templates/agents.md"}},
	},
	Copilot: {
		RuleFiles: []RuleFile{{Dest: ".github/copilot-instructions.md", Template: "adapters/copilot/templates/instructions.md"}},
	},
	// Antigravity reads the shared .agent/ links directly.
	Antigravity: {},
}

// AllPlatforms returns every registered platform in registration order.
func AllPlatforms() []Platform {
	return []Platform{Claude, Cursor, Windsurf, Kiro, Codex, Copilot, Antigravity}
}

// Lookup returns the adapter for a concrete platform.
func Lookup(p Platform) (Adapter, bool) {
	a, ok := adapterRegistry[p]
	return a, ok
}

// ParsePlatform converts a user-supplied name into a Platform. It accepts
// every concrete platform plus "all", case-insensitively.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case Claude:
		return Claude, true
	case Cursor:
		return Cursor, true
	case Windsurf:
		return Windsurf, true
	case Kiro:
		return Kiro, true
	case Codex:
		return Codex, true
	case Copilot:
		return Copilot, true
	case Antigravity:
		return Antigravity, true
	case All:
		return All, true
	default:
		return "", false
	}
}

// ValidNames returns every accepted selector string, "all" last. Used for
// error messages and flag help.
func ValidNames() []string {
	platforms := AllPlatforms()
	names := make([]string, 0, len(platforms)+1)
	for _, p := range platforms {
		names = append(names, string(p))
	}
	return append(names, string(All))
}
