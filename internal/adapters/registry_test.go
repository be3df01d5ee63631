package adapters

import (
	"strings"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"claude", Claude, true},
		{"cursor", Cursor, true},
		{"windsurf", Windsurf, true},
		{"kiro", Kiro, true},
		{"codex", Codex, true},
		{"copilot", Copilot, true},
		{"antigravity", Antigravity, true},
		{"all", All, true},
		{"Claude", Claude, true},
		{"  codex  ", Codex, true},
		{"ALL", All, true},
		{"emacs", "", false},
		{"", "", false},
		{"claud", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePlatform(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePlatform(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRegistryCoversAllPlatforms(t *testing.T) {
	platforms := AllPlatforms()

	if len(adapterRegistry) != len(platforms) {
		t.Errorf("registry has %d entries, AllPlatforms lists %d", len(adapterRegistry), len(platforms))
	}
	for _, p := range platforms {
		if _, ok := Lookup(p); !ok {
			t.Errorf("platform %s missing from registry", p)
		}
	}
}

func TestLookupUnknownPlatform(t *testing.T) {
	if _, ok := Lookup(Platform("vim")); ok {
		t.Error("Lookup returned ok for unregistered platform")
	}
	// "all" is a selector, never a registry key.
	if _, ok := Lookup(All); ok {
		t.Error("Lookup(All) returned ok, want miss")
	}
}

func TestRegistryPathsAreRelative(t *testing.T) {
	for _, p := range AllPlatforms() {
		a, _ := Lookup(p)
		for _, rf := range a.RuleFiles {
			if strings.HasPrefix(rf.Dest, "/") || strings.Contains(rf.Dest, "..") {
				t.Errorf("%s: rule file dest %q escapes the target", p, rf.Dest)
			}
			if !strings.HasPrefix(rf.Template, "adapters/") {
				t.Errorf("%s: template %q not under adapters/", p, rf.Template)
			}
		}
		for _, dl := range a.DirLinks {
			if strings.HasPrefix(dl.Link, "/") || strings.Contains(dl.Link, "..") {
				t.Errorf("%s: link %q escapes the target", p, dl.Link)
			}
			if !strings.HasPrefix(dl.Target, "core/") {
				t.Errorf("%s: link target %q not under core/", p, dl.Target)
			}
		}
	}
}

func TestValidNames(t *testing.T) {
	names := ValidNames()

	if names[len(names)-1] != "all" {
		t.Errorf("last valid name = %q, want %q", names[len(names)-1], "all")
	}
	if len(names) != len(AllPlatforms())+1 {
		t.Errorf("ValidNames returned %d names, want %d", len(names), len(AllPlatforms())+1)
	}
	for _, name := range names {
		if _, ok := ParsePlatform(name); !ok {
			t.Errorf("ValidNames entry %q does not parse", name)
		}
	}
}
