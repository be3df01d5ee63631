//go:build integration

package integration_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/materialize"
	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/store"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // AIDEV_HOME: config and default store location
	StoreDir   string // AIDEV_STORE: the template store under test
	ProjectDir string // A mock project directory
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so every store lookup is sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		StoreDir:   t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("AIDEV_HOME", env.HomeDir)
	t.Setenv("AIDEV_STORE", env.StoreDir)

	setupStore(t, env.StoreDir)
	return env
}

// setupStore populates root with a complete synthetic template store: every
// category with at least one entry, adapter templates for every platform
// that needs one, and a valid store.yaml manifest.
func setupStore(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "core/skills/tdd/SKILL.md"), "# TDD\nWrite the test first.\n")
	writeFile(t, filepath.Join(root, "core/skills/tdd/reference.md"), "Red, green, refactor.\n")
	writeFile(t, filepath.Join(root, "core/agents/reviewer.md"), "# Reviewer\nReview code changes.\n")
	writeFile(t, filepath.Join(root, "core/workflows/release.md"), "# Release\nShip it.\n")
	writeFile(t, filepath.Join(root, "core/templates/adr.md"), "# ADR\nDecision record.\n")
	writeFile(t, filepath.Join(root, "core/rules/style.md"), "# Style\nKeep lines short.\n")

	writeFile(t, filepath.Join(root, "adapters/claude/templates/base.md"), "# Claude rules\nRead core/ first.\n")
	writeFile(t, filepath.Join(root, "adapters/cursor/templates/base.md"), "# Cursor rules\n")
	writeFile(t, filepath.Join(root, "adapters/windsurf/templates/base.md"), "# Windsurf rules\n")
	writeFile(t, filepath.Join(root, "adapters/kiro/templates/project.md"), "# Kiro steering\n")
	writeFile(t, filepath.Join(root, "adapters/codex/templates/agents.md"), "# Codex agents\n")
	writeFile(t, filepath.Join(root, "adapters/copilot/templates/instructions.md"), "# Copilot instructions\n")

	writeFile(t, filepath.Join(root, "store.yaml"), `name: test-store
version: "1.0.0"
format_version: "1.0"
description: Synthetic store for integration tests
`)
}

// initProject runs the full init flow (resolve, validate, plan, materialize,
// ignore patterns) against the project directory and returns the results.
func initProject(t *testing.T, projectDir string, platform adapters.Platform) []materialize.Result {
	t.Helper()

	s, err := store.Resolve()
	if err != nil {
		t.Fatalf("store.Resolve: %v", err)
	}
	if _, err := s.Validate(); err != nil {
		t.Fatalf("store.Validate: %v", err)
	}

	m, err := store.LoadManifest(s.Root)
	if err != nil {
		t.Fatalf("store.LoadManifest: %v", err)
	}
	if err := m.CheckFormat(); err != nil {
		t.Fatalf("manifest.CheckFormat: %v", err)
	}

	artifacts, _, err := planner.Plan(platform, store.LinkedCategories())
	if err != nil {
		t.Fatalf("planner.Plan: %v", err)
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}

	mat := &materialize.Materializer{Store: s, Target: projectDir}
	results := mat.Run(io.Discard, artifacts)

	if _, err := materialize.EnsureIgnorePatterns(projectDir); err != nil {
		t.Fatalf("EnsureIgnorePatterns: %v", err)
	}
	return results
}

// countOutcomes tallies results per outcome.
func countOutcomes(results []materialize.Result) map[materialize.Outcome]int {
	counts := make(map[materialize.Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}

// treePaths walks root and returns the relative paths of every entry
// beneath it in lexical order, excluding the root itself. Links are listed
// but never followed.
func treePaths(t *testing.T, root string) []string {
	t.Helper()

	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return paths
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
