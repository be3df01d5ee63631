//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/materialize"
	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/scaffold"
	"github.com/aidev-labs/aidev/internal/store"
)

// TestStoreResolutionPrecedence checks the env override wins over the
// default per-user location.
func TestStoreResolutionPrecedence(t *testing.T) {
	env := setupTestEnv(t)

	// A second complete store at the default per-user location.
	setupStore(t, filepath.Join(env.HomeDir, "store"))

	s, err := store.Resolve()
	if err != nil {
		t.Fatalf("store.Resolve: %v", err)
	}
	if s.Root != env.StoreDir {
		t.Errorf("Resolve() = %s, want the env-pointed store %s", s.Root, env.StoreDir)
	}

	// Without the env override the default store wins.
	t.Setenv("AIDEV_STORE", "")
	s, err = store.Resolve()
	if err != nil {
		t.Fatalf("store.Resolve without env: %v", err)
	}
	if s.Root != filepath.Join(env.HomeDir, "store") {
		t.Errorf("Resolve() = %s, want the default store", s.Root)
	}
}

// TestStoreMissingEverywhere expects a NotFoundError naming every candidate.
func TestStoreMissingEverywhere(t *testing.T) {
	t.Setenv("AIDEV_HOME", t.TempDir())
	t.Setenv("AIDEV_STORE", filepath.Join(t.TempDir(), "nowhere"))

	_, err := store.Resolve()
	if err == nil {
		t.Fatal("expected resolution to fail with no store anywhere")
	}
	if !strings.Contains(err.Error(), "no template store found") {
		t.Errorf("error should explain the search, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nowhere") {
		t.Errorf("error should list the searched candidates, got: %v", err)
	}
}

// TestScaffoldedEntryReachesProjects creates a new skill in the store and
// expects the next init to carry it into a project.
func TestScaffoldedEntryReachesProjects(t *testing.T) {
	env := setupTestEnv(t)

	s, err := store.Resolve()
	if err != nil {
		t.Fatalf("store.Resolve: %v", err)
	}

	result, err := scaffold.Generate(s, "skills", "incident-triage", "Handle production incidents")
	if err != nil {
		t.Fatalf("scaffold.Generate: %v", err)
	}
	assertFileExists(t, filepath.Join(result.OutputPath, "SKILL.md"))

	initProject(t, env.ProjectDir, adapters.Claude)

	copied := filepath.Join(env.ProjectDir, "core/skills/incident-triage/SKILL.md")
	assertFileContains(t, copied, "Handle production incidents")

	// Readable through the platform link as well.
	assertFileContains(t, filepath.Join(env.ProjectDir, ".claude/skills/incident-triage/SKILL.md"), "incident-triage")
}

// TestStatusInspectionMatchesRuns inspects a project before and after init.
func TestStatusInspectionMatchesRuns(t *testing.T) {
	env := setupTestEnv(t)

	artifacts, _, err := planner.Plan(adapters.Claude, store.LinkedCategories())
	if err != nil {
		t.Fatalf("planner.Plan: %v", err)
	}
	mat := &materialize.Materializer{Target: env.ProjectDir}

	for _, r := range mat.Inspect(artifacts) {
		if r.Outcome != materialize.Pending {
			t.Errorf("%s before init = %s, want pending", r.Artifact.Dest, r.Outcome)
		}
	}

	initProject(t, env.ProjectDir, adapters.Claude)

	for _, r := range mat.Inspect(artifacts) {
		if r.Outcome != materialize.AlreadyPresent {
			t.Errorf("%s after init = %s, want present", r.Artifact.Dest, r.Outcome)
		}
	}

	// Inspection never mutates: a fresh directory stays empty.
	probe := t.TempDir()
	(&materialize.Materializer{Target: probe}).Inspect(artifacts)
	entries, err := os.ReadDir(probe)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("inspection wrote %d entries", len(entries))
	}
}

// TestDoctorReportsStoreHealth runs the doctor check against the synthetic
// store and a missing store.
func TestDoctorReportsStoreHealth(t *testing.T) {
	setupTestEnv(t)

	var out bytes.Buffer
	if err := store.Check(&out); err != nil {
		t.Fatalf("store.Check: %v", err)
	}
	report := out.String()

	for _, want := range []string{
		"[ OK ] store at",
		"store.yaml valid (test-store 1.0.0)",
		"[ OK ] claude: adapters/claude/templates/base.md",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("doctor report missing %q:\n%s", want, report)
		}
	}

	// A missing store is reported, not an error.
	t.Setenv("AIDEV_HOME", t.TempDir())
	t.Setenv("AIDEV_STORE", "")
	out.Reset()
	if err := store.Check(&out); err != nil {
		t.Fatalf("store.Check on missing store: %v", err)
	}
	if !strings.Contains(out.String(), "[MISS] no template store found") {
		t.Errorf("doctor should report the missing store:\n%s", out.String())
	}
}
