package store

import (
	"strings"
	"testing"
	"time"

	"github.com/aidev-labs/aidev/internal/branding"
)

func TestFreshnessMarkerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	WriteFreshnessMarker(dir)
	got := ReadFreshnessMarker(dir)

	if got.IsZero() {
		t.Fatal("marker not readable after write")
	}
	if d := time.Since(got); d < 0 || d > time.Minute {
		t.Errorf("marker timestamp off by %s", d)
	}
}

func TestReadFreshnessMarkerMissing(t *testing.T) {
	if got := ReadFreshnessMarker(t.TempDir()); !got.IsZero() {
		t.Errorf("missing marker read as %v, want zero time", got)
	}
}

func TestReadFreshnessMarkerGarbage(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir+"/"+freshnessFile, "not-a-timestamp\n")

	if got := ReadFreshnessMarker(dir); !got.IsZero() {
		t.Errorf("garbage marker read as %v, want zero time", got)
	}
}

func TestIsStale(t *testing.T) {
	dir := t.TempDir()

	// No marker at all: stale.
	if !IsStale(dir, time.Hour) {
		t.Error("directory without marker not reported stale")
	}

	WriteFreshnessMarker(dir)
	if IsStale(dir, time.Hour) {
		t.Error("freshly marked directory reported stale")
	}
	if !IsStale(dir, -time.Second) {
		t.Error("negative max age not reported stale")
	}
}

func TestRepoURLEnvOverride(t *testing.T) {
	t.Setenv(branding.EnvVar("STORE_URL"), "https://example.com/custom.git")

	if got := RepoURL(); got != "https://example.com/custom.git" {
		t.Errorf("RepoURL = %q, want env override", got)
	}
}

func TestRepoURLDefault(t *testing.T) {
	t.Setenv(branding.EnvVar("STORE_URL"), "")

	got := RepoURL()
	if got == "" {
		t.Fatal("RepoURL returned empty string")
	}
	if !strings.HasSuffix(got, ".git") {
		t.Errorf("default RepoURL = %q, want a git URL", got)
	}
}
