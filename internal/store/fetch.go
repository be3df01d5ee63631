package store

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aidev-labs/aidev/internal/branding"
	"github.com/aidev-labs/aidev/internal/config"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".store-updated"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// RepoURL returns the store repository URL, checking (in order):
// 1. AIDEV_STORE_URL env var
// 2. config key "store.url"
// 3. branding.StoreRepoURL() (from branding.yaml)
func RepoURL() string {
	if v := os.Getenv(branding.EnvVar("STORE_URL")); v != "" {
		return v
	}
	if v := config.Get("store.url"); v != "" {
		return v
	}
	return branding.StoreRepoURL()
}

// Clone performs a shallow clone of the store repository into targetDir.
//
// The clone is atomic: it writes to a .tmp directory first, then renames
// on success. On failure the .tmp directory is cleaned up.
func Clone(targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	repoURL := RepoURL()
	tmpDir := targetDir + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	// Ensure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(tmpDir), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if err := shallowClone(tmpDir, repoURL); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("cloning store: %w", err)
	}

	// Atomic rename.
	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing store dir: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing store clone: %w", err)
	}

	// Write freshness marker.
	WriteFreshnessMarker(targetDir)
	return nil
}

// Update pulls the latest changes in the store directory.
// If the store directory is not a git checkout, it calls Clone instead.
func Update(storeDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	gitDir := filepath.Join(storeDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return Clone(storeDir)
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = storeDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pulling store updates: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	WriteFreshnessMarker(storeDir)
	return nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(storeDir string) {
	markerPath := filepath.Join(storeDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), 0644)
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(storeDir string) time.Time {
	markerPath := filepath.Join(storeDir, freshnessFile)
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the store was last updated more than maxAge ago.
// Returns true if the freshness marker doesn't exist.
func IsStale(storeDir string, maxAge time.Duration) bool {
	lastUpdated := ReadFreshnessMarker(storeDir)
	if lastUpdated.IsZero() {
		return true
	}
	return time.Since(lastUpdated) > maxAge
}

// shallowClone performs a --depth=1 clone.
func shallowClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", repoURL, targetDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("shallow clone: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
