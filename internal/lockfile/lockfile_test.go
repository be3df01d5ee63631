package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAcquireAndRelease(t *testing.T) {
	target := t.TempDir()
	l := New(target)

	if err := l.TryAcquire(); err != nil {
		t.Fatalf("TryAcquire: %v", err)
	}

	lockPath := filepath.Join(target, ".aidev.lock")
	data, err := os.ReadFile(lockPath)
	if err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if want := fmt.Sprintf("%d\n", os.Getpid()); string(data) != want {
		t.Errorf("lock content = %q, want %q", data, want)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lock file survives Release")
	}
}

func TestSecondAcquireFails(t *testing.T) {
	target := t.TempDir()

	first := New(target)
	if err := first.TryAcquire(); err != nil {
		t.Fatalf("first TryAcquire: %v", err)
	}
	defer first.Release()

	second := New(target)
	err := second.TryAcquire()
	if err == nil {
		t.Fatal("second TryAcquire succeeded while first holds the lock")
	}
	if !strings.Contains(err.Error(), fmt.Sprint(os.Getpid())) {
		t.Errorf("error %q does not name the holder pid", err)
	}
}

func TestStaleLockIsBroken(t *testing.T) {
	target := t.TempDir()
	lockPath := filepath.Join(target, ".aidev.lock")

	if err := os.WriteFile(lockPath, []byte("12345\n"), 0644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-StaleAfter - time.Minute)
	if err := os.Chtimes(lockPath, old, old); err != nil {
		t.Fatal(err)
	}

	l := New(target)
	if err := l.TryAcquire(); err != nil {
		t.Fatalf("TryAcquire over stale lock: %v", err)
	}
	defer l.Release()

	data, err := os.ReadFile(lockPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) == "12345" {
		t.Error("stale lock content not replaced")
	}
}

func TestReleaseWithoutAcquireIsNoOp(t *testing.T) {
	target := t.TempDir()

	// Someone else's lock must survive a Release from a lock we never took.
	other := New(target)
	if err := other.TryAcquire(); err != nil {
		t.Fatal(err)
	}
	defer other.Release()

	l := New(target)
	if err := l.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, ".aidev.lock")); err != nil {
		t.Error("foreign lock removed by unrelated Release")
	}
}
