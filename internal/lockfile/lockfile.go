// Package lockfile guards a target project against concurrent
// initialization runs. The lock is a PID file created with O_EXCL; locks
// older than the staleness window are treated as leftovers from a crashed
// run and broken.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aidev-labs/aidev/internal/branding"
)

// StaleAfter is how old a lock file may be before it is considered
// abandoned and silently removed.
const StaleAfter = 5 * time.Minute

// Lock is a per-target advisory lock.
type Lock struct {
	path     string
	acquired bool
}

// New returns the lock for a target directory, e.g. <target>/.aidev.lock.
func New(target string) *Lock {
	return &Lock{path: filepath.Join(target, "."+branding.CLIName()+".lock")}
}

// TryAcquire takes the lock or fails with the holder's PID. A stale lock
// is removed first.
func (l *Lock) TryAcquire() error {
	if info, err := os.Stat(l.path); err == nil {
		if time.Since(info.ModTime()) < StaleAfter {
			pid := l.ownerPID()
			if pid > 0 {
				return fmt.Errorf("another %s run (pid %d) holds %s", branding.CLIName(), pid, l.path)
			}
			return fmt.Errorf("another %s run holds %s", branding.CLIName(), l.path)
		}
		// Stale leftover from a crashed run.
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing stale lock %s: %w", l.path, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("another %s run holds %s", branding.CLIName(), l.path)
		}
		return fmt.Errorf("creating lock %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		os.Remove(l.path)
		return fmt.Errorf("writing lock %s: %w", l.path, err)
	}
	l.acquired = true
	return nil
}

// Release removes the lock if this process acquired it.
func (l *Lock) Release() error {
	if !l.acquired {
		return nil
	}
	l.acquired = false
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing lock %s: %w", l.path, err)
	}
	return nil
}

// ownerPID reads the PID recorded in the lock file, or 0 when unreadable.
func (l *Lock) ownerPID() int {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
