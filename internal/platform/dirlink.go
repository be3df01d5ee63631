package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// CreateDirLink creates a directory link at link pointing to target.
// On Unix systems, this uses os.Symlink directly.
// On Windows, it attempts os.Symlink first (requires developer mode), then
// an NTFS junction via mklink /J, and finally falls back to copying the
// target tree and writing a .target sidecar.
func CreateDirLink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	// Try native symlink first (works if developer mode is enabled).
	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	// Junctions work without elevation but need an absolute target.
	if err := createJunction(resolveTarget(target, link), link); err == nil {
		return nil
	}

	// Fallback: copy the target tree and record the target in a sidecar.
	if err := copyTree(resolveTarget(target, link), link); err != nil {
		return fmt.Errorf("link fallback (copy) failed: %w", err)
	}

	// Write a sidecar file so ReadDirLinkTarget can recover the original target.
	sidecar := link + ".target"
	if err := os.WriteFile(sidecar, []byte(target), 0644); err != nil {
		// Non-fatal: the copy succeeded, just lose the sidecar.
		return nil
	}

	return nil
}

// ReadDirLinkTarget returns the target of a directory link.
// On Windows, if os.Readlink fails (because a copy fallback was used),
// it reads from the .target sidecar file.
func ReadDirLinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	// Windows fallback: read sidecar .target file.
	sidecar := path + ".target"
	data, readErr := os.ReadFile(sidecar)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsDirLink reports whether path is a link this package can read back,
// either a real symlink or a copy fallback with its sidecar.
func IsDirLink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return true
	}
	if runtime.GOOS != "windows" {
		return false
	}
	_, err = os.Stat(path + ".target")
	return err == nil
}

// DirLinkSupported returns true if the current platform supports native links.
// On Windows this attempts a test symlink to check developer mode.
func DirLinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	// Try creating a temporary symlink to test support.
	tmpDir := os.TempDir()
	target := tmpDir
	link := filepath.Join(tmpDir, ".aidev-link-test")
	defer os.Remove(link)

	if err := os.Symlink(target, link); err != nil {
		return false
	}
	return true
}

// createJunction shells out to mklink /J. Junction targets must be absolute
// paths to existing directories.
func createJunction(absTarget, link string) error {
	out, err := exec.Command("cmd", "/c", "mklink", "/J", link, absTarget).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /J: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// resolveTarget resolves a relative link target against the link's parent
// directory, matching how the OS would resolve the finished symlink.
func resolveTarget(target, link string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(link), target)
}
