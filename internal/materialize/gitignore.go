package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreMarker heads the managed block in .gitignore. Its presence anywhere
// in the file means the block was already added.
const IgnoreMarker = "# AI Dev Config"

// IgnorePatterns returns the patterns the managed block adds.
func IgnorePatterns() []string {
	return []string{".dev-state.yaml", "*.local.yaml"}
}

// EnsureIgnorePatterns appends the managed block to the target's
// .gitignore, creating the file when missing. The block is added at most
// once: any rerun finds the marker and leaves the file alone, so user
// edits around the block are preserved.
func EnsureIgnorePatterns(target string) (Outcome, error) {
	path := filepath.Join(target, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Failed, fmt.Errorf("reading .gitignore: %w", err)
	}
	if strings.Contains(string(existing), IgnoreMarker) {
		return AlreadyPresent, nil
	}

	// The leading newline terminates any unterminated last line and
	// separates the block from existing content.
	block := "\n" + IgnoreMarker + "\n" + strings.Join(IgnorePatterns(), "\n") + "\n"
	if len(existing) == 0 {
		block = strings.TrimPrefix(block, "\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Failed, fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(block); err != nil {
		return Failed, fmt.Errorf("appending to .gitignore: %w", err)
	}
	return Created, nil
}
