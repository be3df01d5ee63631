package materialize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureIgnorePatternsCreatesFile(t *testing.T) {
	target := t.TempDir()

	outcome, err := EnsureIgnorePatterns(target)
	if err != nil {
		t.Fatalf("EnsureIgnorePatterns: %v", err)
	}
	if outcome != Created {
		t.Errorf("outcome = %s, want created", outcome)
	}

	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	want := IgnoreMarker + "\n.dev-state.yaml\n*.local.yaml\n"
	if string(data) != want {
		t.Errorf(".gitignore = %q, want %q", data, want)
	}
}

func TestEnsureIgnorePatternsAppends(t *testing.T) {
	target := t.TempDir()
	mustWriteFile(t, filepath.Join(target, ".gitignore"), "dist/\n*.log\n")

	outcome, err := EnsureIgnorePatterns(target)
	if err != nil {
		t.Fatalf("EnsureIgnorePatterns: %v", err)
	}
	if outcome != Created {
		t.Errorf("outcome = %s, want created", outcome)
	}

	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "dist/\n*.log\n") {
		t.Errorf("existing patterns disturbed:\n%s", content)
	}
	if !strings.Contains(content, "\n"+IgnoreMarker+"\n") {
		t.Errorf("marker not appended on its own line:\n%s", content)
	}
	if !strings.Contains(content, "*.local.yaml\n") {
		t.Errorf("patterns missing:\n%s", content)
	}
}

func TestEnsureIgnorePatternsHandlesMissingTrailingNewline(t *testing.T) {
	target := t.TempDir()
	mustWriteFile(t, filepath.Join(target, ".gitignore"), "dist/")

	if _, err := EnsureIgnorePatterns(target); err != nil {
		t.Fatalf("EnsureIgnorePatterns: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "dist/\n"+IgnoreMarker) {
		t.Errorf("unterminated last line not handled:\n%q", data)
	}
}

func TestEnsureIgnorePatternsAppendsOnce(t *testing.T) {
	target := t.TempDir()

	for i := 0; i < 3; i++ {
		outcome, err := EnsureIgnorePatterns(target)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if i == 0 && outcome != Created {
			t.Errorf("first run outcome = %s, want created", outcome)
		}
		if i > 0 && outcome != AlreadyPresent {
			t.Errorf("run %d outcome = %s, want present", i, outcome)
		}
	}

	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), IgnoreMarker); got != 1 {
		t.Errorf("marker appears %d times, want 1", got)
	}
}

func TestEnsureIgnorePatternsRespectsHandEditedMarker(t *testing.T) {
	target := t.TempDir()
	original := "# my rules\n" + IgnoreMarker + "\ncustom.yaml\n"
	mustWriteFile(t, filepath.Join(target, ".gitignore"), original)

	outcome, err := EnsureIgnorePatterns(target)
	if err != nil {
		t.Fatalf("EnsureIgnorePatterns: %v", err)
	}
	if outcome != AlreadyPresent {
		t.Errorf("outcome = %s, want present", outcome)
	}

	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("hand-edited file modified:\n%q", data)
	}
}
