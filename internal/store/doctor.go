package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/branding"
)

// Check validates the template store and reports findings line by line.
// It returns an error only for unexpected I/O failures; a missing or
// unhealthy store is reported through w, not the error return.
func Check(w io.Writer) error {
	fmt.Fprintln(w, "Template store check:")

	s, err := Resolve()
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintln(w, "  [MISS] no template store found; searched:")
			for _, c := range nf.Candidates {
				fmt.Fprintf(w, "         %s\n", c)
			}
			fmt.Fprintf(w, "         Run '%s store update' to fetch one\n", branding.CLIName())
			return nil
		}
		return err
	}
	fmt.Fprintf(w, "  [ OK ] store at %s\n", s.Root)

	// Staleness only applies to fetched stores, not local checkouts.
	if _, gerr := os.Stat(filepath.Join(s.Root, ".git")); gerr == nil && IsStale(s.Root, DefaultMaxAge) {
		fmt.Fprintf(w, "  [WARN] store not updated in over %d days; run '%s store update'\n", int(DefaultMaxAge.Hours()/24), branding.CLIName())
	}

	warnings, err := s.Validate()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return nil
	}
	for _, warning := range warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warning)
	}
	for _, category := range s.Categories() {
		entries, lerr := s.ListCategory(category)
		if lerr != nil {
			continue // already warned by Validate
		}
		fmt.Fprintf(w, "  [ OK ] %s/%s (%d entries)\n", CoreDirName, category, len(entries))
	}

	checkManifest(w, s)
	checkAdapterTemplates(w, s)
	return nil
}

func checkManifest(w io.Writer, s *Store) {
	m, err := LoadManifest(s.Root)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", ManifestName, err)
	case m == nil:
		fmt.Fprintf(w, "  [WARN] %s not found (defaults apply)\n", ManifestName)
	default:
		result, verr := ValidateManifestFile(s.ManifestPath())
		if verr != nil {
			fmt.Fprintf(w, "  [FAIL] validating %s: %v\n", ManifestName, verr)
			return
		}
		if !result.Valid {
			fmt.Fprintf(w, "  [FAIL] %s has %d issue(s):\n", ManifestName, len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Fprintf(w, "         %s: %s\n", issue.Path, issue.Message)
			}
			return
		}
		if ferr := m.CheckFormat(); ferr != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", ferr)
			return
		}
		fmt.Fprintf(w, "  [ OK ] %s valid (%s %s)\n", ManifestName, m.Name, m.Version)
	}
}

func checkAdapterTemplates(w io.Writer, s *Store) {
	fmt.Fprintln(w, "Adapter template check:")
	for _, p := range adapters.AllPlatforms() {
		a, _ := adapters.Lookup(p)
		if len(a.RuleFiles) == 0 {
			fmt.Fprintf(w, "  [ OK ] %s (links only)\n", p)
			continue
		}
		for _, rf := range a.RuleFiles {
			if _, err := os.Stat(s.TemplatePath(rf.Template)); err != nil {
				fmt.Fprintf(w, "  [MISS] %s: %s\n", p, rf.Template)
				continue
			}
			fmt.Fprintf(w, "  [ OK ] %s: %s\n", p, rf.Template)
		}
	}
}
