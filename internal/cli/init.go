package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/lockfile"
	"github.com/aidev-labs/aidev/internal/materialize"
	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var (
	initPath        string
	initPlatform    string
	initFailFast    bool
	initInteractive bool
)

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "Target project directory (required; created if missing)")
	initCmd.Flags().StringVar(&initPlatform, "platform", string(adapters.All), "Assistant platform: "+strings.Join(adapters.ValidNames(), "|"))
	initCmd.Flags().BoolVar(&initFailFast, "fail-fast", false, "Stop at the first failed artifact")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Pick the platform from a menu")
	_ = initCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Materialize assistant configuration into a project",
	Long: `Copy the shared template store into a project and wire it up for one or
more AI coding assistants.

The command is idempotent: artifacts that already exist are reported and
left untouched, so re-running after a partial failure or a store update
is always safe.

Examples:
  aidev init --path . --platform claude
  aidev init --path ~/work/api --platform all
  aidev init --path . -i`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	selector := initPlatform
	if initInteractive {
		p, err := askPlatform(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		selector = string(p)
	}

	// Validate the selector before any filesystem mutation.
	platform, ok := adapters.ParsePlatform(selector)
	if !ok {
		return &planner.ValidationError{Field: "platform", Value: selector, Valid: adapters.ValidNames()}
	}

	s, err := store.Resolve()
	if err != nil {
		return err
	}
	storeWarnings, err := s.Validate()
	if err != nil {
		return err
	}
	for _, w := range storeWarnings {
		warnf("%s", w)
	}

	// Refuse stores whose format is newer than this build understands.
	m, err := store.LoadManifest(s.Root)
	if err != nil {
		return err
	}
	if err := m.CheckFormat(); err != nil {
		return err
	}

	artifacts, planWarnings, err := planner.Plan(platform, store.LinkedCategories())
	if err != nil {
		return err
	}
	for _, w := range planWarnings {
		warnf("%s", w)
	}

	target, err := filepath.Abs(initPath)
	if err != nil {
		return fmt.Errorf("resolving target path: %w", err)
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("creating target directory: %w", err)
	}

	lock := lockfile.New(target)
	if err := lock.TryAcquire(); err != nil {
		return err
	}
	defer lock.Release()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing %s for %s (store: %s)\n", target, platform, s.Root)

	mat := &materialize.Materializer{Store: s, Target: target, FailFast: initFailFast}
	results := mat.Run(out, artifacts)

	gitignoreFailed := false
	switch outcome, gitErr := materialize.EnsureIgnorePatterns(target); {
	case gitErr != nil:
		gitignoreFailed = true
		fmt.Fprintf(out, "  [FAIL] .gitignore: %v\n", gitErr)
	case outcome == materialize.Created:
		fmt.Fprintf(out, "  [ OK ] Updated .gitignore\n")
	default:
		fmt.Fprintf(out, "  [SKIP] .gitignore already lists the patterns\n")
	}

	fmt.Fprintln(out)
	materialize.PrintSummary(out, target, results)

	summary := materialize.Summarize(results)
	failed := summary.Failed
	if gitignoreFailed {
		failed++
	}
	if failed > 0 {
		return &PartialFailureError{Failed: failed}
	}

	okf("Project ready: %s", summary)
	return nil
}
