package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidev-labs/aidev/internal/branding"
	"github.com/aidev-labs/aidev/internal/config"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` materializes a shared store of AI assistant configuration
(skills, agents, workflows, templates, rules) into projects, so every tool
reads the same instructions from one place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		applyColorMode(config.Get("color"))

		// Skip the freshness hint for commands that manage the store.
		name := cmd.Name()
		if name == "update" || name == "version" || name == "doctor" {
			return
		}

		// Staleness hint from the cached marker, no network.
		s, err := store.Resolve()
		if err != nil {
			return
		}
		if _, gitErr := os.Stat(filepath.Join(s.Root, ".git")); gitErr != nil {
			return
		}
		if store.IsStale(s.Root, store.DefaultMaxAge) {
			fmt.Fprintf(os.Stderr, "Template store is more than 7 days old. Run '%s store update'.\n", branding.CLIName())
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
