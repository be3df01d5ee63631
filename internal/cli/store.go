package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aidev-labs/aidev/internal/branding"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	storeCmd.AddCommand(storeUpdateCmd)
	storeCmd.AddCommand(storePathCmd)
	storeCmd.AddCommand(storeStatusCmd)
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the template store",
	Long: `Manage the shared template store that init materializes into projects.

The store is a directory holding a core/ tree of categories plus adapter
templates. It is resolved from $` + branding.EnvVar("STORE") + `, the store.path config key,
a store/ directory next to the executable, or ~/` + branding.HomeDir() + `/store, in that order.`,
}

var storeUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch or refresh the template store",
	Long: `Pull the latest store content from the configured git repository.

If a git-backed store already exists at the resolved location, this runs
git pull in it. Otherwise the repository is cloned to the per-user store
directory. Stores pointed at by ` + branding.EnvVar("STORE") + ` or store.path are
never replaced unless they are git checkouts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := store.DefaultRoot()
		if s, err := store.Resolve(); err == nil && s.Root != target {
			if _, gerr := os.Stat(filepath.Join(s.Root, ".git")); gerr != nil {
				return fmt.Errorf("resolved store %s is not a git checkout; refusing to overwrite it", s.Root)
			}
			target = s.Root
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updating store at %s...\n", target)
		if err := store.Update(target); err != nil {
			return fmt.Errorf("updating store: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Store updated successfully.")
		return nil
	},
}

var storePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved store location",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Resolve()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Root)
		return nil
	},
}

var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store location and freshness",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		s, err := store.Resolve()
		if err != nil {
			fmt.Fprintf(out, "Repo URL:     %s\n", store.RepoURL())
			fmt.Fprintln(out, "Status:       not installed")
			fmt.Fprintf(out, "\nRun '%s store update' to fetch the store.\n", branding.CLIName())
			return nil
		}

		fmt.Fprintf(out, "Store path:   %s\n", s.Root)
		fmt.Fprintf(out, "Repo URL:     %s\n", store.RepoURL())

		lastUpdated := store.ReadFreshnessMarker(s.Root)
		if lastUpdated.IsZero() {
			fmt.Fprintln(out, "Last updated: unknown")
		} else {
			age := time.Since(lastUpdated).Truncate(time.Minute)
			fmt.Fprintf(out, "Last updated: %s (%s ago)\n", lastUpdated.Format(time.RFC3339), age)
		}

		if store.IsStale(s.Root, store.DefaultMaxAge) {
			fmt.Fprintf(out, "Status:       stale (run '%s store update')\n", branding.CLIName())
		} else {
			fmt.Fprintln(out, "Status:       up to date")
		}
		return nil
	},
}
