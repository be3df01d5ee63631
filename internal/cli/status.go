package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/materialize"
	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var (
	statusPath     string
	statusPlatform string
)

func init() {
	statusCmd.Flags().StringVar(&statusPath, "path", ".", "Project directory to inspect")
	statusCmd.Flags().StringVar(&statusPlatform, "platform", string(adapters.All), "Assistant platform: "+strings.Join(adapters.ValidNames(), "|"))
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which artifacts a project already has",
	Long: `Inspect a project directory and report every planned artifact as present,
missing, or occupied by something init would not replace. The report is
derived purely from the filesystem; no state file exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, ok := adapters.ParsePlatform(statusPlatform)
		if !ok {
			return &planner.ValidationError{Field: "platform", Value: statusPlatform, Valid: adapters.ValidNames()}
		}

		artifacts, _, err := planner.Plan(platform, store.LinkedCategories())
		if err != nil {
			return err
		}

		target, err := filepath.Abs(statusPath)
		if err != nil {
			return fmt.Errorf("resolving target path: %w", err)
		}

		mat := &materialize.Materializer{Target: target}
		results := mat.Inspect(artifacts)

		out := cmd.OutOrStdout()
		materialize.PrintSummary(out, target, results)
		fmt.Fprintf(out, "\n%s\n", materialize.Summarize(results))
		return nil
	},
}
