package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aidev-labs/aidev/internal/adapters"
	"github.com/aidev-labs/aidev/internal/planner"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var (
	planPath     string
	planPlatform string
)

func init() {
	planCmd.Flags().StringVar(&planPath, "path", ".", "Target project directory")
	planCmd.Flags().StringVar(&planPlatform, "platform", string(adapters.All), "Assistant platform: "+strings.Join(adapters.ValidNames(), "|"))
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what init would create, without writing anything",
	Long: `Compute and print the artifact plan for a platform selection. Nothing is
written; the same plan drives 'aidev init'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, ok := adapters.ParsePlatform(planPlatform)
		if !ok {
			return &planner.ValidationError{Field: "platform", Value: planPlatform, Valid: adapters.ValidNames()}
		}

		artifacts, warnings, err := planner.Plan(platform, store.LinkedCategories())
		if err != nil {
			return err
		}
		for _, w := range warnings {
			warnf("%s", w)
		}

		target, err := filepath.Abs(planPath)
		if err != nil {
			return fmt.Errorf("resolving target path: %w", err)
		}

		items := make([]planner.TreeItem, 0, len(artifacts))
		for _, a := range artifacts {
			items = append(items, planner.TreeItem{Path: a.Dest, Note: planNote(a)})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Planned structure:")
		planner.PrintTree(out, planner.BuildTree(target, items))
		fmt.Fprintf(out, "\n%d artifacts planned. No changes made.\n", len(artifacts))
		return nil
	},
}

func planNote(a planner.Artifact) string {
	switch a.Kind {
	case planner.KindStoreCopy:
		return "(template store copy)"
	case planner.KindDirLink:
		return "-> " + a.Source
	default:
		return "(from " + a.Source + ")"
	}
}
