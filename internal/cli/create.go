package cli

import (
	"fmt"
	"strings"

	"github.com/aidev-labs/aidev/internal/scaffold"
	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var createDescription string

func init() {
	createCmd.Flags().StringVar(&createDescription, "description", "", "One-line description for the new entry")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <category> <name>",
	Short: "Scaffold a new template store entry",
	Long: `Create a new entry skeleton in the resolved template store. Skills become
directories with a SKILL.md; agents, workflows, templates, and rules become
single markdown files.

Examples:
  aidev create skills code-review --description "Review diffs for defects"
  aidev create agents reviewer
  aidev create rules no-todo-comments`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, name := args[0], args[1]

		s, err := store.Resolve()
		if err != nil {
			return err
		}

		result, err := scaffold.Generate(s, category, name, createDescription)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s/%s at %s\n", category, name, result.OutputPath)
		for _, f := range result.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nEdit the %s to fill in the content, then re-run init on your projects.\n", strings.Join(result.Files, ", "))
		return nil
	},
}
