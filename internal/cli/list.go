package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/aidev-labs/aidev/internal/store"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List template store entries",
	Long:  `List the entries the resolved template store provides, per category.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only list one category (skills, agents, workflows, templates, rules)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a store entry for display.
type listEntry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := store.Resolve()
	if err != nil {
		return err
	}

	categories := s.Categories()
	if listCategory != "" {
		categories = []string{listCategory}
	}

	var entries []listEntry
	for _, category := range categories {
		found, err := s.ListCategory(category)
		if err != nil {
			if listCategory != "" {
				return err
			}
			continue // empty store sections are not an error for the full listing
		}
		for _, e := range found {
			kind := "file"
			if e.IsDir {
				kind = "dir"
			}
			entries = append(entries, listEntry{Category: category, Name: e.Name, Kind: kind})
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The store has no entries yet.")
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tNAME\tKIND")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Category, e.Name, e.Kind)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
