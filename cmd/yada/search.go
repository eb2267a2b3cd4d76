// Package main provides the entry point for the yada CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	return newSearchCmdInternal(nil)
}

// newSearchCmdInternal creates the search command with optional config
// injection. If cfg is nil, the default configuration is loaded at run time.
func newSearchCmdInternal(cfg *config.Config) *cobra.Command {
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "search <keyword>...",
		Short: "Search the catalog by keyword",
		Long: `Search the catalog by keyword.

Keywords match food identifiers and keyword lists, case-insensitively.
By default a food matches when any keyword matches; use --all to require
every keyword.

Examples:
  yada search flatbread
  yada search indian bread --all`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, cfg, args, allFlag)
		},
	}

	cmd.Flags().BoolVar(&allFlag, "all", false, "Require all keywords to match")

	return cmd
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, cfg *config.Config, keywords []string, matchAll bool) error {
	printer := newPrinter(cmd)

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	foods := db.Search(keywords, matchAll)

	if isJSONMode(cmd) {
		return printer.WriteJSON(foodListJSON(foods))
	}

	if len(foods) == 0 {
		printer.Println("No matching foods")
		return nil
	}
	printFoodTable(printer, foods)
	return nil
}
