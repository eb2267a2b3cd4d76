// Package main provides the entry point for the yada CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the yada CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yada",
		Short: "Yet Another Diet Assistant",
		Long: `Yada - a pipe-delimited food catalog and calorie tracker.

Yada keeps a plain-text food catalog and a daily food log:
  - Converts JSON food records into the catalog's pipe-delimited format
  - Tracks basic foods and composite foods built from other foods
  - Logs daily consumption and sums calories per day
  - Computes daily calorie targets from a configured diet profile

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'yada --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Persistent --json flag, available to all subcommands.
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "catalog", Title: "Catalog Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "tracking", Title: "Tracking Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Catalog commands: convert, foods, search
	addGroupedCommand(cmd, newConvertCmd(), "catalog")
	addGroupedCommand(cmd, newFoodsCmd(), "catalog")
	addGroupedCommand(cmd, newSearchCmd(), "catalog")

	// Tracking commands: log, target
	addGroupedCommand(cmd, newLogCmd(), "tracking")
	addGroupedCommand(cmd, newTargetCmd(), "tracking")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// resolveConfig returns the injected configuration, or loads the
// default one when no injection happened.
func resolveConfig(cfg *config.Config) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	return config.LoadDefault()
}

// newPrinter creates a printer bound to the command's output stream.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, isJSONMode(cmd), output.IsTTY(out)).WithStderr(cmd.ErrOrStderr())
}
