// Package main provides the entry point for the yada CLI.
package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/foodlog"
	"github.com/gorewood/yada/internal/output"
)

// newLogCmd creates the log command group.
func newLogCmd() *cobra.Command {
	return newLogCmdInternal(nil)
}

// newLogCmdInternal creates the log command with optional config injection.
// If cfg is nil, the default configuration is loaded at run time.
func newLogCmdInternal(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Track daily food consumption",
	}

	cmd.AddCommand(newLogAddCmd(cfg))
	cmd.AddCommand(newLogRemoveCmd(cfg))
	cmd.AddCommand(newLogUndoCmd(cfg))
	cmd.AddCommand(newLogTotalCmd(cfg))
	cmd.AddCommand(newLogSummaryCmd(cfg))

	return cmd
}

// addDateFlag registers the shared --date flag, defaulting to today.
func addDateFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "date", time.Now().Format(foodlog.DateLayout),
		"Date in YYYY-MM-DD format (defaults to today)")
}

// newLogAddCmd creates the log add subcommand.
func newLogAddCmd(cfg *config.Config) *cobra.Command {
	var (
		dateFlag     string
		servingsFlag float64
	)

	cmd := &cobra.Command{
		Use:   "add <food>",
		Short: "Log servings of a food for a date",
		Long: `Log servings of a food for a date.

The food must exist in the catalog.

Examples:
  yada log add Roti --servings 2
  yada log add "Ghee Roti" --servings 1 --date 2026-08-28`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogAdd(cmd, cfg, args[0], dateFlag, servingsFlag)
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().Float64Var(&servingsFlag, "servings", 1, "Number of servings")

	return cmd
}

// runLogAdd executes the log add subcommand.
func runLogAdd(cmd *cobra.Command, cfg *config.Config, foodID, dateFlag string, servings float64) error {
	printer := newPrinter(cmd)

	date, err := foodlog.ParseDate(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}
	if servings == 0 {
		err := output.NewUserError("servings must be non-zero")
		printer.Error(err)
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	if _, ok := db.CaloriesFor(foodID); !ok {
		err := output.NewUserError("unknown food: " + foodID)
		printer.Error(err)
		return err
	}

	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	log, err := foodlog.Load(resolved.FoodLogPath())
	if err != nil {
		printer.Error(err)
		return err
	}
	log.Add(date, foodlog.Entry{FoodID: foodID, Servings: servings})
	if err := log.Save(resolved.FoodLogPath()); err != nil {
		printer.Error(err)
		return err
	}

	total := log.TotalCalories(date, db)
	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"date":           date,
			"food":           foodID,
			"servings":       servings,
			"total_calories": total,
		})
	}
	printer.Print("Logged %s on %s (%.2f calories so far)\n", foodID, date, total)
	return nil
}

// newLogRemoveCmd creates the log remove subcommand.
func newLogRemoveCmd(cfg *config.Config) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "remove <food>",
		Short: "Remove a logged food from a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogRemove(cmd, cfg, args[0], dateFlag)
		},
	}

	addDateFlag(cmd, &dateFlag)

	return cmd
}

// runLogRemove executes the log remove subcommand.
func runLogRemove(cmd *cobra.Command, cfg *config.Config, foodID, dateFlag string) error {
	printer := newPrinter(cmd)

	date, err := foodlog.ParseDate(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	log, err := foodlog.Load(resolved.FoodLogPath())
	if err != nil {
		printer.Error(err)
		return err
	}
	if !log.Remove(date, foodID) {
		err := output.NewUserError(fmt.Sprintf("no entry for %s on %s", foodID, date))
		printer.Error(err)
		return err
	}
	if err := log.Save(resolved.FoodLogPath()); err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"date": date,
			"food": foodID,
		})
	}
	printer.Print("Removed %s from %s\n", foodID, date)
	return nil
}

// newLogUndoCmd creates the log undo subcommand.
func newLogUndoCmd(cfg *config.Config) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Remove the most recently logged entry for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogUndo(cmd, cfg, dateFlag)
		},
	}

	addDateFlag(cmd, &dateFlag)

	return cmd
}

// runLogUndo executes the log undo subcommand.
func runLogUndo(cmd *cobra.Command, cfg *config.Config, dateFlag string) error {
	printer := newPrinter(cmd)

	date, err := foodlog.ParseDate(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	log, err := foodlog.Load(resolved.FoodLogPath())
	if err != nil {
		printer.Error(err)
		return err
	}
	removed, ok := log.RemoveLast(date)
	if !ok {
		err := output.NewUserError("nothing logged on " + date)
		printer.Error(err)
		return err
	}
	if err := log.Save(resolved.FoodLogPath()); err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"date":     date,
			"food":     removed.FoodID,
			"servings": removed.Servings,
		})
	}
	printer.Print("Removed %s from %s\n", removed.FoodID, date)
	return nil
}

// newLogTotalCmd creates the log total subcommand.
func newLogTotalCmd(cfg *config.Config) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show total calories consumed on a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogTotal(cmd, cfg, dateFlag)
		},
	}

	addDateFlag(cmd, &dateFlag)

	return cmd
}

// runLogTotal executes the log total subcommand.
func runLogTotal(cmd *cobra.Command, cfg *config.Config, dateFlag string) error {
	printer := newPrinter(cmd)

	date, err := foodlog.ParseDate(dateFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	log, err := foodlog.Load(resolved.FoodLogPath())
	if err != nil {
		printer.Error(err)
		return err
	}

	entries := log.Entries(date)
	total := log.TotalCalories(date, db)

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"date":           date,
			"entries":        len(entries),
			"total_calories": total,
		})
	}
	for _, entry := range entries {
		calories, ok := db.CaloriesFor(entry.FoodID)
		if !ok {
			printer.KeyValue(entry.FoodID, "unknown food")
			continue
		}
		printer.KeyValue(entry.FoodID, fmt.Sprintf("%s servings, %.2f calories",
			catalog.FormatServings(entry.Servings), calories*entry.Servings))
	}
	printer.Print("Total: %.2f calories on %s\n", total, date)
	return nil
}

// newLogSummaryCmd creates the log summary subcommand.
func newLogSummaryCmd(cfg *config.Config) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show calories per day over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogSummary(cmd, cfg, fromFlag, toFlag)
		},
	}

	today := time.Now().Format(foodlog.DateLayout)
	cmd.Flags().StringVar(&fromFlag, "from", today, "Start date, inclusive (defaults to today)")
	cmd.Flags().StringVar(&toFlag, "to", today, "End date, inclusive (defaults to today)")

	return cmd
}

// runLogSummary executes the log summary subcommand.
func runLogSummary(cmd *cobra.Command, cfg *config.Config, fromFlag, toFlag string) error {
	printer := newPrinter(cmd)

	from, err := foodlog.ParseDate(fromFlag)
	if err != nil {
		printer.Error(err)
		return err
	}
	to, err := foodlog.ParseDate(toFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}
	log, err := foodlog.Load(resolved.FoodLogPath())
	if err != nil {
		printer.Error(err)
		return err
	}

	summary := log.Summary(from, to, db)

	if isJSONMode(cmd) {
		return printer.WriteJSON(summary)
	}

	if len(summary) == 0 {
		printer.Print("Nothing logged between %s and %s\n", from, to)
		return nil
	}
	dates := make([]string, 0, len(summary))
	for date := range summary {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, []string{date, fmt.Sprintf("%.2f", summary[date])})
	}
	printer.Table([]string{"Date", "Calories"}, rows)
	return nil
}
