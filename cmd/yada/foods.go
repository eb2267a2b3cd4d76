// Package main provides the entry point for the yada CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/output"
)

// newFoodsCmd creates the foods command group.
func newFoodsCmd() *cobra.Command {
	return newFoodsCmdInternal(nil)
}

// newFoodsCmdInternal creates the foods command with optional config
// injection. If cfg is nil, the default configuration is loaded at run time.
func newFoodsCmdInternal(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "Manage the food catalog",
	}

	cmd.AddCommand(newFoodsListCmd(cfg))
	cmd.AddCommand(newFoodsAddCmd(cfg))

	return cmd
}

// newFoodsListCmd creates the foods list subcommand.
func newFoodsListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all foods in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFoodsList(cmd, cfg)
		},
	}
}

// runFoodsList executes the foods list subcommand.
func runFoodsList(cmd *cobra.Command, cfg *config.Config) error {
	printer := newPrinter(cmd)

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	foods := db.Foods()

	if isJSONMode(cmd) {
		return printer.WriteJSON(foodListJSON(foods))
	}

	if len(foods) == 0 {
		printer.Println("No foods in the catalog")
		return nil
	}
	printFoodTable(printer, foods)
	return nil
}

// newFoodsAddCmd creates the foods add subcommand.
func newFoodsAddCmd(cfg *config.Config) *cobra.Command {
	var (
		caloriesFlag float64
		keywordsFlag []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a basic food to the catalog",
		Long: `Add a basic food to the catalog.

Examples:
  yada foods add Roti --calories 120 --keyword flatbread --keyword indian
  yada foods add "Peanut Butter" --calories 188`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFoodsAdd(cmd, cfg, args[0], keywordsFlag, caloriesFlag)
		},
	}

	cmd.Flags().Float64Var(&caloriesFlag, "calories", 0, "Calories per serving (required)")
	cmd.Flags().StringSliceVar(&keywordsFlag, "keyword", nil, "Search keyword (repeatable)")
	_ = cmd.MarkFlagRequired("calories")

	return cmd
}

// runFoodsAdd executes the foods add subcommand.
func runFoodsAdd(cmd *cobra.Command, cfg *config.Config, name string, keywords []string, calories float64) error {
	printer := newPrinter(cmd)

	db, err := openDatabase(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	food := catalog.NewBasicFood(name, keywords, calories)
	if err := db.AddBasic(food); err != nil {
		printer.Error(err)
		return err
	}
	if err := db.Save(); err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"identifier":           food.Identifier(),
			"keywords":             food.Keywords(),
			"calories_per_serving": food.CaloriesPerServing(),
		})
	}
	printer.Print("Added %s (%.2f calories per serving)\n", food.Identifier(), food.CaloriesPerServing())
	return nil
}

// openDatabase opens the catalog database from the configured paths.
func openDatabase(cfg *config.Config) (*catalog.Database, error) {
	resolved, err := resolveConfig(cfg)
	if err != nil {
		return nil, err
	}
	return catalog.Open(resolved.BasicFoodsPath(), resolved.CompositeFoodsPath())
}

// foodListJSON converts foods into the JSON list shape.
func foodListJSON(foods []catalog.Food) []map[string]any {
	list := make([]map[string]any, 0, len(foods))
	for _, food := range foods {
		list = append(list, map[string]any{
			"identifier":           food.Identifier(),
			"keywords":             food.Keywords(),
			"calories_per_serving": food.CaloriesPerServing(),
		})
	}
	return list
}

// printFoodTable renders foods as a table.
func printFoodTable(printer *output.Printer, foods []catalog.Food) {
	rows := make([][]string, 0, len(foods))
	for _, food := range foods {
		rows = append(rows, []string{
			food.Identifier(),
			strings.Join(food.Keywords(), ", "),
			fmt.Sprintf("%.2f", food.CaloriesPerServing()),
		})
	}
	printer.Table([]string{"Food", "Keywords", "Calories"}, rows)
}
