// Package main provides the entry point for the yada CLI.
package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/convert"
	"github.com/gorewood/yada/internal/output"
)

// newConvertCmd creates the convert command group.
func newConvertCmd() *cobra.Command {
	return newConvertCmdInternal(nil)
}

// newConvertCmdInternal creates the convert command with optional config
// injection. If cfg is nil, the default configuration is loaded at run time.
func newConvertCmdInternal(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert JSON food records into the catalog format",
		Long: `Convert JSON food records into the pipe-delimited catalog format.

Records are appended to the target catalog file. Existing lines are
never rewritten, so re-running a conversion appends duplicates.`,
	}

	cmd.AddCommand(newConvertBasicCmd(cfg))
	cmd.AddCommand(newConvertCompositeCmd(cfg))

	return cmd
}

// newConvertBasicCmd creates the convert basic subcommand.
func newConvertBasicCmd(cfg *config.Config) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "basic <input.json>",
		Short: "Append basic foods from a JSON file to the catalog",
		Long: `Append basic foods from a JSON file to the basic foods catalog.

The input is a JSON array (or single object) of records with id or name,
keywords, and calories_per_serving. Records that would break the
pipe-delimited format are skipped with a warning.

Examples:
  yada convert basic foods.json
  yada convert basic foods.json --out basic_foods.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertBasic(cmd, cfg, args[0], outFlag)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Output catalog file (defaults to the configured basic foods file)")

	return cmd
}

// runConvertBasic executes the convert basic subcommand.
func runConvertBasic(cmd *cobra.Command, cfg *config.Config, inputPath, outFlag string) error {
	printer := newPrinter(cmd)

	outputPath, err := convertOutputPath(cfg, outFlag, false)
	if err != nil {
		printer.Error(err)
		return err
	}

	count, err := convert.NewBasicConverter(printer).ConvertFile(inputPath, outputPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"converted": count,
			"output":    outputPath,
		})
	}
	printer.Print("Converted %d foods to %s\n", count, outputPath)
	return nil
}

// newConvertCompositeCmd creates the convert composite subcommand.
func newConvertCompositeCmd(cfg *config.Config) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "composite <input.json>",
		Short: "Append composite foods from a JSON file to the catalog",
		Long: `Append composite foods from a JSON file to the composite foods catalog.

The input is a JSON array (or single object) of records with id or name
and a components map of food identifiers to serving counts. Each record
is validated independently; valid records are appended even when others
fail.

Examples:
  yada convert composite composites.json
  yada convert composite composites.json --out composite_foods.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertComposite(cmd, cfg, args[0], outFlag)
		},
	}

	cmd.Flags().StringVar(&outFlag, "out", "", "Output catalog file (defaults to the configured composite foods file)")

	return cmd
}

// runConvertComposite executes the convert composite subcommand.
func runConvertComposite(cmd *cobra.Command, cfg *config.Config, inputPath, outFlag string) error {
	printer := newPrinter(cmd)

	outputPath, err := convertOutputPath(cfg, outFlag, true)
	if err != nil {
		printer.Error(err)
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		readErr := output.NewUserError("input file not found: " + inputPath)
		printer.Error(readErr)
		return readErr
	}

	// The converter reports per-record outcomes through its printer.
	// In JSON mode the report is captured and wrapped.
	if isJSONMode(cmd) {
		var report bytes.Buffer
		ok := convert.NewCompositeConverter(output.NewPrinter(&report, false, false)).AddJSON(data, outputPath)
		if !ok {
			err := output.NewConflictError(strings.TrimSpace(report.String()))
			printer.Error(err)
			return err
		}
		return printer.Success(map[string]any{
			"report": strings.TrimSpace(report.String()),
			"output": outputPath,
		})
	}

	if !convert.NewCompositeConverter(printer).AddJSON(data, outputPath) {
		return output.NewConflictError("not all composite foods were added")
	}
	return nil
}

// convertOutputPath resolves the target catalog file for a conversion.
func convertOutputPath(cfg *config.Config, outFlag string, composite bool) (string, error) {
	if outFlag != "" {
		return outFlag, nil
	}
	resolved, err := resolveConfig(cfg)
	if err != nil {
		return "", err
	}
	if composite {
		return resolved.CompositeFoodsPath(), nil
	}
	return resolved.BasicFoodsPath(), nil
}
