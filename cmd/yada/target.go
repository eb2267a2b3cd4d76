// Package main provides the entry point for the yada CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
)

// newTargetCmd creates the target command.
func newTargetCmd() *cobra.Command {
	return newTargetCmdInternal(nil)
}

// newTargetCmdInternal creates the target command with optional config
// injection. If cfg is nil, the default configuration is loaded at run time.
func newTargetCmdInternal(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "target",
		Short: "Show the daily calorie target",
		Long: `Show the daily calorie target for the configured diet profile.

The profile (gender, weight, height, age, activity level) and the
calculation strategy are read from the configuration file. Supported
strategies: harris-benedict (default), mifflin-st-jeor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTarget(cmd, cfg)
		},
	}
}

// runTarget executes the target command.
func runTarget(cmd *cobra.Command, cfg *config.Config) error {
	printer := newPrinter(cmd)

	resolved, err := resolveConfig(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	profile, err := resolved.DietProfile()
	if err != nil {
		printer.Error(err)
		return err
	}
	strategy, err := resolved.TargetStrategy()
	if err != nil {
		printer.Error(err)
		return err
	}

	target := strategy.DailyTarget(profile)

	if isJSONMode(cmd) {
		return printer.Success(map[string]any{
			"strategy": strategy.Name(),
			"target":   target,
		})
	}
	printer.KeyValue("Strategy", strategy.Name())
	printer.Print("Target: %.0f calories per day\n", target)
	return nil
}
