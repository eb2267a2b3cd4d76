package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/output"
)

func profiledConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testConfig(t)
	cfg.Profile = config.Profile{
		Gender:        "male",
		WeightKG:      70,
		HeightCM:      175,
		Age:           30,
		ActivityLevel: "sedentary",
	}
	return cfg
}

func TestTarget(t *testing.T) {
	cfg := profiledConfig(t)

	stdout, err := execute(t, newTargetCmdInternal(cfg))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Harris-Benedict Equation") {
		t.Errorf("output should name the strategy: %q", stdout)
	}
	// BMR 1695.667 for this profile, times the sedentary multiplier.
	if !strings.Contains(stdout, "Target: 2035 calories per day") {
		t.Errorf("output = %q", stdout)
	}
}

func TestTarget_MifflinStJeor(t *testing.T) {
	cfg := profiledConfig(t)
	cfg.Strategy = "mifflin-st-jeor"

	stdout, err := execute(t, newTargetCmdInternal(cfg))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Mifflin-St Jeor Equation") {
		t.Errorf("output = %q", stdout)
	}
}

func TestTarget_JSON(t *testing.T) {
	cfg := profiledConfig(t)

	stdout, err := execute(t, newTargetCmdInternal(cfg), "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not valid JSON: %q", stdout)
	}
	if result["strategy"] != "Harris-Benedict Equation" {
		t.Errorf("strategy = %v", result["strategy"])
	}
	want := (88.362 + 13.397*70 + 4.799*175 - 5.677*30) * 1.2
	if got := result["target"].(float64); got < want-0.01 || got > want+0.01 {
		t.Errorf("target = %v, want %v", got, want)
	}
}

func TestTarget_UnconfiguredProfile(t *testing.T) {
	cfg := testConfig(t)

	_, err := execute(t, newTargetCmdInternal(cfg))
	if err == nil {
		t.Fatal("expected error for unconfigured profile")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestTarget_UnknownStrategy(t *testing.T) {
	cfg := profiledConfig(t)
	cfg.Strategy = "keto-magic"

	_, err := execute(t, newTargetCmdInternal(cfg))
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
