package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gorewood/yada/internal/config"
)

// testConfig returns a configuration rooted in a fresh temp directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	return cfg
}

// execute runs a command with the given args and captures its output.
// The persistent --json flag is registered so subcommands behave as they
// do under the real root command.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"
	defer func() { version = "dev" }()

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("--version output should contain version: %q", buf.String())
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"yada", "Usage:", "--json", "convert", "foods", "search", "log", "target", "serve"} {
		if !strings.Contains(buf.String(), expected) {
			t.Errorf("--help output should contain %q", expected)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--json"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %q", buf.String())
	}
	if result["error"] == nil {
		t.Errorf("JSON output should contain error: %v", result)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"dev defaults", "dev", "none", "unknown", "dev"},
		{"full info", "1.0.0", "abcdef1234", "2026-08-29", "1.0.0 (abcdef1, 2026-08-29)"},
		{"short commit kept", "1.0.0", "abc", "2026-08-29", "1.0.0 (abc, 2026-08-29)"},
	}

	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
