package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/yada/internal/output"
)

// writeInputFile writes JSON input into a temp file and returns its path.
func writeInputFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func TestConvertBasic(t *testing.T) {
	input := writeInputFile(t, `[
		{"name": "Roti", "keywords": ["flatbread", "indian"], "calories_per_serving": 120},
		{"id": "ghee", "calories_per_serving": 45.5}
	]`)
	out := filepath.Join(t.TempDir(), "basic_foods.txt")

	stdout, err := execute(t, newConvertCmdInternal(nil), "basic", input, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Converted 2 foods") {
		t.Errorf("output = %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	want := "Roti|flatbread,indian|120.00\nghee||45.50\n"
	if string(data) != want {
		t.Errorf("catalog = %q, want %q", string(data), want)
	}
}

func TestConvertBasic_MissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "basic_foods.txt")

	_, err := execute(t, newConvertCmdInternal(nil), "basic", "no_such_file.json", "--out", out)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestConvertBasic_RerunAppendsDuplicates(t *testing.T) {
	input := writeInputFile(t, `[{"name": "Roti", "calories_per_serving": 120}]`)
	out := filepath.Join(t.TempDir(), "basic_foods.txt")

	for range 2 {
		if _, err := execute(t, newConvertCmdInternal(nil), "basic", input, "--out", out); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}

	data, _ := os.ReadFile(out)
	want := "Roti||120.00\nRoti||120.00\n"
	if string(data) != want {
		t.Errorf("catalog = %q, want %q", string(data), want)
	}
}

func TestConvertBasic_DefaultsToConfiguredPath(t *testing.T) {
	cfg := testConfig(t)
	input := writeInputFile(t, `[{"name": "Roti", "calories_per_serving": 120}]`)

	if _, err := execute(t, newConvertCmdInternal(cfg), "basic", input); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(cfg.BasicFoodsPath()); err != nil {
		t.Errorf("configured catalog not written: %v", err)
	}
}

func TestConvertBasic_JSONOutput(t *testing.T) {
	input := writeInputFile(t, `[{"name": "Roti", "calories_per_serving": 120}]`)
	out := filepath.Join(t.TempDir(), "basic_foods.txt")

	stdout, err := execute(t, newConvertCmdInternal(nil), "basic", input, "--out", out, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not valid JSON: %q", stdout)
	}
	if result["converted"] != float64(1) {
		t.Errorf("converted = %v, want 1", result["converted"])
	}
}

func TestConvertComposite(t *testing.T) {
	input := writeInputFile(t, `[
		{"name": "Ghee Roti", "components": [{"name": "Roti", "servings": 1}, {"name": "Ghee", "servings": 1}]}
	]`)
	out := filepath.Join(t.TempDir(), "composite_foods.txt")

	stdout, err := execute(t, newConvertCmdInternal(nil), "composite", input, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Added 1 out of 1 composite foods") {
		t.Errorf("output = %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	want := "Ghee Roti|ghee roti,Ghee Roti|Roti:1;Ghee:1\n"
	if string(data) != want {
		t.Errorf("catalog = %q, want %q", string(data), want)
	}
}

func TestConvertComposite_PartialFailure(t *testing.T) {
	input := writeInputFile(t, `[
		{"name": "Ghee Roti", "components": [{"name": "Roti", "servings": 1}, {"name": "Ghee", "servings": 1}]},
		{"id": "bad", "components": []}
	]`)
	out := filepath.Join(t.TempDir(), "composite_foods.txt")

	stdout, err := execute(t, newConvertCmdInternal(nil), "composite", input, "--out", out)
	if err == nil {
		t.Fatal("expected error when a record fails")
	}
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
	if !strings.Contains(stdout, "Added 1 out of 2 composite foods") {
		t.Errorf("output = %q", stdout)
	}

	// The valid record is still appended.
	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "Ghee Roti|") {
		t.Errorf("catalog = %q", string(data))
	}
}

func TestConvertComposite_SingleObject(t *testing.T) {
	input := writeInputFile(t, `{"name": "Ghee Roti", "components": [{"name": "Roti", "servings": 1}]}`)
	out := filepath.Join(t.TempDir(), "composite_foods.txt")

	stdout, err := execute(t, newConvertCmdInternal(nil), "composite", input, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Successfully added Ghee Roti to "+out) {
		t.Errorf("output = %q", stdout)
	}
}
