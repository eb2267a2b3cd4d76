package main

import (
	"os"
	"strings"
	"testing"
)

func TestSearch_AnyKeyword(t *testing.T) {
	cfg := testConfig(t)
	seedCatalog(t, cfg, "Roti|flatbread,indian|120.00\nGhee|fat|45.00\n")

	stdout, err := execute(t, newSearchCmdInternal(cfg), "flatbread", "fat")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Roti") || !strings.Contains(stdout, "Ghee") {
		t.Errorf("output = %q", stdout)
	}
}

func TestSearch_AllKeywords(t *testing.T) {
	cfg := testConfig(t)
	seedCatalog(t, cfg, "Roti|flatbread,indian|120.00\nNaan|flatbread|260.00\n")

	stdout, err := execute(t, newSearchCmdInternal(cfg), "flatbread", "indian", "--all")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Roti") {
		t.Errorf("output should contain Roti: %q", stdout)
	}
	if strings.Contains(stdout, "Naan") {
		t.Errorf("output should not contain Naan: %q", stdout)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	cfg := testConfig(t)
	seedCatalog(t, cfg, "Roti|Flatbread|120.00\n")

	stdout, err := execute(t, newSearchCmdInternal(cfg), "FLATBREAD")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Roti") {
		t.Errorf("output = %q", stdout)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	cfg := testConfig(t)
	seedCatalog(t, cfg, "Roti|flatbread|120.00\n")

	stdout, err := execute(t, newSearchCmdInternal(cfg), "pizza")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "No matching foods") {
		t.Errorf("output = %q", stdout)
	}
}

func TestSearch_IncludesComposites(t *testing.T) {
	cfg := testConfig(t)
	seedCatalog(t, cfg, "Roti|flatbread|120.00\nGhee|fat|45.00\n")
	compositeLine := "Ghee Roti|ghee roti,Ghee Roti|Roti:1;Ghee:1\n"
	if err := os.WriteFile(cfg.CompositeFoodsPath(), []byte(compositeLine), 0o644); err != nil {
		t.Fatalf("failed to seed composites: %v", err)
	}

	stdout, err := execute(t, newSearchCmdInternal(cfg), "ghee roti")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "Ghee Roti") {
		t.Errorf("output = %q", stdout)
	}
}
