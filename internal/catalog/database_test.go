package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/yada/internal/output"
)

func writeCatalogFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func openTestDB(t *testing.T, basicContent, compositeContent string) *Database {
	t.Helper()
	dir := t.TempDir()
	basicPath := filepath.Join(dir, "basic_foods.txt")
	compositePath := filepath.Join(dir, "composite_foods.txt")
	if basicContent != "" {
		writeCatalogFile(t, basicPath, basicContent)
	}
	if compositeContent != "" {
		writeCatalogFile(t, compositePath, compositeContent)
	}
	db, err := Open(basicPath, compositePath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func TestOpen_MissingFilesYieldEmptyCatalog(t *testing.T) {
	db := openTestDB(t, "", "")
	if len(db.Foods()) != 0 {
		t.Errorf("expected empty catalog, got %d foods", len(db.Foods()))
	}
}

func TestOpen_LoadsBasicAndComposite(t *testing.T) {
	db := openTestDB(t,
		"Roti|flatbread,indian|120.00\nGhee|fat,clarified butter|45.00\n",
		"Ghee Roti|ghee roti,Ghee Roti|Roti:1;Ghee:1\n")

	roti, ok := db.Basic("Roti")
	if !ok {
		t.Fatal("Roti not loaded")
	}
	if roti.CaloriesPerServing() != 120 {
		t.Errorf("Roti calories = %v", roti.CaloriesPerServing())
	}

	gheeRoti, ok := db.Composite("Ghee Roti")
	if !ok {
		t.Fatal("Ghee Roti not loaded")
	}
	if got := gheeRoti.CaloriesPerServing(); got != 165 {
		t.Errorf("Ghee Roti calories = %v, want 165", got)
	}
}

func TestOpen_SkipsMalformedLinesAndUnknownComponents(t *testing.T) {
	db := openTestDB(t,
		"Roti|flatbread|120.00\nnot a valid line\nBad|kw|NaNcal\n",
		"Mystery Bowl|mystery|Roti:1;Unicorn:2\nshort|line\n")

	if _, ok := db.Basic("Roti"); !ok {
		t.Error("valid line should survive malformed neighbors")
	}
	if len(db.Foods()) != 2 {
		t.Errorf("foods = %d, want 2 (Roti + Mystery Bowl)", len(db.Foods()))
	}

	bowl, ok := db.Composite("Mystery Bowl")
	if !ok {
		t.Fatal("Mystery Bowl not loaded")
	}
	if len(bowl.Components()) != 1 {
		t.Errorf("components = %d, want 1 (Unicorn skipped)", len(bowl.Components()))
	}
}

func TestDatabase_AddBasicConflict(t *testing.T) {
	db := openTestDB(t, "Roti|flatbread|120.00\n", "")

	err := db.AddBasic(NewBasicFood("Roti", nil, 100))
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if output.GetExitCode(err) != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitConflict)
	}
}

func TestDatabase_AddCompositeConflict(t *testing.T) {
	db := openTestDB(t, "Roti|flatbread|120.00\n", "Ghee Roti|ghee roti,Ghee Roti|Roti:1\n")

	err := db.AddComposite(NewCompositeFood("Ghee Roti", SearchTerms("Ghee Roti"), nil))
	if output.GetExitCode(err) != output.ExitConflict {
		t.Errorf("exit code = %d, want conflict", output.GetExitCode(err))
	}
}

func TestDatabase_Search(t *testing.T) {
	db := openTestDB(t,
		"Roti|flatbread,indian|120.00\nNaan|flatbread,indian,leavened|260.00\nGhee|fat|45.00\n",
		"")

	tests := []struct {
		name     string
		keywords []string
		matchAll bool
		want     []string
	}{
		{name: "any single keyword", keywords: []string{"flatbread"}, want: []string{"Naan", "Roti"}},
		{name: "all keywords", keywords: []string{"flatbread", "leavened"}, matchAll: true, want: []string{"Naan"}},
		{name: "no match", keywords: []string{"dessert"}, want: nil},
		{name: "empty matches all", keywords: nil, want: []string{"Ghee", "Naan", "Roti"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods := db.Search(tt.keywords, tt.matchAll)
			var got []string
			for _, f := range foods {
				got = append(got, f.Identifier())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("results = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDatabase_CaloriesFor(t *testing.T) {
	db := openTestDB(t,
		"Roti|flatbread|120.00\nGhee|fat|45.00\n",
		"Ghee Roti|ghee roti,Ghee Roti|Roti:1;Ghee:1\n")

	if cal, ok := db.CaloriesFor("Roti"); !ok || cal != 120 {
		t.Errorf("CaloriesFor(Roti) = %v, %v", cal, ok)
	}
	if cal, ok := db.CaloriesFor("Ghee Roti"); !ok || cal != 165 {
		t.Errorf("CaloriesFor(Ghee Roti) = %v, %v", cal, ok)
	}
	if _, ok := db.CaloriesFor("Unicorn"); ok {
		t.Error("CaloriesFor(Unicorn) should report not found")
	}
}

func TestDatabase_SaveRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	basicPath := filepath.Join(dir, "basic_foods.txt")
	compositePath := filepath.Join(dir, "composite_foods.txt")

	db, err := Open(basicPath, compositePath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	roti := NewBasicFood("Roti", []string{"flatbread"}, 120)
	if err := db.AddBasic(roti); err != nil {
		t.Fatalf("AddBasic failed: %v", err)
	}
	if err := db.AddComposite(NewCompositeFood("Ghee Roti", SearchTerms("Ghee Roti"), []Serving{
		{Food: roti, Servings: 1},
	})); err != nil {
		t.Fatalf("AddComposite failed: %v", err)
	}

	if err := db.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	basicData, err := os.ReadFile(basicPath)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(basicData) != "Roti|flatbread|120.00\n" {
		t.Errorf("basic file = %q", string(basicData))
	}

	compositeData, err := os.ReadFile(compositePath)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !strings.Contains(string(compositeData), "Ghee Roti|ghee roti,Ghee Roti|Roti:1\n") {
		t.Errorf("composite file = %q", string(compositeData))
	}

	// Reload and verify round trip.
	reloaded, err := Open(basicPath, compositePath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got, ok := reloaded.CaloriesFor("Ghee Roti"); !ok || got != 120 {
		t.Errorf("reloaded Ghee Roti calories = %v, %v", got, ok)
	}
}
