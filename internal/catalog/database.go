package catalog

import (
	"bufio"
	"errors"
	"os"
	"sort"

	"github.com/gorewood/yada/internal/output"
)

// Database holds the in-memory food catalog backed by two flat text files.
// Loading is lenient: malformed lines and unknown component identifiers are
// skipped, the way the downstream application reads these files. Saving
// rewrites both files in full.
//
// The database is not safe for concurrent use, and the underlying files
// carry no locking: concurrent writers may interleave lines.
type Database struct {
	basicPath     string
	compositePath string
	basic         map[string]*BasicFood
	composite     map[string]*CompositeFood
}

// Open loads the catalog from the given file paths.
// Missing files are treated as an empty catalog.
func Open(basicPath, compositePath string) (*Database, error) {
	db := &Database{
		basicPath:     basicPath,
		compositePath: compositePath,
		basic:         make(map[string]*BasicFood),
		composite:     make(map[string]*CompositeFood),
	}
	if err := db.loadBasic(); err != nil {
		return nil, err
	}
	if err := db.loadComposite(); err != nil {
		return nil, err
	}
	return db, nil
}

// AddBasic adds a basic food to the catalog.
// Returns a conflict error if a food with the same identifier exists.
func (db *Database) AddBasic(food *BasicFood) error {
	if _, exists := db.basic[food.Identifier()]; exists {
		return output.NewConflictError("food already exists: " + food.Identifier())
	}
	db.basic[food.Identifier()] = food
	return nil
}

// AddComposite adds a composite food to the catalog.
// Returns a conflict error if a food with the same identifier exists.
func (db *Database) AddComposite(food *CompositeFood) error {
	if _, exists := db.composite[food.Identifier()]; exists {
		return output.NewConflictError("composite food already exists: " + food.Identifier())
	}
	db.composite[food.Identifier()] = food
	return nil
}

// Basic returns the basic food with the given identifier.
func (db *Database) Basic(identifier string) (*BasicFood, bool) {
	food, ok := db.basic[identifier]
	return food, ok
}

// Composite returns the composite food with the given identifier.
func (db *Database) Composite(identifier string) (*CompositeFood, bool) {
	food, ok := db.composite[identifier]
	return food, ok
}

// CaloriesFor returns the calories per serving for any food, basic or
// composite, by identifier.
func (db *Database) CaloriesFor(identifier string) (float64, bool) {
	if food, ok := db.basic[identifier]; ok {
		return food.CaloriesPerServing(), true
	}
	if food, ok := db.composite[identifier]; ok {
		return food.CaloriesPerServing(), true
	}
	return 0, false
}

// Foods returns all foods, basic first then composite, sorted by identifier
// within each group.
func (db *Database) Foods() []Food {
	foods := make([]Food, 0, len(db.basic)+len(db.composite))
	for _, id := range sortedKeys(db.basic) {
		foods = append(foods, db.basic[id])
	}
	for _, id := range sortedKeys(db.composite) {
		foods = append(foods, db.composite[id])
	}
	return foods
}

// Search returns foods matching the given keywords.
// If matchAll is true, a food must carry every keyword; otherwise any one
// keyword suffices. Matching is case-insensitive. An empty keyword list
// matches everything.
func (db *Database) Search(keywords []string, matchAll bool) []Food {
	var result []Food
	for _, food := range db.Foods() {
		if MatchKeywords(food, keywords, matchAll) {
			result = append(result, food)
		}
	}
	return result
}

// Save rewrites both catalog files from the in-memory state.
func (db *Database) Save() error {
	if err := db.saveBasic(); err != nil {
		return err
	}
	return db.saveComposite()
}

func (db *Database) loadBasic() error {
	lines, err := readLines(db.basicPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		identifier, keywords, calories, ok := ParseBasicLine(line)
		if !ok {
			continue
		}
		db.basic[identifier] = NewBasicFood(identifier, keywords, calories)
	}
	return nil
}

func (db *Database) loadComposite() error {
	lines, err := readLines(db.compositePath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		identifier, keywords, parts, ok := ParseCompositeLine(line)
		if !ok {
			continue
		}
		var components []Serving
		for _, part := range parts {
			// Components resolve against loaded basic foods; unknown
			// identifiers are skipped.
			base, found := db.basic[part.Identifier]
			if !found {
				continue
			}
			components = append(components, Serving{Food: base, Servings: part.Servings})
		}
		db.composite[identifier] = NewCompositeFood(identifier, keywords, components)
	}
	return nil
}

func (db *Database) saveBasic() error {
	var out []byte
	for _, id := range sortedKeys(db.basic) {
		food := db.basic[id]
		line, err := FormatBasicLine(food.Identifier(), food.Keywords(), food.CaloriesPerServing())
		if err != nil {
			return err
		}
		out = append(out, line...)
	}
	if err := os.WriteFile(db.basicPath, out, 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to save basic foods", err)
	}
	return nil
}

func (db *Database) saveComposite() error {
	var out []byte
	for _, id := range sortedKeys(db.composite) {
		food := db.composite[id]
		parts := make([]ComponentPart, 0, len(food.Components()))
		for _, serving := range food.Components() {
			parts = append(parts, ComponentPart{
				Identifier: serving.Food.Identifier(),
				Servings:   serving.Servings,
			})
		}
		line, err := FormatCompositeLine(food.Identifier(), food.Keywords(), parts)
		if err != nil {
			return err
		}
		out = append(out, line...)
	}
	if err := os.WriteFile(db.compositePath, out, 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to save composite foods", err)
	}
	return nil
}

// readLines reads a catalog file line by line.
// A missing file yields no lines and no error.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to open catalog file: "+path, err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read catalog file: "+path, err)
	}
	return lines, nil
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
