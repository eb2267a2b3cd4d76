package foodlog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/output"
)

// Load reads a food log from the given file.
// Each line is date|identifier|servings. Malformed lines are skipped.
// A missing file yields an empty log.
func Load(path string) (*Log, error) {
	log := New()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return log, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to open food log: "+path, err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), catalog.FieldSep)
		if len(fields) != 3 {
			continue
		}
		date, err := ParseDate(fields[0])
		if err != nil {
			continue
		}
		servings, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		// Loaded entries are not undoable; only session changes are.
		log.days[date] = append(log.days[date], Entry{FoodID: fields[1], Servings: servings})
	}
	if err := scanner.Err(); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read food log: "+path, err)
	}

	return log, nil
}

// Save rewrites the food log file from the in-memory state.
func (l *Log) Save(path string) error {
	var builder strings.Builder
	for _, date := range l.Dates() {
		for _, entry := range l.days[date] {
			if err := catalog.CheckValue("food identifier", entry.FoodID); err != nil {
				return err
			}
			fmt.Fprintf(&builder, "%s|%s|%s\n", date, entry.FoodID, catalog.FormatServings(entry.Servings))
		}
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to save food log: "+path, err)
	}
	return nil
}
