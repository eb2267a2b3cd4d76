package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorewood/yada/internal/output"
)

// Field separators of the flat catalog format. A basic food line is
// Name|kw1,kw2|calories and a composite food line is
// Name|kw1,kw2|Component:servings;Component:servings.
const (
	FieldSep     = "|"
	KeywordSep   = ","
	ComponentSep = ";"
	ServingSep   = ":"
)

// reservedChars are characters that cannot appear in field values because
// the format performs no escaping.
const reservedChars = FieldSep + KeywordSep + ComponentSep + ServingSep + "\n"

// ComponentPart is one Component:servings element of a composite line.
type ComponentPart struct {
	Identifier string
	Servings   float64
}

// CheckValue rejects values that would corrupt the pipe-delimited format.
// Returns a conflict error naming the field when the value contains a
// reserved delimiter or a newline.
func CheckValue(field, value string) error {
	if idx := strings.IndexAny(value, reservedChars); idx >= 0 {
		return output.NewConflictError(fmt.Sprintf(
			"%s %q contains reserved character %q", field, value, value[idx]))
	}
	return nil
}

// FormatServings renders a servings count the way the catalog stores it:
// no exponent, no trailing zeros (1 -> "1", 0.5 -> "0.5").
func FormatServings(servings float64) string {
	return strconv.FormatFloat(servings, 'f', -1, 64)
}

// FormatBasicLine renders one basic food line, newline-terminated.
// Calories are always formatted with exactly two decimal places.
func FormatBasicLine(identifier string, keywords []string, calories float64) (string, error) {
	if err := CheckValue("name", identifier); err != nil {
		return "", err
	}
	for _, kw := range keywords {
		if err := CheckValue("keyword", kw); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%s|%s|%.2f\n", identifier, strings.Join(keywords, KeywordSep), calories), nil
}

// FormatCompositeLine renders one composite food line, newline-terminated.
func FormatCompositeLine(identifier string, keywords []string, parts []ComponentPart) (string, error) {
	if err := CheckValue("name", identifier); err != nil {
		return "", err
	}
	for _, kw := range keywords {
		if err := CheckValue("keyword", kw); err != nil {
			return "", err
		}
	}
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		if err := CheckValue("component name", part.Identifier); err != nil {
			return "", err
		}
		rendered = append(rendered, part.Identifier+ServingSep+FormatServings(part.Servings))
	}
	return fmt.Sprintf("%s|%s|%s\n", identifier, strings.Join(keywords, KeywordSep), strings.Join(rendered, ComponentSep)), nil
}

// ParseBasicLine parses one basic food line.
// Returns ok=false for lines that do not have at least three fields or a
// numeric calories field; such lines are skipped by callers.
func ParseBasicLine(line string) (identifier string, keywords []string, calories float64, ok bool) {
	fields := strings.Split(line, FieldSep)
	if len(fields) < 3 {
		return "", nil, 0, false
	}
	identifier = strings.TrimSpace(fields[0])
	keywords = splitKeywords(fields[1])
	calories, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return "", nil, 0, false
	}
	return identifier, keywords, calories, true
}

// ParseCompositeLine parses one composite food line.
// Component parts that are malformed (missing the servings separator or a
// non-numeric servings value) are skipped, matching the lenient loader
// behavior of the catalog files.
func ParseCompositeLine(line string) (identifier string, keywords []string, parts []ComponentPart, ok bool) {
	fields := strings.Split(line, FieldSep)
	if len(fields) < 3 {
		return "", nil, nil, false
	}
	identifier = strings.TrimSpace(fields[0])
	keywords = splitKeywords(fields[1])
	for _, raw := range strings.Split(fields[2], ComponentSep) {
		name, servingsStr, found := strings.Cut(raw, ServingSep)
		if !found {
			continue
		}
		servings, err := strconv.ParseFloat(servingsStr, 64)
		if err != nil {
			continue
		}
		parts = append(parts, ComponentPart{Identifier: name, Servings: servings})
	}
	return identifier, keywords, parts, true
}

// splitKeywords splits the keyword field. An empty field yields no keywords
// rather than a single empty string.
func splitKeywords(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, KeywordSep)
}
