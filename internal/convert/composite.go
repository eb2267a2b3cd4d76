package convert

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/output"
)

// ComponentRef names one component of a composite food by identifier,
// with a serving count.
type ComponentRef struct {
	Name     string  `json:"name"`
	Servings float64 `json:"servings"`
}

// CompositeRecord is one composite food record from a JSON document.
// Name and a non-empty component list are required; the id is used only
// in error messages.
type CompositeRecord struct {
	ID         string         `json:"id,omitempty"`
	Name       string         `json:"name"`
	Components []ComponentRef `json:"components"`
}

// Line renders the record as one composite food catalog line.
// Search terms are always the lowercased name followed by the name.
// Components with an empty name or zero servings are silently dropped,
// matching the long-standing converter behavior.
func (r CompositeRecord) Line() (string, error) {
	parts := make([]catalog.ComponentPart, 0, len(r.Components))
	for _, component := range r.Components {
		if component.Name == "" || component.Servings == 0 {
			continue
		}
		parts = append(parts, catalog.ComponentPart{
			Identifier: component.Name,
			Servings:   component.Servings,
		})
	}
	return catalog.FormatCompositeLine(r.Name, catalog.SearchTerms(r.Name), parts)
}

// CompositeConverter appends composite food records to a catalog file.
// Every failure is reported through the printer and folded into the
// boolean result; nothing is raised to the caller.
type CompositeConverter struct {
	printer *output.Printer
}

// NewCompositeConverter creates a composite food converter reporting to printer.
func NewCompositeConverter(printer *output.Printer) *CompositeConverter {
	return &CompositeConverter{printer: printer}
}

// AddJSON parses a raw JSON document holding a single composite record or
// an array of them and appends the resulting lines to outputPath.
// Returns true only if every record was added.
func (c *CompositeConverter) AddJSON(data []byte, outputPath string) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []CompositeRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			c.printer.Error(output.NewUserError("invalid JSON data: " + err.Error()))
			return false
		}
		return c.Add(records, outputPath)
	}
	return c.AddSingleJSON(trimmed, outputPath)
}

// Add appends each record in the list to outputPath.
// Every record is attempted even after failures; the result is true only
// if all of them succeeded.
func (c *CompositeConverter) Add(records []CompositeRecord, outputPath string) bool {
	added := 0
	for _, record := range records {
		if c.AddSingle(record, outputPath) {
			added++
		}
	}
	c.printer.Print("Added %d out of %d composite foods\n", added, len(records))
	return added == len(records)
}

// AddSingleJSON parses one composite record from raw JSON and appends it.
// A parse failure is reported and returns false.
func (c *CompositeConverter) AddSingleJSON(data []byte, outputPath string) bool {
	var record CompositeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		c.printer.Error(output.NewUserError("invalid JSON data: " + err.Error()))
		return false
	}
	return c.AddSingle(record, outputPath)
}

// AddSingle appends one composite record to outputPath.
// Returns false, with no partial write, when the name or component list is
// missing, when a field would corrupt the format, or when the append fails.
func (c *CompositeConverter) AddSingle(record CompositeRecord, outputPath string) bool {
	if record.Name == "" || len(record.Components) == 0 {
		c.printer.Error(output.NewUserError(
			"missing required fields (name or components) for " + record.ID))
		return false
	}

	line, err := record.Line()
	if err != nil {
		c.printer.Error(err)
		return false
	}

	if err := appendLine(outputPath, line); err != nil {
		c.printer.Error(err)
		return false
	}

	c.printer.Print("Successfully added %s to %s\n", record.Name, outputPath)
	return true
}

// appendLine appends one line to path, creating the file if absent.
func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to open output file: "+path, err)
	}
	if _, err := file.WriteString(line); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause("failed to append to "+path, err)
	}
	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to close output file: "+path, err)
	}
	return nil
}
