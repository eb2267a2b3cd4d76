package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/output"
)

// BasicRecord is one basic food record from a JSON document.
// All fields are optional; defaults apply when absent.
type BasicRecord struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Calories float64  `json:"calories_per_serving,omitempty"`
}

// Identifier returns the catalog identifier for the record:
// the name if present, else the id, else "Unknown".
func (r BasicRecord) Identifier() string {
	if r.Name != "" {
		return r.Name
	}
	if r.ID != "" {
		return r.ID
	}
	return "Unknown"
}

// Line renders the record as one basic food catalog line.
// Returns a conflict error if a field contains a reserved delimiter.
func (r BasicRecord) Line() (string, error) {
	return catalog.FormatBasicLine(r.Identifier(), r.Keywords, r.Calories)
}

// BasicConverter converts basic food JSON documents into catalog lines.
// Skipped records and per-run outcomes are reported through the printer.
type BasicConverter struct {
	printer *output.Printer
}

// NewBasicConverter creates a basic food converter reporting to printer.
func NewBasicConverter(printer *output.Printer) *BasicConverter {
	return &BasicConverter{printer: printer}
}

// ConvertFile reads a JSON document (single object or array) from inputPath
// and appends one catalog line per record to outputPath, creating the file
// if absent. Returns the number of lines written.
//
// A record whose fields would corrupt the format is reported and skipped;
// the rest of the batch is still converted. Any I/O error aborts the whole
// call.
func (c *BasicConverter) ConvertFile(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, output.NewUserError("input file not found: " + inputPath)
		}
		return 0, output.NewSystemErrorWithCause("failed to read input file: "+inputPath, err)
	}

	records, err := DecodeBasicRecords(data)
	if err != nil {
		return 0, output.NewUserError("invalid JSON in " + inputPath + ": " + err.Error())
	}

	// The output file is opened once per call and closed on every path.
	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, output.NewSystemErrorWithCause("failed to open output file: "+outputPath, err)
	}
	defer func() { _ = file.Close() }()

	written := 0
	for _, record := range records {
		line, lineErr := record.Line()
		if lineErr != nil {
			c.printer.Warn("skipping %s: %s", record.Identifier(), lineErr.Error())
			continue
		}
		if _, writeErr := file.WriteString(line); writeErr != nil {
			return written, output.NewSystemErrorWithCause("failed to append to "+outputPath, writeErr)
		}
		written++
	}

	if err := file.Close(); err != nil {
		return written, output.NewSystemErrorWithCause("failed to close output file: "+outputPath, err)
	}

	return written, nil
}

// DecodeBasicRecords parses a JSON document holding either a single basic
// food object or an array of them, normalized to a slice.
func DecodeBasicRecords(data []byte) ([]BasicRecord, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []BasicRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var record BasicRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, err
	}
	return []BasicRecord{record}, nil
}
