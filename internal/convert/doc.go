// Package convert turns JSON food records into the flat pipe-delimited
// catalog formats consumed by the yada application: basic food lines
// (Name|keywords|calories) and composite food lines
// (Name|search_terms|Component:servings;...). Converted lines are appended
// to the target catalog file.
//
// Appends are plain unsynchronized file appends; concurrent invocations
// against the same output file may interleave lines.
package convert
