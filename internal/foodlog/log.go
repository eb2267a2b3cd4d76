// Package foodlog tracks food consumption per day: servings logged against
// catalog identifiers, calorie totals, undo of recent changes, and
// persistence as date|identifier|servings lines.
package foodlog

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the date format used for log keys and the log file.
const DateLayout = "2006-01-02"

// Entry is one logged consumption: a food identifier and a serving count.
type Entry struct {
	FoodID   string
	Servings float64
}

// CalorieSource resolves calories per serving for a food identifier.
// The catalog database implements this.
type CalorieSource interface {
	CaloriesFor(identifier string) (float64, bool)
}

// Log is the in-memory daily food log.
// Changes made through Add and Remove can be reverted with Undo.
// Not safe for concurrent use.
type Log struct {
	days    map[string][]Entry
	history []command
}

// New creates an empty food log.
func New() *Log {
	return &Log{days: make(map[string][]Entry)}
}

// command is a reversible log mutation.
type command interface {
	apply(l *Log)
	revert(l *Log)
}

type addCommand struct {
	date  string
	entry Entry
}

func (c addCommand) apply(l *Log) {
	l.days[c.date] = append(l.days[c.date], c.entry)
}

func (c addCommand) revert(l *Log) {
	l.removeAt(c.date, len(l.days[c.date])-1)
}

type removeCommand struct {
	date  string
	entry Entry
	index int
}

func (c removeCommand) apply(l *Log) {
	l.removeAt(c.date, c.index)
}

func (c removeCommand) revert(l *Log) {
	day := l.days[c.date]
	day = append(day, Entry{})
	copy(day[c.index+1:], day[c.index:])
	day[c.index] = c.entry
	l.days[c.date] = day
}

// ParseDate validates and normalizes a YYYY-MM-DD date string.
func ParseDate(s string) (string, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return parsed.Format(DateLayout), nil
}

// Add logs an entry for the given date.
func (l *Log) Add(date string, entry Entry) {
	cmd := addCommand{date: date, entry: entry}
	cmd.apply(l)
	l.history = append(l.history, cmd)
}

// Remove deletes the first entry for the given food on the given date.
// Returns false if no such entry exists.
func (l *Log) Remove(date string, foodID string) bool {
	for index, entry := range l.days[date] {
		if entry.FoodID == foodID {
			cmd := removeCommand{date: date, entry: entry, index: index}
			cmd.apply(l)
			l.history = append(l.history, cmd)
			return true
		}
	}
	return false
}

// RemoveLast deletes the most recently logged entry for the given date.
// Returns the removed entry, or false if the date has no entries.
func (l *Log) RemoveLast(date string) (Entry, bool) {
	day := l.days[date]
	if len(day) == 0 {
		return Entry{}, false
	}
	index := len(day) - 1
	cmd := removeCommand{date: date, entry: day[index], index: index}
	cmd.apply(l)
	l.history = append(l.history, cmd)
	return cmd.entry, true
}

// Undo reverts the most recent Add or Remove.
// Returns false if there is nothing to undo.
func (l *Log) Undo() bool {
	if len(l.history) == 0 {
		return false
	}
	last := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	last.revert(l)
	return true
}

// Entries returns the logged entries for a date, in logged order.
func (l *Log) Entries(date string) []Entry {
	return l.days[date]
}

// Dates returns all dates with logged entries, sorted ascending.
func (l *Log) Dates() []string {
	dates := make([]string, 0, len(l.days))
	for date := range l.days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TotalCalories sums the calories consumed on a date.
// Entries whose identifier is unknown to the source contribute nothing.
func (l *Log) TotalCalories(date string, source CalorieSource) float64 {
	total := 0.0
	for _, entry := range l.days[date] {
		calories, ok := source.CaloriesFor(entry.FoodID)
		if !ok {
			continue
		}
		total += calories * entry.Servings
	}
	return total
}

// Summary returns calories consumed per day over an inclusive date range.
// Only dates with logged entries appear in the result.
func (l *Log) Summary(start, end string, source CalorieSource) map[string]float64 {
	result := make(map[string]float64)
	for date := range l.days {
		if date < start || date > end {
			continue
		}
		result[date] = l.TotalCalories(date, source)
	}
	return result
}

// removeAt deletes the entry at index for the date, dropping the date key
// when its list becomes empty.
func (l *Log) removeAt(date string, index int) {
	day := l.days[date]
	if index < 0 || index >= len(day) {
		return
	}
	day = append(day[:index], day[index+1:]...)
	if len(day) == 0 {
		delete(l.days, date)
		return
	}
	l.days[date] = day
}
