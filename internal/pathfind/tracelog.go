package pathfind

import (
	"fmt"
	"strings"
)

// TraceEntry is one recorded event during a search or editing session.
type TraceEntry struct {
	Step     int
	Category string  // engine, edit
	Key      string  // start, expand, relax, success, failure, reset, obstacle, ...
	Pos      Pos
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[S=012] engine  expand   (4,7)    f=9.66
func (e TraceEntry) String() string {
	return fmt.Sprintf("[S=%03d] %-7s %-9s %-8s %s",
		e.Step, e.Category, e.Key, e.Pos, e.Value)
}

// TraceLog collects structured search events. It is unbounded and
// machine-readable, consumed by tests and the headless CLI rather than by the
// interactive view.
type TraceLog struct {
	entries []TraceEntry
}

// NewTraceLog creates an empty trace log.
func NewTraceLog() *TraceLog {
	return &TraceLog{}
}

// Add records a new entry.
func (t *TraceLog) Add(step int, category, key string, pos Pos, value string, numVal float64) {
	t.entries = append(t.entries, TraceEntry{
		Step:     step,
		Category: category,
		Key:      key,
		Pos:      pos,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (t *TraceLog) Entries() []TraceEntry {
	return t.entries
}

// Filter returns entries matching the given category and/or key. Pass empty
// string to match any value for that field.
func (t *TraceLog) Filter(category, key string) []TraceEntry {
	var out []TraceEntry
	for _, e := range t.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (t *TraceLog) Count(category, key string) int {
	return len(t.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (t *TraceLog) LastOf(category, key string) (TraceEntry, bool) {
	entries := t.Filter(category, key)
	if len(entries) == 0 {
		return TraceEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (t *TraceLog) Format() string {
	var sb strings.Builder
	for _, e := range t.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
