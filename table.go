package phonedata

import (
	"fmt"
	"iter"
	"sort"
)

// Table is an immutable, ordered mapping from country code to Entry.
// It is read only after construction and safe for concurrent readers.
type Table struct {
	codes   []string
	entries map[string]Entry
}

// NewTable builds a table that keeps the order of the given entries.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		codes:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}

	for _, entry := range entries {
		code := entry.Country
		if code == "" {
			return nil, fmt.Errorf("phonedata: empty country code: %w", ErrInvalidData)
		}
		if _, exists := t.entries[code]; exists {
			return nil, fmt.Errorf("phonedata: duplicate country %q: %w", code, ErrInvalidData)
		}
		t.entries[code] = entry
		t.codes = append(t.codes, code)
	}

	return t, nil
}

// TableFromMap builds a table from an unordered map.
// Codes are sorted to keep the result deterministic; the map key wins over Entry.Country.
func TableFromMap(data map[string]Entry) (*Table, error) {
	if data == nil {
		return nil, ErrInvalidData
	}

	codes := make([]string, 0, len(data))
	for code := range data {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		entry := data[code]
		entry.Country = code
		entries = append(entries, entry)
	}

	return NewTable(entries...)
}

// Len returns the number of countries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

// Countries returns the country codes in insertion order.
func (t *Table) Countries() []string {
	if t == nil || len(t.codes) == 0 {
		return []string{}
	}
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Has reports whether the code is present. Matching is exact.
func (t *Table) Has(code string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[code]
	return ok
}

// Entry returns the row for code.
func (t *Table) Entry(code string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	entry, ok := t.entries[code]
	return entry, ok
}

// All yields every entry in insertion order.
func (t *Table) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if t == nil {
			return
		}
		for _, code := range t.codes {
			if !yield(code, t.entries[code]) {
				return
			}
		}
	}
}
