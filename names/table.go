// Package names finds the human-readable name of the reference color nearest
// to a query color.
package names

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mmuldo/dgcolor/palette"
)

// Entry is one row of a reference table.
type Entry struct {
	Hex  string
	Name string
}

// Table is an ordered, read-only set of reference colors.
type Table struct {
	entries []Entry
	colors  []palette.RGB
	index   map[string]int
}

// NewTable builds a Table from entries in order. A hex key that appears more
// than once keeps the position of its first occurrence and the name of its
// last, the way a map literal with repeated keys behaves.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{index: make(map[string]int, len(entries))}

	for _, en := range entries {
		c, e := palette.ParseHex(en.Hex)
		if e != nil {
			return nil, fmt.Errorf("names: entry %q: %w", en.Name, e)
		}

		key := normalize(en.Hex)
		if i, ok := t.index[key]; ok {
			t.entries[i].Name = en.Name
			continue
		}

		t.index[key] = len(t.entries)
		t.entries = append(t.entries, Entry{key, en.Name})
		t.colors = append(t.colors, c)
	}

	return t, nil
}

// Len returns the number of distinct colors in t.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of t's entries in table order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Name returns the name stored for an exact hex key.
func (t *Table) Name(hex string) (string, bool) {
	i, ok := t.index[normalize(hex)]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

func normalize(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(hex, "#"))
}

var (
	englishOnce  sync.Once
	englishTable *Table
)

// English returns the built-in table of English color names.
func English() *Table {
	englishOnce.Do(func() {
		t, e := NewTable(english)
		if e != nil {
			panic(e)
		}
		englishTable = t
	})
	return englishTable
}
