package names

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmuldo/dgcolor/palette"
)

func TestNewTableDuplicates(t *testing.T) {
	tb, e := NewTable([]Entry{
		{"007BA7", "Celadon blue"},
		{"#ff0000", "Red"},
		{"007ba7", "Cerulean"},
	})
	if e != nil {
		t.Fatal(e)
	}

	want := []Entry{{"007BA7", "Cerulean"}, {"FF0000", "Red"}}
	if diff := cmp.Diff(want, tb.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTableRejectsMalformedKey(t *testing.T) {
	_, e := NewTable([]Entry{{"FF0000", "Red"}, {"F00", "Short red"}})
	var fe *palette.FormatError
	if !errors.As(e, &fe) {
		t.Errorf("error = %v; want *palette.FormatError", e)
	}
}

func TestEnglish(t *testing.T) {
	tb := English()
	if tb != English() {
		t.Error("English() built the table twice")
	}
	if tb.Len() != 880 {
		t.Errorf("Len() = %d; want 880", tb.Len())
	}

	tests := map[string]string{
		"007BA7":  "Cerulean",
		"#0048ba": "Absolute Zero",
		"9C2542":  "Big dip o’ruby",
		"4B3621":  "Café noir",
		"A67B5B":  "Tuscan tan",
		"cd5700":  "Tenné (tawny)",
		"39A78E":  "Zomp",
	}
	for hex, want := range tests {
		if got, ok := tb.Name(hex); !ok || got != want {
			t.Errorf("Name(%q) = %q, %v; want %q", hex, got, ok, want)
		}
	}

	if _, ok := tb.Name("123457"); ok {
		t.Error("Name found a color that is not in the table")
	}

	first := tb.Entries()[0]
	if first != (Entry{"0048BA", "Absolute Zero"}) {
		t.Errorf("first entry = %+v", first)
	}
}
