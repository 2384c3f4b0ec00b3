package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#FF0000", RGB{255, 0, 0}, true},
		{"FF0000", RGB{255, 0, 0}, true},
		{"#ff8200", RGB{255, 130, 0}, true},
		{"#Ff8200", RGB{255, 130, 0}, true},
		{"000000", RGB{0, 0, 0}, true},
		{"", RGB{}, false},
		{"#", RGB{}, false},
		{"#FFF", RGB{}, false},
		{"#FF00001", RGB{}, false},
		{"##FF0000", RGB{}, false},
		{"#GGGGGG", RGB{}, false},
		{"+12345", RGB{}, false},
		{" FF0000", RGB{}, false},
		{"FF0000#", RGB{}, false},
	}

	for _, tt := range tests {
		got, e := ParseHex(tt.in)
		if tt.ok {
			if e != nil || got != tt.want {
				t.Errorf("ParseHex(%q) = %v, %v; want %v", tt.in, got, e, tt.want)
			}
			continue
		}

		var fe *FormatError
		if !errors.As(e, &fe) {
			t.Errorf("ParseHex(%q) error = %v; want *FormatError", tt.in, e)
		} else if fe.Input != tt.in {
			t.Errorf("FormatError.Input = %q; want %q", fe.Input, tt.in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 130, 0}).Hex(); got != "#ff8200" {
		t.Errorf("Hex() = %q", got)
	}
	if got := MustParseHex("#0048BA").Hex(); got != "#0048ba" {
		t.Errorf("round trip = %q", got)
	}
}

func TestRGBA(t *testing.T) {
	var c color.Color = RGB{255, 130, 0}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 130, B: 0, A: 255}) {
		t.Errorf("NRGBA = %v", got)
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  string
	}{
		{"#FF8200", 0.5, "#fec07f"},
		{"#000000", 1.0, "#000000"},
		{"#000000", 0.0, "#fefefe"},
		{"#58595B", 0.25, "#d4d5d5"},
	}

	for _, tt := range tests {
		got, e := Alpha(tt.hex, tt.alpha)
		if e != nil || got != tt.want {
			t.Errorf("Alpha(%q, %v) = %q, %v; want %q", tt.hex, tt.alpha, got, e, tt.want)
		}
	}

	if _, e := Alpha("#000000", 1.5); e == nil {
		t.Error("Alpha accepted alpha > 1")
	}
	if _, e := Alpha("nothex", 0.5); e == nil {
		t.Error("Alpha accepted a malformed color")
	}
}

func TestAlphaSuffix(t *testing.T) {
	got, e := AlphaSuffix("#FF8200", 0.5)
	if e != nil || got != "#FF82007f" {
		t.Errorf("AlphaSuffix = %q, %v", got, e)
	}
	got, e = AlphaSuffix("#FF8200", 0.02)
	if e != nil || got != "#FF820005" {
		t.Errorf("AlphaSuffix small alpha = %q, %v", got, e)
	}
}
