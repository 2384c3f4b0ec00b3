package palette

import (
	"errors"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type labTestCase struct {
	R, G, B float64
	Want    Lab
}

func TestSRGBToLab(t *testing.T) {
	epsilon := 1e-3
	tcs := []labTestCase{
		{0, 0, 0, Lab{0, 0, 0}},
		{255, 255, 255, Lab{100, 0.0053, -0.0104}},
		{255, 0, 0, Lab{53.2329, 80.1093, 67.2201}},
		{0, 255, 0, Lab{87.737, -86.1846, 83.1812}},
		{0, 0, 255, Lab{32.3026, 79.1967, -107.8637}},
		{128, 128, 128, Lab{53.5851, 0.0027, -0.0061}},
		{104, 142, 175, Lab{57.4479, -4.4678, -21.4959}},
	}

	for _, tc := range tcs {
		got := SRGBToLab(tc.R, tc.G, tc.B)
		if !labClose(got, tc.Want, epsilon) {
			t.Errorf("SRGBToLab(%v, %v, %v) = %+v; want %+v", tc.R, tc.G, tc.B, got, tc.Want)
		}
	}
}

func TestSRGBToLabEndpoints(t *testing.T) {
	if got := SRGBToLab(0, 0, 0); !labClose(got, Lab{0, 0, 0}, 1e-2) {
		t.Errorf("black = %+v", got)
	}
	if got := SRGBToLab(255, 255, 255); !labClose(got, Lab{100, 0, 0}, 1e-2) {
		t.Errorf("white = %+v", got)
	}
}

func TestSRGBToLabMonotonicLightness(t *testing.T) {
	prev := SRGBToLab(0, 0, 0).L
	for v := 1; v < 256; v++ {
		l := SRGBToLab(float64(v), float64(v), float64(v)).L
		if l < prev {
			t.Fatalf("L(%d) = %v < L(%d) = %v", v, l, v-1, prev)
		}
		prev = l
	}
}

func TestSRGBToLabAgainstColorful(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 0, 0}, {18, 52, 86}, {255, 130, 0}, {200, 200, 255}, {1, 2, 3}} {
		r, g, b := c.Normalized()
		l, a, bb := colorful.Color{R: r, G: g, B: b}.Lab()
		want := Lab{l * 100, a * 100, bb * 100}
		if got := c.Lab(); !labClose(got, want, 0.5) {
			t.Errorf("%s: got %+v; colorful gives %+v", c.Hex(), got, want)
		}
	}
}

func TestExactLab(t *testing.T) {
	for _, c := range []RGB{{255, 255, 255}, {255, 0, 0}, {18, 52, 86}, {104, 142, 175}} {
		if got, want := c.ExactLab(), c.Lab(); !labClose(got, want, 1.0) {
			t.Errorf("%s: ExactLab %+v; Lab %+v", c.Hex(), got, want)
		}
	}
}

func TestCheckedSRGBToLab(t *testing.T) {
	got, e := CheckedSRGBToLab(255, 0, 0)
	if e != nil {
		t.Fatal(e)
	}
	if got != SRGBToLab(255, 0, 0) {
		t.Errorf("checked conversion changed in-range output: %+v", got)
	}

	for _, in := range [][3]float64{{-1, 0, 0}, {0, 256, 0}, {0, 0, math.NaN()}} {
		_, e := CheckedSRGBToLab(in[0], in[1], in[2])
		var re *RangeError
		if !errors.As(e, &re) {
			t.Errorf("CheckedSRGBToLab(%v) error = %v; want *RangeError", in, e)
		}
	}
}

func TestDeltaE2000(t *testing.T) {
	red := RGB{255, 0, 0}.Lab()
	if d := DeltaE2000(red, red); d > 1e-9 {
		t.Errorf("DeltaE2000(red, red) = %v; want 0", d)
	}

	black, white := RGB{}.Lab(), RGB{255, 255, 255}.Lab()
	if d := DeltaE2000(black, white); math.Abs(d-100) > 0.1 {
		t.Errorf("DeltaE2000(black, white) = %v; want 100", d)
	}
	if DeltaE2000(black, white) != DeltaE2000(white, black) {
		t.Error("DeltaE2000 is not symmetric")
	}
}

func labClose(a, b Lab, epsilon float64) bool {
	return math.Abs(a.L-b.L) <= epsilon && math.Abs(a.A-b.A) <= epsilon && math.Abs(a.B-b.B) <= epsilon
}
