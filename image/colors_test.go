package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmuldo/dgcolor/palette"
)

// stripes returns a 4x4 image: three columns of red, one of blue, with the
// top-left pixel fully transparent.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			c := color.NRGBA{R: 255, A: 255}
			if x == 3 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{})
	return img
}

func TestGetColors(t *testing.T) {
	got := GetColors(stripes())
	want := map[palette.RGB]int{
		{R: 255}: 11,
		{B: 255}: 4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetColors mismatch (-want +got):\n%s", diff)
	}
}

func TestRankColors(t *testing.T) {
	got := RankColors(map[palette.RGB]int{
		{G: 1}:   3,
		{R: 255}: 10,
		{B: 255}: 3,
	})
	want := ColorCountList{
		{palette.RGB{R: 255}, 10},
		{palette.RGB{B: 255}, 3},
		{palette.RGB{G: 1}, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankColors mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripes.png")
	f, e := os.Create(path)
	if e != nil {
		t.Fatal(e)
	}
	if e := png.Encode(f, stripes()); e != nil {
		t.Fatal(e)
	}
	f.Close()

	img, e := Load(path)
	if e != nil {
		t.Fatal(e)
	}
	if got := len(GetColors(img)); got != 2 {
		t.Errorf("loaded image has %d opaque colors; want 2", got)
	}

	if _, e := Load(filepath.Join(t.TempDir(), "missing.png")); e == nil {
		t.Error("Load of a missing file succeeded")
	}
}
