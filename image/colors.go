// Package image reduces an image to its most common colors.
package image

import (
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/dgcolor/palette"
)

// ColorCount pairs a color with the number of pixels that have it.
type ColorCount struct {
	Color palette.RGB
	Count int
}

// ColorCountList orders by count, most frequent first, then by hex value.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Quantize reduces img to at most num colors.
func Quantize(img image.Image, num int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

// GetColors returns a map of an image's opaque colors
// and the number of times each color occurs
func GetColors(img image.Image) map[palette.RGB]int {
	m := make(map[palette.RGB]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			m[palette.RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}

	return m
}

// RankColors sorts a color histogram into a ColorCountList.
func RankColors(m map[palette.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Dominant returns up to num of img's most common colors after quantizing it.
func Dominant(img image.Image, num int) ColorCountList {
	cc := RankColors(GetColors(Quantize(img, num)))
	if len(cc) > num {
		cc = cc[:num]
	}
	return cc
}
