package palette

import (
	"fmt"
	"math"
)

// D65 reference white, 2° observer.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// Lab represents a color in CIE L*a*b* space.
type Lab struct {
	L, A, B float64
}

// RangeError is returned by CheckedSRGBToLab for a channel outside [0, 255].
type RangeError struct {
	Channel string
	Value   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("palette: %s channel %v outside [0, 255]", e.Channel, e.Value)
}

// SRGBToLab converts an 8-bit sRGB triple to Lab through linear RGB and XYZ.
// The intermediate XYZ values and the result are rounded to 4 decimal places.
// Inputs are not range checked.
func SRGBToLab(r, g, b float64) Lab {
	lr, lg, lb := linearize(r), linearize(g), linearize(b)

	x := round4(lr*0.4124 + lg*0.3576 + lb*0.1805)
	y := round4(lr*0.2126 + lg*0.7152 + lb*0.0722)
	z := round4(lr*0.0193 + lg*0.1192 + lb*0.9505)

	fx := labCompress(x / refX)
	fy := labCompress(y / refY)
	fz := labCompress(z / refZ)

	return Lab{
		L: round4(116*fy - 16),
		A: round4(500 * (fx - fy)),
		B: round4(200 * (fy - fz)),
	}
}

// CheckedSRGBToLab is SRGBToLab with range validation.
func CheckedSRGBToLab(r, g, b float64) (Lab, error) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if math.IsNaN(c.v) || c.v < 0 || c.v > 255 {
			return Lab{}, &RangeError{c.name, c.v}
		}
	}

	return SRGBToLab(r, g, b), nil
}

// Lab converts c to Lab.
func (c RGB) Lab() Lab {
	return SRGBToLab(float64(c.R), float64(c.G), float64(c.B))
}

// linearize undoes the sRGB transfer curve, scaling to [0, 100].
func linearize(v float64) float64 {
	v /= 255
	if v > 0.04045 {
		v = math.Pow((v+0.055)/1.055, 2.4)
	} else {
		v /= 12.92
	}
	return v * 100
}

func labCompress(v float64) float64 {
	if v > 0.008856 {
		return math.Cbrt(v)
	}
	return 7.787*v + 16.0/116.0
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
