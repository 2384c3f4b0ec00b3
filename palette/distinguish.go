package palette

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	klch    = &deltae.KLChDefault
)

// DeltaE2000 returns the CIEDE2000 difference between two colors.
func DeltaE2000(a, b Lab) float64 {
	return deltae.CIE2000(a.chromath(), b.chromath(), klch)
}

// ExactLab converts c to Lab with the full-precision sRGB primaries and no
// intermediate rounding. It stays within a fraction of a unit of Lab.
func (c RGB) ExactLab() Lab {
	lab := lab2Xyz.Invert(rgb2Xyz.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}))
	return Lab{lab[0], lab[1], lab[2]}
}

func (l Lab) chromath() chromath.Lab {
	return chromath.Lab{l.L, l.A, l.B}
}
