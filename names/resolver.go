package names

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/mmuldo/dgcolor/palette"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptyTable is returned when a lookup is made against a table with no
// entries.
var ErrEmptyTable = errors.New("names: empty reference table")

// Match is the result of a nearest-color lookup.
type Match struct {
	Entry
	Distance float64
}

// Resolver looks up the nearest named color in a Table. The decoded reference
// vectors are built on first use and shared by all later calls; a Resolver is
// safe for concurrent use.
type Resolver struct {
	table *Table

	rgbOnce sync.Once
	rgb     [][]float64

	labOnce sync.Once
	lab     []palette.Lab
}

// NewResolver returns a Resolver over t.
func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

// Closest returns the name of the reference color nearest to hex under m.
func (r *Resolver) Closest(hex string, m Metric) (string, error) {
	mt, e := r.Match(hex, m)
	if e != nil {
		return "", e
	}
	return mt.Name, nil
}

// Match is like Closest but also reports the matching entry and its distance.
// Of several equally near entries the first in table order wins.
func (r *Resolver) Match(hex string, m Metric) (Match, error) {
	q, e := palette.ParseHex(hex)
	if e != nil {
		return Match{}, e
	}
	if r.table == nil || r.table.Len() == 0 {
		return Match{}, ErrEmptyTable
	}

	// dist returns a quantity that orders like the distance, and final maps it
	// back to the distance itself.
	var (
		dist  func(i int) float64
		final = math.Sqrt
	)
	switch m {
	case EuclideanRGB:
		refs := r.rgbVectors()
		qv := rgbVector(q)
		d := make([]float64, 3)
		dist = func(i int) float64 {
			floats.SubTo(d, qv, refs[i])
			return floats.Dot(d, d)
		}
	case WeightedEuclideanLab:
		refs := r.labs()
		ql := q.Lab()
		dist = func(i int) float64 { return weightedLabSquared(ql, refs[i]) }
	case DeltaE2000:
		refs := r.labs()
		ql := q.Lab()
		dist = func(i int) float64 { return palette.DeltaE2000(ql, refs[i]) }
		final = func(d float64) float64 { return d }
	default:
		return Match{}, fmt.Errorf("%w %v", ErrUnknownMetric, m)
	}

	best, bestDist := 0, dist(0)
	for i := 1; i < r.table.Len(); i++ {
		if d := dist(i); d < bestDist {
			best, bestDist = i, d
		}
	}

	return Match{r.table.entries[best], final(bestDist)}, nil
}

func (r *Resolver) rgbVectors() [][]float64 {
	r.rgbOnce.Do(func() {
		r.rgb = make([][]float64, len(r.table.colors))
		for i, c := range r.table.colors {
			r.rgb[i] = rgbVector(c)
		}
	})
	return r.rgb
}

func (r *Resolver) labs() []palette.Lab {
	r.labOnce.Do(func() {
		r.lab = make([]palette.Lab, len(r.table.colors))
		for i, c := range r.table.colors {
			r.lab[i] = c.Lab()
		}
	})
	return r.lab
}

// rgbVector holds integer channel values, so squared differences and their
// sums are exact.
func rgbVector(c palette.RGB) []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// weightedLabSquared is the square of the weighted Lab distance, with each
// weight applied to the channel difference.
func weightedLabSquared(x, y palette.Lab) float64 {
	dl := labWeights[0] * (x.L - y.L)
	da := labWeights[1] * (x.A - y.A)
	db := labWeights[2] * (x.B - y.B)
	return dl*dl + da*da + db*db
}
