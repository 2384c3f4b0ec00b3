package names

import (
	"errors"
	"fmt"
	"strings"
)

// Metric selects how distance between two colors is measured.
type Metric int

const (
	// EuclideanRGB is the straight-line distance between raw 8-bit channels.
	EuclideanRGB Metric = iota
	// WeightedEuclideanLab weights the L, a and b differences by 0.30, 0.59
	// and 0.11.
	WeightedEuclideanLab
	// DeltaE2000 is the CIEDE2000 color difference.
	DeltaE2000
)

// Lab channel weights for WeightedEuclideanLab.
var labWeights = [3]float64{0.30, 0.59, 0.11}

// ErrUnknownMetric is returned for a metric name or value that is not one of
// the defined Metrics.
var ErrUnknownMetric = errors.New("names: unknown metric")

var metricNames = map[Metric][]string{
	EuclideanRGB:         {"rgb", "euclidean-rgb"},
	WeightedEuclideanLab: {"lab", "weighted-euclidean-lab"},
	DeltaE2000:           {"de2000", "ciede2000"},
}

func (m Metric) String() string {
	if n, ok := metricNames[m]; ok {
		return n[0]
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric accepts a metric's short or long name, ignoring case.
func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, ns := range metricNames {
		for _, n := range ns {
			if n == s {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMetric, s)
}
