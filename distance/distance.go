package distance

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMetric is returned by Provider for unsupported metrics.
var ErrUnknownMetric = errors.New("distance: unsupported metric")

// SquaredEuclidean calculates the squared Euclidean distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the Euclidean distance between two points.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredPlus calculates the squared dominance-aware distance from a to r.
//
// For a minimised objective only the amount by which a is worse than r counts,
// max(a_i - r_i, 0); for a maximised objective it is max(r_i - a_i, 0).
// maximise must be nil or have the same length as a.
func SquaredPlus(a, r []float64, maximise []bool) float64 {
	var sum float64
	for i := range a {
		d := a[i] - r[i]
		if maximise != nil && maximise[i] {
			d = -d
		}
		if d > 0 {
			sum += d * d
		}
	}
	return sum
}

// Plus calculates the dominance-aware distance from a to r.
func Plus(a, r []float64, maximise []bool) float64 {
	return math.Sqrt(SquaredPlus(a, r, maximise))
}

// Metric represents the distance kernel used by an indicator.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricPlus
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricPlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func measures the distance from a point a to a reference point r.
type Func func(a, r []float64) float64

// Provider returns the distance function for the given metric.
// maximise is only consulted by MetricPlus.
func Provider(m Metric, maximise []bool) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricPlus:
		return func(a, r []float64) float64 { return Plus(a, r, maximise) }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}
