// Package normalise rescales objective values linearly per objective.
package normalise

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/moogo/pointset"
)

var (
	// ErrInvalidRange is returned when the target range does not have exactly two entries.
	ErrInvalidRange = errors.New("normalise: target range must have exactly two values")

	// ErrTooFewObjectives is returned for single-objective input.
	ErrTooFewObjectives = errors.New("normalise: at least two objectives are required")
)

// DefaultRange is the target range used when none is given.
var DefaultRange = []float64{0, 1}

// Normalise maps [lower_j, upper_j] of every objective j linearly onto toRange.
// Maximised objectives are mapped onto the reversed range, so that after
// normalisation every objective is minimised.
//
// lower and upper are broadcast like direction vectors (nil, one value, or one per
// objective). NaN entries default to the observed column minimum or maximum.
// A column whose bounds coincide is treated as having width 1.
//
// The input is never modified.
func Normalise(m *pointset.Matrix, toRange, lower, upper []float64, maximise []bool) (*pointset.Matrix, error) {
	if toRange == nil {
		toRange = DefaultRange
	}
	if len(toRange) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, len(toRange))
	}
	d := m.Cols()
	if d < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewObjectives, d)
	}
	mx, err := pointset.Broadcast(maximise, d)
	if err != nil {
		return nil, err
	}
	lo, err := bounds("lower", lower, d)
	if err != nil {
		return nil, err
	}
	hi, err := bounds("upper", upper, d)
	if err != nil {
		return nil, err
	}

	obsLo, obsHi := m.Bounds()
	for j := range d {
		if math.IsNaN(lo[j]) && obsLo != nil {
			lo[j] = obsLo[j]
		}
		if math.IsNaN(hi[j]) && obsHi != nil {
			hi[j] = obsHi[j]
		}
	}

	delta := toRange[1] - toRange[0]
	scale := make([]float64, d)
	for j := range d {
		width := hi[j] - lo[j]
		if width == 0 {
			width = 1
		}
		scale[j] = delta / width
	}

	out := m.Clone()
	for i := 0; i < out.Rows(); i++ {
		row := out.Row(i)
		for j, v := range row {
			if mx[j] {
				row[j] = toRange[1] - (v-lo[j])*scale[j]
			} else {
				row[j] = toRange[0] + (v-lo[j])*scale[j]
			}
		}
	}
	return out, nil
}

func bounds(what string, b []float64, d int) ([]float64, error) {
	out := make([]float64, d)
	switch len(b) {
	case 0:
		for j := range out {
			out[j] = math.NaN()
		}
	case 1:
		for j := range out {
			out[j] = b[0]
		}
	case d:
		copy(out, b)
	default:
		return nil, &pointset.DimensionError{What: what + " bounds", Expected: d, Actual: len(b)}
	}
	return out, nil
}
