package eaf

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/moogo/pointset"
)

// DiffResult is the outcome of Diff.
type DiffResult struct {
	Dim       int
	Intervals int
	// Points holds one row per distinct surface point of the combined dataset, with
	// the difference value appended as the final column.
	Points *pointset.Matrix
}

// Diff compares the attainment surfaces of x and y.
//
// The sets of y are renumbered to follow those of x and the attainment surfaces of
// the combined dataset are computed at every level. For every distinct surface
// point, with cl of the kx sets of x and cr of the ky sets of y attaining it, the
// difference value is trunc(intervals * (cl/kx - cr/ky)), in [-intervals, intervals].
// A non-positive intervals defaults to half the total number of sets.
//
// Both datasets must number their sets starting at 1.
func Diff(x, y *pointset.Dataset, intervals int) (*DiffResult, error) {
	if err := pointset.CheckDimension("second dataset", x.Dim(), y.Dim()); err != nil {
		return nil, err
	}
	if x.Rows() == 0 || y.Rows() == 0 {
		return nil, pointset.ErrEmpty
	}
	if x.MinSetID() != 1 || y.MinSetID() != 1 {
		return nil, fmt.Errorf("%w: set ids must start at 1 (got %d and %d)", pointset.ErrInvalidSetID, x.MinSetID(), y.MinSetID())
	}

	shifted, err := y.Relabel(x.MaxSetID())
	if err != nil {
		return nil, err
	}
	union, err := x.Concat(shifted)
	if err != nil {
		return nil, err
	}

	kx, ky := x.NumSets(), y.NumSets()
	total := kx + ky
	if intervals <= 0 {
		intervals = max(1, total/2)
	}

	res, err := Compute(union, Options{Attained: true})
	if err != nil {
		return nil, err
	}

	// x's groups come first in the union, so its sets occupy bits [0, kx).
	left := bitset.New(uint(total))
	for r := range kx {
		left.Set(uint(r))
	}

	d := x.Dim()
	seen := make(map[string]struct{})
	data := make([]float64, 0, res.Rows()*(d+1))
	for _, l := range res.Levels {
		for i := 0; i < l.Points.Rows(); i++ {
			p := l.Points.Row(i)
			key := fmt.Sprint(p)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			att := l.Attained[i]
			cl := att.IntersectionCardinality(left)
			cr := att.Count() - cl
			value := float64(intervals) * (float64(cl)/float64(kx) - float64(cr)/float64(ky))
			data = append(data, p...)
			data = append(data, math.Trunc(value))
		}
	}

	points, err := pointset.FromData(data, len(data)/(d+1), d+1)
	if err != nil {
		return nil, err
	}
	return &DiffResult{Dim: d, Intervals: intervals, Points: points}, nil
}
