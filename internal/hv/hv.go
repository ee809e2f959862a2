// Package hv computes the hypervolume indicator by recursive dimension slicing.
//
// All objectives are minimised. The hypervolume of a point set is the Lebesgue
// measure of the region dominated by the set and bounded above by the reference
// point. Points that do not strictly dominate the reference point in every
// objective enclose no volume and are ignored.
package hv

import (
	"cmp"
	"slices"

	"github.com/hupe1980/moogo/internal/dominance"
	"github.com/hupe1980/moogo/pointset"
)

// Hypervolume returns the volume dominated by m and bounded by ref.
// An empty or fully clipped set yields 0.
func Hypervolume(m *pointset.Matrix, ref []float64) (float64, error) {
	if err := pointset.CheckDimension("reference point", m.Cols(), len(ref)); err != nil {
		return 0, err
	}
	return volume(clip(m, ref), ref, m.Cols()), nil
}

// Contributions returns the exclusive hypervolume contribution of every row of m:
// the volume lost when that row alone is removed.
func Contributions(m *pointset.Matrix, ref []float64) ([]float64, error) {
	total, err := Hypervolume(m, ref)
	if err != nil {
		return nil, err
	}
	out := make([]float64, m.Rows())
	others := make([]int, 0, m.Rows())
	for i := range out {
		others = others[:0]
		for j := 0; j < m.Rows(); j++ {
			if j != i {
				others = append(others, j)
			}
		}
		rest, _ := Hypervolume(m.SelectRows(others), ref)
		out[i] = total - rest
	}
	return out, nil
}

// clip returns the rows of m that strictly dominate ref.
func clip(m *pointset.Matrix, ref []float64) [][]float64 {
	pts := make([][]float64, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		p := m.Row(i)
		inside := true
		for j, v := range p {
			if v >= ref[j] {
				inside = false
				break
			}
		}
		if inside {
			pts = append(pts, p)
		}
	}
	return pts
}

// volume computes the hypervolume of pts restricted to their first d objectives.
// pts is reordered in place but its rows are never written.
func volume(pts [][]float64, ref []float64, d int) float64 {
	if len(pts) == 0 {
		return 0
	}
	switch d {
	case 1:
		lo := pts[0][0]
		for _, p := range pts[1:] {
			lo = min(lo, p[0])
		}
		return ref[0] - lo
	case 2:
		return area(pts, ref)
	}

	last := d - 1
	slices.SortStableFunc(pts, func(a, b []float64) int { return cmp.Compare(a[last], b[last]) })

	var vol float64
	for i := 0; i < len(pts); i++ {
		// Points sharing the same height enter the slab together.
		for i+1 < len(pts) && pts[i+1][last] == pts[i][last] {
			i++
		}
		top := ref[last]
		if i+1 < len(pts) {
			top = pts[i+1][last]
		}
		height := top - pts[i][last]
		if height <= 0 {
			continue
		}
		vol += height * volume(front(pts[:i+1], d-1), ref, d-1)
	}
	return vol
}

// area is the two-dimensional staircase sweep.
func area(pts [][]float64, ref []float64) float64 {
	slices.SortStableFunc(pts, func(a, b []float64) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	var vol float64
	y := ref[1]
	for _, p := range pts {
		if p[1] < y {
			vol += (ref[0] - p[0]) * (y - p[1])
			y = p[1]
		}
	}
	return vol
}

// front returns a fresh slice holding the points of pts that are nondominated in
// their first d objectives. For d <= 2 the sweep tolerates dominated points, so
// the copy is returned unfiltered.
func front(pts [][]float64, d int) [][]float64 {
	out := slices.Clone(pts)
	if d <= 2 || len(out) < 2 {
		return out
	}
	kept := out[:0]
	for i, p := range out {
		keep := true
		for j, q := range pts {
			if j == i {
				continue
			}
			switch dominance.Compare(q[:d], p[:d]) {
			case dominance.Dominates:
				keep = false
			case dominance.Equal:
				if j < i {
					keep = false
				}
			}
			if !keep {
				break
			}
		}
		if keep {
			kept = append(kept, p)
		}
	}
	return kept
}
