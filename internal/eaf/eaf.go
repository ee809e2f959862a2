package eaf

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/moogo/pointset"
)

var (
	// ErrUnsupportedDimension is returned for datasets with other than two or three objectives.
	ErrUnsupportedDimension = errors.New("eaf: only two or three objectives are supported")

	// ErrInvalidPercentile is returned for percentiles outside [0, 100].
	ErrInvalidPercentile = errors.New("eaf: percentile must be within [0, 100]")
)

// Options configures Compute.
type Options struct {
	// Percentiles selects the attainment levels to compute. Nil means every level 1..k.
	Percentiles []float64
	// Attained records, for every surface point, which sets attain it.
	Attained bool
}

// Level is one attainment surface.
type Level struct {
	// Level is the number of sets that attain every point of the surface.
	Level int
	// Percentile is the requested percentile, or 100*Level/k by default.
	Percentile float64
	// Points holds the minimal points of the surface.
	Points *pointset.Matrix
	// Attained is parallel to Points when Options.Attained is set. Bit r is set when
	// the r-th set (in dataset order) attains the point.
	Attained []*bitset.BitSet
}

// Result is the outcome of Compute.
type Result struct {
	Dim     int
	NumSets int
	// SetIDs maps the bit index used in Level.Attained to the dataset's set ID.
	SetIDs []int
	Levels []Level
}

// Rows returns the total number of surface points over all levels.
func (r *Result) Rows() int {
	n := 0
	for _, l := range r.Levels {
		n += l.Points.Rows()
	}
	return n
}

// Matrix flattens the result: one row per surface point, ordered by level, with the
// percentile appended as the final column.
func (r *Result) Matrix() *pointset.Matrix {
	data := make([]float64, 0, r.Rows()*(r.Dim+1))
	for _, l := range r.Levels {
		for i := 0; i < l.Points.Rows(); i++ {
			data = append(data, l.Points.Row(i)...)
			data = append(data, l.Percentile)
		}
	}
	m, _ := pointset.FromData(data, r.Rows(), r.Dim+1)
	return m
}

// PercentileToLevel converts a percentile into a number of sets out of n.
// Values within sqrt(machine epsilon) above an integer are rounded down, all
// others up; the result is clamped to [1, n].
func PercentileToLevel(p float64, n int) int {
	tolerance := math.Sqrt(math.Nextafter(1, 2) - 1)
	x := float64(n) * p / 100
	level := int(math.Ceil(x))
	if x-math.Floor(x) <= tolerance {
		level = int(math.Floor(x))
	}
	return max(1, min(level, n))
}

type request struct {
	level      int
	percentile float64
}

func requests(percentiles []float64, n int) ([]request, error) {
	if percentiles == nil {
		out := make([]request, n)
		for m := 1; m <= n; m++ {
			out[m-1] = request{level: m, percentile: 100 * float64(m) / float64(n)}
		}
		return out, nil
	}
	out := make([]request, 0, len(percentiles))
	for _, p := range percentiles {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return nil, fmt.Errorf("%w: got %g", ErrInvalidPercentile, p)
		}
		out = append(out, request{level: PercentileToLevel(p, n), percentile: p})
	}
	slices.SortStableFunc(out, func(a, b request) int { return cmp.Compare(a.percentile, b.percentile) })
	return out, nil
}

// Compute returns the attainment surfaces of ds.
func Compute(ds *pointset.Dataset, opts Options) (*Result, error) {
	d := ds.Dim()
	if d != 2 && d != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, d)
	}
	if ds.Rows() == 0 {
		return nil, pointset.ErrEmpty
	}

	groups := ds.Groups()
	nruns := len(groups)
	reqs, err := requests(opts.Percentiles, nruns)
	if err != nil {
		return nil, err
	}
	levels := make([]int, len(reqs))
	for i, r := range reqs {
		levels[i] = r.level
	}

	runs := make([]int, ds.Rows())
	setIDs := make([]int, nruns)
	for r, g := range groups {
		setIDs[r] = g.ID
		for i := g.Start; i < g.End; i++ {
			runs[i] = r
		}
	}

	var surfaces []surface
	if d == 2 {
		surfaces = eaf2d(ds.Points(), runs, nruns, levels, opts.Attained)
	} else {
		surfaces = eaf3d(ds.Points(), runs, nruns, levels, opts.Attained)
	}

	res := &Result{Dim: d, NumSets: nruns, SetIDs: setIDs, Levels: make([]Level, len(reqs))}
	for i, r := range reqs {
		pts, _ := pointset.FromData(surfaces[i].data, len(surfaces[i].data)/d, d)
		res.Levels[i] = Level{
			Level:      r.level,
			Percentile: r.percentile,
			Points:     pts,
			Attained:   surfaces[i].attained,
		}
	}
	return res, nil
}

// surface is one level's points in row-major layout.
type surface struct {
	data     []float64
	attained []*bitset.BitSet
}

func sortedEvents(m *pointset.Matrix, runs []int) []event {
	events := make([]event, m.Rows())
	for i := range events {
		events[i] = event{x: m.At(i, 0), y: m.At(i, 1), run: runs[i]}
		if m.Cols() > 2 {
			events[i].z = m.At(i, 2)
		}
	}
	slices.SortStableFunc(events, func(a, b event) int { return cmp.Compare(a.x, b.x) })
	return events
}

func eaf2d(m *pointset.Matrix, runs []int, nruns int, levels []int, withAttained bool) []surface {
	stairs := sweep(sortedEvents(m, runs), nruns, levels, withAttained, nil)
	out := make([]surface, len(levels))
	for li, s := range stairs {
		data := make([]float64, 0, 2*s.len())
		for i := range s.xs {
			data = append(data, s.xs[i], s.ys[i])
		}
		out[li] = surface{data: data, attained: s.attained}
	}
	return out
}

type point3 struct {
	x, y, z  float64
	attained *bitset.BitSet
}

func eaf3d(m *pointset.Matrix, runs []int, nruns int, levels []int, withAttained bool) []surface {
	events := sortedEvents(m, runs)
	heights := m.Column(2)
	slices.Sort(heights)
	heights = slices.Compact(heights)

	found := make([][]point3, len(levels))
	prev := make([]staircase, len(levels))
	for _, z := range heights {
		stairs := sweep(events, nruns, levels, withAttained, func(i int) bool { return events[i].z > z })
		for li, s := range stairs {
			for i := range s.xs {
				if prev[li].dominates(s.xs[i], s.ys[i]) {
					continue
				}
				p := point3{x: s.xs[i], y: s.ys[i], z: z}
				if withAttained {
					p.attained = s.attained[i]
				}
				found[li] = append(found[li], p)
			}
			prev[li] = s
		}
	}

	out := make([]surface, len(levels))
	for li, pts := range found {
		slices.SortStableFunc(pts, func(a, b point3) int {
			if c := cmp.Compare(a.x, b.x); c != 0 {
				return c
			}
			if c := cmp.Compare(a.y, b.y); c != 0 {
				return c
			}
			return cmp.Compare(a.z, b.z)
		})
		data := make([]float64, 0, 3*len(pts))
		var attained []*bitset.BitSet
		for _, p := range pts {
			data = append(data, p.x, p.y, p.z)
			if withAttained {
				attained = append(attained, p.attained)
			}
		}
		out[li] = surface{data: data, attained: attained}
	}
	return out
}
