package eaf

import (
	"math"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// event is one input point. z is only used by the three-objective slicing.
type event struct {
	x, y, z float64
	run     int
}

// staircase is one level's surface in the (x, y) plane: x ascending, y strictly
// descending.
type staircase struct {
	xs       []float64
	ys       []float64
	attained []*bitset.BitSet
}

func (s *staircase) len() int { return len(s.xs) }

// dominates reports whether some staircase point weakly dominates (x, y).
func (s *staircase) dominates(x, y float64) bool {
	// Index of the last point with xs <= x; its y is the lowest among those.
	i := sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > x }) - 1
	return i >= 0 && s.ys[i] <= y
}

// tracker holds the best y reached per run and the same values in ascending order.
type tracker struct {
	best   []float64
	sorted []float64
}

func newTracker(nruns int) *tracker {
	t := &tracker{best: make([]float64, nruns), sorted: make([]float64, nruns)}
	for i := range t.best {
		t.best[i] = math.Inf(1)
		t.sorted[i] = math.Inf(1)
	}
	return t
}

func (t *tracker) update(run int, y float64) {
	old := t.best[run]
	if y >= old {
		return
	}
	t.best[run] = y
	p := sort.SearchFloat64s(t.sorted, old)
	t.sorted[p] = y
	for p > 0 && t.sorted[p-1] > t.sorted[p] {
		t.sorted[p-1], t.sorted[p] = t.sorted[p], t.sorted[p-1]
		p--
	}
}

// level returns the surface height for level m (1-based).
func (t *tracker) level(m int) float64 { return t.sorted[m-1] }

// attainedBy returns the runs whose best value is at most y.
func (t *tracker) attainedBy(y float64) *bitset.BitSet {
	b := bitset.New(uint(len(t.best)))
	for r, v := range t.best {
		if v <= y {
			b.Set(uint(r))
		}
	}
	return b
}

// sweep computes one staircase per level from events sorted by ascending x.
// Events for which skip returns true are ignored.
func sweep(events []event, nruns int, levels []int, withAttained bool, skip func(i int) bool) []staircase {
	t := newTracker(nruns)
	out := make([]staircase, len(levels))
	prev := make([]float64, len(levels))
	for li := range prev {
		prev[li] = math.Inf(1)
	}

	for i := 0; i < len(events); {
		x := events[i].x
		for ; i < len(events) && events[i].x == x; i++ {
			if skip != nil && skip(i) {
				continue
			}
			t.update(events[i].run, events[i].y)
		}
		for li, m := range levels {
			y := t.level(m)
			if y >= prev[li] {
				continue
			}
			prev[li] = y
			s := &out[li]
			s.xs = append(s.xs, x)
			s.ys = append(s.ys, y)
			if withAttained {
				s.attained = append(s.attained, t.attainedBy(y))
			}
		}
	}
	return out
}
