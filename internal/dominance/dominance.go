package dominance

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/moogo/pointset"
)

// parallelThreshold is the row count from which the scan is split across workers.
const parallelThreshold = 1024

// Relation is the outcome of comparing two points.
type Relation int

const (
	Incomparable Relation = iota
	Dominates
	Dominated
	Equal
)

func (r Relation) String() string {
	switch r {
	case Dominates:
		return "dominates"
	case Dominated:
		return "dominated"
	case Equal:
		return "equal"
	default:
		return "incomparable"
	}
}

// Options configures a dominance filter.
type Options struct {
	// Maximise holds the per-objective direction (nil = minimise all, len 1 = broadcast).
	Maximise []bool
	// KeepWeakly retains every copy of duplicated nondominated points.
	KeepWeakly bool
	// Workers bounds the number of goroutines. Values <= 1 run sequentially.
	Workers int
}

// Compare relates a to b, both already in minimisation form.
func Compare(a, b []float64) Relation {
	aBetter, bBetter := false, false
	for i := range a {
		switch {
		case a[i] < b[i]:
			aBetter = true
		case a[i] > b[i]:
			bBetter = true
		}
		if aBetter && bBetter {
			return Incomparable
		}
	}
	switch {
	case aBetter:
		return Dominates
	case bBetter:
		return Dominated
	default:
		return Equal
	}
}

// CompareDirected relates a to b under the given per-objective directions.
func CompareDirected(a, b []float64, maximise []bool) Relation {
	return Compare(pointset.MinimisedPoint(a, maximise), pointset.MinimisedPoint(b, maximise))
}

// IsNondominated returns a mask with true for every retained row of m.
func IsNondominated(m *pointset.Matrix, opts Options) ([]bool, error) {
	maximise, err := pointset.Broadcast(opts.Maximise, m.Cols())
	if err != nil {
		return nil, err
	}
	return mask(pointset.Minimised(m, maximise), opts.KeepWeakly, opts.Workers), nil
}

func mask(m *pointset.Matrix, keepWeakly bool, workers int) []bool {
	n := m.Rows()
	out := make([]bool, n)
	if n == 0 {
		return out
	}

	if workers <= 1 || n < parallelThreshold {
		scan(m, out, 0, n, keepWeakly)
		return out
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			scan(m, out, start, end, keepWeakly)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// scan fills out[start:end]. Each row is decided independently of the others, so
// any partition of the row range yields the same mask.
func scan(m *pointset.Matrix, out []bool, start, end int, keepWeakly bool) {
	n := m.Rows()
	for i := start; i < end; i++ {
		p := m.Row(i)
		keep := true
		for j := 0; j < n && keep; j++ {
			if j == i {
				continue
			}
			switch Compare(m.Row(j), p) {
			case Dominates:
				keep = false
			case Equal:
				if !keepWeakly && j > i {
					keep = false
				}
			}
		}
		out[i] = keep
	}
}

// FilterDominated returns the retained rows of m in their original order.
func FilterDominated(m *pointset.Matrix, opts Options) (*pointset.Matrix, error) {
	keep, err := IsNondominated(m, opts)
	if err != nil {
		return nil, err
	}
	return m.Select(keep)
}

// FilterDominatedSets filters every set of ds independently and concatenates the
// results in the original set order.
func FilterDominatedSets(ds *pointset.Dataset, opts Options) (*pointset.Dataset, error) {
	maximise, err := pointset.Broadcast(opts.Maximise, ds.Dim())
	if err != nil {
		return nil, err
	}
	groups := ds.Groups()
	masks := make([][]bool, len(groups))
	minimised := pointset.Minimised(ds.Points(), maximise)

	var g errgroup.Group
	if opts.Workers > 1 {
		g.SetLimit(opts.Workers)
	} else {
		g.SetLimit(1)
	}
	for gi, grp := range groups {
		g.Go(func() error {
			masks[gi] = mask(minimised.Slice(grp.Start, grp.End), opts.KeepWeakly, 1)
			return nil
		})
	}
	_ = g.Wait()

	all := make([]bool, 0, ds.Rows())
	sets := make([]int, 0, ds.Rows())
	for gi, grp := range groups {
		all = append(all, masks[gi]...)
		for k, keep := range masks[gi] {
			if keep {
				sets = append(sets, ds.SetID(grp.Start+k))
			}
		}
	}
	points, err := ds.Points().Select(all)
	if err != nil {
		return nil, err
	}
	return pointset.NewDataset(points, sets)
}
