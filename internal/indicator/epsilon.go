package indicator

import (
	"fmt"
	"math"

	"github.com/hupe1980/moogo/pointset"
)

// EpsilonAdditive returns the smallest ε such that translating every point of m by
// ε towards better values makes m weakly dominate every reference point.
func EpsilonAdditive(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	mx, err := validate(m, ref, maximise)
	if err != nil {
		return 0, err
	}
	return minimax(m, ref, func(a, r float64, j int) float64 {
		if mx[j] {
			return r - a
		}
		return a - r
	}), nil
}

// EpsilonMult is the multiplicative counterpart of EpsilonAdditive.
//
// All values of m and ref must be strictly positive; otherwise the ratio is not
// meaningful and ErrNonPositive is returned.
func EpsilonMult(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	mx, err := validate(m, ref, maximise)
	if err != nil {
		return 0, err
	}
	if err := checkPositive("points", m); err != nil {
		return 0, err
	}
	if err := checkPositive("reference set", ref); err != nil {
		return 0, err
	}
	return minimax(m, ref, func(a, r float64, j int) float64 {
		if mx[j] {
			return r / a
		}
		return a / r
	}), nil
}

func checkPositive(what string, m *pointset.Matrix) error {
	for i, v := range m.Data() {
		if !(v > 0) {
			return fmt.Errorf("%w: %s row %d has %g", ErrNonPositive, what, i/m.Cols(), v)
		}
	}
	return nil
}

// minimax computes max_r min_a max_j gap(a_j, r_j).
func minimax(m, ref *pointset.Matrix, gap func(a, r float64, j int) float64) float64 {
	eps := math.Inf(-1)
	for i := 0; i < ref.Rows(); i++ {
		r := ref.Row(i)
		best := math.Inf(1)
		for k := 0; k < m.Rows(); k++ {
			a := m.Row(k)
			worst := math.Inf(-1)
			for j := range a {
				worst = math.Max(worst, gap(a[j], r[j], j))
				if worst >= best {
					break
				}
			}
			best = math.Min(best, worst)
		}
		eps = math.Max(eps, best)
	}
	return eps
}
