package indicator

import (
	"fmt"
	"math"

	"github.com/hupe1980/moogo/distance"
	"github.com/hupe1980/moogo/pointset"
)

// GD is the mean distance from each point of m to its nearest reference point.
func GD(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return generational(m, ref, maximise, distance.MetricEuclidean, false, 1)
}

// GDPlus is GD with the dominance-aware distance.
func GDPlus(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return generational(m, ref, maximise, distance.MetricPlus, false, 1)
}

// IGD is the mean distance from each reference point to its nearest point of m.
func IGD(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return generational(m, ref, maximise, distance.MetricEuclidean, true, 1)
}

// IGDPlus is IGD with the dominance-aware distance.
func IGDPlus(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return generational(m, ref, maximise, distance.MetricPlus, true, 1)
}

// AvgHausdorffDist is max(GD_p, IGD_p), where GD_p and IGD_p are the power means
// (mean(d^p))^(1/p) of the nearest-neighbour distances in each direction.
func AvgHausdorffDist(m, ref *pointset.Matrix, maximise []bool, p float64) (float64, error) {
	if !(p > 0) {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidExponent, p)
	}
	gd, err := generational(m, ref, maximise, distance.MetricEuclidean, false, p)
	if err != nil {
		return 0, err
	}
	igd, err := generational(m, ref, maximise, distance.MetricEuclidean, true, p)
	if err != nil {
		return 0, err
	}
	return math.Max(gd, igd), nil
}

func validate(m, ref *pointset.Matrix, maximise []bool) ([]bool, error) {
	if err := pointset.CheckDimension("reference set", m.Cols(), ref.Cols()); err != nil {
		return nil, err
	}
	if m.Rows() == 0 || ref.Rows() == 0 {
		return nil, pointset.ErrEmpty
	}
	return pointset.Broadcast(maximise, m.Cols())
}

// generational averages, over every point of the outer set, the p-th power of the
// distance to the nearest point of the inner set, and returns the p-th root.
// With inverted the reference set is the outer set. The Plus metric always measures
// from the approximation point to the reference point.
func generational(m, ref *pointset.Matrix, maximise []bool, metric distance.Metric, inverted bool, p float64) (float64, error) {
	mx, err := validate(m, ref, maximise)
	if err != nil {
		return 0, err
	}
	dist, err := distance.Provider(metric, mx)
	if err != nil {
		return 0, err
	}

	outer, inner := m, ref
	if inverted {
		outer, inner = ref, m
	}

	var sum float64
	for i := 0; i < outer.Rows(); i++ {
		o := outer.Row(i)
		best := math.Inf(1)
		for j := 0; j < inner.Rows(); j++ {
			a, r := o, inner.Row(j)
			if inverted {
				a, r = r, a
			}
			best = math.Min(best, dist(a, r))
		}
		if p == 1 {
			sum += best
		} else {
			sum += math.Pow(best, p)
		}
	}
	mean := sum / float64(outer.Rows())
	if p == 1 {
		return mean, nil
	}
	return math.Pow(mean, 1/p), nil
}
