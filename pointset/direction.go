package pointset

// Broadcast expands a maximise vector to exactly d entries.
//
// A nil or empty vector means every objective is minimised. A single entry is
// applied to all objectives. Any other length is a *DimensionError.
func Broadcast(maximise []bool, d int) ([]bool, error) {
	out := make([]bool, d)
	switch len(maximise) {
	case 0:
	case 1:
		for i := range out {
			out[i] = maximise[0]
		}
	case d:
		copy(out, maximise)
	default:
		return nil, &DimensionError{What: "maximise", Expected: d, Actual: len(maximise)}
	}
	return out, nil
}

// AnyMaximised reports whether at least one objective is maximised.
func AnyMaximised(maximise []bool) bool {
	for _, m := range maximise {
		if m {
			return true
		}
	}
	return false
}

// Minimised returns a copy of m in which every maximised column is negated, so that
// all objectives can be treated as minimised. If no column is maximised, m itself is
// returned; callers must not mutate the result.
func Minimised(m *Matrix, maximise []bool) *Matrix {
	if !AnyMaximised(maximise) {
		return m
	}
	out := m.Clone()
	for i := 0; i < out.rows; i++ {
		row := out.Row(i)
		for j, mx := range maximise {
			if mx {
				row[j] = -row[j]
			}
		}
	}
	return out
}

// MinimisedPoint is the single-point counterpart of Minimised.
func MinimisedPoint(p []float64, maximise []bool) []float64 {
	out := make([]float64, len(p))
	for j, v := range p {
		if j < len(maximise) && maximise[j] {
			v = -v
		}
		out[j] = v
	}
	return out
}
