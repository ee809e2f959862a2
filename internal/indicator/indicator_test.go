package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moogo/pointset"
)

var (
	front     = pointset.MustFromRows([][]float64{{4, 2}, {3, 3}, {2, 4}})
	reference = pointset.MustFromRows([][]float64{{10, 0}, {6, 1}, {2, 2}, {1, 6}, {0, 10}})
)

func TestIGD(t *testing.T) {
	got, err := IGD(front, reference, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.707092031609239, got, 1e-12)
}

func TestIGDPlus(t *testing.T) {
	got, err := IGDPlus(front, reference, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.482842712474619, got, 1e-12)
}

func TestGD(t *testing.T) {
	// Nearest references: (4,2)->(2,2), (3,3)->(2,2), (2,4)->(2,2).
	got, err := GD(front, reference, nil)
	require.NoError(t, err)
	assert.InDelta(t, (2+math.Sqrt2+2)/3, got, 1e-12)

	// Plus-distances: (4,2)->(6,1) is 1, (3,3)->(2,2) is sqrt2, (2,4)->(1,6) is 1.
	got, err = GDPlus(front, reference, nil)
	require.NoError(t, err)
	assert.InDelta(t, (1+math.Sqrt2+1)/3, got, 1e-12)
}

func TestAvgHausdorffDist(t *testing.T) {
	igd, err := IGD(front, reference, nil)
	require.NoError(t, err)
	gd, err := GD(front, reference, nil)
	require.NoError(t, err)

	got, err := AvgHausdorffDist(front, reference, nil, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Max(gd, igd), got, 1e-12)

	got2, err := AvgHausdorffDist(front, reference, nil, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got2, got)

	_, err = AvgHausdorffDist(front, reference, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidExponent)
	_, err = AvgHausdorffDist(front, reference, nil, -1)
	assert.ErrorIs(t, err, ErrInvalidExponent)
}

func TestDistanceIndicatorsMaximise(t *testing.T) {
	want, err := IGDPlus(front, reference, nil)
	require.NoError(t, err)
	got, err := IGDPlus(front.Negate(), reference.Negate(), []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

func TestDistanceIndicatorErrors(t *testing.T) {
	_, err := IGD(front, pointset.MustFromRows([][]float64{{1, 2, 3}}), nil)
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)

	_, err = IGD(front, reference, []bool{true, false, true})
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)

	empty, err := pointset.New(0, 2)
	require.NoError(t, err)
	_, err = IGD(empty, reference, nil)
	assert.ErrorIs(t, err, pointset.ErrEmpty)
}

func TestEpsilon(t *testing.T) {
	ref := pointset.MustFromRows([][]float64{{10, 1}, {6, 1}, {2, 2}, {1, 6}, {1, 10}})

	add, err := EpsilonAdditive(front, ref, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, add, 1e-12)

	mult, err := EpsilonMult(front, ref, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mult, 1e-12)
}

func TestEpsilonMaximise(t *testing.T) {
	ref := pointset.MustFromRows([][]float64{{10, 1}, {6, 1}, {2, 2}, {1, 6}, {1, 10}})

	add, err := EpsilonAdditive(front.Negate(), ref.Negate(), []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, add, 1e-12)

	// Maximisation ratios are r/a: with a = 1/x and r = 1/y this equals x/y.
	inv := func(m *pointset.Matrix) *pointset.Matrix {
		out := m.Clone()
		for i, v := range out.Data() {
			out.Data()[i] = 1 / v
		}
		return out
	}
	mult, err := EpsilonMult(inv(front), inv(ref), []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mult, 1e-12)
}

func TestEpsilonIdentity(t *testing.T) {
	add, err := EpsilonAdditive(front, front, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, add)

	mult, err := EpsilonMult(front, front, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mult)
}

func TestEpsilonMultNonPositive(t *testing.T) {
	_, err := EpsilonMult(front, reference, nil)
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = EpsilonMult(pointset.MustFromRows([][]float64{{-1, 2}}), front, nil)
	assert.ErrorIs(t, err, ErrNonPositive)
}
