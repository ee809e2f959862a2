package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.UniformPoints(8, 3)

	assert.Equal(t, 8, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSphericalFront(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.SphericalFront(16, 3)

	for i := 0; i < m.Rows(); i++ {
		var sum float64
		for _, v := range m.Row(i) {
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v * v
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestIntegerPoints(t *testing.T) {
	rng := NewRNG(4711)

	m := rng.IntegerPoints(50, 2, 4)
	for _, v := range m.Data() {
		assert.Contains(t, []float64{0, 1, 2, 3}, v)
	}
}

func TestDataset(t *testing.T) {
	rng := NewRNG(4711)

	ds := rng.Dataset(4, 5, 2, Uniform)

	assert.Equal(t, 4, ds.NumSets())
	assert.Equal(t, 20, ds.Rows())
	assert.Equal(t, 1, ds.MinSetID())
	assert.Equal(t, 4, ds.MaxSetID())
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.UniformPoints(1, 10)

	rng.Reset()
	b := rng.UniformPoints(1, 10)

	assert.Equal(t, a.Data(), b.Data())
	assert.Equal(t, int64(4711), rng.Seed())
}
