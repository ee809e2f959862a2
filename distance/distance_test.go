package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 6, 3}, 5},
		{"Identical", []float64{1, 2}, []float64{1, 2}, 0},
		{"Diagonal", []float64{0, 0}, []float64{1, 1}, math.Sqrt2},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.expected*tt.expected, SquaredEuclidean(tt.a, tt.b), 1e-12)
		})
	}
}

func TestPlus(t *testing.T) {
	tests := []struct {
		name     string
		a, r     []float64
		maximise []bool
		expected float64
	}{
		{"Dominating", []float64{1, 1}, []float64{2, 2}, nil, 0},
		{"WorseInOne", []float64{4, 2}, []float64{10, 0}, nil, 2},
		{"WorseInBoth", []float64{3, 3}, []float64{2, 2}, nil, math.Sqrt2},
		{"Maximise", []float64{1, 1}, []float64{2, 2}, []bool{true, true}, math.Sqrt2},
		{"Mixed", []float64{1, 1}, []float64{2, 2}, []bool{true, false}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Plus(tt.a, tt.r, tt.maximise), 1e-12)
		})
	}
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricEuclidean, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, fn([]float64{0, 0}, []float64{3, 4}), 1e-12)

	fn, err = Provider(MetricPlus, []bool{false, false})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, fn([]float64{0, 0}, []float64{3, 4}), 1e-12)

	_, err = Provider(Metric(99), nil)
	assert.ErrorIs(t, err, ErrUnknownMetric)

	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "Plus", MetricPlus.String())
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}
