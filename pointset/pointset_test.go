package pointset

import (
	"errors"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []float64{3, 4}, m.Row(1))
	assert.Equal(t, 6.0, m.At(2, 1))
	assert.Equal(t, []float64{2, 4, 6}, m.Column(1))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestMatrixCopies(t *testing.T) {
	m := MustFromRows([][]float64{{1, 2}, {3, 4}})

	c := m.Clone()
	c.Set(0, 0, 42)
	assert.Equal(t, 1.0, m.At(0, 0))

	n := m.Negate()
	assert.Equal(t, []float64{-1, -2, -3, -4}, n.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	sel, err := m.Select([]bool{false, true})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 4}}, sel.ToRows())

	_, err = m.Select([]bool{true})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	p := m.Project(1)
	assert.Equal(t, []float64{1, 3}, p.Data())

	lo, hi := m.Bounds()
	assert.Equal(t, []float64{1, 2}, lo)
	assert.Equal(t, []float64{3, 4}, hi)
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name     string
		maximise []bool
		d        int
		want     []bool
		wantErr  bool
	}{
		{"Nil", nil, 3, []bool{false, false, false}, false},
		{"Scalar", []bool{true}, 3, []bool{true, true, true}, false},
		{"Full", []bool{true, false}, 2, []bool{true, false}, false},
		{"Mismatch", []bool{true, false}, 3, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Broadcast(tt.maximise, tt.d)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDimensionMismatch)
				var de *DimensionError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, 3, de.Expected)
				assert.Equal(t, 2, de.Actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinimised(t *testing.T) {
	m := MustFromRows([][]float64{{1, 2}, {3, 4}})
	assert.Same(t, m, Minimised(m, []bool{false, false}))

	mm := Minimised(m, []bool{false, true})
	assert.Equal(t, []float64{1, -2, 3, -4}, mm.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	assert.Equal(t, []float64{-1, 2}, MinimisedPoint([]float64{1, 2}, []bool{true, false}))
}

func TestDataset(t *testing.T) {
	m := MustFromRows([][]float64{{1, 2}, {2, 1}, {3, 3}, {0, 5}})
	ds, err := NewDataset(m, []int{1, 1, 3, 2})
	require.NoError(t, err)

	assert.Equal(t, 3, ds.NumSets())
	assert.Equal(t, []Group{{ID: 1, Start: 0, End: 2}, {ID: 3, Start: 2, End: 3}, {ID: 2, Start: 3, End: 4}}, ds.Groups())
	assert.Equal(t, []uint32{1, 2, 3}, ds.SetIDs().ToArray())
	assert.Equal(t, 1, ds.MinSetID())
	assert.Equal(t, 3, ds.MaxSetID())
	assert.Equal(t, [][]float64{{3, 3}}, ds.Set(3).ToRows())
	assert.Nil(t, ds.Set(7))

	full := ds.Matrix()
	assert.Equal(t, 3, full.Cols())
	assert.Equal(t, []float64{3, 3, 3}, full.Row(2))

	back, err := DatasetFromMatrix(full)
	require.NoError(t, err)
	assert.True(t, back.Points().Equal(m))
	assert.Equal(t, ds.Sets(), back.Sets())
}

func TestDatasetInvalidSetIDs(t *testing.T) {
	m := MustFromRows([][]float64{{1, 2}, {2, 1}, {3, 3}})

	_, err := NewDataset(m, []int{1, 2, 1})
	assert.ErrorIs(t, err, ErrInvalidSetID)

	_, err = NewDataset(m, []int{1, -1, -1})
	assert.ErrorIs(t, err, ErrInvalidSetID)

	_, err = NewDataset(m, []int{1, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = DatasetFromMatrix(MustFromRows([][]float64{{1, 2, 1.5}}))
	assert.ErrorIs(t, err, ErrInvalidSetID)
}

func TestDatasetSubsetRelabelConcat(t *testing.T) {
	m := MustFromRows([][]float64{{1, 2}, {2, 1}, {3, 3}, {0, 5}})
	ds, err := NewDataset(m, []int{1, 1, 2, 3})
	require.NoError(t, err)

	sub, err := ds.Subset(roaring.BitmapOf(1, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, sub.Sets())
	assert.Equal(t, [][]float64{{1, 2}, {2, 1}, {0, 5}}, sub.Points().ToRows())

	rel, err := ds.Relabel(3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 5, 6}, rel.Sets())

	cat, err := ds.Concat(rel)
	require.NoError(t, err)
	assert.Equal(t, 6, cat.NumSets())
	assert.Equal(t, 8, cat.Rows())

	_, err = ds.Concat(ds)
	assert.ErrorIs(t, err, ErrInvalidSetID)
}
