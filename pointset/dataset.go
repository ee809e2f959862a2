package pointset

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Group is one contiguous block of rows sharing a set ID. End is exclusive.
type Group struct {
	ID    int
	Start int
	End   int
}

// Len returns the number of rows in the group.
func (g Group) Len() int { return g.End - g.Start }

// Dataset is a collection of point sets, each tagged with an integer set ID.
type Dataset struct {
	points *Matrix
	sets   []int
	groups []Group
}

// NewDataset tags every row of points with the set ID at the same index.
//
// Set IDs must be non-negative and every ID must occupy a single contiguous block
// of rows; an ID reappearing after its block ended is ErrInvalidSetID.
func NewDataset(points *Matrix, sets []int) (*Dataset, error) {
	if err := CheckDimension("set ids", points.Rows(), len(sets)); err != nil {
		return nil, err
	}
	groups, err := groupRows(sets)
	if err != nil {
		return nil, err
	}
	return &Dataset{points: points, sets: slices.Clone(sets), groups: groups}, nil
}

// DatasetFromMatrix splits off the final column of m as the set ID column.
func DatasetFromMatrix(m *Matrix) (*Dataset, error) {
	if m.Cols() < 2 {
		return nil, fmt.Errorf("%w: need at least one objective plus the set column, got %d columns", ErrBadShape, m.Cols())
	}
	d := m.Cols() - 1
	sets := make([]int, m.Rows())
	for i := range sets {
		v := m.At(i, d)
		if v != math.Trunc(v) || v < 0 {
			return nil, fmt.Errorf("%w: row %d has set id %g", ErrInvalidSetID, i, v)
		}
		sets[i] = int(v)
	}
	return NewDataset(m.Project(d), sets)
}

func groupRows(sets []int) ([]Group, error) {
	var groups []Group
	seen := make(map[int]struct{})
	for i, id := range sets {
		if id < 0 {
			return nil, fmt.Errorf("%w: row %d has negative set id %d", ErrInvalidSetID, i, id)
		}
		if len(groups) > 0 && groups[len(groups)-1].ID == id {
			groups[len(groups)-1].End = i + 1
			continue
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: set %d is not contiguous (reappears at row %d)", ErrInvalidSetID, id, i)
		}
		seen[id] = struct{}{}
		groups = append(groups, Group{ID: id, Start: i, End: i + 1})
	}
	return groups, nil
}

// Points returns the objective values without the set column.
func (ds *Dataset) Points() *Matrix { return ds.points }

// Dim returns the number of objectives.
func (ds *Dataset) Dim() int { return ds.points.Cols() }

// Rows returns the total number of points over all sets.
func (ds *Dataset) Rows() int { return ds.points.Rows() }

// SetID returns the set ID of row i.
func (ds *Dataset) SetID(i int) int { return ds.sets[i] }

// Sets returns a copy of the per-row set IDs.
func (ds *Dataset) Sets() []int { return slices.Clone(ds.sets) }

// Groups returns the contiguous set blocks in input order.
func (ds *Dataset) Groups() []Group { return slices.Clone(ds.groups) }

// NumSets returns the number of distinct set IDs.
func (ds *Dataset) NumSets() int { return len(ds.groups) }

// SetIDs returns the distinct set IDs as a bitmap.
func (ds *Dataset) SetIDs() *roaring.Bitmap {
	bm := roaring.New()
	for _, g := range ds.groups {
		bm.Add(uint32(g.ID))
	}
	return bm
}

// MinSetID returns the smallest set ID, or -1 for an empty dataset.
func (ds *Dataset) MinSetID() int {
	if len(ds.groups) == 0 {
		return -1
	}
	return int(ds.SetIDs().Minimum())
}

// MaxSetID returns the largest set ID, or -1 for an empty dataset.
func (ds *Dataset) MaxSetID() int {
	if len(ds.groups) == 0 {
		return -1
	}
	return int(ds.SetIDs().Maximum())
}

// Set returns a copy of the rows of the given set, or nil if the ID is unknown.
func (ds *Dataset) Set(id int) *Matrix {
	for _, g := range ds.groups {
		if g.ID == id {
			return ds.points.Slice(g.Start, g.End)
		}
	}
	return nil
}

// GroupPoints returns a copy of the rows of g.
func (ds *Dataset) GroupPoints(g Group) *Matrix {
	return ds.points.Slice(g.Start, g.End)
}

// Subset keeps only the sets whose ID is in ids, preserving order.
func (ds *Dataset) Subset(ids *roaring.Bitmap) (*Dataset, error) {
	mask := make([]bool, ds.Rows())
	for i, id := range ds.sets {
		mask[i] = ids.Contains(uint32(id))
	}
	points, err := ds.points.Select(mask)
	if err != nil {
		return nil, err
	}
	sets := make([]int, 0, points.Rows())
	for i, keep := range mask {
		if keep {
			sets = append(sets, ds.sets[i])
		}
	}
	return NewDataset(points, sets)
}

// Relabel returns a copy whose set IDs are shifted by offset.
func (ds *Dataset) Relabel(offset int) (*Dataset, error) {
	sets := make([]int, len(ds.sets))
	for i, id := range ds.sets {
		sets[i] = id + offset
	}
	return NewDataset(ds.points, sets)
}

// Concat appends the rows of other after the rows of ds.
func (ds *Dataset) Concat(other *Dataset) (*Dataset, error) {
	points, err := ds.points.Append(other.points)
	if err != nil {
		return nil, err
	}
	sets := make([]int, 0, len(ds.sets)+len(other.sets))
	sets = append(sets, ds.sets...)
	sets = append(sets, other.sets...)
	return NewDataset(points, sets)
}

// Matrix returns the points with the set ID appended as the final column.
func (ds *Dataset) Matrix() *Matrix {
	d := ds.points.Cols()
	out := &Matrix{rows: ds.points.Rows(), cols: d + 1, data: make([]float64, 0, ds.points.Rows()*(d+1))}
	for i := 0; i < ds.points.Rows(); i++ {
		out.data = append(out.data, ds.points.Row(i)...)
		out.data = append(out.data, float64(ds.sets[i]))
	}
	return out
}
