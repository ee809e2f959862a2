// Package pointset provides the shared point-set model used by every moogo engine.
//
// A Matrix is an owned, contiguous, row-major buffer of float64 objective values with
// explicit (rows, cols) metadata. Each row is one point; each column one objective.
//
// A Dataset attaches an integer set ID to every row. Rows belonging to the same set
// form one contiguous block and keep their input order:
//
//	m, _ := pointset.FromRows([][]float64{{1, 2}, {2, 1}, {1.5, 1.5}})
//	ds, _ := pointset.NewDataset(m, []int{1, 1, 2})
//	for _, g := range ds.Groups() {
//	    fmt.Println(g.ID, g.Start, g.End)
//	}
//
// Engines never mutate their inputs; operations that transform points return a new Matrix.
package pointset
