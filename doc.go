// Package moogo computes quality indicators for sets of trade-off solutions in
// multi-objective optimisation.
//
// Point sets are held in a pointset.Matrix (row-major, one point per row); several
// sets tagged with integer IDs form a pointset.Dataset.
//
// # Quick Start
//
//	eng := moogo.New(moogo.WithLogLevel(slog.LevelDebug))
//
//	front := pointset.MustFromRows([][]float64{{5, 5}, {4, 6}, {2, 7}, {7, 4}})
//	hv, _ := eng.Hypervolume(front, []float64{10, 10}, nil) // 38
//
//	ds, _ := eng.ReadDatasets("runs.dat.gz")
//	surfaces, _ := eng.GetEAF(ds, []float64{0, 50, 100})
//
// # Indicators
//
//   - Dominance filtering: IsNondominated, FilterDominated, FilterDominatedSets
//   - Hypervolume and per-point hypervolume contributions
//   - GD, GD+, IGD, IGD+ and the averaged Hausdorff distance
//   - Additive and multiplicative epsilon
//   - Normalisation of objective ranges
//   - Empirical attainment surfaces (two and three objectives) and their differences
//
// Every operation takes a direction vector: nil minimises all objectives, a single
// value applies to all of them, otherwise one value per objective.
//
// # Errors
//
// Structurally invalid arguments fail with a *ConfigurationError (errors.Is matches
// ErrConfiguration). Malformed input files fail with an *InputDataError carrying
// the failure kind.
//
// # Reports
//
// Engine.Evaluate computes a configurable selection of indicators for every set of
// a dataset and returns a Report that can be encoded with any codec.
package moogo
