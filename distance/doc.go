// Package distance provides the point-to-point distance kernels used by the
// generational-distance indicators.
//
// # Supported Metrics
//
//   - MetricEuclidean: plain Euclidean distance (GD, IGD, averaged Hausdorff)
//   - MetricPlus: dominance-aware distance (GD+, IGD+), where every coordinate in
//     which the first point is already no worse than the second contributes zero
//
// # Usage
//
//	dist := distance.Euclidean(a, r)
//	fn, _ := distance.Provider(distance.MetricPlus, maximise)
//	d := fn(a, r)
package distance
