// Package testutil provides testing utilities for moogo.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for random point sets, nondominated fronts
// and multi-set datasets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	m := rng.UniformPoints(100, 3)      // uniform [0, 1)
//	f := rng.SphericalFront(100, 3)     // mutually nondominated, on the unit sphere
//	ds := rng.Dataset(10, 25, 2, testutil.Uniform)
package testutil
