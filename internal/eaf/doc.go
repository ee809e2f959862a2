// Package eaf computes empirical attainment functions of two- and three-objective
// datasets, and the differences between two datasets' attainment surfaces.
//
// The level-m attainment surface of k sets is the boundary of the region of
// objective space weakly dominated by points from at least m different sets.
// Compute returns, per requested level, the minimal points of that region.
//
// # Two objectives
//
// Points are swept by ascending first objective. Per set the best second-objective
// value reached so far is tracked together with a sorted copy of those values; the
// level-m surface height at the current sweep position is the m-th smallest. A
// surface point is emitted whenever that height strictly decreases, so points
// sharing a first-objective value are processed as one event and every level is
// ordered by ascending first objective.
//
// # Three objectives
//
// The third objective is sliced at every distinct value z. The two-objective sweep
// runs over the points with third objective <= z; a staircase point (x, y) becomes
// the surface point (x, y, z) unless the previous slice's staircase already weakly
// dominates it. Every level is sorted lexicographically.
package eaf
