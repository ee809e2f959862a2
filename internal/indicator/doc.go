// Package indicator implements the generational-distance family (GD, GD+, IGD, IGD+,
// averaged Hausdorff distance) and the additive and multiplicative epsilon indicators.
//
// Every function measures a point set against a reference set of the same dimension
// under a per-objective direction vector.
package indicator
