package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/moogo/pointset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Generator produces num points of the given dimension.
type Generator func(r *RNG, num, dimensions int) *pointset.Matrix

// Uniform is a Generator backed by UniformPoints.
func Uniform(r *RNG, num, dimensions int) *pointset.Matrix { return r.UniformPoints(num, dimensions) }

// Spherical is a Generator backed by SphericalFront.
func Spherical(r *RNG, num, dimensions int) *pointset.Matrix {
	return r.SphericalFront(num, dimensions)
}

// Grid is a Generator backed by IntegerPoints on a 0..9 grid, producing many ties.
func Grid(r *RNG, num, dimensions int) *pointset.Matrix { return r.IntegerPoints(num, dimensions, 10) }

// UniformPoints generates points with coordinates in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dimensions int) *pointset.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	for i := range data {
		data[i] = r.rand.Float64()
	}
	m, _ := pointset.FromData(data, num, dimensions)
	return m
}

// IntegerPoints generates points with integral coordinates in [0, levels).
func (r *RNG) IntegerPoints(num, dimensions, levels int) *pointset.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	for i := range data {
		data[i] = float64(r.rand.Intn(levels))
	}
	m, _ := pointset.FromData(data, num, dimensions)
	return m
}

// SphericalFront generates points on the positive orthant of the unit hypersphere.
// Such points are mutually nondominated under minimisation (almost surely).
func (r *RNG) SphericalFront(num, dimensions int) *pointset.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		var norm float64
		for j := range vec {
			v := math.Abs(r.rand.NormFloat64())
			vec[j] = v
			norm += v * v
		}

		if norm == 0 {
			norm = 1 // Avoid division by zero, though unlikely with floats
		}

		inv := 1.0 / math.Sqrt(norm)
		for j := range vec {
			vec[j] *= inv
		}
	}
	m, _ := pointset.FromData(data, num, dimensions)
	return m
}

// Dataset generates sets consecutive sets (IDs 1..sets) of perSet points each.
func (r *RNG) Dataset(sets, perSet, dimensions int, gen Generator) *pointset.Dataset {
	var all *pointset.Matrix
	ids := make([]int, 0, sets*perSet)
	for s := 1; s <= sets; s++ {
		m := gen(r, perSet, dimensions)
		if all == nil {
			all = m
		} else {
			all, _ = all.Append(m)
		}
		for range perSet {
			ids = append(ids, s)
		}
	}
	ds, err := pointset.NewDataset(all, ids)
	if err != nil {
		panic(err)
	}
	return ds
}
