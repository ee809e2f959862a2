package moogo

import (
	"context"
	"io"
	"time"

	"github.com/hupe1980/moogo/ingest"
	"github.com/hupe1980/moogo/internal/dominance"
	"github.com/hupe1980/moogo/internal/eaf"
	"github.com/hupe1980/moogo/internal/hv"
	"github.com/hupe1980/moogo/internal/indicator"
	"github.com/hupe1980/moogo/internal/normalise"
	"github.com/hupe1980/moogo/pointset"
)

// AttainmentSurface is one level of an empirical attainment function.
type AttainmentSurface = eaf.Level

// EAFResult holds the attainment surfaces computed by GetEAF.
type EAFResult = eaf.Result

// DiffEAFResult holds the surface points and difference values computed by GetDiffEAF.
type DiffEAFResult = eaf.DiffResult

// Engine evaluates quality indicators. It holds no state besides its options and
// is safe for concurrent use.
type Engine struct {
	opts options
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{opts: opts}
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger { return e.opts.logger }

// observe translates err, then records metrics and logs for a finished operation.
func (e *Engine) observe(ctx context.Context, op string, rows, dim int, start time.Time, err error) error {
	err = translateError(op, err)
	elapsed := time.Since(start)
	e.opts.metricsCollector.RecordOperation(op, rows, elapsed, err)
	e.opts.logger.LogOperation(ctx, op, rows, dim, elapsed, err)
	return err
}

func (e *Engine) dominanceOptions(maximise []bool, keepWeakly bool) dominance.Options {
	return dominance.Options{Maximise: maximise, KeepWeakly: keepWeakly, Workers: e.opts.parallelism}
}

// IsNondominated returns a mask, parallel to the rows of m, with true for every
// point no other point dominates.
//
// Without keepWeakly exact duplicates collapse to a single survivor, the last copy
// in row order. With keepWeakly all copies of a nondominated point are kept.
func (e *Engine) IsNondominated(m *pointset.Matrix, maximise []bool, keepWeakly bool) ([]bool, error) {
	start := time.Now()
	mask, err := dominance.IsNondominated(m, e.dominanceOptions(maximise, keepWeakly))
	err = e.observe(context.Background(), "is_nondominated", m.Rows(), m.Cols(), start, err)
	if err != nil {
		return nil, err
	}
	return mask, nil
}

// FilterDominated returns the nondominated rows of m in their original order.
func (e *Engine) FilterDominated(m *pointset.Matrix, maximise []bool, keepWeakly bool) (*pointset.Matrix, error) {
	start := time.Now()
	out, err := dominance.FilterDominated(m, e.dominanceOptions(maximise, keepWeakly))
	err = e.observe(context.Background(), "filter_dominated", m.Rows(), m.Cols(), start, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FilterDominatedSets filters every set of ds independently and concatenates the
// results in the original set order.
func (e *Engine) FilterDominatedSets(ds *pointset.Dataset, maximise []bool, keepWeakly bool) (*pointset.Dataset, error) {
	start := time.Now()
	out, err := dominance.FilterDominatedSets(ds, e.dominanceOptions(maximise, keepWeakly))
	err = e.observe(context.Background(), "filter_dominated_sets", ds.Rows(), ds.Dim(), start, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// minimisedProblem converts m and ref to pure minimisation.
func minimisedProblem(m *pointset.Matrix, ref []float64, maximise []bool) (*pointset.Matrix, []float64, error) {
	if err := pointset.CheckDimension("reference point", m.Cols(), len(ref)); err != nil {
		return nil, nil, err
	}
	mx, err := pointset.Broadcast(maximise, m.Cols())
	if err != nil {
		return nil, nil, err
	}
	return pointset.Minimised(m, mx), pointset.MinimisedPoint(ref, mx), nil
}

// Hypervolume returns the volume of the region dominated by m and bounded by ref.
// Points that are not strictly better than ref in every objective contribute
// nothing; an empty set yields 0.
func (e *Engine) Hypervolume(m *pointset.Matrix, ref []float64, maximise []bool) (float64, error) {
	start := time.Now()
	v, err := func() (float64, error) {
		mm, r, err := minimisedProblem(m, ref, maximise)
		if err != nil {
			return 0, err
		}
		return hv.Hypervolume(mm, r)
	}()
	err = e.observe(context.Background(), "hypervolume", m.Rows(), m.Cols(), start, err)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// HypervolumeContributions returns, for every row of m, the hypervolume lost when
// that row alone is removed.
func (e *Engine) HypervolumeContributions(m *pointset.Matrix, ref []float64, maximise []bool) ([]float64, error) {
	start := time.Now()
	v, err := func() ([]float64, error) {
		mm, r, err := minimisedProblem(m, ref, maximise)
		if err != nil {
			return nil, err
		}
		return hv.Contributions(mm, r)
	}()
	err = e.observe(context.Background(), "hypervolume_contributions", m.Rows(), m.Cols(), start, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

type distanceIndicator func(m, ref *pointset.Matrix, maximise []bool) (float64, error)

func (e *Engine) distance(op string, fn distanceIndicator, m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	start := time.Now()
	v, err := fn(m, ref, maximise)
	err = e.observe(context.Background(), op, m.Rows(), m.Cols(), start, err)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// IGD returns the mean Euclidean distance from every reference point to its
// nearest point of m.
func (e *Engine) IGD(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("igd", indicator.IGD, m, ref, maximise)
}

// IGDPlus is IGD with the dominance-aware distance, which ignores the objectives in
// which a point of m is already at least as good as the reference point.
func (e *Engine) IGDPlus(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("igd_plus", indicator.IGDPlus, m, ref, maximise)
}

// GD returns the mean Euclidean distance from every point of m to its nearest
// reference point.
func (e *Engine) GD(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("gd", indicator.GD, m, ref, maximise)
}

// GDPlus is GD with the dominance-aware distance.
func (e *Engine) GDPlus(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("gd_plus", indicator.GDPlus, m, ref, maximise)
}

// AvgHausdorffDist returns max(GD_p, IGD_p), where both are power means of
// exponent p over the nearest-neighbour Euclidean distances. p must be positive.
func (e *Engine) AvgHausdorffDist(m, ref *pointset.Matrix, maximise []bool, p float64) (float64, error) {
	return e.distance("avg_hausdorff", func(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
		return indicator.AvgHausdorffDist(m, ref, maximise, p)
	}, m, ref, maximise)
}

// EpsilonAdditive returns the smallest amount by which m must be improved in every
// objective so that each reference point is weakly dominated by some point of m.
func (e *Engine) EpsilonAdditive(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("epsilon_additive", indicator.EpsilonAdditive, m, ref, maximise)
}

// EpsilonMult is the multiplicative counterpart of EpsilonAdditive. Every value of
// m and ref must be strictly positive.
func (e *Engine) EpsilonMult(m, ref *pointset.Matrix, maximise []bool) (float64, error) {
	return e.distance("epsilon_mult", indicator.EpsilonMult, m, ref, maximise)
}

// Epsilon dispatches to EpsilonMult or EpsilonAdditive.
func (e *Engine) Epsilon(m, ref *pointset.Matrix, maximise []bool, multiplicative bool) (float64, error) {
	if multiplicative {
		return e.EpsilonMult(m, ref, maximise)
	}
	return e.EpsilonAdditive(m, ref, maximise)
}

// Normalise maps every objective of m linearly from [lower, upper] onto toRange,
// or onto the reversed range for maximised objectives. NaN bounds (and nil
// vectors) default to the observed column minimum and maximum; a nil toRange is
// [0, 1]. A new matrix is returned.
func (e *Engine) Normalise(m *pointset.Matrix, toRange, lower, upper []float64, maximise []bool) (*pointset.Matrix, error) {
	start := time.Now()
	out, err := normalise.Normalise(m, toRange, lower, upper, maximise)
	err = e.observe(context.Background(), "normalise", m.Rows(), m.Cols(), start, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetEAF computes the attainment surfaces of a two- or three-objective dataset.
// A nil percentiles computes every level 1..k of the k sets.
func (e *Engine) GetEAF(ds *pointset.Dataset, percentiles []float64) (*EAFResult, error) {
	return e.getEAF(context.Background(), ds, eaf.Options{Percentiles: percentiles})
}

// GetEAFAttained is GetEAF with, for every surface point, the sets attaining it.
func (e *Engine) GetEAFAttained(ds *pointset.Dataset, percentiles []float64) (*EAFResult, error) {
	return e.getEAF(context.Background(), ds, eaf.Options{Percentiles: percentiles, Attained: true})
}

func (e *Engine) getEAF(ctx context.Context, ds *pointset.Dataset, opts eaf.Options) (*EAFResult, error) {
	start := time.Now()
	res, err := eaf.Compute(ds, opts)
	err = e.observe(ctx, "eaf", ds.Rows(), ds.Dim(), start, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetDiffEAF compares the attainment surfaces of x and y. Both datasets must
// number their sets from 1. A non-positive intervals defaults to half the total
// number of sets.
func (e *Engine) GetDiffEAF(x, y *pointset.Dataset, intervals int) (*DiffEAFResult, error) {
	start := time.Now()
	res, err := eaf.Diff(x, y, intervals)
	err = e.observe(context.Background(), "diff_eaf", x.Rows()+y.Rows(), x.Dim(), start, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReadDatasets reads a dataset file, decompressing it if needed.
func (e *Engine) ReadDatasets(path string, opts ...ingest.Option) (*pointset.Dataset, error) {
	start := time.Now()
	opts = append([]ingest.Option{ingest.WithLogger(e.opts.logger.Logger)}, opts...)
	ds, err := ingest.ReadFile(path, opts...)
	return e.finishRead(start, ds, err)
}

// ReadDatasetsFrom reads a dataset from r, decompressing it if needed.
func (e *Engine) ReadDatasetsFrom(r io.Reader, opts ...ingest.Option) (*pointset.Dataset, error) {
	start := time.Now()
	opts = append([]ingest.Option{ingest.WithLogger(e.opts.logger.Logger)}, opts...)
	ds, err := ingest.Read(r, opts...)
	return e.finishRead(start, ds, err)
}

func (e *Engine) finishRead(start time.Time, ds *pointset.Dataset, err error) (*pointset.Dataset, error) {
	rows, dim := 0, 0
	if ds != nil {
		rows, dim = ds.Rows(), ds.Dim()
	}
	err = e.observe(context.Background(), "read_datasets", rows, dim, start, err)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// Dominates reports whether a dominates b under the given directions. Points of
// different length, or a direction vector that does not fit them, never dominate.
func Dominates(a, b []float64, maximise []bool) bool {
	if len(a) != len(b) {
		return false
	}
	mx, err := pointset.Broadcast(maximise, len(a))
	if err != nil {
		return false
	}
	return dominance.CompareDirected(a, b, mx) == dominance.Dominates
}
