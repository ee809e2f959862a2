package moogo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/moogo/codec"
	"github.com/hupe1980/moogo/config"
	"github.com/hupe1980/moogo/ingest"
	"github.com/hupe1980/moogo/internal/eaf"
	"github.com/hupe1980/moogo/pointset"
)

// SetReport holds the indicator values of one set.
type SetReport struct {
	ID           int                `json:"id" yaml:"id"`
	Points       int                `json:"points" yaml:"points"`
	Nondominated int                `json:"nondominated" yaml:"nondominated"`
	Indicators   map[string]float64 `json:"indicators" yaml:"indicators"`
}

// SurfaceReport is one attainment surface of a report.
type SurfaceReport struct {
	Level      int         `json:"level" yaml:"level"`
	Percentile float64     `json:"percentile" yaml:"percentile"`
	Points     [][]float64 `json:"points" yaml:"points"`
}

// Report is the outcome of Evaluate.
type Report struct {
	ID         uuid.UUID `json:"id" yaml:"id"`
	Created    time.Time `json:"created" yaml:"created"`
	Codec      string    `json:"codec" yaml:"codec"`
	Objectives int       `json:"objectives" yaml:"objectives"`
	Maximise   []bool    `json:"maximise" yaml:"maximise"`
	// Normalised reports whether indicator values refer to normalised objectives.
	// The reference point is then given in normalised units as well.
	Normalised       bool            `json:"normalised" yaml:"normalised"`
	ReferencePoint   []float64       `json:"reference_point" yaml:"reference_point"`
	ReferenceSetSize int             `json:"reference_set_size" yaml:"reference_set_size"`
	Sets             []SetReport     `json:"sets" yaml:"sets"`
	EAF              []SurfaceReport `json:"eaf,omitempty" yaml:"eaf,omitempty"`

	codec codec.Codec
}

// Encode serialises the report with the codec named in r.Codec.
func (r *Report) Encode() ([]byte, error) {
	c := r.codec
	if c == nil {
		var ok bool
		if c, ok = codec.ByName(r.Codec); !ok {
			c = codec.Default
		}
	}
	return c.Marshal(r)
}

// DecodeReport parses a report produced by Report.Encode with the named codec.
func DecodeReport(codecName string, data []byte) (*Report, error) {
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", codecName)
	}
	var r Report
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	r.codec = c
	return &r, nil
}

// problem is a dataset prepared for evaluation.
type problem struct {
	ds       *pointset.Dataset
	ref      *pointset.Matrix
	refPoint []float64
	maximise []bool
	// directions are the caller's directions; maximise is cleared by normalisation.
	directions []bool
}

// Evaluate computes the indicators selected by cfg for every set of ds.
//
// The reference set is read from cfg.ReferenceSet, or else is the nondominated
// union of all sets. The reference point is cfg.ReferencePoint, or else the worst
// value per objective over the data and the reference set. When normalisation is
// enabled, data, reference set and reference point are rescaled together and all
// objectives become minimised.
//
// Sets are evaluated concurrently; ctx cancellation stops the run between sets.
// A nil cfg uses config.Default().
func (e *Engine) Evaluate(ctx context.Context, ds *pointset.Dataset, cfg *config.Analysis) (*Report, error) {
	start := time.Now()
	if cfg == nil {
		cfg = config.Default()
	}
	id := uuid.New()
	logger := e.opts.logger.WithReport(id.String())

	report, err := e.evaluate(ctx, ds, cfg)
	err = e.observe(ctx, "evaluate", ds.Rows(), ds.Dim(), start, err)
	logger.LogEvaluation(ctx, ds.NumSets(), cfg.Indicators, err)
	if err != nil {
		return nil, err
	}

	report.ID = id
	report.Created = start.UTC()
	report.Codec = e.opts.codec.Name()
	report.codec = e.opts.codec
	return report, nil
}

func (e *Engine) evaluate(ctx context.Context, ds *pointset.Dataset, cfg *config.Analysis) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds.Rows() == 0 {
		return nil, pointset.ErrEmpty
	}

	p, err := e.prepare(ds, cfg)
	if err != nil {
		return nil, err
	}

	workers := e.opts.parallelism
	if cfg.Parallelism > 0 {
		workers = cfg.Parallelism
	}
	groups := p.ds.Groups()
	sets := make([]SetReport, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, grp := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := e.evaluateSet(p, p.ds.GroupPoints(grp), cfg)
			if err != nil {
				return fmt.Errorf("set %d: %w", grp.ID, err)
			}
			rep.ID = grp.ID
			sets[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Objectives:       ds.Dim(),
		Maximise:         p.directions,
		Normalised:       cfg.Normalise.Enabled,
		ReferencePoint:   p.refPoint,
		ReferenceSetSize: p.ref.Rows(),
		Sets:             sets,
	}
	if cfg.EAF.Enabled {
		if report.EAF, err = e.surfaces(ctx, p, cfg.EAF.Percentiles); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (e *Engine) prepare(ds *pointset.Dataset, cfg *config.Analysis) (*problem, error) {
	d := ds.Dim()
	maximise, err := pointset.Broadcast(cfg.Maximise, d)
	if err != nil {
		return nil, err
	}

	ref := ds.Points()
	if cfg.ReferenceSet != "" {
		refDS, err := ingest.ReadFile(cfg.ReferenceSet, ingest.WithObjectives(d), ingest.WithLogger(e.opts.logger.Logger))
		if err != nil {
			return nil, err
		}
		ref = refDS.Points()
	}
	if ref, err = e.FilterDominated(ref, maximise, false); err != nil {
		return nil, err
	}

	refPoint := cfg.ReferencePoint
	if len(refPoint) == 0 {
		refPoint = worstPoint(ds.Points(), ref, maximise)
	} else if err := pointset.CheckDimension("reference point", d, len(refPoint)); err != nil {
		return nil, err
	}
	p := &problem{ds: ds, ref: ref, refPoint: refPoint, maximise: maximise, directions: maximise}
	if !cfg.Normalise.Enabled {
		return p, nil
	}

	// Rescale everything together so that all parts share the same bounds.
	combined, err := ds.Points().Append(ref)
	if err != nil {
		return nil, err
	}
	rp, err := pointset.FromData(refPoint, 1, d)
	if err != nil {
		return nil, err
	}
	if combined, err = combined.Append(rp); err != nil {
		return nil, err
	}
	scaled, err := e.Normalise(combined, cfg.Normalise.Range, cfg.Normalise.Lower, cfg.Normalise.Upper, maximise)
	if err != nil {
		return nil, err
	}

	n, r := ds.Rows(), ref.Rows()
	if p.ds, err = pointset.NewDataset(scaled.Slice(0, n), ds.Sets()); err != nil {
		return nil, err
	}
	p.ref = scaled.Slice(n, n+r)
	p.refPoint = append([]float64(nil), scaled.Row(n+r)...)
	p.maximise = make([]bool, d)
	return p, nil
}

// worstPoint returns, per objective, the worst value found in a or b.
func worstPoint(a, b *pointset.Matrix, maximise []bool) []float64 {
	aLo, aHi := a.Bounds()
	bLo, bHi := b.Bounds()
	out := make([]float64, len(maximise))
	for j, mx := range maximise {
		if mx {
			out[j] = aLo[j]
			if bLo != nil {
				out[j] = min(out[j], bLo[j])
			}
		} else {
			out[j] = aHi[j]
			if bHi != nil {
				out[j] = max(out[j], bHi[j])
			}
		}
	}
	return out
}

func (e *Engine) evaluateSet(p *problem, set *pointset.Matrix, cfg *config.Analysis) (SetReport, error) {
	rep := SetReport{Points: set.Rows(), Indicators: make(map[string]float64, len(cfg.Indicators))}

	mask, err := e.IsNondominated(set, p.maximise, false)
	if err != nil {
		return rep, err
	}
	for _, keep := range mask {
		if keep {
			rep.Nondominated++
		}
	}

	for _, name := range cfg.Indicators {
		var v float64
		switch name {
		case config.Hypervolume:
			v, err = e.Hypervolume(set, p.refPoint, p.maximise)
		case config.IGD:
			v, err = e.IGD(set, p.ref, p.maximise)
		case config.IGDPlus:
			v, err = e.IGDPlus(set, p.ref, p.maximise)
		case config.GD:
			v, err = e.GD(set, p.ref, p.maximise)
		case config.GDPlus:
			v, err = e.GDPlus(set, p.ref, p.maximise)
		case config.AvgHausdorff:
			v, err = e.AvgHausdorffDist(set, p.ref, p.maximise, cfg.HausdorffExponent)
		case config.EpsilonAdditive:
			v, err = e.EpsilonAdditive(set, p.ref, p.maximise)
		case config.EpsilonMult:
			v, err = e.EpsilonMult(set, p.ref, p.maximise)
		default:
			err = fmt.Errorf("%w: unknown indicator %q", config.ErrInvalid, name)
		}
		if err != nil {
			return rep, err
		}
		rep.Indicators[name] = v
	}
	return rep, nil
}

// surfaces computes the attainment surfaces in minimisation form and maps them back
// to the caller's directions.
func (e *Engine) surfaces(ctx context.Context, p *problem, percentiles []float64) ([]SurfaceReport, error) {
	ds := p.ds
	if pointset.AnyMaximised(p.maximise) {
		var err error
		if ds, err = pointset.NewDataset(pointset.Minimised(ds.Points(), p.maximise), ds.Sets()); err != nil {
			return nil, err
		}
	}
	if len(percentiles) == 0 {
		percentiles = nil
	}
	res, err := e.getEAF(ctx, ds, eaf.Options{Percentiles: percentiles})
	if err != nil {
		return nil, err
	}

	out := make([]SurfaceReport, len(res.Levels))
	for i, l := range res.Levels {
		pts := make([][]float64, l.Points.Rows())
		for k := range pts {
			pts[k] = pointset.MinimisedPoint(l.Points.Row(k), p.maximise)
		}
		out[i] = SurfaceReport{Level: l.Level, Percentile: l.Percentile, Points: pts}
	}
	return out, nil
}
