package ana

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/opendata-hep/hzz4l/eventio"
	"github.com/opendata-hep/hzz4l/metadata"
	"github.com/opendata-hep/hzz4l/physics"
	"github.com/opendata-hep/hzz4l/selection"
)

// FileStats counts, per input file, events delivered versus events
// surviving the selection. Diagnostic only.
type FileStats struct {
	Sample string
	Path   string
	Read   int
	Kept   int
}

// Result holds one category's surviving events: the derived masses and
// per-event total weights (identically 1 for observed data),
// concatenated in declared sample-then-batch order. The Runner owns a
// Result until Run returns; it is not mutated afterwards.
type Result struct {
	Category Category
	Mass     []float64
	Weight   []float64
	Stats    []FileStats
}

// Runner executes the pipeline for every configured category.
type Runner struct {
	Config Config
	Table  metadata.Table
	Log    *log.Logger
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// Run processes the categories in declared order and returns one
// Result per category. The constituent samples of a category are
// streamed concurrently, but their surviving events are stitched back
// in declared order, so the outcome is deterministic. Any failing
// sample aborts the whole run: a partially aggregated category would
// be silently mis-normalized.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(r.Config.Categories))
	for _, cat := range r.Config.Categories {
		res, err := r.runCategory(ctx, cat)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

type samplePart struct {
	mass   []float64
	weight []float64
	stats  FileStats
}

func (r *Runner) runCategory(ctx context.Context, cat Category) (Result, error) {
	parts := make([]samplePart, len(cat.Samples))

	g, gctx := errgroup.WithContext(ctx)
	for i, sample := range cat.Samples {
		g.Go(func() error {
			part, err := r.runSample(gctx, cat, sample)
			if err != nil {
				return fmt.Errorf("sample %q: %w", sample, err)
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Category: cat}
	for _, part := range parts {
		res.Mass = append(res.Mass, part.mass...)
		res.Weight = append(res.Weight, part.weight...)
		res.Stats = append(res.Stats, part.stats)
		r.logf("%s: %s: %d events in, %d after cuts",
			cat.Name, part.stats.Sample, part.stats.Read, part.stats.Kept,
		)
	}
	return res, nil
}

func (r *Runner) runSample(ctx context.Context, cat Category, sample string) (samplePart, error) {
	var (
		xw   = 1.0
		dsid = 0
	)
	switch cat.Kind {
	case KindMC:
		rec, err := r.Table.Lookup(sample)
		if err != nil {
			return samplePart{}, err
		}
		xw, err = physics.CrossSectionWeight(rec, r.Config.Luminosity, r.Config.Fraction)
		if err != nil {
			return samplePart{}, err
		}
		dsid = rec.DSID
	case KindData:
		// no normalization: observed events count with weight 1.
	default:
		return samplePart{}, fmt.Errorf("ana: unknown category kind %v", cat.Kind)
	}

	path := r.Config.samplePath(cat, sample, dsid)
	sc, err := eventio.Open(path, eventio.Options{
		Fraction:  r.Config.Fraction,
		BatchSize: r.Config.BatchSize,
		Weights:   cat.Kind == KindMC,
	})
	if err != nil {
		return samplePart{}, err
	}
	defer sc.Close()

	part := samplePart{stats: FileStats{Sample: sample, Path: path}}
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return samplePart{}, err
		}
		b := sc.Batch()

		var ws []float64
		if cat.Kind == KindMC {
			ws, err = physics.Weights(b)
			if err != nil {
				return samplePart{}, err
			}
			for i := range ws {
				ws[i] *= xw
			}
		}

		ms, err := physics.Masses(b)
		if err != nil {
			return samplePart{}, err
		}
		keep, err := selection.Cut(b)
		if err != nil {
			return samplePart{}, err
		}

		for i, ok := range keep {
			part.stats.Read++
			if !ok {
				continue
			}
			part.stats.Kept++
			part.mass = append(part.mass, ms[i])
			if ws != nil {
				part.weight = append(part.weight, ws[i])
			} else {
				part.weight = append(part.weight, 1.0)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return samplePart{}, err
	}
	return part, nil
}
