package tracer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Options selects the filters applied by a [Simplifier]. The zero value
// disables every filter; boolean options are enabled by true, numeric options
// by values greater than zero.
type Options struct {
	// Remove points that are identical to the point before them.
	RemoveOverlappingPoints bool
	// Round all coordinates to integers.
	RoundToIntegers bool
	// Remove contours with fewer segments than this.
	MinimumContourSegments int
	// Remove contours enclosing a smaller area than this.
	MinimumContourArea float64
	// Convert curves shorter than this to lines.
	MinimumCurveLength float64
	// Simplify runs of lines with the Douglas-Peucker algorithm.
	DouglasPeuckerTolerance float64
	// Simplify runs of lines with the Visvalingam-Whyatt algorithm.
	VisvalingamWhyattTolerance float64
	// Convert curves to lines whose chord is within this percentage of their
	// arc length.
	ShallowCurveTolerance float64
	// Remove points at which lines reverse direction by less than this many
	// degrees.
	SpikeTolerance float64

	// The maximum number of contours simplified concurrently by
	// [Simplifier.Outline]. Values below 2 process contours one at a time.
	Concurrency int
}

// DefaultOptions are the options used by the glyph tracing workflow.
var DefaultOptions = Options{
	RemoveOverlappingPoints:    true,
	RoundToIntegers:            true,
	MinimumContourSegments:     4,
	MinimumContourArea:         500,
	MinimumCurveLength:         20,
	DouglasPeuckerTolerance:    1.0,
	VisvalingamWhyattTolerance: 1.0,
	ShallowCurveTolerance:      0.2,
	SpikeTolerance:             10,
}

type step struct {
	name  string
	apply func(Contour) Contour
}

// Simplifier runs contours through a fixed sequence of filters in two passes.
//
// The first pass removes obviously degenerate data with cheap filters before
// running the geometric simplifications:
//
//	overlapping points → spikes → segment count → area →
//	curve length → shallow curves → Douglas-Peucker → Visvalingam-Whyatt
//
// The second pass removes what the first one and rounding may have
// introduced, such as duplicate points after rounding or contours that fell
// below the minimum segment count:
//
//	rounding → overlapping points → spikes → segment count → area
//
// Disabled filters are skipped. Once a contour has been removed, no further
// filters run.
//
// A Simplifier is safe for concurrent use.
type Simplifier struct {
	opts   Options
	passes [2][]step
}

// NewSimplifier returns a simplifier applying the filters enabled in opts.
func NewSimplifier(opts Options) *Simplifier {
	s := &Simplifier{opts: opts}

	var cleanup []step
	if opts.RemoveOverlappingPoints {
		cleanup = append(cleanup, step{"overlapping points", FilterOverlappingPoints})
	}
	if tol := opts.SpikeTolerance; tol > 0 {
		cleanup = append(cleanup, step{"spikes", func(c Contour) Contour { return FilterSpikes(c, tol) }})
	}
	if n := opts.MinimumContourSegments; n > 0 {
		cleanup = append(cleanup, step{"segment count", func(c Contour) Contour { return FilterContourSegmentCounts(c, n) }})
	}
	if a := opts.MinimumContourArea; a > 0 {
		cleanup = append(cleanup, step{"area", func(c Contour) Contour { return FilterContourAreas(c, a) }})
	}

	first := append([]step(nil), cleanup...)
	if l := opts.MinimumCurveLength; l > 0 {
		first = append(first, step{"curve length", func(c Contour) Contour { return FilterCurveLengths(c, l) }})
	}
	if tol := opts.ShallowCurveTolerance; tol > 0 {
		first = append(first, step{"shallow curves", func(c Contour) Contour { return FilterShallowCurves(c, tol) }})
	}
	if tol := opts.DouglasPeuckerTolerance; tol > 0 {
		first = append(first, step{"douglas-peucker", func(c Contour) Contour { return FilterDouglasPeucker(c, tol) }})
	}
	if tol := opts.VisvalingamWhyattTolerance; tol > 0 {
		first = append(first, step{"visvalingam-whyatt", func(c Contour) Contour { return FilterVisvalingamWhyatt(c, tol) }})
	}

	var second []step
	if opts.RoundToIntegers {
		second = append(second, step{"rounding", FilterRoundedPoints})
	}
	second = append(second, cleanup...)

	s.passes = [2][]step{first, second}
	return s
}

// Options returns the options s was created with.
func (s *Simplifier) Options() Options { return s.opts }

// Contour simplifies a single contour. The result is empty if the contour was
// removed. c is not modified.
func (s *Simplifier) Contour(c Contour) (Contour, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return s.filter(c, -1), nil
}

func (s *Simplifier) filter(c Contour, index int) Contour {
	l := Logger()
	debug := l.Enabled(context.Background(), slog.LevelDebug)
	out := c
	for pass, steps := range s.passes {
		for _, st := range steps {
			if len(out) == 0 {
				return out
			}
			n := len(out)
			out = st.apply(out)
			if debug {
				l.Debug("applied filter",
					"contour", index,
					"pass", pass+1,
					"filter", st.name,
					"ops_before", n,
					"ops_after", len(out))
				if len(out) == 0 {
					l.Debug("removed contour", "contour", index, "filter", st.name)
				}
			}
		}
	}
	return out
}

// Outline simplifies every contour of o and returns the contours that
// weren't removed, in their original order. Contours are validated first;
// the first malformed contour aborts the operation.
//
// ctx is checked before each contour is processed.
func (s *Simplifier) Outline(ctx context.Context, o Outline) (Outline, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	results := make([]Contour, len(o))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.opts.Concurrency))
	for i, c := range o {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.filter(c, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := results[:0]
	for _, c := range results {
		if len(c) != 0 {
			out = append(out, c)
		}
	}
	return Outline(out), nil
}

// Stats describes the effect of [Simplifier.Simplify].
type Stats struct {
	ContoursBefore int
	ContoursAfter  int
	PointsBefore   int
	PointsAfter    int
}

// Simplify draws src, simplifies the recorded outline and replays the
// surviving contours into dst.
func (s *Simplifier) Simplify(ctx context.Context, src Drawer, dst Pen) (Stats, error) {
	o, err := Record(src)
	if err != nil {
		return Stats{}, fmt.Errorf("recording outline: %w", err)
	}
	simplified, err := s.Outline(ctx, o)
	if err != nil {
		return Stats{}, err
	}
	if err := simplified.Draw(dst); err != nil {
		return Stats{}, err
	}

	var stats Stats
	stats.ContoursBefore = len(o)
	stats.ContoursAfter = len(simplified)
	stats.PointsBefore, _ = PointCount(o)
	stats.PointsAfter, _ = PointCount(simplified)
	Logger().Info("simplified outline",
		"contours_before", stats.ContoursBefore,
		"contours_after", stats.ContoursAfter,
		"points_before", stats.PointsBefore,
		"points_after", stats.PointsAfter)
	return stats, nil
}
