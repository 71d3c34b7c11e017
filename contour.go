package tracer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"honnef.co/go/curve"
)

var (
	// ErrMalformedContour is wrapped by all errors reporting a contour that
	// violates the structural invariants of [Contour].
	ErrMalformedContour = errors.New("malformed contour")
	// ErrUnterminatedContour is returned by [Recorder.Outline] when the
	// recording ends in the middle of a contour.
	ErrUnterminatedContour = errors.New("unterminated contour")
)

// Contour is a single closed or open subpath: one MoveTo, any number of
// LineTo and CurveTo operations, and one ClosePath or EndPath.
//
// Contours are treated as values. None of the functions in this package modify
// a contour passed to them.
type Contour []Op

// Validate checks the structural invariants of c. The returned error wraps
// [ErrMalformedContour].
func (c Contour) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: empty", ErrMalformedContour)
	}
	if c[0].Kind != MoveToKind {
		return fmt.Errorf("%w: starts with %s, not MoveTo", ErrMalformedContour, c[0].Kind)
	}
	last := len(c) - 1
	if !c[last].IsTerminal() {
		return fmt.Errorf("%w: ends with %s, not ClosePath or EndPath", ErrMalformedContour, c[last].Kind)
	}
	for i, op := range c {
		switch op.Kind {
		case MoveToKind:
			if i != 0 {
				return fmt.Errorf("%w: op %d: MoveTo inside contour", ErrMalformedContour, i)
			}
		case LineToKind, CurveToKind:
		case ClosePathKind, EndPathKind:
			if i != last {
				return fmt.Errorf("%w: op %d: %s before end of contour", ErrMalformedContour, i, op.Kind)
			}
		default:
			return fmt.Errorf("%w: op %d: unknown kind %s", ErrMalformedContour, i, op.Kind)
		}
		if op.isInvalidPoint() {
			return fmt.Errorf("%w: op %d: %s has a non-finite coordinate", ErrMalformedContour, i, op)
		}
	}
	return nil
}

// Closed reports whether c ends with ClosePath.
func (c Contour) Closed() bool {
	return len(c) > 0 && c[len(c)-1].Kind == ClosePathKind
}

// Draw implements [Drawer].
func (c Contour) Draw(pen Pen) error {
	Replay(c, pen)
	return nil
}

// NumSegments returns the number of operations in c that aren't ClosePath or
// EndPath.
func (c Contour) NumSegments() int {
	n := 0
	for _, op := range c {
		if !op.IsTerminal() {
			n++
		}
	}
	return n
}

// Elements returns c as a sequence of curve path elements. EndPath has no
// equivalent and is skipped.
func (c Contour) Elements() iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for _, op := range c {
			var el curve.PathElement
			switch op.Kind {
			case MoveToKind:
				el = curve.MoveTo(op.P0)
			case LineToKind:
				el = curve.LineTo(op.P0)
			case CurveToKind:
				el = curve.CubicTo(op.P0, op.P1, op.P2)
			case ClosePathKind:
				el = curve.ClosePath()
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// BezPath converts c to a [curve.BezPath].
func (c Contour) BezPath() curve.BezPath {
	return slices.Collect(c.Elements())
}

// BoundingBox returns the tight bounding box of c, including curve extrema.
// A contour without segments has a zero-sized box at its start point.
func (c Contour) BoundingBox() curve.Rect {
	p := c.BezPath()
	if !p.HasSegments() {
		for _, op := range c {
			if pt, ok := op.EndPoint(); ok {
				return curve.NewRectFromPoints(pt, pt)
			}
		}
		return curve.Rect{}
	}
	return p.BoundingBox()
}

// SignedArea returns the area enclosed by c. Open contours are treated as if
// they were closed.
func (c Contour) SignedArea() float64 {
	p := c.BezPath()
	if !c.Closed() {
		p.ClosePath()
	}
	return p.SignedArea()
}

// Outline is an ordered sequence of contours, such as all contours of a glyph.
type Outline []Contour

// Draw implements [Drawer].
func (o Outline) Draw(pen Pen) error {
	for _, c := range o {
		Replay(c, pen)
	}
	return nil
}

// Validate validates every contour in o.
func (o Outline) Validate() error {
	for i, c := range o {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
	}
	return nil
}

// Ops returns all operations of o as a single flat slice.
func (o Outline) Ops() []Op {
	var n int
	for _, c := range o {
		n += len(c)
	}
	out := make([]Op, 0, n)
	for _, c := range o {
		out = append(out, c...)
	}
	return out
}

// Elements returns the path elements of all contours in o.
func (o Outline) Elements() iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		for _, c := range o {
			for el := range c.Elements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// BezPath converts o to a single [curve.BezPath] with one subpath per contour.
func (o Outline) BezPath() curve.BezPath {
	return slices.Collect(o.Elements())
}

// BoundingBox returns the union of the bounding boxes of all contours.
func (o Outline) BoundingBox() curve.Rect {
	var bbox curve.Rect
	for i, c := range o {
		if i == 0 {
			bbox = c.BoundingBox()
		} else {
			bbox = bbox.Union(c.BoundingBox())
		}
	}
	return bbox
}

// Transform returns a copy of o with an affine transformation applied.
func (o Outline) Transform(aff curve.Affine) Outline {
	out := make(Outline, len(o))
	for i, c := range o {
		nc := make(Contour, len(c))
		for j, op := range c {
			nc[j] = op.Transform(aff)
		}
		out[i] = nc
	}
	return out
}

// FromBezPath converts a Bézier path into an outline. Quadratic Béziers are
// raised to cubics, and subpaths that aren't closed end in EndPath. Drawing
// commands that follow a ClosePath without a new MoveTo are reported as
// malformed.
func FromBezPath(p curve.BezPath) (Outline, error) {
	var rec Recorder
	open := false
	var last curve.Point
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				rec.EndPath()
			}
			rec.MoveTo(el.P0)
			open = true
			last = el.P0
		case curve.LineToKind:
			rec.LineTo(el.P0)
			last = el.P0
		case curve.QuadToKind:
			c := curve.QuadBez{P0: last, P1: el.P0, P2: el.P1}.Raise()
			rec.CurveTo(c.P1, c.P2, c.P3)
			last = el.P1
		case curve.CubicToKind:
			rec.CurveTo(el.P0, el.P1, el.P2)
			last = el.P2
		case curve.ClosePathKind:
			if open {
				rec.ClosePath()
				open = false
			}
		}
	}
	if open {
		rec.EndPath()
	}
	return rec.Outline()
}
