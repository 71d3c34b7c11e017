package tracer

import (
	"fmt"

	"honnef.co/go/curve"
)

// Pen consumes drawing operations. It is the destination of [Replay] and of
// every [Drawer].
type Pen interface {
	MoveTo(pt curve.Point)
	LineTo(pt curve.Point)
	CurveTo(c1, c2, pt curve.Point)
	ClosePath()
	EndPath()
}

// Drawer is implemented by anything that can draw itself into a [Pen], such
// as glyphs loaded from a font or traced images.
type Drawer interface {
	Draw(pen Pen) error
}

// Replay draws ops into pen, in order.
func Replay(ops []Op, pen Pen) {
	for _, op := range ops {
		switch op.Kind {
		case MoveToKind:
			pen.MoveTo(op.P0)
		case LineToKind:
			pen.LineTo(op.P0)
		case CurveToKind:
			pen.CurveTo(op.P0, op.P1, op.P2)
		case ClosePathKind:
			pen.ClosePath()
		case EndPathKind:
			pen.EndPath()
		default:
			panic(fmt.Sprintf("unhandled op kind %v", op.Kind))
		}
	}
}

// Recorder is a [Pen] that records every operation it receives. The zero
// value is ready to use.
type Recorder struct {
	Ops []Op
}

var _ Pen = (*Recorder)(nil)

func (r *Recorder) MoveTo(pt curve.Point)          { r.Ops = append(r.Ops, MoveTo(pt)) }
func (r *Recorder) LineTo(pt curve.Point)          { r.Ops = append(r.Ops, LineTo(pt)) }
func (r *Recorder) CurveTo(c1, c2, pt curve.Point) { r.Ops = append(r.Ops, CurveTo(c1, c2, pt)) }
func (r *Recorder) ClosePath()                     { r.Ops = append(r.Ops, ClosePath()) }
func (r *Recorder) EndPath()                       { r.Ops = append(r.Ops, EndPath()) }

// Reset discards all recorded operations.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Outline splits the recording into contours and validates each of them.
func (r *Recorder) Outline() (Outline, error) {
	o := r.contours()
	if n := len(o); n > 0 && !o[n-1][len(o[n-1])-1].IsTerminal() {
		return nil, fmt.Errorf("contour %d: %w", n-1, ErrUnterminatedContour)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// contours splits the recording after every ClosePath and EndPath. The
// contours share no memory with r.Ops.
func (r *Recorder) contours() Outline {
	var o Outline
	start := 0
	for i, op := range r.Ops {
		if op.IsTerminal() {
			o = append(o, Contour(append([]Op(nil), r.Ops[start:i+1]...)))
			start = i + 1
		}
	}
	if start < len(r.Ops) {
		o = append(o, Contour(append([]Op(nil), r.Ops[start:]...)))
	}
	return o
}

// Record draws d into a new [Recorder] and returns the recorded outline.
func Record(d Drawer) (Outline, error) {
	var rec Recorder
	if err := d.Draw(&rec); err != nil {
		return nil, err
	}
	return rec.Outline()
}

// CountPen is a [Pen] that counts points: one for every MoveTo and LineTo,
// three for every CurveTo.
type CountPen struct {
	Points int
}

var _ Pen = (*CountPen)(nil)

func (p *CountPen) MoveTo(curve.Point)          { p.Points++ }
func (p *CountPen) LineTo(curve.Point)          { p.Points++ }
func (p *CountPen) CurveTo(_, _, _ curve.Point) { p.Points += 3 }
func (p *CountPen) ClosePath()                  {}
func (p *CountPen) EndPath()                    {}

// PointCount returns the number of points d draws, as counted by [CountPen].
func PointCount(d Drawer) (int, error) {
	var pen CountPen
	if err := d.Draw(&pen); err != nil {
		return 0, err
	}
	return pen.Points, nil
}

// BezPathPen is a [Pen] that builds a [curve.BezPath]. EndPath leaves the
// current subpath open.
type BezPathPen struct {
	Path curve.BezPath
}

var _ Pen = (*BezPathPen)(nil)

func (p *BezPathPen) MoveTo(pt curve.Point)          { p.Path.MoveTo(pt) }
func (p *BezPathPen) LineTo(pt curve.Point)          { p.Path.LineTo(pt) }
func (p *BezPathPen) CurveTo(c1, c2, pt curve.Point) { p.Path.CubicTo(c1, c2, pt) }
func (p *BezPathPen) ClosePath()                     { p.Path.ClosePath() }
func (p *BezPathPen) EndPath()                       {}

// TransformPen applies an affine transformation to every point before
// passing it on to Pen.
type TransformPen struct {
	Pen       Pen
	Transform curve.Affine
}

var _ Pen = TransformPen{}

func (p TransformPen) MoveTo(pt curve.Point) { p.Pen.MoveTo(pt.Transform(p.Transform)) }
func (p TransformPen) LineTo(pt curve.Point) { p.Pen.LineTo(pt.Transform(p.Transform)) }
func (p TransformPen) CurveTo(c1, c2, pt curve.Point) {
	p.Pen.CurveTo(c1.Transform(p.Transform), c2.Transform(p.Transform), pt.Transform(p.Transform))
}
func (p TransformPen) ClosePath() { p.Pen.ClosePath() }
func (p TransformPen) EndPath()   { p.Pen.EndPath() }
