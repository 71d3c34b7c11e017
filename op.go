package tracer

import (
	"fmt"

	"honnef.co/go/curve"
)

// OpKind identifies the drawing command stored in an [Op].
type OpKind int

const (
	// Move to the point without drawing anything, starting a new contour.
	MoveToKind OpKind = iota + 1
	// Draw a line from the current point to the point.
	LineToKind
	// Draw a cubic Bézier from the current point using two control points and
	// an end point.
	CurveToKind
	// Close the contour, implicitly drawing a line back to its start.
	ClosePathKind
	// End an open contour.
	EndPathKind
)

func (k OpKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CurveToKind:
		return "CurveTo"
	case ClosePathKind:
		return "ClosePath"
	case EndPathKind:
		return "EndPath"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single drawing operation. It acts as a tagged union over the five
// operations a [Pen] understands.
//
// MoveTo and LineTo store their point in P0. CurveTo stores the first control
// point in P0, the second control point in P1 and the end point in P2.
// ClosePath and EndPath carry no points.
type Op struct {
	Kind OpKind
	P0   curve.Point
	P1   curve.Point
	P2   curve.Point
}

func MoveTo(pt curve.Point) Op {
	return Op{Kind: MoveToKind, P0: pt}
}

func LineTo(pt curve.Point) Op {
	return Op{Kind: LineToKind, P0: pt}
}

func CurveTo(c1, c2, pt curve.Point) Op {
	return Op{Kind: CurveToKind, P0: c1, P1: c2, P2: pt}
}

func ClosePath() Op {
	return Op{Kind: ClosePathKind}
}

func EndPath() Op {
	return Op{Kind: EndPathKind}
}

func (op Op) String() string {
	switch op.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", op.Kind, op.P0)
	case CurveToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", op.Kind, op.P0, op.P1, op.P2)
	default:
		return op.Kind.String() + "()"
	}
}

// IsTerminal reports whether op ends a contour.
func (op Op) IsTerminal() bool {
	return op.Kind == ClosePathKind || op.Kind == EndPathKind
}

// EndPoint returns the point the pen is at after op has been drawn. It returns
// false for ClosePath and EndPath.
func (op Op) EndPoint() (curve.Point, bool) {
	switch op.Kind {
	case MoveToKind, LineToKind:
		return op.P0, true
	case CurveToKind:
		return op.P2, true
	default:
		return curve.Point{}, false
	}
}

// NumPoints returns the number of points op carries.
func (op Op) NumPoints() int {
	switch op.Kind {
	case MoveToKind, LineToKind:
		return 1
	case CurveToKind:
		return 3
	default:
		return 0
	}
}

// Map returns a copy of op with fn applied to each of its points.
func (op Op) Map(fn func(curve.Point) curve.Point) Op {
	switch op.Kind {
	case MoveToKind, LineToKind:
		op.P0 = fn(op.P0)
	case CurveToKind:
		op.P0 = fn(op.P0)
		op.P1 = fn(op.P1)
		op.P2 = fn(op.P2)
	}
	return op
}

// Transform returns op with an affine transformation applied to its points.
func (op Op) Transform(aff curve.Affine) Op {
	return op.Map(func(pt curve.Point) curve.Point { return pt.Transform(aff) })
}

func (op Op) isInvalidPoint() bool {
	bad := false
	op.Map(func(pt curve.Point) curve.Point {
		if pt.IsInf() || pt.IsNaN() {
			bad = true
		}
		return pt
	})
	return bad
}
