package tracer

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"honnef.co/go/curve"
)

// FilterOverlappingPoints removes every operation whose end point is identical
// to the end point of the operation before it. ClosePath and EndPath are
// always kept.
func FilterOverlappingPoints(c Contour) Contour {
	out := make(Contour, 0, len(c))
	var prev curve.Point
	havePrev := false
	for _, op := range c {
		if pt, ok := op.EndPoint(); ok {
			if havePrev && pt == prev {
				continue
			}
			prev = pt
			havePrev = true
		}
		out = append(out, op)
	}
	return out
}

// FilterRoundedPoints rounds every coordinate of every operation, including
// control points, to the nearest integer.
func FilterRoundedPoints(c Contour) Contour {
	out := make(Contour, len(c))
	for i, op := range c {
		out[i] = op.Map(roundPoint)
	}
	return out
}

// FilterSpikes removes points at which a run of lines reverses direction.
// A point is a spike if the angles of the edges arriving from its predecessor
// and from its successor differ by less than tolerance degrees.
func FilterSpikes(c Contour, tolerance float64) Contour {
	return filterLineRuns(c, func(pts []curve.Point) []curve.Point {
		return removeSpikes(pts, tolerance)
	})
}

// FilterDouglasPeucker simplifies runs of lines with the Douglas-Peucker
// algorithm. Points closer than tolerance to the simplified polyline are
// removed.
func FilterDouglasPeucker(c Contour, tolerance float64) Contour {
	s := simplify.DouglasPeucker(tolerance)
	return filterLineRuns(c, func(pts []curve.Point) []curve.Point {
		return fromLineString(s.LineString(toLineString(pts)))
	})
}

// FilterVisvalingamWhyatt simplifies runs of lines with the Visvalingam-Whyatt
// algorithm. Points forming triangles with an area of at most tolerance with
// their neighbours are removed.
func FilterVisvalingamWhyatt(c Contour, tolerance float64) Contour {
	s := simplify.VisvalingamThreshold(tolerance)
	return filterLineRuns(c, func(pts []curve.Point) []curve.Point {
		return fromLineString(s.LineString(toLineString(pts)))
	})
}

// filterLineRuns applies fn to the points of every maximal run of MoveTo and
// LineTo operations in c. Runs of one or two operations are left alone. The
// first operation of a rewritten run keeps its kind, all following points
// become LineTo. Every other operation ends the current run and is copied
// unchanged.
func filterLineRuns(c Contour, fn func([]curve.Point) []curve.Point) Contour {
	out := make(Contour, 0, len(c))
	var run []Op
	flush := func() {
		if len(run) <= 2 {
			out = append(out, run...)
			run = run[:0]
			return
		}
		pts := make([]curve.Point, len(run))
		for i, op := range run {
			pts[i] = op.P0
		}
		pts = fn(pts)
		for i, pt := range pts {
			if i == 0 {
				out = append(out, Op{Kind: run[0].Kind, P0: pt})
			} else {
				out = append(out, LineTo(pt))
			}
		}
		run = run[:0]
	}
	for _, op := range c {
		switch op.Kind {
		case MoveToKind, LineToKind:
			run = append(run, op)
		default:
			flush()
			out = append(out, op)
		}
	}
	flush()
	return out
}

// removeSpikes repeatedly removes the first spike in pts until there are none
// left or at most three points remain. The predecessor of the first point is
// the last point; the last point itself is never tested.
func removeSpikes(pts []curve.Point, tolerance float64) []curve.Point {
	out := pts
	for len(out) > 3 {
		i := findSpike(out, tolerance)
		if i < 0 {
			break
		}
		next := make([]curve.Point, 0, len(out)-1)
		next = append(next, out[:i]...)
		next = append(next, out[i+1:]...)
		out = next
	}
	return out
}

func findSpike(pts []curve.Point, tolerance float64) int {
	prev := pts[len(pts)-1]
	for i := 0; i < len(pts)-1; i++ {
		pt, next := pts[i], pts[i+1]
		if angleDifference(Angle(prev, pt), Angle(next, pt)) < tolerance {
			return i
		}
		prev = pt
	}
	return -1
}

func toLineString(pts []curve.Point) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, pt := range pts {
		ls[i] = orb.Point{pt.X, pt.Y}
	}
	return ls
}

func fromLineString(ls orb.LineString) []curve.Point {
	pts := make([]curve.Point, len(ls))
	for i, pt := range ls {
		pts[i] = curve.Pt(pt.X(), pt.Y())
	}
	return pts
}
