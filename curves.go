package tracer

import "honnef.co/go/curve"

// FilterCurveLengths replaces every CurveTo whose arc length is shorter than
// minLength with a LineTo to its end point.
//
// A curve can never be shorter than its chord, so curves whose chord already
// exceeds minLength are kept without computing their arc length.
func FilterCurveLengths(c Contour, minLength float64) Contour {
	return mapCurves(c, func(p0, p1, p2, p3 curve.Point) bool {
		if LineLength(p0, p3) > minLength {
			return false
		}
		return approxCubicArclen(p0, p1, p2, p3) < minLength
	})
}

// FilterShallowCurves replaces nearly straight CurveTo operations with LineTo
// operations. tolerance is a percentage: a curve is flattened when its chord
// is less than tolerance percent shorter than its arc. Curves with an arc
// length of zero are always flattened.
func FilterShallowCurves(c Contour, tolerance float64) Contour {
	frac := tolerance / 100
	return mapCurves(c, func(p0, p1, p2, p3 curve.Point) bool {
		arclen := CubicArclen(p0, p1, p2, p3)
		if arclen == 0 {
			return true
		}
		return 1-LineLength(p0, p3)/arclen < frac
	})
}

// mapCurves copies c, replacing each CurveTo for which flatten returns true
// with a LineTo to the curve's end point. flatten receives the curve's start
// point followed by its three points.
func mapCurves(c Contour, flatten func(p0, p1, p2, p3 curve.Point) bool) Contour {
	out := make(Contour, 0, len(c))
	var prev curve.Point
	for _, op := range c {
		switch op.Kind {
		case MoveToKind, LineToKind:
			prev = op.P0
		case CurveToKind:
			end := op.P2
			if flatten(prev, op.P0, op.P1, end) {
				op = LineTo(end)
			}
			prev = end
		}
		out = append(out, op)
	}
	return out
}
