package tracer

import (
	"math"

	"honnef.co/go/curve"
)

const (
	// Accuracy used when an arc length is only compared against a threshold.
	approxArclenAccuracy = 1e-2
	// Accuracy used when an arc length feeds into a ratio.
	arclenAccuracy = 1e-6
)

// LineLength returns the euclidean distance between p1 and p2.
func LineLength(p1, p2 curve.Point) float64 {
	return p1.Distance(p2)
}

// Angle returns the angle of the vector from p1 to p2, in degrees, in the
// range (-180, 180].
func Angle(p1, p2 curve.Point) float64 {
	a := p2.Sub(p1).Angle() * 180 / math.Pi
	if a <= -180 {
		a += 360
	}
	return a
}

// angleDifference returns the absolute difference between two angles in
// degrees, in the range [0, 180].
func angleDifference(a1, a2 float64) float64 {
	d := math.Abs(math.Mod(a1-a2, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// CubicArclen returns the arc length of the cubic Bézier defined by p0, p1,
// p2 and p3.
func CubicArclen(p0, p1, p2, p3 curve.Point) float64 {
	return curve.CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}.Arclen(arclenAccuracy)
}

// approxCubicArclen is like CubicArclen but trades accuracy for speed.
func approxCubicArclen(p0, p1, p2, p3 curve.Point) float64 {
	return curve.CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}.Arclen(approxArclenAccuracy)
}

// roundHalfUp rounds v to the nearest integer, rounding halves towards
// positive infinity. This matches the rounding used by font compilers, which
// differs from math.Round for negative halves.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundPoint(pt curve.Point) curve.Point {
	return curve.Pt(roundHalfUp(pt.X), roundHalfUp(pt.Y))
}
