package tracer

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	approx(t, 5.0, LineLength(pt(1, 1), pt(4, 5)), 1e-12)
	approx(t, 0.0, LineLength(pt(3, 3), pt(3, 3)), 0)
}

func TestAngle(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{1, 0, 0},
		{0, 1, 90},
		{-1, 0, 180},
		{-1, math.Copysign(0, -1), 180},
		{0, -1, -90},
		{1, 1, 45},
	}
	for _, tt := range tests {
		approx(t, tt.want, Angle(pt(0, 0), pt(tt.x, tt.y)), 1e-12)
	}
}

func TestAngleDifference(t *testing.T) {
	approx(t, 2, angleDifference(179, -179), 1e-12)
	approx(t, 2, angleDifference(-179, 179), 1e-12)
	approx(t, 180, angleDifference(0, 180), 1e-12)
	approx(t, 90, angleDifference(-90, 180), 1e-12)
	approx(t, 0, angleDifference(45, 45), 0)
}

func TestCubicArclen(t *testing.T) {
	approx(t, 3, CubicArclen(pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0)), 1e-9)
	approx(t, 0, CubicArclen(pt(2, 2), pt(2, 2), pt(2, 2), pt(2, 2)), 0)

	// Quarter circle approximation with radius 100.
	const k = 0.5522847498
	got := CubicArclen(pt(100, 0), pt(100, 100*k), pt(100*k, 100), pt(0, 100))
	approx(t, math.Pi*50, got, 0.1)

	approxGot := approxCubicArclen(pt(100, 0), pt(100, 100*k), pt(100*k, 100), pt(0, 100))
	approx(t, got, approxGot, 0.05)
}

func TestRoundHalfUp(t *testing.T) {
	for in, want := range map[float64]float64{
		1.1:  1,
		1.5:  2,
		2.5:  3,
		-0.5: 0,
		-1.5: -1,
		-1.6: -2,
	} {
		if got := roundHalfUp(in); got != want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}
