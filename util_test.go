package tracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var pt = curve.Pt

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, want, got, margin float64) {
	t.Helper()
	diff(t, want, got, cmpopts.EquateApprox(0, margin))
}

func square(x, y, size float64) Contour {
	return Contour{
		MoveTo(pt(x, y)),
		LineTo(pt(x, y+size)),
		LineTo(pt(x+size, y+size)),
		LineTo(pt(x+size, y)),
		ClosePath(),
	}
}
