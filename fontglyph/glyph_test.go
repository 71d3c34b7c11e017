package fontglyph

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
	"honnef.co/go/tracer"
)

func goRegular(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLoad(t *testing.T) {
	f := goRegular(t)
	g, err := Load(f, 'O')
	if err != nil {
		t.Fatal(err)
	}
	o := g.Outline()
	if len(o) != 2 {
		t.Fatalf("got %d contours, want 2", len(o))
	}
	for i, c := range o {
		if err := c.Validate(); err != nil {
			t.Errorf("contour %d: %v", i, err)
		}
		if !c.Closed() {
			t.Errorf("contour %d isn't closed", i)
		}
		for _, op := range c {
			if op.Kind == tracer.LineToKind && op.P0 == c[0].P0 {
				t.Errorf("contour %d ends with an explicit line to its start", i)
			}
		}
	}

	// Y points up: the letter sits on the baseline.
	bbox := o.BoundingBox()
	if bbox.Y1 <= 0 || bbox.Y0 < -100 {
		t.Errorf("unexpected bounding box %v", bbox)
	}
	if bbox.X1 > g.Advance() || g.Advance() <= 0 {
		t.Errorf("advance %g doesn't fit bounding box %v", g.Advance(), bbox)
	}
	if g.UnitsPerEm() != int(f.UnitsPerEm()) {
		t.Errorf("got %d units per em, want %d", g.UnitsPerEm(), f.UnitsPerEm())
	}
	if name := g.Name(); name != "" && name != "O" {
		t.Errorf("got name %q, want %q", name, "O")
	}
}

func TestLoadMissingGlyph(t *testing.T) {
	_, err := Load(goRegular(t), '\U0001F600')
	if !errors.Is(err, ErrNoGlyph) {
		t.Errorf("got %v, want ErrNoGlyph", err)
	}
}

func TestLoadEmptyGlyph(t *testing.T) {
	g, err := Load(goRegular(t), ' ')
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Outline()) != 0 {
		t.Errorf("got %d contours, want 0", len(g.Outline()))
	}
	if g.Advance() <= 0 {
		t.Errorf("got advance %g, want > 0", g.Advance())
	}
}

func TestSimplifyGlyph(t *testing.T) {
	g, err := Load(goRegular(t), 'B')
	if err != nil {
		t.Fatal(err)
	}
	var rec tracer.Recorder
	stats, err := tracer.NewSimplifier(tracer.DefaultOptions).Simplify(context.Background(), g, &rec)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ContoursAfter != stats.ContoursBefore {
		t.Errorf("lost contours: %+v", stats)
	}
	if stats.PointsAfter > stats.PointsBefore {
		t.Errorf("simplification added points: %+v", stats)
	}
	if _, err := rec.Outline(); err != nil {
		t.Error(err)
	}
}

func TestConvertSegments(t *testing.T) {
	pt := func(x, y int) fixed.Point26_6 { return fixed.P(x, y) }
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{pt(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(0, -30)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{pt(15, -60), pt(30, -30)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(30, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{pt(0, 0)}},
	}
	got, err := convertSegments(segs)
	if err != nil {
		t.Fatal(err)
	}
	want := tracer.Outline{{
		tracer.MoveTo(curve.Pt(0, 0)),
		tracer.LineTo(curve.Pt(0, 30)),
		tracer.CurveTo(curve.Pt(10, 50), curve.Pt(20, 50), curve.Pt(30, 30)),
		tracer.LineTo(curve.Pt(30, 0)),
		tracer.ClosePath(),
	}}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestSimplifyGlyphsIdempotent(t *testing.T) {
	f := goRegular(t)
	s := tracer.NewSimplifier(tracer.DefaultOptions)
	for r := '!'; r <= '~'; r++ {
		g, err := Load(f, r)
		if err != nil {
			t.Fatalf("%q: %v", r, err)
		}
		once, err := s.Outline(context.Background(), g.Outline())
		if err != nil {
			t.Fatalf("%q: %v", r, err)
		}
		twice, err := s.Outline(context.Background(), once)
		if err != nil {
			t.Fatalf("%q: %v", r, err)
		}
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("%q changed when simplified again:\n%s", r, d)
		}
	}
}
