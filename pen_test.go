package tracer

import (
	"errors"
	"testing"

	"honnef.co/go/curve"
)

func TestRecorderOutline(t *testing.T) {
	var rec Recorder
	rec.MoveTo(pt(0, 0))
	rec.LineTo(pt(10, 0))
	rec.LineTo(pt(10, 10))
	rec.ClosePath()
	rec.MoveTo(pt(20, 20))
	rec.CurveTo(pt(25, 25), pt(30, 25), pt(35, 20))
	rec.EndPath()

	got, err := rec.Outline()
	if err != nil {
		t.Fatal(err)
	}
	want := Outline{
		{MoveTo(pt(0, 0)), LineTo(pt(10, 0)), LineTo(pt(10, 10)), ClosePath()},
		{MoveTo(pt(20, 20)), CurveTo(pt(25, 25), pt(30, 25), pt(35, 20)), EndPath()},
	}
	diff(t, want, got)

	// The outline must not alias the recording.
	rec.Reset()
	rec.MoveTo(pt(99, 99))
	diff(t, want, got)
}

func TestRecorderUnterminated(t *testing.T) {
	var rec Recorder
	rec.MoveTo(pt(0, 0))
	rec.LineTo(pt(10, 0))
	rec.ClosePath()
	rec.MoveTo(pt(5, 5))
	rec.LineTo(pt(6, 6))

	_, err := rec.Outline()
	if !errors.Is(err, ErrUnterminatedContour) {
		t.Errorf("got %v, want ErrUnterminatedContour", err)
	}
}

func TestRecorderMalformed(t *testing.T) {
	var rec Recorder
	rec.LineTo(pt(10, 0))
	rec.ClosePath()

	_, err := rec.Outline()
	if !errors.Is(err, ErrMalformedContour) {
		t.Errorf("got %v, want ErrMalformedContour", err)
	}
}

func TestRecorderEmpty(t *testing.T) {
	var rec Recorder
	got, err := rec.Outline()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d contours, want 0", len(got))
	}
}

func TestReplay(t *testing.T) {
	ops := Outline{square(0, 0, 10), {MoveTo(pt(1, 1)), CurveTo(pt(2, 2), pt(3, 3), pt(4, 4)), EndPath()}}.Ops()
	var rec Recorder
	Replay(ops, &rec)
	diff(t, ops, rec.Ops)
}

func TestReplayUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Replay([]Op{{Kind: 42}}, &Recorder{})
}

func TestPointCount(t *testing.T) {
	o := Outline{
		square(0, 0, 10),
		{MoveTo(pt(0, 0)), CurveTo(pt(1, 1), pt(2, 2), pt(3, 3)), LineTo(pt(4, 4)), EndPath()},
	}
	n, err := PointCount(o)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4+5 {
		t.Errorf("got %d points, want 9", n)
	}
}

func TestTransformPen(t *testing.T) {
	var rec Recorder
	pen := TransformPen{Pen: &rec, Transform: curve.Scale(2, 3)}
	Replay(Contour{MoveTo(pt(1, 1)), CurveTo(pt(1, 2), pt(2, 2), pt(2, 1)), ClosePath()}, pen)
	want := []Op{MoveTo(pt(2, 3)), CurveTo(pt(2, 6), pt(4, 6), pt(4, 3)), ClosePath()}
	diff(t, want, rec.Ops)
}

func TestBezPathPen(t *testing.T) {
	var pen BezPathPen
	if err := square(0, 0, 10).Draw(&pen); err != nil {
		t.Fatal(err)
	}
	diff(t, square(0, 0, 10).BezPath(), pen.Path)
}
