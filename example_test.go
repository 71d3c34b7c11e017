package tracer_test

import (
	"context"
	"fmt"

	"honnef.co/go/curve"
	"honnef.co/go/tracer"
)

func ExampleSimplifier_Contour() {
	c := tracer.Contour{
		tracer.MoveTo(curve.Pt(0, 0)),
		tracer.LineTo(curve.Pt(0, 0)),
		tracer.LineTo(curve.Pt(0, 50)),
		tracer.LineTo(curve.Pt(0, 100)),
		tracer.LineTo(curve.Pt(100, 100)),
		tracer.LineTo(curve.Pt(100, 0.4)),
		tracer.ClosePath(),
	}
	s := tracer.NewSimplifier(tracer.DefaultOptions)
	out, err := s.Contour(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(tracer.Outline{out}.SVG(curve.SVGOptions{}))
	// Output:
	// M0,0 L0,100 L100,100 L100,0 Z
}

func ExampleSimplifier_Simplify() {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.LineTo(curve.Pt(0, 200))
	p.LineTo(curve.Pt(200, 200))
	p.LineTo(curve.Pt(200, 0))
	p.ClosePath()
	// A speck that is too small to keep.
	p.MoveTo(curve.Pt(300, 300))
	p.LineTo(curve.Pt(303, 300))
	p.LineTo(curve.Pt(303, 303))
	p.ClosePath()

	src, err := tracer.FromBezPath(p)
	if err != nil {
		panic(err)
	}
	var dst tracer.BezPathPen
	stats, err := tracer.NewSimplifier(tracer.DefaultOptions).Simplify(context.Background(), src, &dst)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d of %d contours kept\n", stats.ContoursAfter, stats.ContoursBefore)
	fmt.Println(curve.SVG(dst.Path.Elements(), curve.SVGOptions{}))
	// Output:
	// 1 of 2 contours kept
	// M0,0 L0,200 L200,200 L200,0 Z
}
