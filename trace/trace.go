// Package trace converts raster images into outlines.
//
// Tracing is done by potrace, as implemented by [gotrace.Trace]. The result
// is a [tracer.Outline] in the orientation used by fonts: the Y axis points
// up and the bottom left corner of the image is the origin. Traced outlines
// typically contain many more points than necessary and are meant to be
// cleaned up by a [tracer.Simplifier].
package trace

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/dennwc/gotrace"
	"github.com/disintegration/imaging"
	"honnef.co/go/curve"
	"honnef.co/go/tracer"
)

// ErrInvalidParams is wrapped by errors reporting out of range [Params].
var ErrInvalidParams = errors.New("invalid trace parameters")

// Params controls how an image is traced.
type Params struct {
	// Pixels whose luminance, in [0, 1], is below the threshold are ink.
	// Transparent pixels are treated as white.
	Threshold float64
	// Swap ink and background.
	Invert bool
	// Radius, in pixels, of a Gaussian blur applied before thresholding.
	// Blurring closes small gaps in the ink and smooths jagged edges. Zero
	// disables blurring.
	Blur float64
	// Areas of ink of at most this many pixels are ignored.
	TurdSize int
	// How far, in pixels, joined curves may deviate from the curves they
	// replace. Zero disables joining curves.
	Tolerance float64
	// Corner threshold. Smaller values produce more corners, 0 produces a
	// polygon and values above 4/3 produce no corners at all.
	AlphaMax float64
	// Transformation applied to the traced outline, after it has been
	// converted to font orientation. The zero value is treated as the
	// identity.
	Transform curve.Affine
}

// DefaultParams are the parameters used when tracing glyph images.
var DefaultParams = Params{
	Threshold: 0.2,
	TurdSize:  2,
	Tolerance: 0.2,
	AlphaMax:  1.0,
	Transform: curve.Identity,
}

func (p Params) validate() error {
	if p.Threshold < 0 || p.Threshold > 1 {
		return fmt.Errorf("%w: threshold %g not in [0, 1]", ErrInvalidParams, p.Threshold)
	}
	if p.Blur < 0 {
		return fmt.Errorf("%w: negative blur radius %g", ErrInvalidParams, p.Blur)
	}
	if p.TurdSize < 0 {
		return fmt.Errorf("%w: negative turd size %d", ErrInvalidParams, p.TurdSize)
	}
	if p.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %g", ErrInvalidParams, p.Tolerance)
	}
	if p.AlphaMax < 0 {
		return fmt.Errorf("%w: negative alpha max %g", ErrInvalidParams, p.AlphaMax)
	}
	if p.Transform.IsInf() || p.Transform.IsNaN() {
		return fmt.Errorf("%w: non-finite transform %v", ErrInvalidParams, p.Transform)
	}
	return nil
}

// Image traces img. Outer contours are followed by the holes they contain.
func Image(img image.Image, p Params) (tracer.Outline, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, nil
	}

	src := img
	if p.Blur > 0 {
		src = imaging.Blur(img, p.Blur)
	}
	bm := Bitmap(src, p.Threshold, p.Invert)
	paths, err := gotrace.Trace(bm, &gotrace.Params{
		TurdSize:     p.TurdSize,
		TurnPolicy:   gotrace.TurnMinority,
		AlphaMax:     p.AlphaMax,
		OptiCurve:    p.Tolerance > 0,
		OptTolerance: p.Tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing %dx%d image: %w", b.Dx(), b.Dy(), err)
	}

	aff := p.Transform
	if aff == (curve.Affine{}) {
		aff = curve.Identity
	}
	// Bitmap rows grow downwards, font coordinates upwards.
	flip := curve.Scale(1, -1).ThenTranslate(curve.Vec(0, float64(b.Dy())))

	var rec tracer.Recorder
	pen := tracer.TransformPen{Pen: &rec, Transform: aff.Mul(flip)}
	drawPaths(paths, pen)
	o, err := rec.Outline()
	if err != nil {
		return nil, fmt.Errorf("converting traced paths: %w", err)
	}
	tracer.Logger().Debug("traced image",
		"width", b.Dx(),
		"height", b.Dy(),
		"contours", len(o))
	return o, nil
}

// Bitmap converts img to a potrace bitmap. Pixel (0, 0) of the bitmap is the
// top left pixel of img, regardless of img's bounds.
func Bitmap(img image.Image, threshold float64, invert bool) *gotrace.Bitmap {
	b := img.Bounds()
	bm := gotrace.NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			ink := luminance(img.At(b.Min.X+x, b.Min.Y+y)) < threshold
			bm.Set(x, y, ink != invert)
		}
	}
	return bm
}

// luminance returns the luminance of c composited over white, in [0, 1].
func luminance(c color.Color) float64 {
	r, g, b, a := c.RGBA()
	bg := 0xffff - a
	r, g, b = r+bg, g+bg, b+bg
	// Same coefficients as color.GrayModel.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return float64(y) / 0xffff
}

// drawPaths draws each path followed by its children.
func drawPaths(paths []gotrace.Path, pen tracer.Pen) {
	for _, path := range paths {
		drawPath(path.Curve, pen)
		drawPaths(path.Childs, pen)
	}
}

// drawPath draws a single closed potrace curve. A curve starts where its
// last segment ends. Corner segments are two lines meeting at a vertex.
func drawPath(segs []gotrace.Segment, pen tracer.Pen) {
	if len(segs) == 0 {
		return
	}
	start := toPoint(segs[len(segs)-1].Pnt[2])
	pen.MoveTo(start)
	for i, seg := range segs {
		last := i == len(segs)-1
		switch seg.Type {
		case gotrace.TypeCorner:
			pen.LineTo(toPoint(seg.Pnt[1]))
			// ClosePath draws the final line back to the start.
			if !last {
				pen.LineTo(toPoint(seg.Pnt[2]))
			}
		case gotrace.TypeBezier:
			pen.CurveTo(toPoint(seg.Pnt[0]), toPoint(seg.Pnt[1]), toPoint(seg.Pnt[2]))
		default:
			panic(fmt.Sprintf("unhandled segment type %d", seg.Type))
		}
	}
	pen.ClosePath()
}

func toPoint(p gotrace.Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}
