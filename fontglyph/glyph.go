// Package fontglyph reads glyph outlines from OpenType and TrueType fonts so
// that they can be fed to a [tracer.Simplifier].
//
// Outlines are returned in font units with the Y axis pointing up, the
// orientation used by font editors.
package fontglyph

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/curve"
	"honnef.co/go/tracer"
)

// ErrNoGlyph is returned by [Load] when the font has no glyph for a rune.
var ErrNoGlyph = errors.New("no glyph for rune")

// Glyph is the outline of a single glyph.
type Glyph struct {
	Rune  rune
	Index sfnt.GlyphIndex

	name       string
	advance    float64
	unitsPerEm int
	outline    tracer.Outline
}

// Load loads the glyph that f maps r to.
func Load(f *sfnt.Font, r rune) (*Glyph, error) {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%q: %w", r, ErrNoGlyph)
	}

	upem := int(f.UnitsPerEm())
	// With ppem equal to units per em, coordinates are in font units.
	ppem := fixed.I(upem)
	segs, err := f.LoadGlyph(&buf, idx, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph %d for %q: %w", idx, r, err)
	}
	outline, err := convertSegments(segs)
	if err != nil {
		return nil, fmt.Errorf("glyph %d for %q: %w", idx, r, err)
	}

	adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("advance of glyph %d for %q: %w", idx, r, err)
	}
	// Not every font has glyph names.
	name, _ := f.GlyphName(&buf, idx)

	g := &Glyph{
		Rune:       r,
		Index:      idx,
		name:       name,
		advance:    fixedToFloat64(adv),
		unitsPerEm: upem,
		outline:    outline,
	}
	tracer.Logger().Debug("loaded glyph",
		"rune", string(r),
		"index", int(idx),
		"name", name,
		"contours", len(outline))
	return g, nil
}

// Draw implements [tracer.Drawer].
func (g *Glyph) Draw(pen tracer.Pen) error {
	return g.outline.Draw(pen)
}

// Outline returns the glyph's contours. The result must not be modified.
func (g *Glyph) Outline() tracer.Outline { return g.outline }

// Advance returns the horizontal advance in font units.
func (g *Glyph) Advance() float64 { return g.advance }

// Name returns the glyph's name, or the empty string if the font doesn't name
// its glyphs.
func (g *Glyph) Name() string { return g.name }

// UnitsPerEm returns the units per em of the font the glyph was loaded from.
func (g *Glyph) UnitsPerEm() int { return g.unitsPerEm }

// convertSegments turns sfnt segments into closed contours. sfnt draws the
// closing segment of each contour explicitly; when that segment is a line it
// is replaced by ClosePath.
func convertSegments(segs sfnt.Segments) (tracer.Outline, error) {
	var (
		rec   tracer.Recorder
		open  bool
		start curve.Point
		last  curve.Point
	)
	closeContour := func() {
		if !open {
			return
		}
		if n := len(rec.Ops); n > 0 && rec.Ops[n-1].Kind == tracer.LineToKind && rec.Ops[n-1].P0 == start {
			rec.Ops = rec.Ops[:n-1]
		}
		rec.ClosePath()
		open = false
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			start = toPoint(seg.Args[0])
			last = start
			rec.MoveTo(start)
			open = true
		case sfnt.SegmentOpLineTo:
			last = toPoint(seg.Args[0])
			rec.LineTo(last)
		case sfnt.SegmentOpQuadTo:
			c := curve.QuadBez{P0: last, P1: toPoint(seg.Args[0]), P2: toPoint(seg.Args[1])}.Raise()
			rec.CurveTo(c.P1, c.P2, c.P3)
			last = c.P3
		case sfnt.SegmentOpCubeTo:
			last = toPoint(seg.Args[2])
			rec.CurveTo(toPoint(seg.Args[0]), toPoint(seg.Args[1]), last)
		default:
			return nil, fmt.Errorf("unknown segment op %d", seg.Op)
		}
	}
	closeContour()
	return rec.Outline()
}

// toPoint converts an sfnt coordinate, whose Y axis points down, to a point
// with the Y axis pointing up.
func toPoint(p fixed.Point26_6) curve.Point {
	return curve.Pt(fixedToFloat64(p.X), -fixedToFloat64(p.Y))
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
