package main

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"honnef.co/go/curve"
)

// writeSVG writes glyphs as an SVG document, placing each glyph at the
// advance of the one before it. Outlines are in font orientation and are
// flipped vertically for display.
func writeSVG(w io.Writer, glyphs []glyph) error {
	bw := bufio.NewWriter(w)

	var (
		bbox  curve.Rect
		empty = true
		x     float64
	)
	for _, g := range glyphs {
		if len(g.outline) > 0 {
			b := g.outline.BoundingBox()
			b = curve.Rect{X0: b.X0 + x, Y0: b.Y0, X1: b.X1 + x, Y1: b.Y1}
			if empty {
				bbox = b
				empty = false
			} else {
				bbox = bbox.Union(b)
			}
		}
		x += g.advance
	}
	bbox.X0 = min(bbox.X0, 0)
	bbox.X1 = max(bbox.X1, x)

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		bbox.X0, -bbox.Y1, bbox.Width(), bbox.Height())
	fmt.Fprintln(bw, `<g transform="scale(1 -1)">`)
	x = 0
	for _, g := range glyphs {
		fmt.Fprintf(bw, "<!-- %s: %d contours, %d points (%d before simplification) -->\n",
			html.EscapeString(strings.ReplaceAll(g.name, "--", "- -")), g.stats.ContoursAfter, g.stats.PointsAfter, g.stats.PointsBefore)
		if len(g.outline) > 0 {
			fmt.Fprintf(bw, `<path transform="translate(%g 0)" d="`, x)
			if err := g.outline.WriteSVG(bw, curve.SVGOptions{}); err != nil {
				return err
			}
			fmt.Fprintln(bw, `"/>`)
		}
		x += g.advance
	}
	fmt.Fprintln(bw, "</g>")
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
