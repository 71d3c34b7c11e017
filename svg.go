package tracer

import (
	"io"

	"honnef.co/go/curve"
)

// SVG returns the SVG path data of o. Open contours are emitted without a
// closing Z.
func (o Outline) SVG(opts curve.SVGOptions) string {
	return curve.SVG(o.Elements(), opts)
}

// WriteSVG writes the SVG path data of o to w.
func (o Outline) WriteSVG(w io.Writer, opts curve.SVGOptions) error {
	return curve.WriteSVG(w, o.Elements(), opts)
}
