// Package tracer turns raster glyph images into clean, editable outlines.
//
// Tracing a bitmap produces outlines with thousands of redundant points:
// duplicate points, tiny curves, nearly straight curves, staircase runs of
// lines and speckle contours. This package simplifies such outlines with a
// sequence of geometric filters, reducing them to a small set of lines and
// curves that are faithful to the traced shape.
//
// Tracing itself is done by the [honnef.co/go/tracer/trace] package, and
// glyphs of existing fonts can be read with [honnef.co/go/tracer/fontglyph].
// Geometry is provided by [honnef.co/go/curve].
//
// # Operations, contours and outlines
//
// [Op] is a single drawing operation, akin to the drawing commands of
// PostScript: [MoveTo], [LineTo], [CurveTo] (a cubic Bézier), [ClosePath] and
// [EndPath]. A [Contour] is a slice of operations starting with MoveTo and
// ending with ClosePath or EndPath, and an [Outline] is an ordered slice of
// contours.
//
// Anything implementing [Drawer] can draw itself into a [Pen]. A [Recorder]
// is a pen that records operations so that they can be split into contours,
// filtered, and replayed into another pen with [Replay].
//
// # Filters
//
// Every filter is a pure function from a contour to a new contour. A filter
// that decides to drop a contour returns an empty one.
//
//   - [FilterOverlappingPoints] removes consecutive duplicate points.
//   - [FilterSpikes] removes points where a run of lines doubles back.
//   - [FilterContourSegmentCounts] drops contours with too few segments.
//   - [FilterContourAreas] drops contours enclosing too small an area.
//   - [FilterCurveLengths] turns short curves into lines.
//   - [FilterShallowCurves] turns nearly straight curves into lines.
//   - [FilterDouglasPeucker] and [FilterVisvalingamWhyatt] simplify runs
//     of lines using the respective polyline simplification algorithms.
//   - [FilterRoundedPoints] rounds coordinates to integers.
//
// The point sequence filters operate on runs of consecutive MoveTo and LineTo
// operations. Curves and the end of the contour delimit runs and are never
// modified by them.
//
// # Simplifier
//
// [Simplifier] applies the filters enabled in [Options] in a fixed order, in
// two passes, to every contour of an outline. Contours are independent of
// each other and may be processed concurrently.
package tracer
