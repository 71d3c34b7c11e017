package tracer

import "math"

// FilterContourSegmentCounts returns an empty contour if c has no segments or
// fewer than minSegments of them, and c otherwise. ClosePath and EndPath don't
// count as segments.
func FilterContourSegmentCounts(c Contour, minSegments int) Contour {
	n := c.NumSegments()
	if n == 0 || n < minSegments {
		return Contour{}
	}
	return c
}

// FilterContourAreas returns an empty contour if the area enclosed by c is
// smaller than minArea, and c otherwise.
//
// The area of the bounding box is checked first. The enclosed area can never
// exceed it, so the exact area only has to be computed for contours whose
// bounding box is large enough.
func FilterContourAreas(c Contour, minArea float64) Contour {
	if len(c) == 0 {
		return Contour{}
	}
	if c.BoundingBox().Area() < minArea {
		return Contour{}
	}
	if math.Abs(c.SignedArea()) < minArea {
		return Contour{}
	}
	return c
}
