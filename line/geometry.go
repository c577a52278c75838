package line

import (
	"math"

	"github.com/goki/kage/geom"
)

// segment is one control-point pair considered for crossing tests.
type segment struct {
	A, B geom.Point
}

// GetControlSegments returns the consecutive point pairs that define a
// stroke's shape. A non-zero Opt collapses the stroke to a single segment
// from Point1 to Point2, matching strokes whose opt field marks them for
// simple straight-line treatment regardless of their declared kind.
func (s Stroke) GetControlSegments() []segment {
	if s.Type.Opt != 0 {
		return []segment{{s.Point1, s.Point2}}
	}
	switch s.Type.Kind {
	case StraightLine:
		return []segment{{s.Point1, s.Point2}}
	case Curve, BendLine, OtsuCurve:
		return []segment{{s.Point1, s.Point2}, {s.Point2, s.Point3}}
	case ComplexCurve, VerticalSlash:
		return []segment{{s.Point1, s.Point2}, {s.Point2, s.Point3}, {s.Point3, s.Point4}}
	default:
		return nil
	}
}

// IsCross reports whether any of the stroke's control segments crosses the
// segment from a to b.
func (s Stroke) IsCross(a, b geom.Point) bool {
	for _, seg := range s.GetControlSegments() {
		if geom.IsCross(seg.A, seg.B, a, b) {
			return true
		}
	}
	return false
}

// IsCrossBox reports whether any of the stroke's control segments crosses
// the box whose opposite corners are d1 and d2.
func (s Stroke) IsCrossBox(d1, d2 geom.Point) bool {
	for _, seg := range s.GetControlSegments() {
		if geom.IsCrossBox(seg.A, seg.B, d1, d2) {
			return true
		}
	}
	return false
}

// GetBox returns the axis-aligned bounding box of the stroke's control
// points. When Opt is non-zero all four points are considered regardless
// of kind, whereas GetControlSegments then uses only Point1-Point2.
func (s Stroke) GetBox() (min, max geom.Point) {
	min = geom.NewPointNoFlag(math.Inf(1), math.Inf(1))
	max = geom.NewPointNoFlag(math.Inf(-1), math.Inf(-1))

	consider := func(p geom.Point) {
		min = geom.NewPointNoFlag(math.Min(min.X, p.X), math.Min(min.Y, p.Y))
		max = geom.NewPointNoFlag(math.Max(max.X, p.X), math.Max(max.Y, p.Y))
	}

	if s.Type.Opt != 0 {
		consider(s.Point1)
		consider(s.Point2)
		consider(s.Point3)
		consider(s.Point4)
		return min, max
	}

	consider(s.Point1)
	consider(s.Point2)
	switch s.Type.Kind {
	case Curve, BendLine, OtsuCurve:
		consider(s.Point3)
	case ComplexCurve, VerticalSlash:
		consider(s.Point3)
		consider(s.Point4)
	}
	return min, max
}

// Stretch applies StretchNumeric independently to x and y for all four
// control points, fitting the stroke into a box reshaped from
// (srcPivot .. ) to (destPivot ..) as described by min/max.
func (s Stroke) Stretch(destPivot, srcPivot, min, max geom.Point) Stroke {
	out := s
	warp := func(p geom.Point) geom.Point {
		return geom.NewPointNoFlag(
			StretchNumeric(destPivot.X, srcPivot.X, p.X, min.X, max.X),
			StretchNumeric(destPivot.Y, srcPivot.Y, p.Y, min.Y, max.Y),
		)
	}
	out.Point1 = warp(s.Point1)
	out.Point2 = warp(s.Point2)
	out.Point3 = warp(s.Point3)
	out.Point4 = warp(s.Point4)
	return out
}

// StretchNumeric maps originPoint through the piecewise-linear warp that
// pins srcPivot+100 to destPivot+100 while stretching [min, srcPivot+100]
// to [min, destPivot+100] and [srcPivot+100, max] to [destPivot+100, max].
// It intentionally propagates NaN/Inf when the source interval has zero
// width, since downstream polygon pushes silently drop degenerate results.
func StretchNumeric(destPivot, srcPivot, originPoint, min, max float64) float64 {
	var p1, p2, p3, p4 float64
	if originPoint < srcPivot+100 {
		p1, p2, p3, p4 = min, srcPivot+100, min, destPivot+100
	} else {
		p1, p2, p3, p4 = srcPivot+100, max, destPivot+100, max
	}
	return math.Floor((originPoint-p1)/(p2-p1)*(p4-p3) + p3)
}
