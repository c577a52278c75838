// Package gothic implements the constant-width sans-serif stroke drawer: a
// single width value fattens every stroke uniformly and no
// stroke-adjustment pass runs, unlike the Ming drawer's density-aware
// terminal decoration.
package gothic

import (
	"math"

	"github.com/goki/kage/geom"
	"github.com/goki/kage/line"
	"github.com/goki/kage/pen"
	"github.com/goki/kage/polygon"
	"github.com/goki/kage/polyset"
)

// Options tunes the drawer's uniform stroke width and terminal sizes.
type Options struct {
	SampleStep int
	Width      float64
	FootSize   float64
	CurveSize  float64
}

// DefaultOptions matches the original Gothic typeface's hard-coded values.
func DefaultOptions() Options {
	return Options{SampleStep: 100, Width: 5.0, FootSize: 3.0, CurveSize: 10.0}
}

// Drawer renders stroke lines into a polyset.Set at constant width.
type Drawer struct {
	opt Options
}

// New builds a Drawer with the given options.
func New(opt Options) *Drawer {
	return &Drawer{opt: opt}
}

var endTypeFree = line.NewEndType(0)
var endTypeTemp1 = line.NewEndType(1)

func isJointEnd(k line.EndKind) bool {
	switch k {
	case line.HorizontalConnection, line.VerticalConnection, line.TopLeftCorner, line.TopRightCorner:
		return true
	}
	return false
}

func isFootEnd(k line.EndKind) bool {
	switch k {
	case line.BottomLeftCorner, line.BottomRightCorner, line.BottomLeftZhOld, line.BottomLeftZhNew:
		return true
	}
	return false
}

func normalizeOrFallback(delta geom.Vector, fallback geom.Vector, magnitude float64) geom.Vector {
	if delta.X == 0 && delta.Y == 0 {
		return fallback
	}
	return geom.Normalize(delta, magnitude)
}

func (d *Drawer) drawCurveBody(set *polyset.Set, start, c1, c2, end geom.Point) {
	fattened := geom.FattenCurve(start, c1, c2, end, d.opt.SampleStep, func(float64) float64 {
		return d.opt.Width
	})
	left := polygon.New(fattened.Left)
	right := polygon.New(fattened.Right)
	right.Reverse()
	left.Concat(right)
	set.Push(left)
}

func endDelta(opt Options, k line.EndKind) float64 {
	switch {
	case isJointEnd(k):
		return opt.Width
	case isFootEnd(k):
		return opt.Width * opt.FootSize
	default:
		return 0
	}
}

func (d *Drawer) cdDrawCurveUniversal(set *polyset.Set, start, c1, c2, end geom.Point, head, tail line.EndType) {
	delta1 := endDelta(d.opt, head.Kind)
	if delta1 != 0 {
		fallback := geom.NewVector(0, delta1)
		v := normalizeOrFallback(start.SubPoint(c1), fallback, delta1)
		start = start.Add(v)
	}

	delta2 := endDelta(d.opt, tail.Kind)
	if delta2 != 0 {
		fallback := geom.NewVector(0, -delta2)
		v := normalizeOrFallback(end.SubPoint(c2), fallback, delta2)
		end = end.Add(v)
	}

	d.drawCurveBody(set, start, c1, c2, end)
}

func (d *Drawer) cdDrawQuadraticBezier(set *polyset.Set, start, control, end geom.Point, head, tail line.EndType) {
	d.cdDrawCurveUniversal(set, start, control, control, end, head, tail)
}

func (d *Drawer) cdDrawCubicBezier(set *polyset.Set, start, c1, c2, end geom.Point, head, tail line.EndType) {
	d.cdDrawCurveUniversal(set, start, c1, c2, end, head, tail)
}

func (d *Drawer) cdDrawLine(set *polyset.Set, start, end geom.Point, head, tail line.EndType) {
	var pen1, pen2 *pen.Pen
	var endShape1, endShape2 line.EndType

	if (start.X == end.X && start.Y > end.Y) || start.X > end.X {
		pen1 = pen.New(end.X, end.Y)
		pen2 = pen.New(start.X, start.Y)
		endShape1, endShape2 = tail, head
	} else {
		pen1 = pen.New(start.X, start.Y)
		pen2 = pen.New(end.X, end.Y)
		endShape1, endShape2 = head, tail
	}

	if start.X != end.X || start.Y != end.Y {
		pen1.SetDown(pen2.GlobalPoint.X, pen2.GlobalPoint.Y)
		pen2.SetUp(pen1.GlobalPoint.X, pen1.GlobalPoint.Y)
	}

	switch {
	case isJointEnd(endShape1.Kind):
		pen1.MoveLocal(0, -d.opt.Width)
	case isFootEnd(endShape1.Kind):
		pen1.MoveLocal(0, -d.opt.Width*d.opt.FootSize)
	}

	switch {
	case isJointEnd(endShape2.Kind):
		pen2.MoveLocal(0, d.opt.Width)
	case isFootEnd(endShape2.Kind):
		pen2.MoveLocal(0, d.opt.Width*d.opt.FootSize)
	}

	poly := polygon.New([]geom.Point{
		pen1.GetPoint(d.opt.Width, 0, false),
		pen2.GetPoint(d.opt.Width, 0, false),
		pen2.GetPoint(-d.opt.Width, 0, false),
		pen1.GetPoint(-d.opt.Width, 0, false),
	})

	if start.X == end.X {
		poly.Reverse()
	}

	set.Push(poly)
}

// Draw renders one stroke line into set, dispatching by stroke kind and
// handling the left/right-upward-flick tail special cases each kind
// supports.
func (d *Drawer) Draw(set *polyset.Set, s line.Stroke) {
	switch s.Type.Kind {
	case line.StraightLine:
		d.drawStraightLine(set, s)
	case line.Curve:
		d.drawCurve(set, s)
	case line.BendLine:
		d.drawBendLine(set, s)
	case line.OtsuCurve:
		d.drawOtsuCurve(set, s)
	case line.ComplexCurve:
		d.drawComplexCurve(set, s)
	case line.VerticalSlash:
		d.cdDrawLine(set, s.Point1, s.Point2, s.HeadShape, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, s.Point2, s.Point3, s.Point4, endTypeTemp1, s.TailShape)
	}
}

func (d *Drawer) drawStraightLine(set *polyset.Set, s line.Stroke) {
	if s.TailShape.Kind != line.LeftUpwardFlick {
		d.cdDrawLine(set, s.Point1, s.Point2, s.HeadShape, s.TailShape)
		return
	}

	fallback := geom.NewVector(0, d.opt.CurveSize)
	delta := normalizeOrFallback(s.Point1.SubPoint(s.Point2), fallback, d.opt.CurveSize)
	joint := s.Point2.Add(delta)

	d.cdDrawLine(set, s.Point1, joint, s.HeadShape, endTypeTemp1)
	d.cdDrawQuadraticBezier(set, joint, s.Point2,
		geom.NewPointNoFlag(s.Point2.X-d.opt.CurveSize*2, s.Point2.Y-d.opt.CurveSize*0.5),
		endTypeTemp1, endTypeFree)
}

func (d *Drawer) drawCurve(set *polyset.Set, s line.Stroke) {
	switch {
	case s.TailShape.Kind == line.LeftUpwardFlick:
		var delta geom.Vector
		switch {
		case s.Point2.X == s.Point3.X:
			delta = geom.NewVector(0, -d.opt.CurveSize)
		case s.Point2.Y == s.Point3.Y:
			delta = geom.NewVector(-d.opt.CurveSize, 0)
		default:
			delta = geom.Normalize(s.Point2.SubPoint(s.Point3), d.opt.CurveSize)
		}
		joint := s.Point3.Add(delta)

		d.cdDrawQuadraticBezier(set, s.Point1, s.Point2, joint, s.HeadShape, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, joint, s.Point3,
			geom.NewPointNoFlag(s.Point3.X-d.opt.CurveSize*2, s.Point3.Y-d.opt.CurveSize*0.5),
			endTypeTemp1, endTypeFree)

	case s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0:
		flickControl := geom.NewPointNoFlag(s.Point3.X+d.opt.CurveSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(flickControl.X+d.opt.CurveSize*0.5, s.Point3.Y-d.opt.CurveSize*2)

		d.cdDrawQuadraticBezier(set, s.Point1, s.Point2, s.Point3, s.HeadShape, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, s.Point3, flickControl, flickEnd, endTypeTemp1, endTypeFree)

	default:
		d.cdDrawQuadraticBezier(set, s.Point1, s.Point2, s.Point3, s.HeadShape, s.TailShape)
	}
}

func (d *Drawer) drawBendLine(set *polyset.Set, s line.Stroke) {
	fallback1 := geom.NewVector(0, d.opt.CurveSize)
	delta1 := normalizeOrFallback(s.Point1.SubPoint(s.Point2), fallback1, d.opt.CurveSize)
	joint1 := s.Point2.Add(delta1)

	fallback2 := geom.NewVector(0, -d.opt.CurveSize)
	delta2 := normalizeOrFallback(s.Point3.SubPoint(s.Point2), fallback2, d.opt.CurveSize)
	joint2 := s.Point2.Add(delta2)

	d.cdDrawLine(set, s.Point1, joint1, s.HeadShape, endTypeTemp1)
	d.cdDrawQuadraticBezier(set, joint1, s.Point2, joint2, endTypeTemp1, endTypeTemp1)

	if s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt1 == 0 {
		joint3 := geom.NewPointNoFlag(s.Point3.X-d.opt.CurveSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(s.Point3.X+d.opt.CurveSize*0.5, s.Point3.Y-d.opt.CurveSize*2)

		d.cdDrawLine(set, joint2, joint3, endTypeTemp1, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, joint3, s.Point3, flickEnd, endTypeTemp1, endTypeFree)
	} else {
		d.cdDrawLine(set, joint2, s.Point3, endTypeTemp1, s.TailShape)
	}
}

func (d *Drawer) drawOtsuCurve(set *polyset.Set, s line.Stroke) {
	scaleFactor := math.Min(6.0, s.Point3.SubPoint(s.Point2).Len()/120.0*6.0)

	fallback1 := geom.NewVector(0, d.opt.CurveSize*scaleFactor)
	delta1 := normalizeOrFallback(s.Point1.SubPoint(s.Point2), fallback1, d.opt.CurveSize*scaleFactor)
	joint1 := s.Point2.Add(delta1)

	fallback2 := geom.NewVector(0, -d.opt.CurveSize*scaleFactor)
	delta2 := normalizeOrFallback(s.Point3.SubPoint(s.Point2), fallback2, d.opt.CurveSize*scaleFactor)
	joint2 := s.Point2.Add(delta2)

	d.cdDrawLine(set, s.Point1, joint1, s.HeadShape, endTypeTemp1)
	d.cdDrawQuadraticBezier(set, joint1, s.Point2, joint2, endTypeTemp1, endTypeTemp1)

	if s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0 {
		joint3 := geom.NewPointNoFlag(s.Point3.X-d.opt.CurveSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(s.Point3.X+d.opt.CurveSize*0.5, s.Point3.Y-d.opt.CurveSize*2)

		d.cdDrawLine(set, joint2, joint3, endTypeTemp1, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, joint3, s.Point3, flickEnd, endTypeTemp1, endTypeFree)
	} else {
		d.cdDrawLine(set, joint2, s.Point3, endTypeTemp1, s.TailShape)
	}
}

func (d *Drawer) drawComplexCurve(set *polyset.Set, s line.Stroke) {
	switch {
	case s.TailShape.Kind == line.LeftUpwardFlick:
		var delta geom.Vector
		switch {
		case s.Point3.X == s.Point4.X:
			delta = geom.NewVector(0, -d.opt.CurveSize)
		case s.Point3.Y == s.Point4.Y:
			delta = geom.NewVector(-d.opt.CurveSize, 0)
		default:
			delta = geom.Normalize(s.Point3.SubPoint(s.Point4), d.opt.CurveSize)
		}
		joint := s.Point4.Add(delta)

		d.cdDrawCubicBezier(set, s.Point1, s.Point2, s.Point3, joint, s.HeadShape, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, joint, s.Point4,
			geom.NewPointNoFlag(s.Point4.X-d.opt.CurveSize*2, s.Point4.Y-d.opt.CurveSize*0.5),
			endTypeTemp1, endTypeFree)

	case s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0:
		joint := geom.NewPointNoFlag(s.Point4.X-d.opt.CurveSize, s.Point4.Y)
		flickEnd := geom.NewPointNoFlag(s.Point4.X+d.opt.CurveSize*0.5, s.Point4.Y-d.opt.CurveSize*2)

		d.cdDrawCubicBezier(set, s.Point1, s.Point2, s.Point3, joint, s.HeadShape, endTypeTemp1)
		d.cdDrawQuadraticBezier(set, joint, s.Point4, flickEnd, endTypeTemp1, endTypeFree)

	default:
		d.cdDrawCubicBezier(set, s.Point1, s.Point2, s.Point3, s.Point4, s.HeadShape, s.TailShape)
	}
}
