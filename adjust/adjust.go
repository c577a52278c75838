// Package adjust implements the Ming-only global stroke analysis pass: a
// set of strokes is inspected pairwise for proximity and crossing so that
// terminal decorations (flicks, triangular serifs, curve joints, vertical
// crowding, feet) can be scaled to the local stroke density instead of
// drawn at a fixed size regardless of context.
package adjust

import (
	"math"

	"github.com/goki/kage/geom"
	"github.com/goki/kage/line"
)

// Constants holds the magic numbers the seven adjustment passes tune
// against. Defaults match the original Ming typeface's hard-coded values.
type Constants struct {
	MinWidthVertical float64

	FootRangeX    float64
	FootRangeY    []float64 // length FootStep+1
	FootStep      int
	TriangleLine   []float64 // length TriangleLengthStep
	TriangleLength []float64 // length TriangleLengthStep
	TriangleLengthStep int
	Triangle2Length float64
	Triangle2Step   float64
	CurveStep       float64
	VerticalStep    float64
}

// DefaultConstants returns the Ming typeface's original tuning values.
func DefaultConstants() Constants {
	return Constants{
		MinWidthVertical:   6.0,
		FootRangeX:         20.0,
		FootRangeY:         []float64{1.0, 19.0, 24.0, 30.0},
		FootStep:           3,
		TriangleLine:       []float64{22.0, 26.0, 30.0},
		TriangleLength:     []float64{22.0, 36.0, 50.0},
		TriangleLengthStep: 3,
		Triangle2Length:    40.0,
		Triangle2Step:      3.0,
		CurveStep:          5.0,
		VerticalStep:       4.0,
	}
}

// AdjustedStroke is the per-stroke output of the seven analysis passes.
type AdjustedStroke struct {
	SlashAdjustment    float64
	VerticalAdjustment float64
	FlickAdjustment    float64
	TriangleAdjustment int
	FootAdjustment     int
	CurveAdjustment    float64
}

type entry struct {
	stroke line.Stroke
	adj    AdjustedStroke
}

// AdjustStrokes runs all seven passes (hane/flick, mage/curve,
// tate/vertical, kakato/foot, uroko/triangle-by-length,
// uroko2/triangle-by-density, kirikuchi/slash) over strokes and returns
// one AdjustedStroke per input stroke, in the same order.
func AdjustStrokes(c Constants, strokes []line.Stroke) []AdjustedStroke {
	adjusted := make([]entry, len(strokes))
	for i, s := range strokes {
		adjusted[i] = entry{
			stroke: s,
			adj: AdjustedStroke{
				SlashAdjustment:    float64(s.HeadShape.Opt1),
				VerticalAdjustment: float64(s.HeadShape.Opt2) + float64(s.HeadShape.Opt3)*10,
				FlickAdjustment:    float64(s.TailShape.Opt1),
				TriangleAdjustment: int(s.TailShape.Opt),
				FootAdjustment:     int(s.TailShape.Opt),
				CurveAdjustment:    float64(s.TailShape.Opt2),
			},
		}
	}

	adjustHane(adjusted)
	adjustMage(adjusted, c)
	adjustTate(adjusted, c)
	adjustKakato(adjusted, c)
	adjustUroko(adjusted, c)
	adjustUroko2(adjusted, c)
	adjustKirikuchi(adjusted)

	out := make([]AdjustedStroke, len(adjusted))
	for i, e := range adjusted {
		out[i] = e.adj
	}
	return out
}

func forEachSegment(s line.Stroke, f func(a, b geom.Point)) {
	for _, seg := range s.GetControlSegments() {
		f(seg.A, seg.B)
	}
}

func crosses(s line.Stroke, start, end geom.Point) bool {
	hit := false
	forEachSegment(s, func(a, b geom.Point) {
		if !hit && geom.IsCross(a, b, start, end) {
			hit = true
		}
	})
	return hit
}

func crossesBox(s line.Stroke, diag1, diag2 geom.Point) bool {
	hit := false
	forEachSegment(s, func(a, b geom.Point) {
		if !hit && geom.IsCrossBox(a, b, diag1, diag2) {
			hit = true
		}
	})
	return hit
}

func unitVector(dx, dy float64) (float64, float64) {
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, 0
	}
	l := math.Sqrt(lenSq)
	return dx / l, dy / l
}

type vertSegment struct {
	idx    int
	x, y1, y2 float64
}

func adjustHane(adjusted []entry) {
	var vertSegments []vertSegment
	for idx, e := range adjusted {
		s := e.stroke
		if s.Type.Base == 1 && s.Type.Opt == 0 && s.Point1.X == s.Point2.X {
			vertSegments = append(vertSegments, vertSegment{idx, s.Point1.X, s.Point1.Y, s.Point2.Y})
		}
	}

	for idx := range adjusted {
		s := adjusted[idx].stroke
		base := s.Type.Base
		if !(base == 1 || base == 2 || base == 6) || s.Type.Opt != 0 {
			continue
		}
		if s.TailShape.Base != 4 || s.TailShape.Opt != 0 {
			continue
		}

		var lpx, lpy float64
		switch base {
		case 1:
			lpx, lpy = s.Point2.X, s.Point2.Y
		case 2:
			lpx, lpy = s.Point3.X, s.Point3.Y
		default:
			lpx, lpy = s.Point4.X, s.Point4.Y
		}

		nearest := math.Inf(1)
		if lpx+18 < 100 {
			nearest = lpx + 18
		}

		for _, v := range vertSegments {
			if idx != v.idx && lpx-v.x < 100 && v.x < lpx && v.y1 <= lpy && v.y2 >= lpy {
				diff := lpx - v.x
				if diff < nearest {
					nearest = diff
				}
			}
		}

		if !math.IsInf(nearest, 1) {
			adjusted[idx].adj.FlickAdjustment += 7.0 - math.Floor(nearest/15.0)
		}
	}
}

type horiSegment struct {
	idx            int
	isTarget       bool
	y, x1, x2      float64
}

func adjustMage(adjusted []entry, c Constants) {
	var horiSegments []horiSegment
	for idx, e := range adjusted {
		s := e.stroke
		switch {
		case s.Type.Base == 1 && s.Type.Opt == 0 && s.Point1.Y == s.Point2.Y:
			horiSegments = append(horiSegments, horiSegment{idx, false, s.Point2.Y, s.Point1.X, s.Point2.X})
		case s.Type.Base == 3 && s.Type.Opt == 0 && s.Point2.Y == s.Point3.Y:
			horiSegments = append(horiSegments, horiSegment{idx, true, s.Point2.Y, s.Point2.X, s.Point3.X})
		}
	}

	for _, t := range horiSegments {
		if !t.isTarget {
			continue
		}
		for _, o := range horiSegments {
			if t.idx == o.idx {
				continue
			}
			if t.x1+1 > o.x2 || t.x2-1 < o.x1 {
				continue
			}
			dy := math.Abs(t.y - o.y)
			if math.Round(dy) < c.MinWidthVertical*c.CurveStep {
				adj := &adjusted[t.idx].adj
				adj.CurveAdjustment += c.CurveStep - math.Floor(dy/c.MinWidthVertical)
				if adj.CurveAdjustment > c.CurveStep {
					adj.CurveAdjustment = c.CurveStep
				}
			}
		}
	}
}

func adjustTate(adjusted []entry, c Constants) {
	var vertSegments []vertSegment
	for idx, e := range adjusted {
		s := e.stroke
		base := s.Type.Base
		if (base == 1 || base == 3 || base == 7) && s.Type.Opt == 0 && s.Point1.X == s.Point2.X {
			vertSegments = append(vertSegments, vertSegment{idx, s.Point1.X, s.Point1.Y, s.Point2.Y})
		}
	}

	for _, v := range vertSegments {
		headShape := adjusted[v.idx].stroke.HeadShape
		for _, o := range vertSegments {
			if v.idx == o.idx {
				continue
			}
			if v.y1+1 > o.y2 || v.y2-1 < o.y1 {
				continue
			}
			dx := math.Abs(v.x - o.x)
			if math.Round(dx) < c.MinWidthVertical*c.VerticalStep {
				adj := &adjusted[v.idx].adj
				adj.VerticalAdjustment += c.VerticalStep - math.Floor(dx/c.MinWidthVertical)
				if adj.VerticalAdjustment > c.VerticalStep ||
					(adj.VerticalAdjustment == c.VerticalStep && (headShape.Opt1 != 0 || headShape.Base != 0)) {
					adj.VerticalAdjustment = c.VerticalStep
				}
			}
		}
	}
}

func adjustKakato(adjusted []entry, c Constants) {
	for idx := range adjusted {
		s := adjusted[idx].stroke
		if s.Type.Base != 1 || s.Type.Opt != 0 {
			continue
		}
		if !(s.TailShape.Base == 13 || s.TailShape.Base == 23) || s.TailShape.Opt != 0 {
			continue
		}

		foot := -1
		for k := 0; k < c.FootStep; k++ {
			yRangeNext := c.FootRangeY[k+1]
			collide := false
			for other := range adjusted {
				if idx == other {
					continue
				}
				d1 := geom.NewPointNoFlag(s.Point2.X-c.FootRangeX/2, s.Point2.Y+c.FootRangeY[k])
				d2 := geom.NewPointNoFlag(s.Point2.X+c.FootRangeX/2, s.Point2.Y+yRangeNext)
				if crossesBox(adjusted[other].stroke, d1, d2) {
					collide = true
					break
				}
			}

			if collide || math.Round(s.Point2.Y+yRangeNext) > 200 || math.Round(s.Point2.Y-s.Point1.Y) < yRangeNext {
				if k <= 3 {
					foot = 3 - k
				}
				break
			}
		}

		if foot >= 0 {
			adjusted[idx].adj.FootAdjustment = foot
		}
	}
}

func adjustUroko(adjusted []entry, c Constants) {
	for idx := range adjusted {
		s := adjusted[idx].stroke
		if s.Type.Base != 1 || s.Type.Opt != 0 {
			continue
		}
		if s.TailShape.Base != 0 || s.TailShape.Opt != 0 {
			continue
		}

		newTri := adjusted[idx].adj.TriangleAdjustment
		for k := 0; k < c.TriangleLengthStep; k++ {
			var cosrad, sinrad float64
			switch {
			case s.Point1.Y == s.Point2.Y:
				cosrad, sinrad = 1, 0
			case s.Point2.X-s.Point1.X < 0:
				cosrad, sinrad = unitVector(s.Point1.X-s.Point2.X, s.Point1.Y-s.Point2.Y)
			default:
				cosrad, sinrad = unitVector(s.Point2.X-s.Point1.X, s.Point2.Y-s.Point1.Y)
			}

			tx := s.Point2.X - c.TriangleLine[k]*cosrad - 0.5*sinrad
			ty := s.Point2.Y - c.TriangleLine[k]*sinrad - 0.5*cosrad

			var tlen float64
			if s.Point1.Y == s.Point2.Y {
				tlen = s.Point2.X - s.Point1.X
			} else {
				tlen = math.Hypot(s.Point2.Y-s.Point1.Y, s.Point2.X-s.Point1.X)
			}

			hit := false
			for other := range adjusted {
				if idx == other {
					continue
				}
				if crosses(adjusted[other].stroke, geom.NewPointNoFlag(tx, ty), s.Point2) {
					hit = true
					break
				}
			}

			if math.Round(tlen) < c.TriangleLength[k] || hit {
				newTri = c.TriangleLengthStep - k
				break
			}
		}
		adjusted[idx].adj.TriangleAdjustment = newTri
	}
}

func adjustUroko2(adjusted []entry, c Constants) {
	var horiSegments []horiSegment
	for idx, e := range adjusted {
		s := e.stroke
		switch {
		case s.Type.Base == 1 && s.Type.Opt == 0 && s.Point1.Y == s.Point2.Y:
			isTarget := s.TailShape.Base == 0 && s.TailShape.Opt == 0 && e.adj.TriangleAdjustment == 0
			horiSegments = append(horiSegments, horiSegment{idx, isTarget, s.Point1.Y, s.Point1.X, s.Point2.X})
		case s.Type.Base == 3 && s.Type.Opt == 0 && s.Point2.Y == s.Point3.Y:
			horiSegments = append(horiSegments, horiSegment{idx, false, s.Point2.Y, s.Point2.X, s.Point3.X})
		}
	}

	for _, t := range horiSegments {
		if !t.isTarget {
			continue
		}
		pressure := 0.0
		for _, o := range horiSegments {
			if t.idx == o.idx {
				continue
			}
			if t.x1+1 > o.x2 || t.x2-1 < o.x1 {
				continue
			}
			dy := math.Abs(t.y - o.y)
			if math.Round(dy) < c.Triangle2Length {
				delta := c.Triangle2Length - dy
				pressure += math.Pow(delta, 1.1)
			}
		}

		value := math.Floor(pressure / c.Triangle2Length)
		capped := math.Min(value, c.Triangle2Step)
		adjusted[t.idx].adj.TriangleAdjustment = int(capped)
	}
}

func adjustKirikuchi(adjusted []entry) {
	var horiSegments []horiSegment
	for _, e := range adjusted {
		s := e.stroke
		if s.Type.Base == 1 && s.Type.Opt == 0 && s.Point1.Y == s.Point2.Y {
			horiSegments = append(horiSegments, horiSegment{y: s.Point1.Y, x1: s.Point1.X, x2: s.Point2.X})
		}
	}

	for idx := range adjusted {
		s := adjusted[idx].stroke
		if s.Type.Base != 2 || s.Type.Opt != 0 {
			continue
		}
		if s.HeadShape.Base != 32 || s.HeadShape.Opt != 0 {
			continue
		}
		if !(s.Point1.X > s.Point2.X && s.Point1.Y < s.Point2.Y) {
			continue
		}

		hit := false
		for _, h := range horiSegments {
			if h.x1 < s.Point1.X && h.x2 > s.Point1.X && h.y == s.Point1.Y {
				hit = true
				break
			}
		}
		if hit {
			adjusted[idx].adj.SlashAdjustment = 1.0
		}
	}
}
