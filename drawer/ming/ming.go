// Package ming implements the density-aware serif stroke drawer: stroke
// width and terminal decoration both vary with the AdjustedStroke values
// the adjust package computes from the whole glyph, instead of the
// constant width the gothic package uses.
package ming

import (
	"math"

	"github.com/goki/kage/adjust"
	"github.com/goki/kage/geom"
	"github.com/goki/kage/line"
	"github.com/goki/kage/pen"
	"github.com/goki/kage/polygon"
	"github.com/goki/kage/polyset"
)

// thinnessRatio is the base exponent/slope of the width taper at narrow
// stroke ends.
const thinnessRatio = 0.5

// Options tunes the drawer's magic numbers. Defaults match the original
// Ming typeface's hard-coded values (see adjust.DefaultConstants for the
// stroke-adjustment-pass constants, which this package takes alongside
// its own drawing constants).
type Options struct {
	SampleStep         int
	MinWidthHorizontal float64
	MinWidthVertical   float64
	MinWidthTriangle   float64
	Width              float64
	SquareTerminal     float64
	L2RDFatten         float64
	JointSize          float64
	// KakatoLeft holds the foot length of a bottom-left corner per
	// shortening level 0..3; index 4 is the simplified form used by the
	// new-style bottom-left variant.
	KakatoLeft []float64
	// KakatoRight holds the foot length of a bottom-right corner per
	// shortening level 0..3.
	KakatoRight []float64
	// UrokoX and UrokoY hold the triangular serif's extent along and
	// above the stroke per shrinking level 0..3.
	UrokoX []float64
	UrokoY []float64
	// TateStep mirrors the vertical-thinning pass's step count; the
	// flick-tail curve shrinks in proportion to it.
	TateStep float64
	UseCurve bool
}

// DefaultOptions matches the original Ming typeface's hard-coded values.
func DefaultOptions() Options {
	return Options{
		SampleStep:         10,
		MinWidthHorizontal: 2.0,
		MinWidthVertical:   6.0,
		MinWidthTriangle:   2.0,
		Width:              5.0,
		SquareTerminal:     3.0,
		L2RDFatten:         1.1,
		JointSize:          10.0,
		KakatoLeft:         []float64{14.0, 9.0, 5.0, 2.0, 0.0},
		KakatoRight:        []float64{8.0, 6.0, 4.0, 2.0},
		UrokoX:             []float64{24.0, 20.0, 16.0, 12.0},
		UrokoY:             []float64{12.0, 11.0, 9.0, 8.0},
		TateStep:           4.0,
		UseCurve:           false,
	}
}

// Drawer renders adjusted stroke lines into a polyset.Set at variable,
// density-aware width.
type Drawer struct {
	opt Options

	// OnCurveFitFailure, when non-nil, is called each time the
	// quadratic-outline path abandons a curve draw because its split or
	// least-squares fit degenerated. The draw itself emits nothing.
	OnCurveFitFailure func()
}

// New builds a Drawer with the given options.
func New(opt Options) *Drawer {
	return &Drawer{opt: opt}
}

// curveShape carries everything a curve body draw needs to know about its
// ends: the terminal kinds plus the entry/exit width reductions the
// adjuster computed (slash-entry correction and latter-half thinning).
type curveShape struct {
	head, tail          line.EndKind
	startWidthReduction float64
	widthChangeRate     float64
	cubic               bool
}

// headDelta returns the inward/outward displacement applied to a curve's
// start point before fattening, per the head kind.
func headDelta(opt Options, k line.EndKind) float64 {
	switch k {
	case line.Free, line.Narrow, line.RoofedNarrowEntry:
		return -0.5 * opt.MinWidthHorizontal
	case line.HorizontalConnection, line.VerticalConnection, line.TopRightCorner, line.Temp1, line.Temp6:
		return 0
	case line.TopLeftCorner:
		return opt.MinWidthHorizontal
	}
	return 0
}

// tailDelta returns the displacement for a curve's end point. A tail kind
// with no entry of its own reuses the head's displacement; the data relies
// on this fallback.
func tailDelta(opt Options, tail, head line.EndKind) float64 {
	switch tail {
	case line.Free, line.Temp1, line.Narrow, line.Temp9, line.Temp14, line.Temp15, line.Temp17, line.RightUpwardFlick:
		return 0
	case line.Stop:
		return -0.5 * opt.MinWidthVertical
	}
	return headDelta(opt, head)
}

// widthAt evaluates the width-modulation function at progress in [0,1].
// The taper exponent steepens for short chords; a narrow-headed cubic is
// additionally pinched; and strokes whose adjuster set an entry or exit
// width reduction ramp linearly between the two.
func (d *Drawer) widthAt(progress, chordLen float64, shape curveShape, adj adjust.AdjustedStroke) float64 {
	var scale float64
	switch {
	case shape.head == line.Narrow && shape.tail == line.Free:
		r := thinnessRatio
		if chordLen < 50 {
			r += 0.4 * (50 - chordLen) / 50
		}
		scale = math.Pow(progress, r) * d.opt.L2RDFatten
	case shape.head == line.Narrow || shape.head == line.RoofedNarrowEntry:
		scale = math.Pow(progress, thinnessRatio)
		if shape.cubic {
			scale *= 0.7
		}
	case shape.tail == line.Narrow:
		scale = (1 - progress) * thinnessRatio
	case !shape.cubic && (shape.startWidthReduction != 0 || shape.widthChangeRate != 0):
		start, change := shape.startWidthReduction, shape.widthChangeRate
		scale = (d.opt.MinWidthVertical - start/2 - (change-start)/2*progress) / d.opt.MinWidthVertical
	default:
		scale = 1
	}
	if scale < 0.15 {
		scale = 0.15
	}
	halfWidth := d.opt.MinWidthVertical - adj.VerticalAdjustment/2
	if halfWidth < d.opt.MinWidthTriangle {
		halfWidth = d.opt.MinWidthTriangle
	}
	return scale * halfWidth
}

func (d *Drawer) drawCurveBody(set *polyset.Set, start, c1, c2, end geom.Point, shape curveShape, adj adjust.AdjustedStroke) {
	shape.cubic = !geom.IsQuadratic(c1, c2)
	chordLen := end.SubPoint(start).Len()
	widthFunc := func(progress float64) float64 {
		return d.widthAt(progress, chordLen, shape, adj)
	}

	if d.opt.UseCurve && !shape.cubic {
		poly, ok := d.drawQuadraticCurveBody(start, c1, end, widthFunc)
		if !ok {
			if d.OnCurveFitFailure != nil {
				d.OnCurveFitFailure()
			}
			return
		}
		set.Push(poly)
		return
	}

	fattened := geom.FattenCurve(start, c1, c2, end, d.opt.SampleStep, widthFunc)
	left := polygon.New(fattened.Left)
	right := polygon.New(fattened.Right)
	right.Reverse()
	left.Concat(right)
	set.Push(left)
}

// drawQuadraticCurveBody is the quadratic-outline path: the dense left
// offset samples are split at their midpoint index and a single quadratic
// is least-squares fit to each half, while the right outline reuses the
// unfattened curve's own De Casteljau split points as its on-curve
// vertices with each control point mirrored through the split's rough
// control by the left fit's correction offset. Reports false when the
// split or fit degenerates, in which case the caller abandons the draw.
func (d *Drawer) drawQuadraticCurveBody(start, control, end geom.Point, widthFunc func(float64) float64) (*polygon.Polygon, bool) {
	fattened := geom.FattenCurve(start, control, control, end, d.opt.SampleStep, widthFunc)
	n := len(fattened.Left)
	if n < 4 {
		return nil, false
	}

	split := geom.SplitQuadraticBezier(start, control, end, fattened.Left)
	idx := split.Index
	if idx <= 0 || idx >= n-1 {
		return nil, false
	}

	leftFit1, ok1 := geom.FitQuadraticBezier(fattened.Left[:idx+1])
	leftFit2, ok2 := geom.FitQuadraticBezier(fattened.Left[idx:])
	if !ok1 || !ok2 {
		return nil, false
	}

	roughControl1 := split.Segments[0][1]
	roughControl2 := split.Segments[1][1]
	mirror := func(rough, fitted geom.Point) geom.Point {
		return geom.NewPoint(2*rough.X-fitted.X, 2*rough.Y-fitted.Y, true)
	}

	left := polygon.New([]geom.Point{
		leftFit1.Start,
		leftFit1.Control,
		leftFit1.End,
		leftFit2.Control,
		leftFit2.End,
	})
	right := polygon.New([]geom.Point{
		geom.NewPoint(split.Segments[0][0].X, split.Segments[0][0].Y, false),
		mirror(roughControl1, leftFit1.Control),
		geom.NewPoint(split.Segments[0][2].X, split.Segments[0][2].Y, false),
		mirror(roughControl2, leftFit2.Control),
		geom.NewPoint(split.Segments[1][2].X, split.Segments[1][2].Y, false),
	})

	right.Reverse()
	left.Concat(right)
	return left, true
}

// cdDrawCurveUniversal displaces a curve's endpoints inward or outward per
// headDelta/tailDelta before fattening its body, matching the way
// cdDrawLine's parallelogram widens at joint/foot ends.
func (d *Drawer) cdDrawCurveUniversal(set *polyset.Set, start, c1, c2, end geom.Point, shape curveShape, adj adjust.AdjustedStroke) {
	if delta := headDelta(d.opt, shape.head); delta != 0 {
		fallback := geom.NewVector(0, delta)
		v := normalizeOrFallback(start.SubPoint(c1), fallback, math.Abs(delta))
		if delta < 0 {
			v = v.Neg()
		}
		start = start.Add(v)
	}
	if delta := tailDelta(d.opt, shape.tail, shape.head); delta != 0 {
		fallback := geom.NewVector(0, -delta)
		v := normalizeOrFallback(end.SubPoint(c2), fallback, math.Abs(delta))
		if delta < 0 {
			v = v.Neg()
		}
		end = end.Add(v)
	}
	d.drawCurveBody(set, start, c1, c2, end, shape, adj)
}

func normalizeOrFallback(delta, fallback geom.Vector, magnitude float64) geom.Vector {
	if delta.X == 0 && delta.Y == 0 {
		return fallback
	}
	return geom.Normalize(delta, magnitude)
}

// drawCurveHead appends the entry-side terminal decoration appropriate to
// head.kind. A TopLeftCorner gets a short notch; a Free head gets a small
// serif wedge; a TopRightCorner or RoofedNarrowEntry head gets a
// quadrilateral wedge; other kinds draw no extra decoration (the body's own
// taper already expresses them).
func (d *Drawer) drawCurveHead(set *polyset.Set, start, tangentTarget geom.Point, head line.EndKind, adj adjust.AdjustedStroke) {
	switch head {
	case line.TopLeftCorner:
		dir := geom.Normalize(tangentTarget.SubPoint(start), d.opt.MinWidthHorizontal)
		notch := []geom.Point{
			start,
			start.Add(geom.NewVector(-dir.Y, dir.X)),
			start.Add(geom.NewVector(-dir.Y, dir.X)).Add(dir),
			start.Add(dir),
		}
		set.Push(polygon.New(notch))
	case line.Free:
		dir := geom.Normalize(tangentTarget.SubPoint(start), d.opt.MinWidthHorizontal*1.2)
		wedge := []geom.Point{
			start,
			start.Add(geom.NewVector(-dir.Y*0.5, dir.X*0.5)),
			start.Sub(dir),
			start.Add(geom.NewVector(dir.Y*0.5, -dir.X*0.5)),
		}
		set.Push(polygon.New(wedge))
	case line.TopRightCorner, line.RoofedNarrowEntry:
		dir := geom.Normalize(tangentTarget.SubPoint(start), d.opt.MinWidthHorizontal)
		quad := []geom.Point{
			start,
			start.Add(dir),
			start.Add(dir).Add(geom.NewVector(dir.Y, -dir.X)),
			start.Add(geom.NewVector(dir.Y, -dir.X)),
		}
		set.Push(polygon.New(quad))
	}
}

// drawCurveTail appends the exit-side terminal decoration, dispatched by
// (head.kind, tail.kind). Temp1/Stop/Temp15 round off with a five-point
// cap whose shoulders become off-curve controls when UseCurve is set;
// Narrow/RoofedNarrowEntry heads paired with a Free tail get a triangular
// tip; Temp9 matches the triangular tip; Temp14 gets a squared hook.
func (d *Drawer) drawCurveTail(set *polyset.Set, end, tangentSource geom.Point, head, tail line.EndKind, adj adjust.AdjustedStroke) {
	dir := geom.Normalize(end.SubPoint(tangentSource), d.opt.MinWidthVertical)
	perpL := geom.NewVector(-dir.Y, dir.X)
	perpR := geom.NewVector(dir.Y, -dir.X)
	switch {
	case tail == line.Temp1 || tail == line.Stop || tail == line.Temp15:
		shoulder := func(perp geom.Vector) geom.Point {
			p := end.Add(perp.Scale(0.7)).Add(dir.Scale(0.9))
			return geom.NewPoint(p.X, p.Y, d.opt.UseCurve)
		}
		cap := []geom.Point{
			end.Add(perpL),
			shoulder(perpL),
			end.Add(dir),
			shoulder(perpR),
			end.Add(perpR),
		}
		set.Push(polygon.New(cap))
	case (head == line.Narrow || head == line.RoofedNarrowEntry) && tail == line.Free:
		tip := []geom.Point{
			end,
			end.Add(perpL).Add(dir.Scale(0.5)),
			end.Add(dir),
		}
		set.Push(polygon.New(tip))
	case tail == line.Temp9:
		tip := []geom.Point{
			end,
			end.Add(perpL).Add(dir.Scale(0.5)),
			end.Add(dir),
		}
		set.Push(polygon.New(tip))
	case tail == line.Temp14:
		hookLen := d.opt.MinWidthVertical + d.opt.Width
		hook := []geom.Point{
			end,
			end.Add(dir.Scale(hookLen / d.opt.MinWidthVertical)),
			end.Add(dir.Scale(hookLen / d.opt.MinWidthVertical)).Add(perpR),
			end.Add(perpR),
		}
		set.Push(polygon.New(hook))
	}
}

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

func clampLevel(level, max int) int {
	if level < 0 {
		return 0
	}
	if level > max {
		return max
	}
	return level
}

// kakatoLength returns how far a foot end extends past its stroke's
// endpoint, shrinking with the adjuster's collision-derived shortening
// level. The new-style bottom-left variant always uses the simplified
// length regardless of level.
func (d *Drawer) kakatoLength(tail line.EndKind, adj adjust.AdjustedStroke) float64 {
	level := clampLevel(adj.FootAdjustment, 3)
	switch tail {
	case line.BottomLeftZhNew:
		return d.opt.KakatoLeft[4]
	case line.BottomLeftCorner, line.BottomLeftZhOld:
		return d.opt.KakatoLeft[level]
	default:
		return d.opt.KakatoRight[level]
	}
}

// cdDrawLine is the straight-line terminator: a parallelogram outline
// built from two Pen frames, widened at the foot/corner ends and decorated
// with a wedge entry at a TopRightCorner head, a triangular serif ("uroko")
// at a free tail, and a foot bar ("kakato") at a bottom-corner tail. The
// Pen frame orients perpendicular to the stroke's actual direction rather
// than to a fixed axis, so the same construction covers a vertical stroke,
// a horizontal one (including a Temp6-headed joint stroke), and anything
// in between without a separate branch per angle. widthReduction thins the
// stroke uniformly; the latter half of a bend passes its curve-thinning
// value here.
func (d *Drawer) cdDrawLine(set *polyset.Set, start, end geom.Point, head, tail line.EndKind, adj adjust.AdjustedStroke, widthReduction float64) {
	halfWidth := d.opt.MinWidthVertical - adj.VerticalAdjustment/2 - widthReduction/2
	if halfWidth < d.opt.MinWidthTriangle {
		halfWidth = d.opt.MinWidthTriangle
	}

	var pen1, pen2 *pen.Pen
	var endShape1, endShape2 line.EndKind

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
	case isJointEnd(endShape1):
		pen1.MoveLocal(0, -halfWidth)
	case isFootEnd(endShape1):
		pen1.MoveLocal(0, -d.kakatoLength(endShape1, adj))
	}

	switch {
	case isJointEnd(endShape2):
		pen2.MoveLocal(0, halfWidth)
	case isFootEnd(endShape2):
		pen2.MoveLocal(0, d.kakatoLength(endShape2, adj))
	}

	poly := polygon.New([]geom.Point{
		pen1.GetPoint(halfWidth, 0, false),
		pen2.GetPoint(halfWidth, 0, false),
		pen2.GetPoint(-halfWidth, 0, false),
		pen1.GetPoint(-halfWidth, 0, false),
	})

	if start.X == end.X {
		poly.Reverse()
	}

	set.Push(poly)

	if head == line.TopRightCorner {
		d.drawCurveHead(set, start, end, head, adj)
	}
	if tail == line.Free {
		d.drawUroko(set, start, end, adj)
	}
	if isFootEnd(tail) {
		d.drawKakato(set, end, tail, halfWidth, adj)
	}
}

// drawUroko appends the triangular serif, shrunk per the adjuster's
// length/density level: the tip sits at the stroke end with the base
// running back along the stroke and the apex rising above it.
func (d *Drawer) drawUroko(set *polyset.Set, start, end geom.Point, adj adjust.AdjustedStroke) {
	level := clampLevel(adj.TriangleAdjustment, 3)
	sx, sy := d.opt.UrokoX[level], d.opt.UrokoY[level]
	dir := geom.Normalize(end.SubPoint(start), 1)
	up := geom.NewVector(dir.Y, -dir.X)
	tri := []geom.Point{
		end,
		end.Sub(dir.Scale(sx)),
		end.Add(up.Scale(sy)),
	}
	set.Push(polygon.New(tri))
}

// drawKakato appends the foot bar at the extended end of a bottom-corner
// stroke, slightly wider than the stroke body.
func (d *Drawer) drawKakato(set *polyset.Set, end geom.Point, tail line.EndKind, halfWidth float64, adj adjust.AdjustedStroke) {
	length := d.kakatoLength(tail, adj)
	if length <= 0 {
		return
	}
	barWidth := halfWidth + d.opt.MinWidthHorizontal
	barHeight := d.opt.SquareTerminal
	bar := []geom.Point{
		geom.NewPointNoFlag(end.X-barWidth, end.Y+length-barHeight),
		geom.NewPointNoFlag(end.X+barWidth, end.Y+length-barHeight),
		geom.NewPointNoFlag(end.X+barWidth, end.Y+length),
		geom.NewPointNoFlag(end.X-barWidth, end.Y+length),
	}
	set.Push(polygon.New(bar))
}

// flickSize is the flick-tail curve's extent, shrunk by the hane pass's
// proximity value so a flick next to a vertical stroke stays clear of it.
func (d *Drawer) flickSize(adj adjust.AdjustedStroke) float64 {
	scale := (d.opt.TateStep + 4 - adj.FlickAdjustment) / (d.opt.TateStep + 4)
	if scale < 0 {
		scale = 0
	}
	return d.opt.JointSize * scale
}

// Draw renders one adjusted stroke line into set, dispatching by stroke
// kind.
func (d *Drawer) Draw(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	switch s.Type.Kind {
	case line.StraightLine:
		d.drawStraightLine(set, s, adj)
	case line.Curve:
		d.drawCurve(set, s, adj)
	case line.BendLine:
		d.drawBendLine(set, s, adj)
	case line.OtsuCurve:
		d.drawOtsuCurve(set, s, adj)
	case line.ComplexCurve:
		d.drawComplexCurve(set, s, adj)
	case line.VerticalSlash:
		d.cdDrawLine(set, s.Point1, s.Point2, s.HeadShape.Kind, line.Temp1, adj, 0)
		d.cdDrawCurveUniversal(set, s.Point2, s.Point3, s.Point3, s.Point4,
			curveShape{head: line.Temp1, tail: s.TailShape.Kind}, adj)
		d.drawCurveTail(set, s.Point4, s.Point3, line.Temp1, s.TailShape.Kind, adj)
	}
}

func flickJoint(a, b geom.Point, size float64) geom.Point {
	fallback := geom.NewVector(0, size)
	delta := a.SubPoint(b)
	if delta.X == 0 && delta.Y == 0 {
		return b.Add(fallback)
	}
	return b.Add(geom.Normalize(delta, size))
}

func (d *Drawer) drawStraightLine(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	switch {
	case s.TailShape.Kind == line.LeftUpwardFlick:
		mage := d.flickSize(adj)
		joint := flickJoint(s.Point1, s.Point2, mage)
		flickEnd := geom.NewPointNoFlag(s.Point2.X-mage*2, s.Point2.Y-mage*0.5)
		d.cdDrawLine(set, s.Point1, joint, s.HeadShape.Kind, line.Temp1, adj, 0)
		d.drawCurveBody(set, joint, s.Point2, s.Point2, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	case s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0:
		joint := geom.NewPointNoFlag(s.Point2.X-d.opt.JointSize, s.Point2.Y)
		flickEnd := geom.NewPointNoFlag(s.Point2.X+d.opt.JointSize*0.5, s.Point2.Y-d.opt.JointSize*2)
		d.cdDrawLine(set, s.Point1, joint, s.HeadShape.Kind, line.Temp1, adj, 0)
		d.drawCurveBody(set, joint, s.Point2, s.Point2, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	default:
		d.cdDrawLine(set, s.Point1, s.Point2, s.HeadShape.Kind, s.TailShape.Kind, adj, 0)
	}
}

func (d *Drawer) drawCurve(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	shape := curveShape{
		head:                s.HeadShape.Kind,
		tail:                s.TailShape.Kind,
		startWidthReduction: adj.SlashAdjustment,
	}
	switch {
	case s.TailShape.Kind == line.LeftUpwardFlick:
		mage := d.flickSize(adj)
		joint := flickJoint(s.Point2, s.Point3, mage)
		shape.tail = line.Temp1
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point2, joint, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		flickEnd := geom.NewPointNoFlag(s.Point3.X-mage*2, s.Point3.Y-mage*0.5)
		d.drawCurveBody(set, joint, s.Point3, s.Point3, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	case s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0:
		shape.tail = line.Temp1
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point2, s.Point3, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		flickControl := geom.NewPointNoFlag(s.Point3.X+d.opt.JointSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(flickControl.X+d.opt.JointSize*0.5, s.Point3.Y-d.opt.JointSize*2)
		d.drawCurveBody(set, s.Point3, flickControl, flickControl, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	default:
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point2, s.Point3, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		d.drawCurveTail(set, s.Point3, s.Point2, s.HeadShape.Kind, s.TailShape.Kind, adj)
	}
}

func (d *Drawer) drawBendLine(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	joint1 := flickJoint(s.Point1, s.Point2, d.opt.JointSize)
	joint2 := s.Point2.Add(geom.Normalize(s.Point3.SubPoint(s.Point2), d.opt.JointSize))

	d.cdDrawLine(set, s.Point1, joint1, s.HeadShape.Kind, line.Temp1, adj, 0)
	d.drawCurveBody(set, joint1, s.Point2, s.Point2, joint2,
		curveShape{head: line.Temp1, tail: line.Temp1, widthChangeRate: adj.CurveAdjustment}, adj)

	if s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt1 == 0 {
		joint3 := geom.NewPointNoFlag(s.Point3.X-d.opt.JointSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(s.Point3.X+d.opt.JointSize*0.5, s.Point3.Y-d.opt.JointSize*2)
		d.cdDrawLine(set, joint2, joint3, line.Temp1, line.Temp1, adj, adj.CurveAdjustment)
		d.drawCurveBody(set, joint3, s.Point3, s.Point3, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	} else {
		d.cdDrawLine(set, joint2, s.Point3, line.Temp1, s.TailShape.Kind, adj, adj.CurveAdjustment)
	}
}

func (d *Drawer) drawOtsuCurve(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	scaleFactor := math.Min(6.0, s.Point3.SubPoint(s.Point2).Len()/120.0*6.0)
	jointSize := d.opt.JointSize * scaleFactor

	joint1 := s.Point2.Add(geom.Normalize(s.Point1.SubPoint(s.Point2), jointSize))
	joint2 := s.Point2.Add(geom.Normalize(s.Point3.SubPoint(s.Point2), jointSize))

	d.cdDrawLine(set, s.Point1, joint1, s.HeadShape.Kind, line.Temp1, adj, 0)
	d.drawCurveBody(set, joint1, s.Point2, s.Point2, joint2,
		curveShape{head: line.Temp1, tail: line.Temp1, widthChangeRate: adj.CurveAdjustment}, adj)

	if s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0 {
		joint3 := geom.NewPointNoFlag(s.Point3.X-d.opt.JointSize, s.Point3.Y)
		flickEnd := geom.NewPointNoFlag(s.Point3.X+d.opt.JointSize*0.5, s.Point3.Y-d.opt.JointSize*2)
		d.cdDrawLine(set, joint2, joint3, line.Temp1, line.Temp1, adj, adj.CurveAdjustment)
		d.drawCurveBody(set, joint3, s.Point3, s.Point3, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	} else {
		d.cdDrawLine(set, joint2, s.Point3, line.Temp1, s.TailShape.Kind, adj, adj.CurveAdjustment)
	}
}

func (d *Drawer) drawComplexCurve(set *polyset.Set, s line.Stroke, adj adjust.AdjustedStroke) {
	shape := curveShape{head: s.HeadShape.Kind, tail: s.TailShape.Kind}
	switch {
	case s.TailShape.Kind == line.LeftUpwardFlick:
		mage := d.flickSize(adj)
		joint := flickJoint(s.Point3, s.Point4, mage)
		shape.tail = line.Temp1
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point3, joint, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		flickEnd := geom.NewPointNoFlag(s.Point4.X-mage*2, s.Point4.Y-mage*0.5)
		d.drawCurveBody(set, joint, s.Point4, s.Point4, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	case s.TailShape.Kind == line.RightUpwardFlick && s.TailShape.Opt == 0:
		joint := geom.NewPointNoFlag(s.Point4.X-d.opt.JointSize, s.Point4.Y)
		flickEnd := geom.NewPointNoFlag(s.Point4.X+d.opt.JointSize*0.5, s.Point4.Y-d.opt.JointSize*2)
		shape.tail = line.Temp1
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point3, joint, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		d.drawCurveBody(set, joint, s.Point4, s.Point4, flickEnd,
			curveShape{head: line.Temp1, tail: line.Free}, adj)
	default:
		d.cdDrawCurveUniversal(set, s.Point1, s.Point2, s.Point3, s.Point4, shape, adj)
		d.drawCurveHead(set, s.Point1, s.Point2, s.HeadShape.Kind, adj)
		d.drawCurveTail(set, s.Point4, s.Point3, s.HeadShape.Kind, s.TailShape.Kind, adj)
	}
}
