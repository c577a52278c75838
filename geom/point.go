// Package geom implements the scalar geometry primitives that every other
// kage package builds on: points, vectors, Bézier evaluation, curve fatten,
// splitting and fitting, and the segment/box intersection tests used by the
// Ming stroke adjuster.
package geom

import "math"

// Epsilon is the tolerance used by IsQuadratic. ApproxEqual uses its own,
// looser 1e-6 tolerance.
const Epsilon = 1e-8

// Point is a 2-D coordinate that optionally carries an on/off-curve flag.
// OffCurve is nil when the point's curve role is undefined (e.g. the result
// of a pure arithmetic operation), Some(true)/Some(false) otherwise -
// mirrored here as a *bool so Go can represent the three-way original value.
type Point struct {
	X, Y     float64
	OffCurve *bool
}

// Vector is a displacement; it shares Point's representation but never
// carries a curve flag.
type Vector struct {
	X, Y float64
}

func boolPtr(b bool) *bool { return &b }

// NewPoint builds a point with an explicit on/off-curve flag.
func NewPoint(x, y float64, off bool) Point {
	return Point{X: x, Y: y, OffCurve: boolPtr(off)}
}

// NewPointNoFlag builds a point whose curve role is unspecified.
func NewPointNoFlag(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewVector builds a displacement.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// IsOffCurve reports whether the point is explicitly marked as an off-curve
// control point.
func (p Point) IsOffCurve() bool {
	return p.OffCurve != nil && *p.OffCurve
}

// HasFlag reports whether the point carries an explicit on/off-curve flag.
func (p Point) HasFlag() bool {
	return p.OffCurve != nil
}

// Add returns p+v. The curve flag is never preserved across a vector add,
// matching the original's `Add<Vector>` semantics.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns p-v (a point).
func (p Point) Sub(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// SubPoint returns the vector from q to p.
func (p Point) SubPoint(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddPoint adds two points' coordinates, preserving the curve flag only when
// both operands carry the identical Some value (original `Add<Point>`).
func (p Point) AddPoint(q Point) Point {
	r := Point{X: p.X + q.X, Y: p.Y + q.Y}
	if p.OffCurve != nil && q.OffCurve != nil && *p.OffCurve == *q.OffCurve {
		r.OffCurve = boolPtr(*p.OffCurve)
	}
	return r
}

// MulPoint multiplies a point's coordinates elementwise by a vector,
// dropping the curve flag (used by Expander's AABB scaling step).
func (p Point) MulPoint(v Vector) Point {
	return Point{X: p.X * v.X, Y: p.Y * v.Y}
}

// Scale multiplies the point's coordinates by a scalar.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, OffCurve: p.OffCurve}
}

// Min returns the component-wise minimum; OffCurve becomes nil when the
// operands' flags differ.
func (p Point) Min(q Point) Point {
	r := Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
	if p.OffCurve != nil && q.OffCurve != nil && *p.OffCurve == *q.OffCurve {
		r.OffCurve = boolPtr(*p.OffCurve)
	}
	return r
}

// Max returns the component-wise maximum; OffCurve becomes nil when the
// operands' flags differ.
func (p Point) Max(q Point) Point {
	r := Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
	if p.OffCurve != nil && q.OffCurve != nil && *p.OffCurve == *q.OffCurve {
		r.OffCurve = boolPtr(*p.OffCurve)
	}
	return r
}

// ApproxEqual reports whether two points are equal, either exactly
// (regardless of curve flag) or within 1e-6 and with matching curve flags -
// the same two-branch comparison the original crate used for its test
// oracles.
func (p Point) ApproxEqual(q Point) bool {
	if p.X == q.X && p.Y == q.Y {
		return true
	}
	const err = 1e-6
	d := math.Hypot(p.X-q.X, p.Y-q.Y)
	return d <= err && p.IsOffCurve() == q.IsOffCurve()
}

// Len returns the vector's Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale returns v*k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// PointVector converts a point to a vector, discarding any curve flag.
func PointVector(p Point) Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Normalize returns a vector of magnitude m along v; on a zero vector it
// returns (copysign(m, v.x), 0), matching the degenerate-tangent fallback
// used throughout the drawers.
func Normalize(v Vector, m float64) Vector {
	if v.X == 0 && v.Y == 0 {
		return Vector{X: math.Copysign(m, v.X), Y: 0}
	}
	factor := m / v.Len()
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Round rounds x to d decimal digits, half away from zero.
func Round(x float64, d int) float64 {
	scale := math.Pow(10, float64(d))
	return math.Round(x*scale) / scale
}

// IsQuadratic reports whether two cubic control points coincide closely
// enough that the curve should be treated as quadratic.
func IsQuadratic(c1, c2 Point) bool {
	return math.Abs(c1.X-c2.X) <= Epsilon && math.Abs(c1.Y-c2.Y) <= Epsilon
}

// QuadraticBezier evaluates a quadratic Bézier curve at t.
func QuadraticBezier(p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	x := u*u*p1.X + 2*t*u*p2.X + t*t*p3.X
	y := u*u*p1.Y + 2*t*u*p2.Y + t*t*p3.Y
	return Point{X: x, Y: y}
}

// QuadraticBezierDerivative evaluates the tangent vector of a quadratic
// Bézier curve at t.
func QuadraticBezierDerivative(p1, p2, p3 Point, t float64) Vector {
	// 2*(t*(p1-2p2+p3) - p1+p2)
	ax := p1.X - 2*p2.X + p3.X
	ay := p1.Y - 2*p2.Y + p3.Y
	x := 2 * (t*ax - p1.X + p2.X)
	y := 2 * (t*ay - p1.Y + p2.Y)
	return Vector{X: x, Y: y}
}

// CubicBezier evaluates a cubic Bézier curve at t.
func CubicBezier(p1, p2, p3, p4 Point, t float64) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	x := uu*u*p1.X + 3*t*uu*p2.X + 3*tt*u*p3.X + tt*t*p4.X
	y := uu*u*p1.Y + 3*t*uu*p2.Y + 3*tt*u*p3.Y + tt*t*p4.Y
	return Point{X: x, Y: y}
}

// CubicBezierDerivative evaluates the tangent vector of a cubic Bézier curve
// at t.
func CubicBezierDerivative(p1, p2, p3, p4 Point, t float64) Vector {
	// 3*(t*(t*(-p1+3p2-3p3+p4) + 2*(p1-2p2+p3)) - p1+p2)
	ax := -p1.X + 3*p2.X - 3*p3.X + p4.X
	ay := -p1.Y + 3*p2.Y - 3*p3.Y + p4.Y
	bx := p1.X - 2*p2.X + p3.X
	by := p1.Y - 2*p2.Y + p3.Y
	x := 3 * (t*(t*ax+2*bx) - p1.X + p2.X)
	y := 3 * (t*(t*ay+2*by) - p1.Y + p2.Y)
	return Vector{X: x, Y: y}
}

// CurveSampler evaluates and differentiates either a quadratic or a cubic
// curve through a single Sample/Derivative interface, mirroring the
// original's enum dispatch.
type CurveSampler struct {
	quadratic        bool
	start, c1, c2, p4 Point
}

// NewQuadraticSampler builds a sampler over a quadratic curve.
func NewQuadraticSampler(start, control, end Point) CurveSampler {
	return CurveSampler{quadratic: true, start: start, c1: control, p4: end}
}

// NewCubicSampler builds a sampler over a cubic curve.
func NewCubicSampler(start, c1, c2, end Point) CurveSampler {
	return CurveSampler{quadratic: false, start: start, c1: c1, c2: c2, p4: end}
}

// Sample evaluates the curve at progress t in [0,1].
func (s CurveSampler) Sample(t float64) Point {
	if s.quadratic {
		return QuadraticBezier(s.start, s.c1, s.p4, t)
	}
	return CubicBezier(s.start, s.c1, s.c2, s.p4, t)
}

// Derivative evaluates the curve's tangent at progress t in [0,1].
func (s CurveSampler) Derivative(t float64) Vector {
	if s.quadratic {
		return QuadraticBezierDerivative(s.start, s.c1, s.p4, t)
	}
	return CubicBezierDerivative(s.start, s.c1, s.c2, s.p4, t)
}
