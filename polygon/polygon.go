// Package polygon implements a single closed vertex list. Coordinates are
// stored at a 10x fixed scale internally so that chains of translate/
// rotate/reflect mutations do not accumulate floating-point drift; callers
// only see design-space coordinates through Points/Get/Set.
package polygon

import (
	"math"

	"github.com/goki/kage/geom"
)

// Precision is the internal storage scale: one design-space unit is stored
// as 10 internal units.
const Precision = 10.0

// Polygon is a mutable, ordered list of points stored at Precision scale.
type Polygon struct {
	points []geom.Point
}

func toInternal(p geom.Point) geom.Point {
	return geom.Point{X: p.X * Precision, Y: p.Y * Precision, OffCurve: p.OffCurve}
}

func fromInternal(p geom.Point) geom.Point {
	return geom.Point{X: p.X / Precision, Y: p.Y / Precision, OffCurve: p.OffCurve}
}

// New builds a polygon from design-space points, scaling them to internal
// storage.
func New(points []geom.Point) *Polygon {
	internal := make([]geom.Point, len(points))
	for i, p := range points {
		internal[i] = toInternal(p)
	}
	return &Polygon{points: internal}
}

// NewWithLength builds a polygon of length n, all points at the origin with
// no curve flag.
func NewWithLength(n int) *Polygon {
	return &Polygon{points: make([]geom.Point, n)}
}

// NewEmpty builds an empty polygon.
func NewEmpty() *Polygon {
	return &Polygon{}
}

// NewEmptyWithCapacity builds an empty polygon with preallocated capacity.
func NewEmptyWithCapacity(capacity int) *Polygon {
	return &Polygon{points: make([]geom.Point, 0, capacity)}
}

// Len returns the number of points.
func (p *Polygon) Len() int { return len(p.points) }

// Points returns a fresh slice of the polygon's points in design space.
func (p *Polygon) Points() []geom.Point {
	out := make([]geom.Point, len(p.points))
	for i, ip := range p.points {
		out[i] = fromInternal(ip)
	}
	return out
}

// Push appends a design-space point.
func (p *Polygon) Push(x, y float64, off bool) {
	p.PushPoint(geom.NewPoint(x, y, off))
}

// PushPoint appends a design-space point, preserving its curve flag.
func (p *Polygon) PushPoint(point geom.Point) {
	p.points = append(p.points, toInternal(point))
}

// Get returns the design-space point at index, and whether index was valid.
func (p *Polygon) Get(index int) (geom.Point, bool) {
	if index < 0 || index >= len(p.points) {
		return geom.Point{}, false
	}
	return fromInternal(p.points[index]), true
}

// Set overwrites the design-space point at index.
func (p *Polygon) Set(index int, x, y float64, off bool) error {
	return p.SetPoint(index, geom.NewPoint(x, y, off))
}

// SetPoint overwrites the point at index with a design-space point.
func (p *Polygon) SetPoint(index int, point geom.Point) error {
	if index < 0 || index >= len(p.points) {
		return errIndexOutOfBounds
	}
	p.points[index] = toInternal(point)
	return nil
}

var errIndexOutOfBounds = indexError{}

type indexError struct{}

func (indexError) Error() string { return "Index out of bounds." }

// Reverse reverses the point order in place.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// Concat consumes other's points, appending them to p.
func (p *Polygon) Concat(other *Polygon) {
	p.points = append(p.points, other.points...)
}

// Shift removes the first point; a no-op on an empty polygon.
func (p *Polygon) Shift() {
	if len(p.points) == 0 {
		return
	}
	p.points = p.points[1:]
}

// Unshift inserts a design-space point at the front.
func (p *Polygon) Unshift(x, y float64, off bool) {
	p.UnshiftPoint(geom.NewPoint(x, y, off))
}

// UnshiftPoint inserts a point at the front, preserving its curve flag.
func (p *Polygon) UnshiftPoint(point geom.Point) {
	p.points = append([]geom.Point{toInternal(point)}, p.points...)
}

// Translate shifts every point by (dx,dy) in design space. Returns p for
// chaining.
func (p *Polygon) Translate(dx, dy float64) *Polygon {
	idx, idy := dx*Precision, dy*Precision
	for i := range p.points {
		p.points[i].X += idx
		p.points[i].Y += idy
	}
	return p
}

// ReflectX negates every point's x coordinate. Returns p for chaining.
func (p *Polygon) ReflectX() *Polygon {
	for i := range p.points {
		p.points[i].X = -p.points[i].X
	}
	return p
}

// ReflectY negates every point's y coordinate. Returns p for chaining.
func (p *Polygon) ReflectY() *Polygon {
	for i := range p.points {
		p.points[i].Y = -p.points[i].Y
	}
	return p
}

// Rotate90 rotates every point 90 degrees: (x,y) -> (-y,x). Returns p for
// chaining.
func (p *Polygon) Rotate90() *Polygon {
	for i := range p.points {
		x, y := p.points[i].X, p.points[i].Y
		p.points[i].X, p.points[i].Y = -y, x
	}
	return p
}

// Rotate180 rotates every point 180 degrees: (x,y) -> (-x,-y). Returns p for
// chaining.
func (p *Polygon) Rotate180() *Polygon {
	for i := range p.points {
		p.points[i].X = -p.points[i].X
		p.points[i].Y = -p.points[i].Y
	}
	return p
}

// Rotate270 rotates every point 270 degrees: (x,y) -> (y,-x). Returns p for
// chaining.
func (p *Polygon) Rotate270() *Polygon {
	for i := range p.points {
		x, y := p.points[i].X, p.points[i].Y
		p.points[i].X, p.points[i].Y = y, -x
	}
	return p
}

// Floor floors every internal coordinate in place. Returns p for chaining.
func (p *Polygon) Floor() *Polygon {
	for i := range p.points {
		p.points[i].X = math.Floor(p.points[i].X)
		p.points[i].Y = math.Floor(p.points[i].Y)
	}
	return p
}
