// Package pen implements a local 2-D coordinate frame anchored at a world
// point with an orientation stored as (cos, sin), used by the drawers to
// place stroke outline corners relative to a stroke's own direction rather
// than in absolute coordinates.
package pen

import (
	"github.com/goki/kage/geom"
	"github.com/goki/kage/polygon"
)

// Pen is a coordinate frame: GlobalPoint is the world-space anchor, and
// (CosTheta, SinTheta) is the local +x axis expressed in world coordinates.
type Pen struct {
	GlobalPoint      geom.Point
	CosTheta, SinTheta float64
}

// New creates a pen anchored at (x,y) with the identity orientation.
func New(x, y float64) *Pen {
	return &Pen{GlobalPoint: geom.NewPointNoFlag(x, y), CosTheta: 1, SinTheta: 0}
}

// SetMatrix2 sets the pen's orientation directly.
func (p *Pen) SetMatrix2(cos, sin float64) {
	p.CosTheta, p.SinTheta = cos, sin
}

// SetLeft orients the local +x axis away from (x,y).
func (p *Pen) SetLeft(x, y float64) {
	d := geom.Normalize(geom.NewPointNoFlag(x, y).SubPoint(p.GlobalPoint), 1)
	p.SetMatrix2(-d.X, -d.Y)
}

// SetRight orients the local +x axis toward (x,y).
func (p *Pen) SetRight(x, y float64) {
	d := geom.Normalize(geom.NewPointNoFlag(x, y).SubPoint(p.GlobalPoint), 1)
	p.SetMatrix2(d.X, d.Y)
}

// SetUp orients the local +x axis perpendicular to, and counter-clockwise
// from, the direction toward (x,y).
func (p *Pen) SetUp(x, y float64) {
	d := geom.Normalize(geom.NewPointNoFlag(x, y).SubPoint(p.GlobalPoint), 1)
	p.SetMatrix2(-d.Y, d.X)
}

// SetDown orients the local +x axis perpendicular to, and clockwise from,
// the direction toward (x,y).
func (p *Pen) SetDown(x, y float64) {
	d := geom.Normalize(geom.NewPointNoFlag(x, y).SubPoint(p.GlobalPoint), 1)
	p.SetMatrix2(d.Y, -d.X)
}

// GetPoint maps a local offset (lx,ly) to a world point carrying the given
// on/off-curve flag.
func (p *Pen) GetPoint(lx, ly float64, off bool) geom.Point {
	x := p.GlobalPoint.X + p.CosTheta*lx - p.SinTheta*ly
	y := p.GlobalPoint.Y + p.SinTheta*lx + p.CosTheta*ly
	return geom.NewPoint(x, y, off)
}

// MoveLocal translates the pen's anchor by a local offset.
func (p *Pen) MoveLocal(dx, dy float64) {
	p.GlobalPoint = p.GetPoint(dx, dy, false)
}

// GetPolygon maps a list of local points (each already carrying its own
// on/off-curve flag) through GetPoint, producing a world-space polygon.
func (p *Pen) GetPolygon(localPoints []geom.Point) *polygon.Polygon {
	worldPoints := make([]geom.Point, len(localPoints))
	for i, lp := range localPoints {
		worldPoints[i] = p.GetPoint(lp.X, lp.Y, lp.IsOffCurve())
	}
	return polygon.New(worldPoints)
}
