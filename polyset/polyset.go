// Package polyset collects the filled polygons produced by a drawer into
// one glyph outline and serializes them to SVG or EPS. Pushing a polygon
// validates it against the invariants the renderers rely on instead of
// returning an error - malformed shapes are silently dropped, matching the
// "never fail the whole glyph" design used throughout this engine.
package polyset

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goki/kage/polygon"
)

// Set is an ordered collection of polygons that together make up one
// glyph's filled outline.
type Set struct {
	polygons []*polygon.Polygon
}

// New creates an empty polygon set.
func New() *Set {
	return &Set{}
}

// Clear removes all polygons.
func (s *Set) Clear() {
	s.polygons = nil
}

// Array returns the set's polygons. Callers may mutate the returned
// polygons in place (used by region transforms) but must not mutate the
// slice itself.
func (s *Set) Array() []*polygon.Polygon {
	return s.polygons
}

// Push floors p's coordinates and appends it, unless p has fewer than 3
// points, contains a NaN coordinate, or has zero extent on either axis - in
// which case it is silently dropped.
func (s *Set) Push(p *polygon.Polygon) {
	if p.Len() < 3 {
		return
	}
	p.Floor()

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, point := range p.Points() {
		if math.IsNaN(point.X) || math.IsNaN(point.Y) {
			return
		}
		minX, maxX = math.Min(minX, point.X), math.Max(maxX, point.X)
		minY, maxY = math.Min(minY, point.Y), math.Max(maxY, point.Y)
	}

	if minX != maxX && minY != maxY {
		s.polygons = append(s.polygons, p)
	}
}

// GenerateSVG serializes the set as a standalone SVG document on a 200x200
// design grid. In curve mode, each polygon becomes one <path> that toggles
// between L and Q commands based on consecutive points' on/off-curve flags;
// otherwise each polygon becomes a <polygon> inside one shared <g>.
func (s *Set) GenerateSVG(curve bool) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" baseProfile="full" viewBox="0 0 200 200" width="200" height="200">` + "\n")

	if curve {
		for _, poly := range s.polygons {
			b.WriteString(`<path d="`)
			points := poly.Points()
			mode := ""
			for j, point := range points {
				switch {
				case j == 0:
					b.WriteString("M ")
				case point.IsOffCurve():
					b.WriteString("Q ")
					mode = "Q"
				case mode == "Q" && !points[j-1].IsOffCurve():
					b.WriteString("L ")
				case mode == "L" && j == 1:
					b.WriteString("L ")
				}
				fmt.Fprintf(&b, "%v,%v ", point.X, point.Y)
			}
			b.WriteString("Z\" fill=\"black\" />\n")
		}
	} else {
		b.WriteString("<g fill=\"black\">\n")
		for _, poly := range s.polygons {
			b.WriteString(`<polygon points="`)
			for _, point := range poly.Points() {
				fmt.Fprintf(&b, "%v,%v ", point.X, point.Y)
			}
			b.WriteString("\" />\n")
		}
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// GenerateEPS serializes the set as an Adobe EPSF-3.0 document, scaling x by
// 5 and mapping y to y' = 1000 - 5y - 200.
func (s *Set) GenerateEPS(now time.Time) string {
	var b strings.Builder
	b.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	b.WriteString("%%BoundingBox: 0 -208 1024 816\n")
	b.WriteString("%%Pages: 0\n")
	b.WriteString("%%Title: Kanji glyph\n")
	b.WriteString("%%Creator: GlyphWiki powered by KAGE system\n")
	fmt.Fprintf(&b, "%%%%CreationDate: %s\n", now.Format("Mon Jan 02 2006 15:04:05 GMT-0700"))
	b.WriteString("%%EndComments\n")
	b.WriteString("%%EndProlog\n")

	for _, poly := range s.polygons {
		for j, point := range poly.Points() {
			fmt.Fprintf(&b, "%v %v ", point.X*5, 1000-point.Y*5-200)
			if j == 0 {
				b.WriteString("newpath\nmoveto\n")
			} else {
				b.WriteString("lineto\n")
			}
		}
		b.WriteString("closepath\nfill\n")
	}

	b.WriteString("%%EOF\n")
	return b.String()
}
