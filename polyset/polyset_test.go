package polyset

import (
	"strings"
	"testing"
	"time"

	"github.com/goki/kage/geom"
	"github.com/goki/kage/polygon"
)

func TestPushRejectsTooFewPoints(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(1, 1)}))
	if len(s.Array()) != 0 {
		t.Fatalf("expected rejection, got %d polygons", len(s.Array()))
	}
}

func TestPushRejectsZeroExtent(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{
		geom.NewPointNoFlag(5, 0), geom.NewPointNoFlag(5, 1), geom.NewPointNoFlag(5, 2),
	}))
	if len(s.Array()) != 0 {
		t.Fatalf("expected rejection for zero x-extent, got %d polygons", len(s.Array()))
	}
}

func TestPushAcceptsTriangle(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{
		geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(10, 0), geom.NewPointNoFlag(5, 10),
	}))
	if len(s.Array()) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(s.Array()))
	}
}

func TestGenerateSVGNonCurve(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{
		geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(10, 0), geom.NewPointNoFlag(5, 10),
	}))
	svg := s.GenerateSVG(false)
	if !strings.Contains(svg, `<g fill="black">`) || !strings.Contains(svg, "<polygon points=") {
		t.Fatalf("got %s", svg)
	}
}

func TestGenerateSVGCurve(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{
		geom.NewPoint(0, 0, false),
		geom.NewPoint(5, 10, true),
		geom.NewPoint(10, 0, false),
	}))
	svg := s.GenerateSVG(true)
	if !strings.Contains(svg, "<path d=\"M ") || !strings.Contains(svg, "Q ") {
		t.Fatalf("got %s", svg)
	}
}

func TestGenerateEPS(t *testing.T) {
	s := New()
	s.Push(polygon.New([]geom.Point{
		geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(10, 0), geom.NewPointNoFlag(5, 10),
	}))
	eps := s.GenerateEPS(time.Date(2025, 10, 13, 12, 34, 56, 0, time.UTC))
	if !strings.HasPrefix(eps, "%!PS-Adobe-3.0 EPSF-3.0\n") {
		t.Fatalf("got %s", eps)
	}
	if !strings.Contains(eps, "moveto") || !strings.Contains(eps, "lineto") || !strings.Contains(eps, "closepath\nfill\n") {
		t.Fatalf("got %s", eps)
	}
	if !strings.HasSuffix(eps, "%%EOF\n") {
		t.Fatalf("got %s", eps)
	}
}
