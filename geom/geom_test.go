package geom

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestQuadraticBezier(t *testing.T) {
	p1 := NewPointNoFlag(-6, 5)
	p2 := NewPointNoFlag(-1.2, 0.5)
	p3 := NewPointNoFlag(4, 8)
	got := QuadraticBezier(p1, p2, p3, 0.25)
	if !near(got.X, -3.575, 1e-9) || !near(got.Y, 3.5, 1e-9) {
		t.Fatalf("got %+v", got)
	}
}

func TestQuadraticBezierDerivative(t *testing.T) {
	p1 := NewPointNoFlag(-6, 5)
	p2 := NewPointNoFlag(-1.2, 0.5)
	p3 := NewPointNoFlag(4, 8)
	got := QuadraticBezierDerivative(p1, p2, p3, 0.25)
	want := Vector{X: 2 * (0.25*(p1.X-2*p2.X+p3.X) - p1.X + p2.X), Y: 2 * (0.25*(p1.Y-2*p2.Y+p3.Y) - p1.Y + p2.Y)}
	if !near(got.X, want.X, 1e-9) || !near(got.Y, want.Y, 1e-9) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCubicBezier(t *testing.T) {
	p1 := NewPointNoFlag(3.2, -9.2)
	p2 := NewPointNoFlag(-5.3, 5.8)
	p3 := NewPointNoFlag(4.2, 1.2)
	p4 := NewPointNoFlag(8.2, 2.2)
	got := CubicBezier(p1, p2, p3, p4, 0.3)
	if !near(got.X, -0.22449999999999976, 1e-9) || !near(got.Y, -0.31159999999999943, 1e-9) {
		t.Fatalf("got %+v", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	got := Normalize(Vector{X: 0, Y: 0}, 5)
	if got.X != 5 || got.Y != 0 {
		t.Fatalf("got %+v", got)
	}
	got = Normalize(Vector{X: -0.0, Y: 0}, 5)
	if got.Y != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestIsQuadratic(t *testing.T) {
	if !IsQuadratic(NewPointNoFlag(1, 2), NewPointNoFlag(1, 2)) {
		t.Fatal("expected quadratic for identical control points")
	}
	if IsQuadratic(NewPointNoFlag(1, 2), NewPointNoFlag(1, 2.1)) {
		t.Fatal("expected cubic for distinct control points")
	}
}

func TestIsCross(t *testing.T) {
	cases := []struct {
		a1, a2, b1, b2 Point
		want           bool
	}{
		{NewPointNoFlag(0, 0), NewPointNoFlag(4, 4), NewPointNoFlag(0, 4), NewPointNoFlag(4, 0), true},
		{NewPointNoFlag(0, 0), NewPointNoFlag(2, 2), NewPointNoFlag(2, 2), NewPointNoFlag(5, 0), true},
		{NewPointNoFlag(0, 0), NewPointNoFlag(4, 0), NewPointNoFlag(0, 1), NewPointNoFlag(4, 1), false},
		{NewPointNoFlag(0, 0), NewPointNoFlag(4, 0), NewPointNoFlag(2, 0), NewPointNoFlag(6, 0), false},
		{NewPointNoFlag(0, 0), NewPointNoFlag(1, 1), NewPointNoFlag(2, 2), NewPointNoFlag(3, 5), false},
		{NewPointNoFlag(1, 1), NewPointNoFlag(1, 1), NewPointNoFlag(0, 0), NewPointNoFlag(2, 2), false},
		{NewPointNoFlag(math.NaN(), 0), NewPointNoFlag(1, 1), NewPointNoFlag(0, 0), NewPointNoFlag(2, 2), true},
	}
	for i, c := range cases {
		if got := IsCross(c.a1, c.a2, c.b1, c.b2); got != c.want {
			t.Errorf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

func TestIsCrossBox(t *testing.T) {
	cases := []struct {
		a1, a2, d1, d2 Point
		want           bool
	}{
		{NewPointNoFlag(0, 0), NewPointNoFlag(6, 5), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), true},
		{NewPointNoFlag(0, 2), NewPointNoFlag(1, 2), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), true},
		{NewPointNoFlag(2, 2), NewPointNoFlag(4, 3), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), false},
		{NewPointNoFlag(0, 1), NewPointNoFlag(6, 1), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), true},
		{NewPointNoFlag(-2, -1), NewPointNoFlag(-1, -3), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), false},
		{NewPointNoFlag(math.NaN(), 0), NewPointNoFlag(2, 2), NewPointNoFlag(1, 1), NewPointNoFlag(5, 4), true},
		{NewPointNoFlag(0, 3), NewPointNoFlag(6, 3), NewPointNoFlag(5, 4), NewPointNoFlag(1, 1), true},
	}
	for i, c := range cases {
		if got := IsCrossBox(c.a1, c.a2, c.d1, c.d2); got != c.want {
			t.Errorf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

func TestFitQuadraticBezierTwoPoints(t *testing.T) {
	result, ok := FitQuadraticBezier([]Point{NewPointNoFlag(0, 0), NewPointNoFlag(2, 2)})
	if !ok {
		t.Fatal("expected a fit")
	}
	if result.Control.X != 1 || result.Control.Y != 1 || !result.Control.IsOffCurve() {
		t.Fatalf("got %+v", result.Control)
	}
}

func TestFitQuadraticBezierTooFewPoints(t *testing.T) {
	if _, ok := FitQuadraticBezier(nil); ok {
		t.Fatal("expected no fit for zero points")
	}
	if _, ok := FitQuadraticBezier([]Point{NewPointNoFlag(0, 0)}); ok {
		t.Fatal("expected no fit for one point")
	}
}

func TestSplitQuadraticBezier(t *testing.T) {
	samples := make([]Point, 5)
	for i := range samples {
		samples[i] = NewPointNoFlag(float64(i), 0)
	}
	result := SplitQuadraticBezier(NewPointNoFlag(0, 0), NewPointNoFlag(5, 10), NewPointNoFlag(10, 0), samples)
	if result.Index != 2 {
		t.Fatalf("got index %d", result.Index)
	}
}

func TestFattenCurveStraightLine(t *testing.T) {
	result := FattenCurve(
		NewPointNoFlag(0, 0), NewPointNoFlag(50, 0), NewPointNoFlag(50, 0), NewPointNoFlag(100, 0),
		50, func(float64) float64 { return 10 },
	)
	if len(result.Left) != len(result.Right) || len(result.Left) != 21 {
		t.Fatalf("got %d left samples", len(result.Left))
	}
	// A horizontal line's normal points straight up/down.
	if !near(result.Left[0].Y, -10, 1e-9) || !near(result.Right[0].Y, 10, 1e-9) {
		t.Fatalf("got %+v / %+v", result.Left[0], result.Right[0])
	}
}
