package line

import (
	"math"
	"testing"

	"github.com/goki/kage/geom"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func TestStretchNumeric(t *testing.T) {
	cases := []struct {
		destPivot, srcPivot, origin, min, max geom.Point
		wantX, wantY                          float64
	}{
		{geom.NewPointNoFlag(400, 400), geom.NewPointNoFlag(200, 200), geom.NewPointNoFlag(0, 150), geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(1000, 1000), 0, 250},
	}
	for _, c := range cases {
		gotX := StretchNumeric(c.destPivot.X, c.srcPivot.X, c.origin.X, c.min.X, c.max.X)
		gotY := StretchNumeric(c.destPivot.Y, c.srcPivot.Y, c.origin.Y, c.min.Y, c.max.Y)
		if !near(gotX, c.wantX) || !near(gotY, c.wantY) {
			t.Fatalf("got (%v,%v) want (%v,%v)", gotX, gotY, c.wantX, c.wantY)
		}
	}
}

func TestStretchNumericEdgeCaseProducesNaN(t *testing.T) {
	x := StretchNumeric(900, 900, 1000, 0, 1000)
	if !math.IsNaN(x) {
		t.Fatalf("expected NaN, got %v", x)
	}
	y := StretchNumeric(900, 900, 999, 0, 1000)
	if !near(y, 499) {
		t.Fatalf("got %v, want 499", y)
	}
}

func TestNewStrokeTypeConstruction(t *testing.T) {
	st := NewStrokeType(1)
	if st.Kind != StraightLine || st.Base != 1 || st.Opt != 0 {
		t.Fatalf("got %+v", st)
	}
	st = NewStrokeType(203)
	if st.Kind != BendLine || st.Base != 3 || st.Opt != 2 {
		t.Fatalf("got %+v", st)
	}
}

func TestNewStrokeTypeDifferentKinds(t *testing.T) {
	cases := map[float64]StrokeKind{
		1:  StraightLine,
		2:  Curve,
		12: Curve,
		3:  BendLine,
		4:  OtsuCurve,
		6:  ComplexCurve,
		7:  VerticalSlash,
		99: UnknownStroke,
	}
	for n, want := range cases {
		if got := NewStrokeType(n).Kind; got != want {
			t.Fatalf("NewStrokeType(%v).Kind = %v, want %v", n, got, want)
		}
	}
}

func TestGetControlSegments(t *testing.T) {
	s := Stroke{
		Type:   NewStrokeType(7),
		Point1: geom.NewPointNoFlag(0, 0),
		Point2: geom.NewPointNoFlag(1, 1),
		Point3: geom.NewPointNoFlag(2, 2),
		Point4: geom.NewPointNoFlag(3, 3),
	}
	segs := s.GetControlSegments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments", len(segs))
	}
}

func TestGetControlSegmentsOptForcesSingleSegment(t *testing.T) {
	s := Stroke{
		Type:   StrokeType{Kind: VerticalSlash, Base: 7, Opt: 1},
		Point1: geom.NewPointNoFlag(0, 0),
		Point2: geom.NewPointNoFlag(1, 1),
	}
	segs := s.GetControlSegments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
}

func TestStrokeIsCross(t *testing.T) {
	s := Stroke{
		Type:   NewStrokeType(1),
		Point1: geom.NewPointNoFlag(0, 0),
		Point2: geom.NewPointNoFlag(10, 10),
	}
	if !s.IsCross(geom.NewPointNoFlag(0, 10), geom.NewPointNoFlag(10, 0)) {
		t.Fatal("expected crossing diagonal to cross")
	}
	if s.IsCross(geom.NewPointNoFlag(20, 20), geom.NewPointNoFlag(30, 30)) {
		t.Fatal("expected disjoint segment not to cross")
	}
}

func TestStrokeGetBox(t *testing.T) {
	s := Stroke{
		Type:   NewStrokeType(1),
		Point1: geom.NewPointNoFlag(5, -3),
		Point2: geom.NewPointNoFlag(-2, 9),
	}
	min, max := s.GetBox()
	if !near(min.X, -2) || !near(min.Y, -3) || !near(max.X, 5) || !near(max.Y, 9) {
		t.Fatalf("got min=%+v max=%+v", min, max)
	}
}

func TestStrokeStretch(t *testing.T) {
	s := Stroke{
		Type:   NewStrokeType(1),
		Point1: geom.NewPointNoFlag(0, 150),
		Point2: geom.NewPointNoFlag(0, 150),
	}
	out := s.Stretch(
		geom.NewPointNoFlag(400, 400), geom.NewPointNoFlag(200, 200),
		geom.NewPointNoFlag(0, 0), geom.NewPointNoFlag(1000, 1000),
	)
	if !near(out.Point1.X, 0) || !near(out.Point1.Y, 250) {
		t.Fatalf("got %+v", out.Point1)
	}
}

func TestNewEndTypeBottomLeftDisambiguation(t *testing.T) {
	if k := NewEndType(413).Kind; k != BottomLeftZhNew {
		t.Fatalf("got %v", k)
	}
	if k := NewEndType(313).Kind; k != BottomLeftZhOld {
		t.Fatalf("got %v", k)
	}
	if k := NewEndType(13).Kind; k != BottomLeftCorner {
		t.Fatalf("got %v", k)
	}
}

func TestLineParsesAllFourControlPoints(t *testing.T) {
	record := "6:0:0:10:20:30:40:50:60:70:80"
	l := New(record)
	if l.Kind != KindStroke {
		t.Fatalf("got kind %v", l.Kind)
	}
	s := l.Stroke
	if !near(s.Point1.X, 10) || !near(s.Point1.Y, 20) {
		t.Fatalf("point1 = %+v", s.Point1)
	}
	if !near(s.Point2.X, 30) || !near(s.Point2.Y, 40) {
		t.Fatalf("point2 = %+v", s.Point2)
	}
	if !near(s.Point3.X, 50) || !near(s.Point3.Y, 60) {
		t.Fatalf("point3 = %+v", s.Point3)
	}
	if !near(s.Point4.X, 70) || !near(s.Point4.Y, 80) {
		t.Fatalf("point4 = %+v", s.Point4)
	}
}

func TestLineRoundTripStroke(t *testing.T) {
	record := "1:0:0:100:200:300:400:0:0:0:0"
	l := New(record)
	if l.Kind != KindStroke {
		t.Fatalf("got kind %v", l.Kind)
	}
	if !near(l.Stroke.Point1.X, 100) || !near(l.Stroke.Point1.Y, 200) {
		t.Fatalf("got %+v", l.Stroke.Point1)
	}
	back := Emit(l)
	reparsed := New(back)
	if reparsed.Kind != KindStroke || !near(reparsed.Stroke.Point1.X, 100) {
		t.Fatalf("round trip failed: %s -> %s -> %+v", record, back, reparsed)
	}
}

func TestLineParsesComponentReference(t *testing.T) {
	record := "99:10:20:0:0:200:200:kanji-part:0:30:40"
	l := New(record)
	if l.Kind != KindComponentRef {
		t.Fatalf("got kind %v", l.Kind)
	}
	if l.ComponentRef.ComponentName != "kanji-part" {
		t.Fatalf("got name %q", l.ComponentRef.ComponentName)
	}
	if !near(l.ComponentRef.PrimaryControlPoint.X, 10) || !near(l.ComponentRef.PrimaryControlPoint.Y, 20) {
		t.Fatalf("got %+v", l.ComponentRef.PrimaryControlPoint)
	}
	if !near(l.ComponentRef.SecondaryControlPoint.X, 30) || !near(l.ComponentRef.SecondaryControlPoint.Y, 40) {
		t.Fatalf("got secondary %+v", l.ComponentRef.SecondaryControlPoint)
	}
}

func TestLineRoundTripComponentReference(t *testing.T) {
	record := "99:10:20:0:0:200:200:kanji-part:0:30:40"
	l := New(record)
	back := Emit(l)
	reparsed := New(back)
	if reparsed.Kind != KindComponentRef {
		t.Fatalf("round trip lost the reference: %s -> %s", record, back)
	}
	r := reparsed.ComponentRef
	if r.ComponentName != "kanji-part" {
		t.Fatalf("got name %q", r.ComponentName)
	}
	if !near(r.PrimaryControlPoint.X, 10) || !near(r.PrimaryControlPoint.Y, 20) {
		t.Fatalf("got primary %+v", r.PrimaryControlPoint)
	}
	if !near(r.SecondaryControlPoint.X, 30) || !near(r.SecondaryControlPoint.Y, 40) {
		t.Fatalf("got secondary %+v", r.SecondaryControlPoint)
	}
}

func TestLineParsesSpecialLines(t *testing.T) {
	cases := map[string]SpecialKind{
		"0:99:1:0:0:200:200": Rotate90,
		"0:99:2:0:0:200:200": Rotate180,
		"0:99:3:0:0:200:200": Rotate270,
		"0:98:0:0:0:200:200": HorizontalFlip,
		"0:97:0:0:0:200:200": VerticalFlip,
	}
	for record, want := range cases {
		l := New(record)
		if l.Kind != KindSpecial {
			t.Fatalf("record %q: got kind %v", record, l.Kind)
		}
		if l.Special.Transform != want {
			t.Fatalf("record %q: got %v want %v", record, l.Special.Transform, want)
		}
	}
}

func TestLineParsesUnknown(t *testing.T) {
	l := New("")
	if l.Kind != KindUnknown {
		t.Fatalf("got kind %v", l.Kind)
	}
}
