package polygon

import (
	"testing"

	"github.com/goki/kage/geom"
)

func pt(x, y float64) geom.Point { return geom.NewPointNoFlag(x, y) }

func TestNewAndPoints(t *testing.T) {
	p := New([]geom.Point{pt(1, 2), pt(3, 4)})
	got := p.Points()
	if len(got) != 2 || got[0].X != 1 || got[0].Y != 2 || got[1].X != 3 || got[1].Y != 4 {
		t.Fatalf("got %+v", got)
	}
}

func TestLen(t *testing.T) {
	p := New([]geom.Point{pt(0, 0), pt(1, 1), pt(2, 2)})
	if p.Len() != 3 {
		t.Fatalf("got %d", p.Len())
	}
}

func TestGetSet(t *testing.T) {
	p := New([]geom.Point{pt(0, 0), pt(1, 1)})
	if err := p.Set(1, 9, 9, false); err != nil {
		t.Fatal(err)
	}
	got, ok := p.Get(1)
	if !ok || got.X != 9 || got.Y != 9 {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
	if err := p.Set(5, 0, 0, false); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
	if _, ok := p.Get(5); ok {
		t.Fatal("expected Get to report missing index")
	}
}

func TestReverseShiftUnshift(t *testing.T) {
	p := New([]geom.Point{pt(1, 1), pt(2, 2), pt(3, 3)})
	p.Reverse()
	got := p.Points()
	if got[0].X != 3 || got[2].X != 1 {
		t.Fatalf("got %+v", got)
	}

	p.Shift()
	got = p.Points()
	if len(got) != 2 || got[0].X != 2 {
		t.Fatalf("got %+v", got)
	}

	p.Unshift(0, 0, false)
	got = p.Points()
	if len(got) != 3 || got[0].X != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestConcat(t *testing.T) {
	a := New([]geom.Point{pt(1, 1)})
	b := New([]geom.Point{pt(2, 2)})
	a.Concat(b)
	got := a.Points()
	if len(got) != 2 || got[1].X != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestTransformations(t *testing.T) {
	p := New([]geom.Point{pt(1, 2)})

	p.Translate(10, 20)
	got, _ := p.Get(0)
	if got.X != 11 || got.Y != 22 {
		t.Fatalf("translate got %+v", got)
	}

	p2 := New([]geom.Point{pt(3, 4)})
	p2.ReflectX()
	got2, _ := p2.Get(0)
	if got2.X != -3 || got2.Y != 4 {
		t.Fatalf("reflectX got %+v", got2)
	}

	p3 := New([]geom.Point{pt(3, 4)})
	p3.ReflectY()
	got3, _ := p3.Get(0)
	if got3.X != 3 || got3.Y != -4 {
		t.Fatalf("reflectY got %+v", got3)
	}

	p4 := New([]geom.Point{pt(1, 2)})
	p4.Rotate90()
	got4, _ := p4.Get(0)
	if got4.X != -2 || got4.Y != 1 {
		t.Fatalf("rotate90 got %+v", got4)
	}

	p5 := New([]geom.Point{pt(1, 2)})
	p5.Rotate180()
	got5, _ := p5.Get(0)
	if got5.X != -1 || got5.Y != -2 {
		t.Fatalf("rotate180 got %+v", got5)
	}

	p6 := New([]geom.Point{pt(1, 2)})
	p6.Rotate270()
	got6, _ := p6.Get(0)
	if got6.X != 2 || got6.Y != -1 {
		t.Fatalf("rotate270 got %+v", got6)
	}
}

func TestFloor(t *testing.T) {
	p := New([]geom.Point{pt(1.7, 2.34)})
	p.Floor()
	got, _ := p.Get(0)
	if got.X != 1.7 || got.Y != 2.3 {
		t.Fatalf("got %+v", got)
	}
}
