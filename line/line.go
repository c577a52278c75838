// Package line parses and re-emits the dollar/colon-delimited records that
// describe one glyph's strokes, special (region-transform) lines, and
// component references, and implements the pivot-hinged stretch function
// the expander uses to fit a referenced component into an arbitrary box.
package line

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goki/kage/geom"
)

// Kind distinguishes the four record shapes a line can parse to.
type Kind int

// Line kinds.
const (
	KindStroke Kind = iota
	KindSpecial
	KindComponentRef
	KindUnknown
)

// SpecialKind identifies the affine region transform a SpecialLine applies.
type SpecialKind int

// Special kinds.
const (
	HorizontalFlip SpecialKind = iota
	VerticalFlip
	Rotate90
	Rotate180
	Rotate270
)

// Stroke is a fully decoded stroke-line record.
type Stroke struct {
	Type                   StrokeType
	HeadShape, TailShape   EndType
	Point1, Point2, Point3, Point4 geom.Point
}

// Special is a fully decoded region-transform record.
type Special struct {
	Transform          SpecialKind
	BoxDiag1, BoxDiag2 geom.Point
}

// ComponentRef is a fully decoded component-reference record.
type ComponentRef struct {
	ComponentName                     string
	BoxDiag1, BoxDiag2                geom.Point
	PrimaryControlPoint, SecondaryControlPoint geom.Point
}

// Line is a tagged union over the four record shapes produced by New.
type Line struct {
	Kind         Kind
	Stroke       Stroke
	Special      Special
	ComponentRef ComponentRef
}

// floorField floors a parsed numeric field, matching the original's
// "every numeric field is floored after parsing" rule.
func floorField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return math.Floor(v)
}

// New parses one dollar-delimited record (already split out of the glyph
// data) into a Line. Up to 11 colon-separated fields are expected; missing
// trailing fields default to 0. Field 8 is the alphanumeric component name
// and is never floored.
func New(record string) Line {
	fields := strings.Split(record, ":")

	field := func(i int) float64 {
		if i >= len(fields) {
			return 0
		}
		return floorField(fields[i])
	}
	rawField8 := func() string {
		if 7 >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[7])
	}

	f1, f2, f3 := field(0), field(1), field(2)
	f4, f5, f6, f7 := field(3), field(4), field(5), field(6)
	f8, f9, f10, f11 := field(7), field(8), field(9), field(10)

	switch {
	case f1 == 99:
		return Line{
			Kind: KindComponentRef,
			ComponentRef: ComponentRef{
				ComponentName:           rawField8(),
				BoxDiag1:                geom.NewPointNoFlag(f4, f5),
				BoxDiag2:                geom.NewPointNoFlag(f6, f7),
				PrimaryControlPoint:     geom.NewPointNoFlag(f2, f3),
				SecondaryControlPoint:   geom.NewPointNoFlag(f10, f11),
			},
		}
	case f1 == 0 && f2 == 99 && (f3 == 1 || f3 == 2 || f3 == 3):
		kind := map[float64]SpecialKind{1: Rotate90, 2: Rotate180, 3: Rotate270}[f3]
		return Line{Kind: KindSpecial, Special: Special{
			Transform: kind,
			BoxDiag1:  geom.NewPointNoFlag(f4, f5),
			BoxDiag2:  geom.NewPointNoFlag(f6, f7),
		}}
	case f1 == 0 && f2 == 98 && f3 == 0:
		return Line{Kind: KindSpecial, Special: Special{
			Transform: HorizontalFlip,
			BoxDiag1:  geom.NewPointNoFlag(f4, f5),
			BoxDiag2:  geom.NewPointNoFlag(f6, f7),
		}}
	case f1 == 0 && f2 == 97 && f3 == 0:
		return Line{Kind: KindSpecial, Special: Special{
			Transform: VerticalFlip,
			BoxDiag1:  geom.NewPointNoFlag(f4, f5),
			BoxDiag2:  geom.NewPointNoFlag(f6, f7),
		}}
	default:
		strokeType := NewStrokeType(f1)
		if strokeType.Kind == UnknownStroke && strokeType.Opt == 0 {
			return Line{Kind: KindUnknown}
		}
		return Line{
			Kind: KindStroke,
			Stroke: Stroke{
				Type:      strokeType,
				HeadShape: NewEndType(f2),
				TailShape: NewEndType(f3),
				Point1:    geom.NewPointNoFlag(f4, f5),
				Point2:    geom.NewPointNoFlag(f6, f7),
				Point3:    geom.NewPointNoFlag(f8, f9),
				Point4:    geom.NewPointNoFlag(f10, f11),
			},
		}
	}
}

// Emit reconstructs the record text for a Line, supporting the
// parse/emit round-trip property.
func Emit(l Line) string {
	switch l.Kind {
	case KindComponentRef:
		r := l.ComponentRef
		return fmt.Sprintf("99:%v:%v:%v:%v:%v:%v:%s:0:%v:%v",
			r.PrimaryControlPoint.X, r.PrimaryControlPoint.Y,
			r.BoxDiag1.X, r.BoxDiag1.Y, r.BoxDiag2.X, r.BoxDiag2.Y,
			r.ComponentName, r.SecondaryControlPoint.X, r.SecondaryControlPoint.Y)
	case KindSpecial:
		sp := l.Special
		var f2, f3 float64
		switch sp.Transform {
		case HorizontalFlip:
			f2, f3 = 98, 0
		case VerticalFlip:
			f2, f3 = 97, 0
		case Rotate90:
			f2, f3 = 99, 1
		case Rotate180:
			f2, f3 = 99, 2
		case Rotate270:
			f2, f3 = 99, 3
		}
		return fmt.Sprintf("0:%v:%v:%v:%v:%v:%v", f2, f3, sp.BoxDiag1.X, sp.BoxDiag1.Y, sp.BoxDiag2.X, sp.BoxDiag2.Y)
	case KindStroke:
		s := l.Stroke
		return fmt.Sprintf("%v:%v:%v:%v:%v:%v:%v:%v:%v:%v:%v",
			float64(s.Type.Base)+float64(s.Type.Opt)*100,
			float64(s.HeadShape.Base)+float64(s.HeadShape.Opt)*100,
			float64(s.TailShape.Base)+float64(s.TailShape.Opt)*100,
			s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y,
			s.Point3.X, s.Point3.Y, s.Point4.X, s.Point4.Y)
	default:
		return ""
	}
}
