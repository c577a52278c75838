package line

// StrokeKind identifies the geometric shape a stroke line draws.
type StrokeKind int

// Stroke kinds.
const (
	StraightLine  StrokeKind = iota // base 1: 2 control points
	Curve                           // base 2 or 12: 3 control points
	BendLine                        // base 3: 3 control points
	OtsuCurve                       // base 4: 3 control points
	ComplexCurve                    // base 6: 4 control points
	VerticalSlash                   // base 7: 4 control points
	UnknownStroke                   // unrecognized base value
)

// StrokeType is the decoded (kind, base, opt) triple for a record's
// field_1.
type StrokeType struct {
	Kind StrokeKind
	Base uint32
	Opt  uint32
}

// NewStrokeType decodes a numeric field_1 value: base = n mod 100, opt =
// floor(n/100). A non-zero opt forces straight-line analysis treatment
// elsewhere but does not change Kind here - kind 12 deliberately maps to
// Curve, matching glyphwiki data that never actually emits it as a first
// field but preserved for fidelity with upstream stroke data.
func NewStrokeType(n float64) StrokeType {
	base := uint32(n) % 100
	opt := uint32(n / 100)

	var kind StrokeKind
	switch base {
	case 1:
		kind = StraightLine
	case 2, 12:
		kind = Curve
	case 3:
		kind = BendLine
	case 4:
		kind = OtsuCurve
	case 6:
		kind = ComplexCurve
	case 7:
		kind = VerticalSlash
	default:
		kind = UnknownStroke
	}

	return StrokeType{Kind: kind, Base: base, Opt: opt}
}

// EndKind identifies the terminal shape of a stroke's head or tail.
type EndKind int

// End kinds, matching the original record's base field-2/field-3 values.
const (
	Free                 EndKind = 0
	HorizontalConnection EndKind = 2
	VerticalConnection   EndKind = 32
	TopLeftCorner        EndKind = 12
	TopRightCorner       EndKind = 22
	BottomLeftCorner     EndKind = 13
	BottomRightCorner    EndKind = 23
	LeftUpwardFlick      EndKind = 4
	RightUpwardFlick     EndKind = 5
	BottomLeftZhOld      EndKind = 313
	BottomLeftZhNew      EndKind = 413
	BottomRightHorT      EndKind = 24
	Narrow               EndKind = 7
	RoofedNarrowEntry    EndKind = 27
	Stop                 EndKind = 8
	Temp14               EndKind = 14
	Temp15               EndKind = 15
	Temp1                EndKind = 1
	Temp9                EndKind = 9
	Temp6                EndKind = 6
	Temp17               EndKind = 17
	UnknownEnd           EndKind = 1000
)

// EndType is the decoded terminal descriptor for a stroke's head or tail.
type EndType struct {
	Kind EndKind
	Base uint32
	Opt  uint32
	Opt1 uint32
	Opt2 uint32
	Opt3 uint32
}

// NewEndType decodes a numeric field_2/field_3 value.
func NewEndType(n float64) EndType {
	base := uint32(n) % 100
	opt := uint32(n / 100)
	opt1 := opt % 10
	opt2 := (opt / 10) % 10
	opt3 := opt / 100

	var kind EndKind
	switch base {
	case 0:
		kind = Free
	case 2:
		kind = HorizontalConnection
	case 4:
		kind = LeftUpwardFlick
	case 5:
		kind = RightUpwardFlick
	case 7:
		kind = Narrow
	case 8:
		kind = Stop
	case 12:
		kind = TopLeftCorner
	case 13:
		switch opt1 {
		case 4:
			kind = BottomLeftZhNew
		case 3:
			kind = BottomLeftZhOld
		default:
			kind = BottomLeftCorner
		}
	case 22:
		kind = TopRightCorner
	case 23:
		kind = BottomRightCorner
	case 24:
		kind = BottomRightHorT
	case 27:
		kind = RoofedNarrowEntry
	case 32:
		kind = VerticalConnection
	case 14:
		kind = Temp14
	case 15:
		kind = Temp15
	case 1:
		kind = Temp1
	case 9:
		kind = Temp9
	case 6:
		kind = Temp6
	case 17:
		kind = Temp17
	default:
		kind = UnknownEnd
	}

	return EndType{Kind: kind, Base: base, Opt: opt, Opt1: opt1, Opt2: opt2, Opt3: opt3}
}
