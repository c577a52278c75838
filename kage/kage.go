// Package kage orchestrates the whole pipeline: it expands a glyph's
// records, runs the Ming stroke adjuster when needed, draws each stroke in
// source order, and applies each special line's region transform to the
// polygons already present in the set. It is the engine's one exported
// entry point, analogous to the teacher's freetype.Context holding a font
// and glyph cache and driving DrawString.
package kage

import (
	"github.com/goki/kage/adjust"
	"github.com/goki/kage/component"
	"github.com/goki/kage/drawer/gothic"
	"github.com/goki/kage/drawer/ming"
	"github.com/goki/kage/expand"
	"github.com/goki/kage/geom"
	"github.com/goki/kage/line"
	"github.com/goki/kage/polyset"
)

// Style selects which drawer renders strokes.
type Style int

// Supported typeface styles.
const (
	Gothic Style = iota
	Ming
)

// DiagnosticKind classifies a non-fatal finding produced during a build.
type DiagnosticKind int

// Diagnostic kinds.
const (
	MissingComponent DiagnosticKind = iota
	UnknownStrokeCode
	CurveFitFailure
)

// Diagnostic is a non-fatal finding recorded during a build. It never
// changes the outcome of Build, which always returns a usable (possibly
// empty) polygon set.
type Diagnostic struct {
	Kind   DiagnosticKind
	Name   string
	Record string
}

func (k DiagnosticKind) String() string {
	switch k {
	case MissingComponent:
		return "missing component"
	case UnknownStrokeCode:
		return "unknown stroke code"
	case CurveFitFailure:
		return "curve-fit failure"
	default:
		return "unknown diagnostic"
	}
}

// Builder holds a read-only component store and the options for both
// drawers; it produces one polygon set per call to Build. A Builder has no
// mutable state beyond what a single Build call owns, so the same Builder
// may be reused (but not shared concurrently within a single Build) across
// many glyphs.
type Builder struct {
	Store       *component.Store
	GothicOpt   gothic.Options
	MingOpt     ming.Options
	AdjustConst adjust.Constants
	Diagnostics []Diagnostic
}

// New builds a Builder over store with default drawer options.
func New(store *component.Store) *Builder {
	if store == nil {
		panic("kage: nil component store")
	}
	return &Builder{
		Store:       store,
		GothicOpt:   gothic.DefaultOptions(),
		MingOpt:     ming.DefaultOptions(),
		AdjustConst: adjust.DefaultConstants(),
	}
}

// Build synthesizes one glyph by name and style, returning its polygon
// set. A missing name yields an empty set; it never returns an error,
// matching the "never fail the whole glyph" rule. Diagnostics collected
// during this call are appended to b.Diagnostics.
func (b *Builder) Build(name string, style Style) *polyset.Set {
	record, ok := b.Store.Search(name)
	if !ok {
		b.Diagnostics = append(b.Diagnostics, Diagnostic{Kind: MissingComponent, Name: name})
		return polyset.New()
	}

	lines := expand.Expand(b.Store, record)
	set := polyset.New()

	var strokes []line.Stroke
	for _, l := range lines {
		if l.Kind == line.KindStroke {
			strokes = append(strokes, l.Stroke)
		}
	}

	var adjustments []adjust.AdjustedStroke
	if style == Ming {
		adjustments = adjust.AdjustStrokes(b.AdjustConst, strokes)
	}

	gothicDrawer := gothic.New(b.GothicOpt)
	mingDrawer := ming.New(b.MingOpt)
	mingDrawer.OnCurveFitFailure = func() {
		b.Diagnostics = append(b.Diagnostics, Diagnostic{Kind: CurveFitFailure, Name: name})
	}

	strokeIdx := 0
	for _, l := range lines {
		switch l.Kind {
		case line.KindStroke:
			if l.Stroke.Type.Kind == line.UnknownStroke {
				b.Diagnostics = append(b.Diagnostics, Diagnostic{Kind: UnknownStrokeCode, Name: name, Record: line.Emit(l)})
				strokeIdx++
				continue
			}
			switch style {
			case Ming:
				mingDrawer.Draw(set, l.Stroke, adjustments[strokeIdx])
			default:
				gothicDrawer.Draw(set, l.Stroke)
			}
			strokeIdx++
		case line.KindSpecial:
			applyRegionTransform(set, l.Special)
		}
	}

	return set
}

// BuildAll synthesizes a glyph for every requested name. A name that fails
// lookup still gets an entry, holding an empty set, and is recorded as a
// diagnostic by Build. This is a
// batch convenience wrapper mirroring a pipeline that iterates many
// component names through the same engine.
func (b *Builder) BuildAll(names []string, style Style) map[string]*polyset.Set {
	out := make(map[string]*polyset.Set, len(names))
	for _, name := range names {
		out[name] = b.Build(name, style)
	}
	return out
}

func insideBox(points []geom.Point, min, max geom.Point) bool {
	for _, p := range points {
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
			return false
		}
	}
	return true
}

// applyRegionTransform mutates, in place, every polygon in set whose every
// vertex lies inside the AABB [d1,d2], per the special line's transform
// kind. Polygons outside the box are untouched; the transform never adds
// or removes polygons.
func applyRegionTransform(set *polyset.Set, sp line.Special) {
	min := sp.BoxDiag1.Min(sp.BoxDiag2)
	max := sp.BoxDiag1.Max(sp.BoxDiag2)

	for _, p := range set.Array() {
		if !insideBox(p.Points(), min, max) {
			continue
		}
		switch sp.Transform {
		case line.HorizontalFlip:
			p.ReflectX().Translate(sp.BoxDiag1.X+sp.BoxDiag2.X, 0).Floor()
		case line.VerticalFlip:
			p.ReflectY().Translate(0, sp.BoxDiag1.Y+sp.BoxDiag2.Y).Floor()
		case line.Rotate90:
			p.Rotate90().Translate(sp.BoxDiag1.X+sp.BoxDiag2.Y, sp.BoxDiag1.Y-sp.BoxDiag1.X).Floor()
		case line.Rotate180:
			p.Rotate180().Translate(sp.BoxDiag1.X+sp.BoxDiag2.X, sp.BoxDiag1.Y+sp.BoxDiag2.Y).Floor()
		case line.Rotate270:
			p.Rotate270().Translate(sp.BoxDiag1.X-sp.BoxDiag1.Y, sp.BoxDiag2.Y+sp.BoxDiag1.X).Floor()
		}
	}
}
