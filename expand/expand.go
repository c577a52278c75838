// Package expand turns raw glyph data into a flat list of stroke and
// special lines by recursively resolving component references against a
// component.Store, stretching and rescaling each referenced component's
// strokes to fit the box the reference names.
package expand

import (
	"github.com/goki/kage/component"
	"github.com/goki/kage/geom"
	"github.com/goki/kage/line"
)

// maxRecursion bounds component-reference recursion. The limit is
// arbitrary but defends against a reference cycle between components.
const maxRecursion = 32

// Expand splits data on '$' into records, parses each one, and resolves
// any component references found (recursively) against store. The
// returned lines are only ever StrokeLine or SpecialLine - component
// references are fully expanded away, never returned.
func Expand(store *component.Store, data string) []line.Line {
	return expand(store, data, 0)
}

func expand(store *component.Store, data string, recursion int) []line.Line {
	if data == "" {
		return nil
	}
	if recursion >= maxRecursion {
		return nil
	}

	var lines []line.Line
	for _, record := range splitRecords(data) {
		l := line.New(record)
		switch l.Kind {
		case line.KindStroke, line.KindSpecial:
			lines = append(lines, l)
		case line.KindComponentRef:
			ref := l.ComponentRef
			componentData, ok := store.Search(ref.ComponentName)
			if !ok {
				continue
			}
			expanded := expandComponentStrokes(store, componentData, ref, recursion+1)
			lines = append(lines, expanded...)
		}
	}
	return lines
}

func splitRecords(data string) []string {
	var records []string
	start := 0
	for i := 0; i < len(data); i++ {
		if data[i] == '$' {
			records = append(records, data[start:i])
			start = i + 1
		}
	}
	records = append(records, data[start:])
	return records
}

// expandComponentStrokes recursively expands componentData, then warps and
// rescales its strokes to fit the box the reference names.
func expandComponentStrokes(store *component.Store, componentData string, ref line.ComponentRef, recursion int) []line.Line {
	expanded := expand(store, componentData, recursion)

	var strokes []line.Stroke
	for _, l := range expanded {
		if l.Kind == line.KindStroke {
			strokes = append(strokes, l.Stroke)
		}
	}

	sx, sy := ref.PrimaryControlPoint.X, ref.PrimaryControlPoint.Y
	sx2, sy2 := ref.SecondaryControlPoint.X, ref.SecondaryControlPoint.Y

	if sx != 0 || sy != 0 {
		if sx > 100 {
			sx -= 200
		} else {
			sx2, sy2 = 0, 0
		}
	}

	if (sx != 0 || sy != 0) && len(strokes) > 0 {
		min, max := strokesBox(strokes)
		destPivot := geom.NewPointNoFlag(sx, sy)
		srcPivot := geom.NewPointNoFlag(sx2, sy2)
		for i := range strokes {
			strokes[i] = strokes[i].Stretch(destPivot, srcPivot, min, max)
		}
	}

	scale := geom.NewVector(
		(ref.BoxDiag2.X-ref.BoxDiag1.X)/200.0,
		(ref.BoxDiag2.Y-ref.BoxDiag1.Y)/200.0,
	)

	result := make([]line.Line, len(strokes))
	for i, s := range strokes {
		s.Point1 = ref.BoxDiag1.Add(geom.PointVector(s.Point1.MulPoint(scale)))
		s.Point2 = ref.BoxDiag1.Add(geom.PointVector(s.Point2.MulPoint(scale)))
		s.Point3 = ref.BoxDiag1.Add(geom.PointVector(s.Point3.MulPoint(scale)))
		s.Point4 = ref.BoxDiag1.Add(geom.PointVector(s.Point4.MulPoint(scale)))
		result[i] = line.Line{Kind: line.KindStroke, Stroke: s}
	}
	return result
}

// strokesBox computes the union bounding box of all given strokes,
// seeded at the 200x200 design grid's own bounds like the reference
// implementation so an empty or single-point stroke set still yields a
// sane box.
func strokesBox(strokes []line.Stroke) (min, max geom.Point) {
	minX, minY := 200.0, 200.0
	maxX, maxY := 0.0, 0.0
	for _, s := range strokes {
		smin, smax := s.GetBox()
		if smin.X < minX {
			minX = smin.X
		}
		if smin.Y < minY {
			minY = smin.Y
		}
		if smax.X > maxX {
			maxX = smax.X
		}
		if smax.Y > maxY {
			maxY = smax.Y
		}
	}
	return geom.NewPointNoFlag(minX, minY), geom.NewPointNoFlag(maxX, maxY)
}
