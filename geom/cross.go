package geom

// cross returns the 2-D cross product (z component) of two vectors.
func cross(v1, v2 Vector) float64 {
	return v1.X*v2.Y - v1.Y*v2.X
}

// IsCross reports whether segment (a1,a2) crosses segment (b1,b2). A NaN in
// any of the five cross products evaluated here is treated as a crossing
// (propagated from upstream degenerate arithmetic, e.g. a stretch division
// by zero) rather than reported as an error - preserved exactly as the
// original analyzer depends on it to force a conservative "assume collision"
// outcome.
func IsCross(a1, a2, b1, b2 Point) bool {
	a := a2.SubPoint(a1)
	b := b2.SubPoint(b1)

	abCross := cross(a, b)
	crossA1s2s := cross(a, b1.SubPoint(a1))
	crossA1s2e := cross(a, b2.SubPoint(a1))
	crossB1s1s := cross(b, a1.SubPoint(b1))
	crossB1s1e := cross(b, a2.SubPoint(b1))

	if isNaN(abCross) || isNaN(crossA1s2s) || isNaN(crossA1s2e) || isNaN(crossB1s1s) || isNaN(crossB1s1e) {
		return true
	}
	if abCross == 0 {
		// Parallel (or collinear); original does not check for overlap.
		return false
	}

	return Round(crossA1s2s*crossA1s2e, 5) <= 0 && Round(crossB1s1s*crossB1s1e, 5) <= 0
}

func isNaN(f float64) bool { return f != f }

// IsCrossBox reports whether segment (a1,a2) crosses any of the four edges
// of the axis-aligned box with diagonal corners (d1,d2).
func IsCrossBox(a1, a2, d1, d2 Point) bool {
	topLeft := d1
	topRight := Point{X: d2.X, Y: d1.Y}
	bottomLeft := Point{X: d1.X, Y: d2.Y}
	bottomRight := d2

	return IsCross(a1, a2, topLeft, topRight) ||
		IsCross(a1, a2, topRight, bottomRight) ||
		IsCross(a1, a2, bottomLeft, bottomRight) ||
		IsCross(a1, a2, topLeft, bottomLeft)
}
