package geom

import "math"

// initialSplitRate is the fraction along a sampled curve at which Split
// divides it - always the midpoint, kept as a named constant to match the
// original's naming.
const initialSplitRate = 0.5

// SplitResult is the outcome of splitting a quadratic Bézier curve into two
// quadratic segments at a sampled midpoint index.
type SplitResult struct {
	Index    int
	Segments [2][3]Point
}

// SplitQuadraticBezier splits a quadratic Bézier curve into two quadratic
// segments, hinged at the index nearest the middle of sampledPoints. This is
// how draw_curve_body turns one sampled offset curve into two independently
// fittable halves.
func SplitQuadraticBezier(start, control, end Point, sampledPoints []Point) SplitResult {
	n := len(sampledPoints)
	splitIndex := int(math.Floor(float64(n) * initialSplitRate))
	actualRate := float64(splitIndex) / float64(n)

	newControl1 := lerpPoint(start, control, actualRate)
	newControl2 := lerpPoint(control, end, actualRate)
	mid := lerpPoint(newControl1, newControl2, actualRate)

	return SplitResult{
		Index: splitIndex,
		Segments: [2][3]Point{
			{start, newControl1, mid},
			{mid, newControl2, end},
		},
	}
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: (1-t)*a.X + t*b.X, Y: (1-t)*a.Y + t*b.Y}
}

// FattenResult holds the left and right offset polylines produced by
// FattenCurve.
type FattenResult struct {
	Left, Right []Point
}

// FattenCurve samples a curve (quadratic when IsQuadratic(c1,c2), else
// cubic) at sampleStep-sized increments of a 0..1000 parameter range and
// offsets each sample point by widthFunc(progress) along its normal,
// producing the left and right outlines that a drawer concatenates into a
// filled stroke.
func FattenCurve(start, c1, c2, end Point, sampleStep int, widthFunc func(progress float64) float64) FattenResult {
	var sampler CurveSampler
	if IsQuadratic(c1, c2) {
		sampler = NewQuadraticSampler(start, c1, end)
	} else {
		sampler = NewCubicSampler(start, c1, c2, end)
	}

	capacity := 1000/sampleStep + 1
	result := FattenResult{
		Left:  make([]Point, 0, capacity),
		Right: make([]Point, 0, capacity),
	}

	for step := 0; step <= 1000; step += sampleStep {
		progress := float64(step) / 1000.0

		sampled := sampler.Sample(progress)
		direction := sampler.Derivative(progress)
		width := widthFunc(progress)

		var normal Vector
		if Round(direction.X, 8) == 0 && Round(direction.Y, 8) == 0 {
			normal = Vector{X: -width, Y: 0}
		} else {
			normal = Normalize(Vector{X: -direction.Y, Y: direction.X}, width)
		}

		result.Left = append(result.Left, sampled.Sub(normal))
		result.Right = append(result.Right, sampled.Add(normal))
	}

	return result
}

// QuadraticBezierFitResult is the quadratic curve produced by
// FitQuadraticBezier.
type QuadraticBezierFitResult struct {
	Start, Control, End Point
}

// FitQuadraticBezier least-squares fits a single quadratic Bézier segment to
// a sampled point list: the exact midpoint for a 2-point list, a closed-form
// weighted fit (weights t(1-t)) for 3 or more, and no result for 0 or 1.
func FitQuadraticBezier(points []Point) (QuadraticBezierFitResult, bool) {
	switch {
	case len(points) == 2:
		mid := Point{X: (points[0].X + points[1].X) / 2, Y: (points[0].Y + points[1].Y) / 2}
		return QuadraticBezierFitResult{
			Start:   points[0],
			Control: NewPoint(mid.X, mid.Y, true),
			End:     points[1],
		}, true
	case len(points) <= 1:
		return QuadraticBezierFitResult{}, false
	}

	start := points[0]
	end := points[len(points)-1]

	var numX, numY, denom float64
	n := float64(len(points) - 1)
	for step := 1; step < len(points)-1; step++ {
		point := points[step]
		progress := float64(step) / n
		remain := 1 - progress
		remainSq := remain * remain
		progressSq := progress * progress
		weight := progress * remain

		numX += weight * (point.X - remainSq*start.X - progressSq*end.X)
		numY += weight * (point.Y - remainSq*start.Y - progressSq*end.Y)
		denom += 2 * weight * weight
	}

	if denom == 0 {
		return QuadraticBezierFitResult{}, false
	}

	control := NewPoint(numX/denom, numY/denom, true)
	return QuadraticBezierFitResult{Start: start, Control: control, End: end}, true
}
