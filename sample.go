package sketch

// DefaultSamples is the default number of subdivisions when sampling a
// cubic Bezier.
const DefaultSamples = 40

// SampleCubic discretizes a cubic Bezier into n+1 points using the cubic
// Bernstein weights. The parameter is computed as t = i/n directly rather
// than by repeated addition, so the final sample lands exactly at t=1 and
// the last point equals the curve's end point. n < 1 is treated as 1.
func SampleCubic(b CubicBezier, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, cubicEval(b, t))
	}
	return pts
}

// cubicEval evaluates the curve at t using the Bernstein basis:
// B0=(1-t)^3, B1=3t(1-t)^2, B2=3t^2(1-t), B3=t^3.
func cubicEval(b CubicBezier, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * t * u * u
	b2 := 3 * t * t * u
	b3 := t * t * t
	return Point{
		X: b0*b.Start.X + b1*b.Control1.X + b2*b.Control2.X + b3*b.End.X,
		Y: b0*b.Start.Y + b1*b.Control1.Y + b2*b.Control2.Y + b3*b.End.Y,
	}
}

// SampleSegment returns the point sequence for a drawable segment. Lines
// (and closing lines) produce exactly two points; cubics produce n+1.
// Degenerate zero-length segments are valid and yield duplicate points.
// Move segments have no extent and return a single point.
func SampleSegment(s Segment, n int) []Point {
	switch s := s.(type) {
	case Line:
		return []Point{s.Start, s.End}
	case Close:
		return []Point{s.Start, s.End}
	case CubicBezier:
		return SampleCubic(s, n)
	case Move:
		return []Point{s.Point}
	}
	return nil
}

// PolylineLength returns the cumulative length of a sampled point sequence.
func PolylineLength(pts []Point) float64 {
	var sum float64
	for i := 1; i < len(pts); i++ {
		sum += pts[i].Distance(pts[i-1])
	}
	return sum
}

// Length returns the cumulative sampled length of the shape across all
// sub-paths, useful for dash-based reveal effects.
func (s *Shape) Length() float64 {
	var sum float64
	for _, sub := range s.SubPaths {
		for _, seg := range sub {
			sum += PolylineLength(SampleSegment(seg, DefaultSamples))
		}
	}
	return sum
}
