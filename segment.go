package sketch

// Segment represents a single element of a parsed path.
type Segment interface {
	isSegment()
}

// Move starts a new sub-path at a point without drawing.
type Move struct {
	Point Point
}

func (Move) isSegment() {}

// Line draws a straight line between two points.
type Line struct {
	Start, End Point
}

func (Line) isSegment() {}

// CubicBezier draws a cubic Bezier curve with two control points.
type CubicBezier struct {
	Start    Point
	Control1 Point
	Control2 Point
	End      Point
}

func (CubicBezier) isSegment() {}

// Close closes the current sub-path with a line back to its starting point.
// Start is the current point when the close was issued; End is the sub-path
// start. The two may coincide, in which case the closing line is degenerate.
type Close struct {
	Start, End Point
}

func (Close) isSegment() {}
