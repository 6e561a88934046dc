package sketch

// Mapper maps points from source (document) space into target viewport
// space. SVG documents have their origin at the top-left with Y growing
// down; hosts with a bottom-left origin set FlipY.
//
// The mapping is affine and invertible:
//
//	x' = tx + tw*x/sw
//	y' = ty + th*(sh-y)/sh   (flipped)
//	y' = ty + th*y/sh        (not flipped)
type Mapper struct {
	srcW, srcH float64
	pos        Point
	size       Point
	flipY      bool
}

// NewMapper creates a mapper from a source viewport of size (sw, sh) onto a
// target rectangle at pos with the given size. A zero source dimension is a
// configuration error.
func NewMapper(sw, sh float64, pos, size Point, flipY bool) (*Mapper, error) {
	if sw == 0 || sh == 0 {
		return nil, &ConfigurationError{Reason: "source viewport has zero area"}
	}
	return &Mapper{srcW: sw, srcH: sh, pos: pos, size: size, flipY: flipY}, nil
}

// Map transforms a source-space point into target space.
func (m *Mapper) Map(p Point) Point {
	x := m.pos.X + m.size.X*p.X/m.srcW
	var y float64
	if m.flipY {
		y = m.pos.Y + m.size.Y*(m.srcH-p.Y)/m.srcH
	} else {
		y = m.pos.Y + m.size.Y*p.Y/m.srcH
	}
	return Point{X: x, Y: y}
}

// Unmap is the exact inverse of Map.
func (m *Mapper) Unmap(p Point) Point {
	x := (p.X - m.pos.X) * m.srcW / m.size.X
	var y float64
	if m.flipY {
		y = m.srcH - (p.Y-m.pos.Y)*m.srcH/m.size.Y
	} else {
		y = (p.Y - m.pos.Y) * m.srcH / m.size.Y
	}
	return Point{X: x, Y: y}
}

// MapAll maps a point list, returning a new slice.
func (m *Mapper) MapAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.Map(p)
	}
	return out
}

// MapSegment maps a segment's points into target space.
func (m *Mapper) MapSegment(s Segment) Segment {
	switch s := s.(type) {
	case Move:
		return Move{Point: m.Map(s.Point)}
	case Line:
		return Line{Start: m.Map(s.Start), End: m.Map(s.End)}
	case CubicBezier:
		return CubicBezier{
			Start:    m.Map(s.Start),
			Control1: m.Map(s.Control1),
			Control2: m.Map(s.Control2),
			End:      m.Map(s.End),
		}
	case Close:
		return Close{Start: m.Map(s.Start), End: m.Map(s.End)}
	}
	return s
}
