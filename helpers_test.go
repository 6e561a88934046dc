package sketch

import (
	"image"
	"math"
	"time"
)

const testEps = 1e-9

func approxEq(a, b float64) bool {
	return math.Abs(a-b) <= testEps
}

func ptEq(a, b Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func ptsEq(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ptEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// recordRenderer captures draw calls for assertions.
type recordRenderer struct {
	clears   int
	fills    []recordedFill
	strokes  []recordedStroke
	textures []recordedTexture
}

type recordedFill struct {
	points []Point
	color  RGBA
}

type recordedStroke struct {
	points []Point
	color  RGBA
	width  float64
}

type recordedTexture struct {
	pos, size Point
	tint      RGBA
}

func (r *recordRenderer) Clear() {
	r.clears++
	r.fills = nil
	r.strokes = nil
	r.textures = nil
}

func (r *recordRenderer) FillPolygon(pts []Point, c RGBA) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.fills = append(r.fills, recordedFill{points: cp, color: c})
}

func (r *recordRenderer) StrokePolyline(pts []Point, c RGBA, width float64) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.strokes = append(r.strokes, recordedStroke{points: cp, color: c, width: width})
}

func (r *recordRenderer) DrawTexturedRect(pos, size Point, tex image.Image, tint RGBA) {
	r.textures = append(r.textures, recordedTexture{pos: pos, size: size, tint: tint})
}

// manualClock queues scheduled callbacks for deterministic firing.
type manualClock struct {
	pending []*scheduled
}

type scheduled struct {
	fn       func()
	canceled bool
}

func (c *manualClock) Schedule(d time.Duration, fn func()) func() {
	s := &scheduled{fn: fn}
	c.pending = append(c.pending, s)
	return func() { s.canceled = true }
}

// fire runs the oldest live callback. Returns false if none remain.
func (c *manualClock) fire() bool {
	for len(c.pending) > 0 {
		s := c.pending[0]
		c.pending = c.pending[1:]
		if s.canceled {
			continue
		}
		s.fn()
		return true
	}
	return false
}

// drain fires callbacks until the queue is empty, with a step guard so a
// broken chain cannot loop forever.
func (c *manualClock) drain(maxSteps int) int {
	steps := 0
	for steps < maxSteps && c.fire() {
		steps++
	}
	return steps
}
