package sketch

import "github.com/gogpu/sketch/ease"

// Origin names the direction a shape enters the canvas from.
type Origin int

const (
	// OriginNone disables the entrance animation.
	OriginNone Origin = iota

	// OriginLeft starts the shape fully beyond the left edge.
	OriginLeft

	// OriginRight starts the shape fully beyond the right edge.
	OriginRight

	// OriginTop starts the shape fully above the top edge.
	OriginTop

	// OriginBottom starts the shape fully below the bottom edge.
	OriginBottom

	// OriginCenterX collapses the shape to zero horizontal extent about
	// its center.
	OriginCenterX

	// OriginCenterY collapses the shape to zero vertical extent about
	// its center.
	OriginCenterY
)

// OriginByName maps a configuration string to an Origin. Unrecognized
// names fall back to OriginNone.
func OriginByName(name string) Origin {
	switch name {
	case "left":
		return OriginLeft
	case "right":
		return OriginRight
	case "top":
		return OriginTop
	case "bottom":
		return OriginBottom
	case "center_x":
		return OriginCenterX
	case "center_y":
		return OriginCenterY
	}
	return OriginNone
}

// EntrancePose computes the start point list for a directional entrance:
// the target points translated so the shape's bounding box sits fully
// beyond the named viewport edge, or collapsed about the shape's center
// for the center origins. OriginNone returns the target unchanged.
//
// The viewport is in target space with Y up: Max.Y is the top edge.
func EntrancePose(target []Point, viewport Rect, origin Origin) []Point {
	if origin == OriginNone || len(target) == 0 {
		return target
	}
	bounds := BoundsOf(target)
	out := make([]Point, len(target))

	switch origin {
	case OriginLeft:
		dx := viewport.Min.X - bounds.Max.X
		for i, p := range target {
			out[i] = Pt(p.X+dx, p.Y)
		}
	case OriginRight:
		dx := viewport.Max.X - bounds.Min.X
		for i, p := range target {
			out[i] = Pt(p.X+dx, p.Y)
		}
	case OriginTop:
		dy := viewport.Max.Y - bounds.Min.Y
		for i, p := range target {
			out[i] = Pt(p.X, p.Y+dy)
		}
	case OriginBottom:
		dy := viewport.Min.Y - bounds.Max.Y
		for i, p := range target {
			out[i] = Pt(p.X, p.Y+dy)
		}
	case OriginCenterX:
		cx := bounds.Center().X
		for i, p := range target {
			out[i] = Pt(cx, p.Y)
		}
	case OriginCenterY:
		cy := bounds.Center().Y
		for i, p := range target {
			out[i] = Pt(p.X, cy)
		}
	}
	return out
}

// Entrance animates a point list linearly in object space from a start
// pose to its target pose, applying an easing to the interpolation
// factor. It implements Phase, so multiple entrances compose with Chain
// and Group under the same rules as timelines.
type Entrance struct {
	start    []Point
	target   []Point
	duration float64
	easing   ease.Func

	elapsed  float64
	done     bool
	detached bool

	onProgress func(pts []Point)
	onComplete func(pts []Point)
}

// NewEntrance creates an entrance phase. A nil easing means linear.
func NewEntrance(start, target []Point, duration float64, fn ease.Func) *Entrance {
	if fn == nil {
		fn = ease.Linear
	}
	return &Entrance{start: start, target: target, duration: duration, easing: fn}
}

// OnProgress registers the per-tick callback with the interpolated points.
func (e *Entrance) OnProgress(fn func(pts []Point)) { e.onProgress = fn }

// OnComplete registers the terminal callback with the target points.
func (e *Entrance) OnComplete(fn func(pts []Point)) { e.onComplete = fn }

// Done reports whether the entrance has completed.
func (e *Entrance) Done() bool { return e.done }

// Detach drops the entrance's callbacks and marks it inert.
func (e *Entrance) Detach() {
	e.detached = true
	e.onProgress = nil
	e.onComplete = nil
}

// At returns the interpolated point list at clamped progress t.
func (e *Entrance) At(t float64) []Point {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	eased := e.easing(t)
	out := make([]Point, len(e.target))
	for i := range e.target {
		out[i] = e.start[i].Lerp(e.target[i], eased)
	}
	return out
}

// Advance implements Phase.
func (e *Entrance) Advance(dt float64) float64 {
	if e.done || e.detached {
		return 0
	}
	e.elapsed += dt
	if e.elapsed >= e.duration {
		leftover := e.elapsed - e.duration
		e.elapsed = e.duration
		e.done = true
		if fn := e.onComplete; fn != nil {
			fn(e.target)
		}
		return leftover
	}
	if fn := e.onProgress; fn != nil {
		fn(e.At(e.elapsed / e.duration))
	}
	return 0
}
