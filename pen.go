package sketch

import (
	"image"
	"time"
)

// PenState is the pen tracker's lifecycle state.
type PenState int

const (
	// PenIdle means the marker is hidden and not tracking.
	PenIdle PenState = iota

	// PenActive means the marker is visible and following the stroke tip.
	PenActive

	// PenSlidingOut means the marker is running its exit animation.
	PenSlidingOut
)

// slideStep is the interval between self-scheduled exit animation ticks.
const slideStep = 16 * time.Millisecond

// PenTracker overlays a marker image that follows the active reveal point,
// then slides off the bottom of the surface when the stroke completes.
//
// The tracker is a three-state machine: Idle -> Active (Start) ->
// SlidingOut (SlideOut) -> Idle. Stop cancels any pending exit ticks and
// returns to Idle immediately without firing the slide-out callback.
//
// If the marker asset failed to load (texture is nil), the tracker never
// becomes active: Start is a no-op and SlideOut invokes its completion
// callback synchronously so callers need not special-case the degraded
// mode.
type PenTracker struct {
	texture image.Image
	size    Point
	offset  Point

	clock      Clock
	hostBottom float64

	state   PenState
	pos     Point
	opacity float64

	slideStart    Point
	slideTargetY  float64
	slideProgress float64
	slideDuration float64
	slideCancel   func()
	slideDone     func()

	onStep func()
}

// NewPenTracker creates a pen tracker. texture may be nil when the marker
// asset could not be loaded; the tracker then stays in degraded no-marker
// mode. hostBottom is the Y coordinate of the host surface's bottom edge.
func NewPenTracker(texture image.Image, size, offset Point, clock Clock, hostBottom float64) *PenTracker {
	if texture == nil {
		Logger().Warn("sketch: no marker texture, pen tracker degraded to no-marker mode")
	}
	return &PenTracker{
		texture:    texture,
		size:       size,
		offset:     offset,
		clock:      clock,
		hostBottom: hostBottom,
	}
}

// State returns the tracker's current state.
func (p *PenTracker) State() PenState { return p.state }

// Position returns the marker's current position.
func (p *PenTracker) Position() Point { return p.pos }

// Opacity returns the marker's current opacity in [0, 1].
func (p *PenTracker) Opacity() float64 { return p.opacity }

// OnStep registers a repaint hook invoked after every exit animation step,
// including the final one that hides the marker. The exit sequence runs on
// Clock callbacks rather than host ticks, so without a hook the frames it
// produces would never reach the renderer.
func (p *PenTracker) OnStep(fn func()) { p.onStep = fn }

// Start makes the marker visible and begins tracking. It is a no-op in
// degraded mode or while a slide-out is running.
func (p *PenTracker) Start() {
	if p.texture == nil || p.state != PenIdle {
		return
	}
	p.state = PenActive
	p.opacity = 1
}

// Stop cancels any pending exit ticks and returns to Idle immediately.
// The slide-out completion callback does not fire; only spontaneous
// completion fires it.
func (p *PenTracker) Stop() {
	if p.slideCancel != nil {
		p.slideCancel()
		p.slideCancel = nil
	}
	p.slideDone = nil
	p.onStep = nil
	p.state = PenIdle
	p.opacity = 0
}

// UpdatePosition moves the marker so its pen tip sits at the stroke tip.
// Called on every progress tick while the tracker is active.
func (p *PenTracker) UpdatePosition(tip Point) {
	if p.state != PenActive {
		return
	}
	p.pos = tip.Sub(p.offset)
}

// SlideOut starts the exit animation: the marker eases straight down to
// the host's bottom edge minus the marker height, with an out-quadratic
// position curve and a linear opacity fade. onComplete fires exactly once
// when the animation finishes spontaneously.
//
// If the tracker is not active (degraded mode, or never started),
// onComplete is invoked synchronously.
func (p *PenTracker) SlideOut(duration float64, onComplete func()) {
	if p.texture == nil || p.state != PenActive {
		if onComplete != nil {
			onComplete()
		}
		return
	}
	if duration <= 0 {
		duration = 0.5
	}
	p.state = PenSlidingOut
	p.slideStart = p.pos
	p.slideTargetY = p.hostBottom - p.size.Y
	p.slideProgress = 0
	p.slideDuration = duration
	p.slideDone = onComplete
	p.scheduleSlideTick()
}

func (p *PenTracker) scheduleSlideTick() {
	p.slideCancel = p.clock.Schedule(slideStep, func() {
		p.advanceSlide(slideStep.Seconds())
	})
}

// advanceSlide applies one exit animation step. Exposed to ticks via the
// Clock; kept separate so tests can drive it deterministically.
func (p *PenTracker) advanceSlide(dt float64) {
	if p.state != PenSlidingOut {
		return
	}
	p.slideProgress += dt / p.slideDuration
	t := p.slideProgress
	if t >= 1 {
		t = 1
	}

	// Out-quadratic position, linear fade.
	eased := -t * (t - 2)
	p.pos = Point{
		X: p.slideStart.X,
		Y: p.slideStart.Y + (p.slideTargetY-p.slideStart.Y)*eased,
	}
	p.opacity = 1 - t

	if t >= 1 {
		p.finishSlide()
	} else {
		p.scheduleSlideTick()
	}
	if fn := p.onStep; fn != nil {
		fn()
	}
}

func (p *PenTracker) finishSlide() {
	p.slideCancel = nil
	p.state = PenIdle
	done := p.slideDone
	p.slideDone = nil
	if done != nil {
		done()
	}
}

// Draw renders the marker if it is visible.
func (p *PenTracker) Draw(r Renderer) {
	if p.texture == nil || p.state == PenIdle {
		return
	}
	r.DrawTexturedRect(p.pos, p.size, p.texture, RGBA{R: 1, G: 1, B: 1, A: p.opacity})
}
