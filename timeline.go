package sketch

import (
	"math"

	"github.com/gogpu/sketch/ease"
)

// Mode selects how a Timeline composes its units in time.
type Mode int

const (
	// Sequential runs units one after another: unit k starts at the sum
	// of all prior durations.
	Sequential Mode = iota

	// Parallel starts every unit at offset zero.
	Parallel
)

// ModeByName maps a configuration string to a Mode. Unrecognized names
// fall back to Sequential.
func ModeByName(name string) Mode {
	if name == "parallel" {
		return Parallel
	}
	return Sequential
}

// Unit is one timed reveal of a single segment's sampled points.
type Unit struct {
	// StartOffset is the unit's start time relative to the timeline,
	// assigned by NewTimeline according to the composition mode.
	StartOffset float64

	// Duration is the reveal duration in seconds.
	Duration float64

	// Easing remaps the unit's local progress.
	Easing ease.Func

	seg    Segment
	points []Point
	isLine bool
}

// NewUnit creates a reveal unit for a drawable segment, sampling cubics
// with the given subdivision count. A nil easing means linear.
func NewUnit(seg Segment, duration float64, fn ease.Func, samples int) *Unit {
	if fn == nil {
		fn = ease.Linear
	}
	_, isLine := seg.(Line)
	if _, isClose := seg.(Close); isClose {
		isLine = true
	}
	return &Unit{
		Duration: duration,
		Easing:   fn,
		seg:      seg,
		points:   SampleSegment(seg, samples),
		isLine:   isLine,
	}
}

// Points returns the unit's full sampled point list.
func (u *Unit) Points() []Point { return u.points }

// PartialAt returns the revealed prefix of the unit at the given local
// progress (clamped to [0, 1] before easing). A line yields its start and
// the point lerped at the eased progress; a cubic yields the prefix of its
// sampled points up to floor(eased * N).
func (u *Unit) PartialAt(local float64) []Point {
	if local < 0 {
		local = 0
	} else if local > 1 {
		local = 1
	}
	eased := u.Easing(local)
	if u.isLine {
		a, b := u.points[0], u.points[len(u.points)-1]
		return []Point{a, a.Lerp(b, eased)}
	}
	n := len(u.points) - 1
	idx := int(math.Floor(eased * float64(n)))
	if idx < 0 {
		idx = 0
	} else if idx > n {
		idx = n
	}
	return u.points[:idx+1]
}

// Timeline is an ordered collection of units advanced by host ticks.
// Callbacks fire synchronously inside Advance. A detached timeline ignores
// every subsequent tick.
type Timeline struct {
	units   []*Unit
	mode    Mode
	horizon float64

	elapsed  float64
	done     bool
	detached bool

	onProgress func(stroke []Point)
	onComplete func(stroke []Point)
}

// NewTimeline composes units under the given mode, assigning start
// offsets: cumulative prior durations for Sequential, zero for Parallel.
func NewTimeline(mode Mode, units ...*Unit) *Timeline {
	var offset, horizon float64
	for _, u := range units {
		if mode == Sequential {
			u.StartOffset = offset
			offset += u.Duration
		} else {
			u.StartOffset = 0
		}
		if end := u.StartOffset + u.Duration; end > horizon {
			horizon = end
		}
	}
	return &Timeline{units: units, mode: mode, horizon: horizon}
}

// Horizon returns max(StartOffset+Duration) over all units.
func (t *Timeline) Horizon() float64 { return t.horizon }

// Elapsed returns the accumulated elapsed time.
func (t *Timeline) Elapsed() float64 { return t.elapsed }

// Done reports whether the timeline has emitted its terminal event.
func (t *Timeline) Done() bool { return t.done }

// Mode returns the composition mode.
func (t *Timeline) Mode() Mode { return t.mode }

// Units returns the composed units.
func (t *Timeline) Units() []*Unit { return t.units }

// OnProgress registers the progress callback. It receives the growing
// stroke: completed units' full point lists concatenated with the active
// units' partial lists.
func (t *Timeline) OnProgress(fn func(stroke []Point)) { t.onProgress = fn }

// OnComplete registers the terminal callback. It fires exactly once, with
// the full path, when elapsed time reaches the horizon.
func (t *Timeline) OnComplete(fn func(stroke []Point)) { t.onComplete = fn }

// Detach drops the timeline's callbacks and marks it inert. Any tick
// delivered after Detach is a no-op. Detach is synchronous: once it
// returns, no callback can fire.
func (t *Timeline) Detach() {
	t.detached = true
	t.onProgress = nil
	t.onComplete = nil
}

// UnitProgress returns unit i's clamped local progress at the current
// elapsed time.
func (t *Timeline) UnitProgress(i int) float64 {
	u := t.units[i]
	if u.Duration <= 0 {
		if t.elapsed >= u.StartOffset {
			return 1
		}
		return 0
	}
	local := (t.elapsed - u.StartOffset) / u.Duration
	if local < 0 {
		return 0
	}
	if local > 1 {
		return 1
	}
	return local
}

// Stroke returns the revealed stroke at the current elapsed time.
func (t *Timeline) Stroke() []Point {
	var stroke []Point
	for i, u := range t.units {
		switch {
		case t.elapsed >= u.StartOffset+u.Duration:
			stroke = append(stroke, u.points...)
		case t.elapsed >= u.StartOffset:
			stroke = append(stroke, u.PartialAt(t.UnitProgress(i))...)
		}
	}
	return stroke
}

// Advance moves the timeline forward by dt seconds and fires callbacks.
// It returns the leftover time past the horizon, so a chain can hand the
// remainder of a tick to the next phase. Ticks after completion or
// detachment are ignored and return 0.
func (t *Timeline) Advance(dt float64) float64 {
	if t.done || t.detached {
		return 0
	}
	t.elapsed += dt

	if t.elapsed >= t.horizon {
		leftover := t.elapsed - t.horizon
		t.elapsed = t.horizon
		t.done = true
		if fn := t.onComplete; fn != nil {
			fn(t.Stroke())
		}
		return leftover
	}

	if fn := t.onProgress; fn != nil {
		fn(t.Stroke())
	}
	return 0
}
