package sketch

// Phase is one stage of a composite animation: it consumes tick time,
// reports completion, and can be detached so later ticks are inert.
// Timeline, Fade, Entrance, Chain and Group all implement Phase.
type Phase interface {
	// Advance consumes dt seconds and returns the unconsumed remainder
	// once the phase completes during this tick.
	Advance(dt float64) float64

	// Done reports whether the phase has completed.
	Done() bool

	// Detach drops all callbacks; subsequent ticks are no-ops.
	Detach()
}

// Fade is a fixed-duration scalar phase. It drives a single eased value
// from 0 to 1, used for the fill fade-in that follows a stroke reveal.
type Fade struct {
	duration float64
	easing   func(float64) float64

	elapsed  float64
	done     bool
	detached bool

	onProgress func(v float64)
	onComplete func()
}

// NewFade creates a fade phase. A nil easing means linear.
func NewFade(duration float64, easing func(float64) float64) *Fade {
	if easing == nil {
		easing = func(p float64) float64 { return p }
	}
	return &Fade{duration: duration, easing: easing}
}

// OnProgress registers the per-tick callback with the eased value.
func (f *Fade) OnProgress(fn func(v float64)) { f.onProgress = fn }

// OnComplete registers the terminal callback; it fires exactly once.
func (f *Fade) OnComplete(fn func()) { f.onComplete = fn }

// Done reports whether the fade has completed.
func (f *Fade) Done() bool { return f.done }

// Detach drops the fade's callbacks and marks it inert.
func (f *Fade) Detach() {
	f.detached = true
	f.onProgress = nil
	f.onComplete = nil
}

// Advance implements Phase.
func (f *Fade) Advance(dt float64) float64 {
	if f.done || f.detached {
		return 0
	}
	f.elapsed += dt
	if f.elapsed >= f.duration {
		leftover := f.elapsed - f.duration
		f.elapsed = f.duration
		f.done = true
		if fn := f.onProgress; fn != nil {
			fn(f.easing(1))
		}
		if fn := f.onComplete; fn != nil {
			fn()
		}
		return leftover
	}
	if fn := f.onProgress; fn != nil {
		fn(f.easing(f.elapsed / f.duration))
	}
	return 0
}

// Chain runs phases one after another. A phase's completion hands the
// remainder of the tick to the next phase, so variable dt does not skew
// the overall schedule.
type Chain struct {
	phases   []Phase
	idx      int
	detached bool

	onComplete func()
}

// NewChain creates a sequential phase chain.
func NewChain(phases ...Phase) *Chain {
	return &Chain{phases: phases}
}

// OnComplete registers the callback fired when the last phase completes.
func (c *Chain) OnComplete(fn func()) { c.onComplete = fn }

// Done reports whether every phase has completed.
func (c *Chain) Done() bool { return c.idx >= len(c.phases) }

// Detach detaches every phase in the chain.
func (c *Chain) Detach() {
	c.detached = true
	c.onComplete = nil
	for _, p := range c.phases {
		p.Detach()
	}
}

// Advance implements Phase.
func (c *Chain) Advance(dt float64) float64 {
	if c.detached {
		return 0
	}
	for c.idx < len(c.phases) {
		dt = c.phases[c.idx].Advance(dt)
		if !c.phases[c.idx].Done() {
			return 0
		}
		c.idx++
		if c.detached {
			// A completion callback tore the chain down mid-tick.
			return 0
		}
		if dt <= 0 && c.idx < len(c.phases) {
			return 0
		}
	}
	if fn := c.onComplete; fn != nil {
		c.onComplete = nil
		fn()
	}
	return dt
}

// Group runs phases in parallel and completes when all of them have.
type Group struct {
	phases   []Phase
	detached bool

	onComplete func()
	completed  bool
}

// NewGroup creates a parallel phase group.
func NewGroup(phases ...Phase) *Group {
	return &Group{phases: phases}
}

// OnComplete registers the callback fired once every phase has completed.
func (g *Group) OnComplete(fn func()) { g.onComplete = fn }

// Done reports whether every phase has completed.
func (g *Group) Done() bool {
	for _, p := range g.phases {
		if !p.Done() {
			return false
		}
	}
	return true
}

// Detach detaches every phase in the group.
func (g *Group) Detach() {
	g.detached = true
	g.onComplete = nil
	for _, p := range g.phases {
		p.Detach()
	}
}

// Advance implements Phase. The returned leftover is the smallest
// remainder across members, and is nonzero only once the whole group has
// completed.
func (g *Group) Advance(dt float64) float64 {
	if g.detached || g.completed {
		return 0
	}
	leftover := dt
	for _, p := range g.phases {
		if p.Done() {
			continue
		}
		l := p.Advance(dt)
		if l < leftover {
			leftover = l
		}
	}
	if !g.Done() {
		return 0
	}
	g.completed = true
	if fn := g.onComplete; fn != nil {
		g.onComplete = nil
		fn()
	}
	return leftover
}
