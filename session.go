package sketch

// Settled is a shape whose reveal has completed. Settled shapes render as
// static fills (or strokes when filling is disabled) in settlement order,
// so later entries visually cover earlier ones on overlap.
type Settled struct {
	ID     string
	Color  RGBA
	Points []Point
}

// reveal is the in-flight render state of one shape: the revealed stroke,
// the fill fade level, and the entrance pose while the shape flies in.
type reveal struct {
	id        string
	color     RGBA
	stroke    []Point
	full      []Point
	fillAlpha float64
	entrance  []Point
	settled   bool
}

// Session is the live orchestration state for one draw call. It owns the
// settled and active shape state, the active shape's phase chain, and the
// pen tracker; exactly one Session is live per target surface. Starting a
// new session must fully tear down the previous one (see Cancel).
type Session struct {
	renderer Renderer
	cfg      drawConfig
	mapper   *Mapper
	viewport Rect

	shapes []*Shape
	cursor int

	settled []Settled

	active  *reveal   // shape currently revealing, one at a time
	actives []*reveal // all shapes at once, WithParallelShapes

	current Phase
	pen     *PenTracker

	done       bool
	canceled   bool
	onComplete func()
}

// newSession builds a session over shapes in draw order. The shapes'
// segments are mapped into target space up front.
func newSession(r Renderer, m *Mapper, viewport Rect, shapes []*Shape, pen *PenTracker, cfg drawConfig) *Session {
	s := &Session{
		renderer: r,
		cfg:      cfg,
		mapper:   m,
		viewport: viewport,
		shapes:   shapes,
		pen:      pen,
	}
	if len(shapes) == 0 {
		s.done = true
		return s
	}
	if pen != nil {
		if cfg.showMarker {
			pen.Start()
		}
		// The exit animation runs on Clock callbacks after the last host
		// tick; each step must repaint or the marker would freeze mid-air.
		pen.OnStep(s.redraw)
	}
	if cfg.parallelShapes {
		s.bindAllShapes()
	} else {
		s.bindShape(0)
	}
	return s
}

// OnComplete registers a callback fired once when every shape has settled.
// A session that is already done (a draw over zero shapes) invokes fn
// synchronously.
func (s *Session) OnComplete(fn func()) {
	if s.done && !s.canceled {
		if fn != nil {
			fn()
		}
		return
	}
	s.onComplete = fn
}

// Settled returns the settled shapes in settlement (paint) order. The list
// only ever grows by append while the session runs.
func (s *Session) Settled() []Settled { return s.settled }

// ActiveID returns the id of the shape currently being revealed, or ""
// once the session is done. Sessions started with WithParallelShapes have
// no single active shape and always return "".
func (s *Session) ActiveID() string {
	if s.done || s.active == nil {
		return ""
	}
	return s.active.id
}

// ActiveStroke returns the revealed stroke of the active shape.
func (s *Session) ActiveStroke() []Point {
	if s.active == nil {
		return nil
	}
	return s.active.stroke
}

// Done reports whether every shape has settled.
func (s *Session) Done() bool { return s.done }

// Pen returns the session's pen tracker, or nil.
func (s *Session) Pen() *PenTracker { return s.pen }

// bindShape installs shape k as the active shape and rebinds completion
// handling to its chain.
func (s *Session) bindShape(k int) {
	shape := s.shapes[k]
	s.cursor = k
	rv := &reveal{id: shape.ID, color: shape.Color}
	s.active = rv

	last := k == len(s.shapes)-1
	chain := s.buildChain(shape, rv, last)
	chain.OnComplete(func() { s.settleActive() })
	s.current = chain
}

// bindAllShapes builds one chain per shape and runs them as a parallel
// group, so every shape strokes, fades and settles on its own schedule.
func (s *Session) bindAllShapes() {
	chains := make([]Phase, len(s.shapes))
	s.actives = make([]*reveal, len(s.shapes))
	for i, shape := range s.shapes {
		rv := &reveal{id: shape.ID, color: shape.Color}
		s.actives[i] = rv
		chain := s.buildChain(shape, rv, false)
		chain.OnComplete(func() { s.settleReveal(rv) })
		chains[i] = chain
	}
	grp := NewGroup(chains...)
	grp.OnComplete(func() { s.finish() })
	s.current = grp
}

// buildChain assembles a shape's phase chain: optional entrance, stroke
// timeline, optional fill fade. slideOut marks the chain whose stroke
// completion dismisses the marker.
func (s *Session) buildChain(shape *Shape, rv *reveal, slideOut bool) *Chain {
	units := s.buildUnits(shape)
	tl := NewTimeline(s.cfg.mode, units...)
	rv.full = fullStroke(units)

	tl.OnProgress(func(stroke []Point) {
		rv.stroke = stroke
		if s.pen != nil && len(stroke) > 0 {
			s.pen.UpdatePosition(stroke[len(stroke)-1])
		}
	})
	tl.OnComplete(func(stroke []Point) {
		rv.stroke = stroke
		if s.pen != nil && len(stroke) > 0 {
			s.pen.UpdatePosition(stroke[len(stroke)-1])
		}
		if slideOut && s.pen != nil {
			s.pen.SlideOut(0.5, nil)
		}
	})

	phases := make([]Phase, 0, 3)
	if s.cfg.origin != OriginNone {
		start := EntrancePose(rv.full, s.viewport, s.cfg.origin)
		ent := NewEntrance(start, rv.full, s.cfg.duration, s.cfg.originEasing)
		ent.OnProgress(func(pts []Point) { rv.entrance = pts })
		ent.OnComplete(func([]Point) { rv.entrance = nil })
		phases = append(phases, ent)
	}
	phases = append(phases, tl)
	if s.cfg.fill && s.cfg.fillFade > 0 {
		fade := NewFade(s.cfg.fillFade, nil)
		fade.OnProgress(func(v float64) { rv.fillAlpha = v })
		phases = append(phases, fade)
	}

	Logger().Debug("sketch: shape bound", "id", shape.ID, "units", len(units), "horizon", tl.Horizon())
	return NewChain(phases...)
}

// buildUnits creates reveal units for every drawable segment of the shape,
// mapped into target space. Sequential mode divides the per-shape duration
// across units; Parallel gives every unit the full duration.
func (s *Session) buildUnits(shape *Shape) []*Unit {
	var count int
	for _, sub := range shape.SubPaths {
		count += len(sub)
	}
	unitDur := s.cfg.duration
	if s.cfg.mode == Sequential && count > 0 {
		unitDur = s.cfg.duration / float64(count)
	}

	units := make([]*Unit, 0, count)
	for _, sub := range shape.SubPaths {
		for _, seg := range sub {
			units = append(units, NewUnit(s.mapper.MapSegment(seg), unitDur, s.cfg.easing, s.cfg.samples))
		}
	}
	return units
}

// settleActive appends the active shape to the settled list and advances
// the cursor, or finishes the session after the last shape.
func (s *Session) settleActive() {
	s.settleReveal(s.active)
	next := s.cursor + 1
	if next < len(s.shapes) {
		s.bindShape(next)
		return
	}
	s.finish()
}

// settleReveal moves a completed reveal onto the settled list.
func (s *Session) settleReveal(rv *reveal) {
	rv.settled = true
	s.settled = append(s.settled, Settled{
		ID:     rv.id,
		Color:  rv.color,
		Points: rv.full,
	})
}

func (s *Session) finish() {
	s.done = true
	s.current = nil
	s.active = nil
	s.actives = nil
	if s.cfg.parallelShapes && s.pen != nil {
		s.pen.SlideOut(0.5, nil)
	}
	if fn := s.onComplete; fn != nil {
		s.onComplete = nil
		fn()
	}
}

// Tick advances the session by dt seconds and redraws. Ticks delivered
// after cancellation or completion are silently ignored.
func (s *Session) Tick(dt float64) {
	if s.canceled {
		return
	}
	if s.done {
		return
	}
	for dt > 0 && !s.done && s.current != nil {
		cur := s.current
		dt = cur.Advance(dt)
		if !cur.Done() {
			break
		}
		if s.current == cur {
			break
		}
	}
	s.redraw()
}

// Cancel tears the session down synchronously: every phase of the active
// chain is detached and the pen tracker's pending exit ticks are
// cancelled before Cancel returns. A tick delivered afterwards is inert.
func (s *Session) Cancel() {
	if s.canceled {
		return
	}
	s.canceled = true
	if s.current != nil {
		s.current.Detach()
		s.current = nil
	}
	if s.pen != nil {
		s.pen.Stop()
	}
	s.onComplete = nil
}

// redraw signals the renderer to clear and repaint: settled shapes in
// order, then the in-flight shapes, then the marker overlay.
func (s *Session) redraw() {
	r := s.renderer
	if r == nil {
		return
	}
	r.Clear()

	for _, set := range s.settled {
		if s.cfg.fill {
			r.FillPolygon(set.Points, set.Color)
		} else {
			r.StrokePolyline(set.Points, s.cfg.lineColor, s.cfg.lineWidth)
		}
	}

	if !s.done {
		for _, rv := range s.actives {
			if !rv.settled {
				s.drawReveal(r, rv)
			}
		}
		if s.active != nil {
			s.drawReveal(r, s.active)
		}
	}

	if s.pen != nil {
		s.pen.Draw(r)
	}
}

func (s *Session) drawReveal(r Renderer, rv *reveal) {
	if rv.entrance != nil {
		// Shape flying in from its origin pose.
		if s.cfg.fill {
			r.FillPolygon(rv.entrance, rv.color)
		} else {
			r.StrokePolyline(rv.entrance, s.cfg.lineColor, s.cfg.lineWidth)
		}
		return
	}
	if rv.fillAlpha > 0 {
		r.FillPolygon(rv.full, rv.color.WithAlpha(rv.color.A*rv.fillAlpha))
	}
	if len(rv.stroke) > 0 {
		r.StrokePolyline(rv.stroke, s.cfg.lineColor, s.cfg.lineWidth)
	}
}

// fullStroke concatenates the full point lists of all units.
func fullStroke(units []*Unit) []Point {
	var out []Point
	for _, u := range units {
		out = append(out, u.Points()...)
	}
	return out
}
