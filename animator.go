package sketch

import "errors"

// ErrNoDocument is returned by Draw when nothing has been loaded.
var ErrNoDocument = errors.New("sketch: no document loaded")

// Animator is the top-level entry point: it holds the current Document,
// starts draw sessions over its shapes, and relays host ticks to the live
// session. At most one session is live at a time; starting a new draw or
// loading a new document tears the previous session down first.
type Animator struct {
	width, height float64
	renderer      Renderer
	clock         Clock

	pos   Point
	size  Point
	flipY bool

	doc     *Document
	session *Session
}

// NewAnimator creates an animator targeting a surface of the given size.
// The renderer receives draw calls; the clock provides the one-shot timer
// for the marker's exit sequence.
func NewAnimator(width, height float64, r Renderer, c Clock) *Animator {
	return &Animator{
		width:    width,
		height:   height,
		renderer: r,
		clock:    c,
		pos:      Pt(0, 0),
		size:     Pt(width, height),
		flipY:    true,
	}
}

// SetTarget overrides the target rectangle shapes are mapped into.
// The default is the full surface.
func (a *Animator) SetTarget(pos, size Point) {
	a.pos = pos
	a.size = size
}

// SetFlipY controls the vertical flip between document space (Y down) and
// target space. It defaults to true, for hosts with a bottom-left origin.
func (a *Animator) SetFlipY(flip bool) {
	a.flipY = flip
}

// Load installs a document, fully replacing any previous one. A live
// session is cancelled before the swap, so its stale ticks are inert.
func (a *Animator) Load(doc *Document) {
	a.Cancel()
	a.doc = doc
	if doc != nil {
		Logger().Info("sketch: document loaded", "shapes", doc.Len(), "width", doc.Width, "height", doc.Height)
	}
}

// Document returns the currently loaded document, or nil.
func (a *Animator) Document() *Document { return a.doc }

// Draw starts a new session that reveals every shape of the loaded
// document in draw order. Any previous session is cancelled synchronously
// before the new one is installed.
func (a *Animator) Draw(opts ...Option) (*Session, error) {
	if a.doc == nil {
		return nil, ErrNoDocument
	}
	return a.DrawShapes(a.doc.Shapes(), opts...)
}

// DrawShapes starts a new session over an explicit shape list. The shapes
// must belong to the loaded document's coordinate space.
func (a *Animator) DrawShapes(shapes []*Shape, opts ...Option) (*Session, error) {
	if a.doc == nil {
		return nil, ErrNoDocument
	}
	a.Cancel()

	cfg := defaultDrawConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := NewMapper(a.doc.Width, a.doc.Height, a.pos, a.size, a.flipY)
	if err != nil {
		return nil, err
	}

	var pen *PenTracker
	if cfg.showMarker {
		tex, err := LoadMarkerTexture(cfg.markerAsset, cfg.markerSize)
		if err != nil {
			// Non-fatal: the tracker degrades to no-marker mode.
			Logger().Warn("sketch: marker asset unavailable", "asset", cfg.markerAsset, "err", err)
		}
		pen = NewPenTracker(tex, cfg.markerSize, cfg.markerOffset, a.clock, a.pos.Y)
	}

	viewport := Rect{Min: a.pos, Max: a.pos.Add(a.size)}
	a.session = newSession(a.renderer, m, viewport, shapes, pen, cfg)
	Logger().Info("sketch: session started", "shapes", len(shapes))
	return a.session, nil
}

// Session returns the live session, or nil.
func (a *Animator) Session() *Session { return a.session }

// Tick advances the live session by dt seconds. Ticks without a live
// session are ignored.
func (a *Animator) Tick(dt float64) {
	if a.session != nil {
		a.session.Tick(dt)
	}
}

// Cancel tears down the live session, if any. All of its callbacks are
// detached synchronously; any tick still in flight becomes a no-op.
func (a *Animator) Cancel() {
	if a.session != nil {
		a.session.Cancel()
		a.session = nil
	}
}
