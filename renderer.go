package sketch

import (
	"image"
	"time"
)

// Renderer is the drawing surface sketch produces to. Implementations own
// the actual rasterization; sketch only decides what to draw and when.
//
// All calls for one frame happen synchronously inside a tick, in paint
// order: Clear first, then fills and strokes back to front, then the
// marker overlay last.
type Renderer interface {
	// Clear erases the surface before a redraw.
	Clear()

	// FillPolygon fills the polygon described by pts.
	FillPolygon(pts []Point, c RGBA)

	// StrokePolyline strokes the open polyline described by pts.
	StrokePolyline(pts []Point, c RGBA, width float64)

	// DrawTexturedRect draws a textured rectangle, used for the marker
	// overlay. The tint's alpha carries the marker opacity.
	DrawTexturedRect(pos, size Point, tex image.Image, tint RGBA)
}

// Clock is the host's one-shot timer primitive. sketch does not own an
// event loop: continuous time is pushed in through Session.Tick, and Clock
// covers the marker's self-driven exit sequence.
type Clock interface {
	// Schedule runs fn once after delay and returns a cancel function.
	// Cancel must be safe to call after fn has run.
	Schedule(delay time.Duration, fn func()) (cancel func())
}
