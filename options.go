package sketch

import "github.com/gogpu/sketch/ease"

// Option configures a draw call. Use functional options to customize
// session behavior.
//
// Example:
//
//	an.Draw(
//	    sketch.WithFill(true),
//	    sketch.WithDuration(1.5),
//	    sketch.WithModeName("sequential"),
//	    sketch.WithMarker("assets/hand.png"),
//	)
type Option func(*drawConfig)

// drawConfig holds the configuration for one draw session.
type drawConfig struct {
	fill      bool
	lineWidth float64
	lineColor RGBA

	duration       float64 // per shape
	fillFade       float64
	mode           Mode
	parallelShapes bool
	easing         ease.Func
	origin         Origin
	originEasing   ease.Func
	samples        int

	showMarker   bool
	markerAsset  string
	markerSize   Point
	markerOffset Point
}

// defaultDrawConfig returns the default session configuration.
func defaultDrawConfig() drawConfig {
	return drawConfig{
		fill:         true,
		lineWidth:    2,
		lineColor:    RGB(0, 0, 0),
		duration:     2.0,
		fillFade:     0.3,
		mode:         Sequential,
		easing:       ease.Linear,
		origin:       OriginNone,
		originEasing: ease.OutQuad,
		samples:      DefaultSamples,
		markerSize:   Pt(100, 100),
		markerOffset: Pt(10, 85),
	}
}

// WithFill sets whether shapes are filled after their outline is drawn.
func WithFill(fill bool) Option {
	return func(c *drawConfig) { c.fill = fill }
}

// WithLineWidth sets the stroke width used during the reveal.
func WithLineWidth(w float64) Option {
	return func(c *drawConfig) { c.lineWidth = w }
}

// WithLineColor sets the stroke color used during the reveal.
func WithLineColor(col RGBA) Option {
	return func(c *drawConfig) { c.lineColor = col }
}

// WithDuration sets the reveal duration per shape, in seconds.
func WithDuration(seconds float64) Option {
	return func(c *drawConfig) {
		if seconds > 0 {
			c.duration = seconds
		}
	}
}

// WithFillFade sets the duration of the fill fade-in that follows the
// stroke reveal, in seconds.
func WithFillFade(seconds float64) Option {
	return func(c *drawConfig) {
		if seconds >= 0 {
			c.fillFade = seconds
		}
	}
}

// WithMode sets how a shape's segments compose in time.
func WithMode(mode Mode) Option {
	return func(c *drawConfig) { c.mode = mode }
}

// WithModeName sets the composition mode from a configuration string.
// Unrecognized names fall back to Sequential.
func WithModeName(name string) Option {
	return func(c *drawConfig) { c.mode = ModeByName(name) }
}

// WithParallelShapes makes every shape of the draw call animate at the
// same time instead of one after another in draw order. Each shape still
// runs its own entrance, stroke and fade; the marker slides out once all
// of them have settled. Useful for revealing the characters of a word
// together.
func WithParallelShapes(on bool) Option {
	return func(c *drawConfig) { c.parallelShapes = on }
}

// WithEasing sets the transition applied to each reveal unit.
func WithEasing(fn ease.Func) Option {
	return func(c *drawConfig) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// WithEasingName sets the reveal transition from a configuration string.
// Unrecognized names fall back to linear.
func WithEasingName(name string) Option {
	return func(c *drawConfig) { c.easing = ease.ByName(name) }
}

// WithOrigin sets the directional entrance origin for animated shapes.
func WithOrigin(o Origin) Option {
	return func(c *drawConfig) { c.origin = o }
}

// WithOriginEasing sets the transition for the entrance animation.
func WithOriginEasing(fn ease.Func) Option {
	return func(c *drawConfig) {
		if fn != nil {
			c.originEasing = fn
		}
	}
}

// WithSamples sets the cubic subdivision count.
func WithSamples(n int) Option {
	return func(c *drawConfig) {
		if n > 0 {
			c.samples = n
		}
	}
}

// WithMarker enables the pen marker overlay backed by the given image
// asset. A missing or unreadable asset is non-fatal: the session degrades
// to no-marker mode.
func WithMarker(assetPath string) Option {
	return func(c *drawConfig) {
		c.showMarker = true
		c.markerAsset = assetPath
	}
}

// WithMarkerSize sets the rendered marker size.
func WithMarkerSize(w, h float64) Option {
	return func(c *drawConfig) { c.markerSize = Pt(w, h) }
}

// WithMarkerOffset sets where the pen tip sits relative to the marker
// image origin. The marker is drawn at tip minus offset.
func WithMarkerOffset(dx, dy float64) Option {
	return func(c *drawConfig) { c.markerOffset = Pt(dx, dy) }
}
