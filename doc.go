// Package sketch animates vector line-art with a hand-drawn reveal effect.
//
// # Overview
//
// sketch takes a set of closed shapes (outline plus fill color), reveals each
// shape's outline progressively as if drawn by hand, then fills it. Shapes may
// optionally enter the canvas from an off-screen direction, and a marker
// ("pen") overlay can track the drawing tip and slide away when a stroke
// completes.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	doc, err := svg.Open("figure.svg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	an := sketch.NewAnimator(800, 600, renderer, clock)
//	an.Load(doc)
//	if _, err := an.Draw(sketch.WithFill(true), sketch.WithDuration(1.5)); err != nil {
//	    log.Fatal(err)
//	}
//
//	// The host drives the animation:
//	an.Tick(dt)
//
// # Architecture
//
// The library is organized into:
//   - Path model: Segment, Shape, Document, path-data parsing (path.go)
//   - Geometry: coordinate mapping and curve sampling (mapper.go, sample.go)
//   - Scheduling: Timeline, Unit, phases (timeline.go, phase.go)
//   - Orchestration: Session, PenTracker, entrance poses, Animator
//   - Subpackages: ease (transitions), svg (document source), text (glyphs)
//
// # Collaborators
//
// sketch does not rasterize and does not own an event loop. Pixels are
// produced through the Renderer interface, and time is pushed in by the host
// through Animator.Tick plus the one-shot Clock primitive.
//
// # Coordinate System
//
// Source documents use SVG conventions (origin top-left, Y down). The mapper
// converts into the target surface's space and can flip Y for hosts with a
// bottom-left origin.
package sketch
