// Command sketchdemo animates an SVG document headlessly and reports the
// reveal progress, useful for smoke-testing documents before embedding.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/svg"
)

func main() {
	var (
		input    = flag.String("input", "", "SVG file to animate (default: built-in sample)")
		width    = flag.Float64("width", 400, "target surface width")
		height   = flag.Float64("height", 400, "target surface height")
		duration = flag.Float64("duration", 2, "seconds per shape")
		mode     = flag.String("mode", "sequential", "segment composition: sequential or parallel")
		together = flag.Bool("together", false, "animate all shapes at once instead of in order")
		easing   = flag.String("easing", "linear", "reveal transition name")
		fps      = flag.Int("fps", 60, "simulated tick rate")
		verbose  = flag.Bool("v", false, "log engine internals")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := loadDocument(*input)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	r := &consoleRenderer{}
	an := sketch.NewAnimator(*width, *height, r, tickerClock{})
	an.Load(doc)

	session, err := an.Draw(
		sketch.WithDuration(*duration),
		sketch.WithModeName(*mode),
		sketch.WithParallelShapes(*together),
		sketch.WithEasingName(*easing),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	start := time.Now()
	done := false
	session.OnComplete(func() { done = true })

	dt := 1.0 / float64(*fps)
	ticks := 0
	for !done {
		an.Tick(dt)
		ticks++
		if ticks%*fps == 0 {
			fmt.Printf("t=%4.1fs settled=%d/%d active=%q\n",
				float64(ticks)*dt, len(session.Settled()), doc.Len(), session.ActiveID())
		}
	}

	log.Printf("Animated %d shapes in %d ticks (%.1fs simulated, %.0fms wall), %d draw calls\n",
		doc.Len(), ticks, float64(ticks)*dt, time.Since(start).Seconds()*1000, r.calls)
}

func loadDocument(path string) (*sketch.Document, error) {
	if path != "" {
		return svg.Open(path)
	}
	return svg.ParseBytes([]byte(sampleSVG))
}

const sampleSVG = `<svg width="100" height="100" viewBox="0 0 100 100">
  <path id="frame" fill="#336699" d="M10 10 L90 10 L90 90 L10 90 Z"/>
  <path id="diamond" fill="#cc3333" d="M50 20 L80 50 L50 80 L20 50 Z"/>
  <path id="dot" fill="#222222" d="M45 45 C45 40 55 40 55 45 C55 50 45 50 45 45 Z"/>
</svg>`

// consoleRenderer counts draw calls; it is enough for a headless run.
type consoleRenderer struct {
	calls int
}

func (r *consoleRenderer) Clear() { r.calls++ }

func (r *consoleRenderer) FillPolygon(pts []sketch.Point, c sketch.RGBA) { r.calls++ }

func (r *consoleRenderer) StrokePolyline(pts []sketch.Point, c sketch.RGBA, width float64) {
	r.calls++
}

func (r *consoleRenderer) DrawTexturedRect(pos, size sketch.Point, tex image.Image, tint sketch.RGBA) {
	r.calls++
}

// tickerClock schedules one-shot callbacks on real timers.
type tickerClock struct{}

func (tickerClock) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
