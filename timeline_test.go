package sketch

import (
	"testing"

	"github.com/gogpu/sketch/ease"
)

func lineUnit(dur float64) *Unit {
	return NewUnit(Line{Start: Pt(0, 0), End: Pt(10, 0)}, dur, nil, DefaultSamples)
}

func TestNewTimelineOffsets(t *testing.T) {
	units := []*Unit{lineUnit(1), lineUnit(2), lineUnit(3)}
	tl := NewTimeline(Sequential, units...)
	wantOffsets := []float64{0, 1, 3}
	for i, u := range tl.Units() {
		if !approxEq(u.StartOffset, wantOffsets[i]) {
			t.Errorf("unit %d StartOffset = %v, want %v", i, u.StartOffset, wantOffsets[i])
		}
	}
	if !approxEq(tl.Horizon(), 6) {
		t.Errorf("Horizon = %v, want 6", tl.Horizon())
	}

	tl = NewTimeline(Parallel, lineUnit(2), lineUnit(2), lineUnit(2))
	for i, u := range tl.Units() {
		if u.StartOffset != 0 {
			t.Errorf("parallel unit %d StartOffset = %v, want 0", i, u.StartOffset)
		}
	}
	if !approxEq(tl.Horizon(), 2) {
		t.Errorf("parallel Horizon = %v, want 2", tl.Horizon())
	}
}

func TestTimelineSequentialProgress(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1), lineUnit(2), lineUnit(3))
	tl.Advance(1.5)
	if got := tl.UnitProgress(0); !approxEq(got, 1) {
		t.Errorf("unit 0 progress = %v, want 1", got)
	}
	if got := tl.UnitProgress(1); !approxEq(got, 0.25) {
		t.Errorf("unit 1 progress = %v, want 0.25", got)
	}
	if got := tl.UnitProgress(2); !approxEq(got, 0) {
		t.Errorf("unit 2 progress = %v, want 0", got)
	}
}

func TestTimelineParallelProgress(t *testing.T) {
	tl := NewTimeline(Parallel, lineUnit(2), lineUnit(2), lineUnit(2))
	tl.Advance(1)
	for i := range tl.Units() {
		if got := tl.UnitProgress(i); !approxEq(got, 0.5) {
			t.Errorf("unit %d progress = %v, want 0.5", i, got)
		}
	}
}

// The stroke is the completed units' full point lists plus the active
// units' partial reveals; pending units contribute nothing.
func TestTimelineStroke(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1), lineUnit(1))
	tl.Advance(1.5)
	stroke := tl.Stroke()
	want := []Point{
		Pt(0, 0), Pt(10, 0), // unit 0 complete
		Pt(0, 0), Pt(5, 0), // unit 1 at local 0.5
	}
	if !ptsEq(stroke, want) {
		t.Errorf("Stroke = %v, want %v", stroke, want)
	}
}

func TestUnitPartialLine(t *testing.T) {
	u := NewUnit(Line{Start: Pt(0, 0), End: Pt(10, 20)}, 1, nil, DefaultSamples)
	tests := []struct {
		local float64
		want  Point
	}{
		{-0.5, Pt(0, 0)},
		{0, Pt(0, 0)},
		{0.25, Pt(2.5, 5)},
		{1, Pt(10, 20)},
		{1.5, Pt(10, 20)},
	}
	for _, tt := range tests {
		got := u.PartialAt(tt.local)
		if len(got) != 2 {
			t.Fatalf("PartialAt(%v) returned %d points, want 2", tt.local, len(got))
		}
		if !ptEq(got[0], Pt(0, 0)) || !ptEq(got[1], tt.want) {
			t.Errorf("PartialAt(%v) = %v, want [origin, %v]", tt.local, got, tt.want)
		}
	}
}

func TestUnitPartialLineEased(t *testing.T) {
	u := NewUnit(Line{Start: Pt(0, 0), End: Pt(10, 0)}, 1, ease.InQuad, DefaultSamples)
	got := u.PartialAt(0.5)
	// InQuad(0.5) = 0.25 of the way along.
	if !ptEq(got[1], Pt(2.5, 0)) {
		t.Errorf("eased tip = %v, want (2.5, 0)", got[1])
	}
}

func TestUnitPartialCubicPrefix(t *testing.T) {
	b := CubicBezier{Start: Pt(0, 0), Control1: Pt(0, 1), Control2: Pt(1, 1), End: Pt(1, 0)}
	u := NewUnit(b, 1, nil, 10)
	tests := []struct {
		local float64
		count int
	}{
		{0, 1},
		{0.05, 1},  // floor(0.5) = 0
		{0.25, 3},  // floor(2.5) = 2
		{0.5, 6},   // floor(5) = 5
		{0.99, 10}, // floor(9.9) = 9
		{1, 11},
	}
	for _, tt := range tests {
		got := u.PartialAt(tt.local)
		if len(got) != tt.count {
			t.Errorf("PartialAt(%v) has %d points, want %d", tt.local, len(got), tt.count)
		}
	}
	full := u.PartialAt(1)
	if !ptEq(full[len(full)-1], b.End) {
		t.Errorf("full reveal ends at %v, want %v", full[len(full)-1], b.End)
	}
}

func TestTimelineAdvanceLeftover(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1), lineUnit(1))
	if got := tl.Advance(0.5); got != 0 {
		t.Errorf("mid-flight leftover = %v, want 0", got)
	}
	if got := tl.Advance(2); !approxEq(got, 0.5) {
		t.Errorf("leftover = %v, want 0.5", got)
	}
	if !tl.Done() {
		t.Error("timeline not done after passing horizon")
	}
	if got := tl.Advance(1); got != 0 {
		t.Errorf("post-completion Advance = %v, want 0", got)
	}
	if !approxEq(tl.Elapsed(), tl.Horizon()) {
		t.Errorf("Elapsed = %v, want clamped to horizon %v", tl.Elapsed(), tl.Horizon())
	}
}

func TestTimelineCompleteFiresOnceWithFullPath(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1), lineUnit(1))
	var completions int
	var final []Point
	tl.OnComplete(func(stroke []Point) {
		completions++
		final = stroke
	})
	tl.Advance(0.7)
	tl.Advance(0.7)
	tl.Advance(0.7)
	tl.Advance(5)
	if completions != 1 {
		t.Fatalf("OnComplete fired %d times, want 1", completions)
	}
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(0, 0), Pt(10, 0)}
	if !ptsEq(final, want) {
		t.Errorf("terminal stroke = %v, want %v", final, want)
	}
}

func TestTimelineProgressCallback(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1))
	var calls int
	var last []Point
	tl.OnProgress(func(stroke []Point) {
		calls++
		last = stroke
	})
	tl.Advance(0.5)
	if calls != 1 {
		t.Fatalf("OnProgress fired %d times, want 1", calls)
	}
	if !ptsEq(last, []Point{Pt(0, 0), Pt(5, 0)}) {
		t.Errorf("progress stroke = %v", last)
	}
	// Terminal tick fires OnComplete, not OnProgress.
	tl.Advance(1)
	if calls != 1 {
		t.Errorf("OnProgress fired %d times after completion, want still 1", calls)
	}
}

func TestTimelineDetach(t *testing.T) {
	tl := NewTimeline(Sequential, lineUnit(1))
	fired := false
	tl.OnProgress(func([]Point) { fired = true })
	tl.OnComplete(func([]Point) { fired = true })
	tl.Detach()
	tl.Advance(0.5)
	tl.Advance(5)
	if fired {
		t.Error("callback fired after Detach")
	}
	if tl.Done() {
		t.Error("detached timeline reported done")
	}
	if tl.Elapsed() != 0 {
		t.Errorf("detached timeline accumulated elapsed %v", tl.Elapsed())
	}
}

func TestModeByName(t *testing.T) {
	if ModeByName("parallel") != Parallel {
		t.Error(`ModeByName("parallel") != Parallel`)
	}
	for _, name := range []string{"seq", "sequential", "", "PARALLEL"} {
		if got := ModeByName(name); name != "parallel" && got != Sequential {
			t.Errorf("ModeByName(%q) = %v, want Sequential", name, got)
		}
	}
}

func TestTimelineZeroDurationUnit(t *testing.T) {
	tl := NewTimeline(Sequential, NewUnit(Line{Start: Pt(0, 0), End: Pt(1, 0)}, 0, nil, 1), lineUnit(1))
	if !approxEq(tl.Horizon(), 1) {
		t.Fatalf("Horizon = %v, want 1", tl.Horizon())
	}
	tl.Advance(0.5)
	if got := tl.UnitProgress(0); got != 1 {
		t.Errorf("zero-duration unit progress = %v, want 1", got)
	}
	stroke := tl.Stroke()
	if len(stroke) < 2 || !ptEq(stroke[1], Pt(1, 0)) {
		t.Errorf("zero-duration unit not fully revealed in stroke: %v", stroke)
	}
}
