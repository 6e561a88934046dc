package sketch

import (
	"errors"
	"testing"
)

func TestMapperZeroSource(t *testing.T) {
	for _, dims := range [][2]float64{{0, 100}, {100, 0}, {0, 0}} {
		_, err := NewMapper(dims[0], dims[1], Pt(0, 0), Pt(100, 100), false)
		if err == nil {
			t.Errorf("NewMapper(%v, %v) succeeded, want error", dims[0], dims[1])
			continue
		}
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("NewMapper(%v, %v) error %T, want *ConfigurationError", dims[0], dims[1], err)
		}
	}
}

func TestMapperMap(t *testing.T) {
	tests := []struct {
		name     string
		sw, sh   float64
		pos      Point
		size     Point
		flipY    bool
		src, dst Point
	}{
		{"identity", 100, 100, Pt(0, 0), Pt(100, 100), false, Pt(25, 75), Pt(25, 75)},
		{"scale", 100, 50, Pt(0, 0), Pt(200, 100), false, Pt(50, 25), Pt(100, 50)},
		{"translate", 100, 100, Pt(10, 20), Pt(100, 100), false, Pt(0, 0), Pt(10, 20)},
		{"flip origin", 100, 100, Pt(0, 0), Pt(100, 100), true, Pt(0, 0), Pt(0, 100)},
		{"flip far corner", 100, 100, Pt(0, 0), Pt(100, 100), true, Pt(100, 100), Pt(100, 0)},
		{"flip with offset", 100, 100, Pt(10, 10), Pt(50, 50), true, Pt(50, 50), Pt(35, 35)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMapper(tt.sw, tt.sh, tt.pos, tt.size, tt.flipY)
			if err != nil {
				t.Fatalf("NewMapper: %v", err)
			}
			if got := m.Map(tt.src); !ptEq(got, tt.dst) {
				t.Errorf("Map(%v) = %v, want %v", tt.src, got, tt.dst)
			}
		})
	}
}

func TestMapperRoundTrip(t *testing.T) {
	for _, flip := range []bool{false, true} {
		m, err := NewMapper(640, 480, Pt(13, 7), Pt(321, 123), flip)
		if err != nil {
			t.Fatalf("NewMapper: %v", err)
		}
		pts := []Point{Pt(0, 0), Pt(640, 480), Pt(320, 240), Pt(1.5, 477.25), Pt(-10, 500)}
		for _, p := range pts {
			back := m.Unmap(m.Map(p))
			if !approxWithin(back.X, p.X, 1e-6) || !approxWithin(back.Y, p.Y, 1e-6) {
				t.Errorf("flip=%v: round trip of %v came back as %v", flip, p, back)
			}
		}
	}
}

func TestMapperMapAll(t *testing.T) {
	m, err := NewMapper(10, 10, Pt(0, 0), Pt(100, 100), false)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	in := []Point{Pt(1, 1), Pt(5, 5)}
	out := m.MapAll(in)
	if !ptsEq(out, []Point{Pt(10, 10), Pt(50, 50)}) {
		t.Errorf("MapAll = %v", out)
	}
	if !ptEq(in[0], Pt(1, 1)) {
		t.Error("MapAll mutated its input")
	}
}

func TestMapperMapSegment(t *testing.T) {
	m, err := NewMapper(10, 10, Pt(0, 0), Pt(20, 20), false)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	got := m.MapSegment(CubicBezier{
		Start: Pt(0, 0), Control1: Pt(1, 1), Control2: Pt(2, 2), End: Pt(3, 3),
	})
	want := CubicBezier{Start: Pt(0, 0), Control1: Pt(2, 2), Control2: Pt(4, 4), End: Pt(6, 6)}
	if got != want {
		t.Errorf("MapSegment = %#v, want %#v", got, want)
	}
	if ln := m.MapSegment(Line{Start: Pt(1, 0), End: Pt(0, 1)}); ln != (Line{Start: Pt(2, 0), End: Pt(0, 2)}) {
		t.Errorf("MapSegment line = %#v", ln)
	}
}

func approxWithin(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
