package svg

import (
	"errors"
	"testing"

	"github.com/gogpu/sketch"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" viewBox="0 0 48 48">
  <path id="body" fill="#ff0000" d="M0 0 L10 0 L10 10 L0 10 Z"/>
  <path fill="none" d="M20 20 L30 20 L30 30 Z"/>
  <path d="M1 1 C1 2 2 2 2 1 Z"/>
</svg>`

func TestParse(t *testing.T) {
	doc, err := ParseBytes([]byte(sample))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Width != 48 || doc.Height != 48 {
		t.Errorf("viewport = %vx%v, want 48x48", doc.Width, doc.Height)
	}
	if doc.Len() != 3 {
		t.Fatalf("Len = %d, want 3", doc.Len())
	}

	shapes := doc.Shapes()
	if shapes[0].ID != "body" {
		t.Errorf("shape 0 id = %q, want body", shapes[0].ID)
	}
	if shapes[0].Color != sketch.RGB(1, 0, 0) {
		t.Errorf("shape 0 fill = %v, want red", shapes[0].Color)
	}
	// Unnamed paths get positional ids.
	if shapes[1].ID != "path1" || shapes[2].ID != "path2" {
		t.Errorf("auto ids = %q, %q, want path1, path2", shapes[1].ID, shapes[2].ID)
	}
	// fill="none" keeps the geometry with a transparent color.
	if shapes[1].Color != (sketch.RGBA{}) {
		t.Errorf("none fill = %v, want transparent", shapes[1].Color)
	}
	// A missing fill is opaque black.
	if shapes[2].Color != sketch.RGB(0, 0, 0) {
		t.Errorf("default fill = %v, want black", shapes[2].Color)
	}
	if len(shapes[0].SubPaths) != 1 || len(shapes[0].SubPaths[0]) != 3 {
		t.Errorf("shape 0 sub-paths = %v", shapes[0].SubPaths)
	}
}

func TestParseViewBoxFallback(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg viewBox="0 0 120 60"><path d="M0 0 L1 0 Z"/></svg>`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Width != 120 || doc.Height != 60 {
		t.Errorf("viewport = %vx%v, want 120x60", doc.Width, doc.Height)
	}
}

func TestParseUnitSuffix(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg width="100px" height="50pt"><path d="M0 0 L1 0 Z"/></svg>`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Width != 100 || doc.Height != 50 {
		t.Errorf("viewport = %vx%v, want 100x50", doc.Width, doc.Height)
	}
}

func TestParseZeroViewport(t *testing.T) {
	_, err := ParseBytes([]byte(`<svg width="0" height="100"></svg>`))
	var ce *sketch.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
}

func TestParseNoSVGElement(t *testing.T) {
	if _, err := ParseBytes([]byte(`<html><body/></html>`)); err == nil {
		t.Fatal("want error for markup without <svg>")
	}
}

// Malformed path data aborts the whole load rather than skipping the shape.
func TestParseMalformedPath(t *testing.T) {
	_, err := ParseBytes([]byte(`<svg width="10" height="10">
		<path id="ok" d="M0 0 L1 0 Z"/>
		<path id="bad" d="M0 0 H 5"/>
	</svg>`))
	if err == nil {
		t.Fatal("want error for malformed path data")
	}
	var pe *sketch.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestParseDuplicateIDs(t *testing.T) {
	_, err := ParseBytes([]byte(`<svg width="10" height="10">
		<path id="dup" d="M0 0 L1 0 Z"/>
		<path id="dup" d="M2 2 L3 2 Z"/>
	</svg>`))
	if !errors.Is(err, sketch.ErrDuplicateShape) {
		t.Fatalf("error = %v, want ErrDuplicateShape", err)
	}
}

// Elements the loader does not understand are skipped, not fatal.
func TestParseIgnoresUnknownElements(t *testing.T) {
	doc, err := ParseBytes([]byte(`<svg width="10" height="10">
		<g><rect x="0" y="0" width="5" height="5"/></g>
		<path d="M0 0 L1 0 Z"/>
		<circle cx="1" cy="1" r="1"/>
	</svg>`))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("Len = %d, want 1", doc.Len())
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.svg"); err == nil {
		t.Fatal("want error for missing file")
	}
}
