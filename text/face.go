package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sketch"
)

// Face converts runes to glyph path data using golang.org/x/image/font/sfnt.
// Conversion is simple left-to-right positioning without ligatures, kerning
// or contextual forms; use Shaper for text that needs them.
//
// A Face is not safe for concurrent use: it reuses an internal sfnt buffer.
type Face struct {
	font *sfnt.Font
	size float64
	buf  sfnt.Buffer

	ascent float64
}

// NewFace parses TTF/OTF font data. size is the em size in document units
// (pixels per em).
func NewFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, &sketch.ConfigurationError{Reason: "font size must be positive"}
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face := &Face{font: f, size: size}

	m, err := f.Metrics(&face.buf, face.ppem(), 0)
	if err != nil {
		return nil, fmt.Errorf("text: font metrics: %w", err)
	}
	face.ascent = fixedToFloat(m.Ascent)
	return face, nil
}

// Size returns the em size in document units.
func (f *Face) Size() float64 { return f.size }

// Ascent returns the baseline offset from the top of the em box.
func (f *Face) Ascent() float64 { return f.ascent }

func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// Glyph converts a single rune into a Glyph at the given pen position.
// The baseline sits at penY. Runes with no outline (spaces) yield empty
// path data with the correct advance.
func (f *Face) Glyph(r rune, penX, penY float64) (Glyph, error) {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return Glyph{}, fmt.Errorf("text: glyph index for %q: %w", r, err)
	}

	advance, err := f.font.GlyphAdvance(&f.buf, gid, f.ppem(), 0)
	if err != nil {
		return Glyph{}, fmt.Errorf("text: glyph advance for %q: %w", r, err)
	}

	segments, err := f.font.LoadGlyph(&f.buf, gid, f.ppem(), nil)
	if err != nil {
		return Glyph{}, fmt.Errorf("text: load glyph for %q: %w", r, err)
	}

	return Glyph{
		Rune:    r,
		Data:    sfntSegmentsToPath(segments, penX, penY),
		Advance: fixedToFloat(advance),
	}, nil
}

// Glyphs converts a string, advancing the pen per glyph. The baseline is
// placed at the face's ascent below the document padding.
func (f *Face) Glyphs(s string) ([]Glyph, error) {
	penX := docPadding
	penY := docPadding + f.ascent

	var out []Glyph
	for _, r := range s {
		g, err := f.Glyph(r, penX, penY)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
		penX += g.Advance
	}
	return out, nil
}

// Document converts a string to a ready-to-draw document.
func (f *Face) Document(s string, color sketch.RGBA) (*sketch.Document, error) {
	glyphs, err := f.Glyphs(s)
	if err != nil {
		return nil, err
	}
	return BuildDocument(glyphs, f.size, color)
}

// sfntSegmentsToPath converts sfnt glyph segments into path data,
// translated by (dx, dy). sfnt segments are already in device space with
// Y growing down and the baseline at y=0, matching document conventions.
// Quadratics are promoted to cubics so the path data stays on the
// move/line/cubic/close command set.
func sfntSegmentsToPath(segments []sfnt.Segment, dx, dy float64) string {
	if len(segments) == 0 {
		return ""
	}
	var b pathBuilder
	var curX, curY float64
	open := false

	pt := func(p fixed.Point26_6) (float64, float64) {
		return dx + fixedToFloat(p.X), dy + fixedToFloat(p.Y)
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.closePath()
			}
			x, y := pt(seg.Args[0])
			b.moveTo(x, y)
			curX, curY = x, y
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			b.lineTo(x, y)
			curX, curY = x, y
		case sfnt.SegmentOpQuadTo:
			qx, qy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			c1x, c1y, c2x, c2y := quadToCubic(curX, curY, qx, qy, x, y)
			b.cubicTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			b.cubicTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		}
	}
	if open {
		b.closePath()
	}
	return b.String()
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
