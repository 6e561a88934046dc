package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/sketch"
)

// Shaper converts text to glyph path data with HarfBuzz-level shaping via
// go-text/typesetting: ligature substitution, kerning pairs and
// right-to-left scripts all apply. The paragraph's base direction is
// detected with the Unicode bidi algorithm.
//
// A Shaper is not safe for concurrent use: font.Face and HarfbuzzShaper
// carry internal mutable state.
type Shaper struct {
	face *font.Face
	hb   shaping.HarfbuzzShaper
	size float64

	scale  float64
	ascent float64
}

// NewShaper parses TTF/OTF font data. size is the em size in document
// units.
func NewShaper(data []byte, size float64) (*Shaper, error) {
	if size <= 0 {
		return nil, &sketch.ConfigurationError{Reason: "font size must be positive"}
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &Shaper{face: face, size: size}
	s.scale = size / float64(face.Upem())
	if ext, ok := face.FontHExtents(); ok {
		s.ascent = float64(ext.Ascender) * s.scale
	} else {
		s.ascent = size * 0.8
	}
	return s, nil
}

// Size returns the em size in document units.
func (s *Shaper) Size() float64 { return s.size }

// Shape shapes a string into positioned glyphs. Each glyph's path data is
// already translated to its pen position, with the baseline at the face's
// ascent below the document padding.
func (s *Shaper) Shape(text string) ([]Glyph, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, nil
	}

	dir := baseDirection(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      s.face,
		Size:      fixed.Int26_6(s.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.hb.Shape(input)

	penX := docPadding
	penY := docPadding + s.ascent

	out := make([]Glyph, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		advance := float64(g.XAdvance) / 64.0
		xOff := float64(g.XOffset) / 64.0
		yOff := float64(g.YOffset) / 64.0

		r := rune(-1)
		if g.TextIndex() >= 0 && g.TextIndex() < len(runes) {
			r = runes[g.TextIndex()]
		}

		out = append(out, Glyph{
			Rune:    r,
			Data:    s.glyphPath(g.GlyphID, penX+xOff, penY-yOff),
			Advance: advance,
		})
		penX += advance
	}
	return out, nil
}

// Document shapes a string into a ready-to-draw document.
func (s *Shaper) Document(text string, color sketch.RGBA) (*sketch.Document, error) {
	glyphs, err := s.Shape(text)
	if err != nil {
		return nil, err
	}
	return BuildDocument(glyphs, s.size, color)
}

// glyphPath walks the glyph's outline into path data translated to
// (penX, penY). Typesetting outlines are in font units with Y up, so Y is
// negated around the baseline; quadratics are promoted to cubics.
func (s *Shaper) glyphPath(gid font.GID, penX, penY float64) string {
	outline, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return ""
	}

	var b pathBuilder
	var curX, curY float64
	open := false

	pt := func(p opentype.SegmentPoint) (float64, float64) {
		return penX + float64(p.X)*s.scale, penY - float64(p.Y)*s.scale
	}

	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				b.closePath()
			}
			x, y := pt(seg.Args[0])
			b.moveTo(x, y)
			curX, curY = x, y
			open = true
		case opentype.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			b.lineTo(x, y)
			curX, curY = x, y
		case opentype.SegmentOpQuadTo:
			qx, qy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			c1x, c1y, c2x, c2y := quadToCubic(curX, curY, qx, qy, x, y)
			b.cubicTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		case opentype.SegmentOpCubeTo:
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

// baseDirection resolves the paragraph's base direction with the Unicode
// bidi algorithm.
func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune. Mixed
// script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
