// Package text converts characters into path data for handwriting-style
// animation.
//
// It is the glyph source for sketch: each character becomes a path data
// string plus an advance width, treated identically to shapes from an SVG
// document. Two backends are provided:
//
//   - Face: simple left-to-right per-rune conversion backed by
//     golang.org/x/image/font/sfnt.
//   - Shaper: HarfBuzz-level shaping backed by go-text/typesetting, with
//     kerning, ligatures and right-to-left support.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
)

// Glyph is one shaped character: its path data (move/line/cubic/close
// commands only, quadratics promoted to cubics) and the pen advance that
// follows it.
type Glyph struct {
	// Rune is the source character, or -1 when shaping consumed multiple
	// characters into one glyph.
	Rune rune

	// Data is the glyph outline as path data, positioned at the glyph's
	// pen origin with the baseline mapped into document space.
	Data string

	// Advance is the horizontal pen advance in document units.
	Advance float64
}

// docPadding is the whitespace added around a built text document.
const docPadding = 10.0

// BuildDocument lays glyphs on a single baseline and returns a document
// with one shape per glyph, in text order. Glyphs with empty path data
// (spaces) advance the pen but produce no shape.
func BuildDocument(glyphs []Glyph, size float64, color sketch.RGBA) (*sketch.Document, error) {
	var advance float64
	for _, g := range glyphs {
		advance += g.Advance
	}
	doc := sketch.NewDocument(advance+2*docPadding, size*1.5+2*docPadding)

	for i, g := range glyphs {
		if g.Data == "" {
			continue
		}
		shape, err := sketch.NewShape(fmt.Sprintf("char%d", i), g.Data, color)
		if err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
		if err := doc.Add(shape); err != nil {
			return nil, fmt.Errorf("text: %w", err)
		}
	}
	return doc, nil
}

// pathBuilder accumulates path data commands.
type pathBuilder struct {
	sb strings.Builder
}

func (b *pathBuilder) cmd(op byte, coords ...float64) {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteByte(op)
	for _, c := range coords {
		b.sb.WriteByte(' ')
		b.sb.WriteString(strconv.FormatFloat(c, 'f', 2, 64))
	}
}

func (b *pathBuilder) moveTo(x, y float64) { b.cmd('M', x, y) }

func (b *pathBuilder) lineTo(x, y float64) { b.cmd('L', x, y) }

func (b *pathBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.cmd('C', c1x, c1y, c2x, c2y, x, y)
}

func (b *pathBuilder) closePath() { b.cmd('Z') }

func (b *pathBuilder) String() string { return b.sb.String() }

// quadToCubic promotes a quadratic Bezier to the equivalent cubic:
// c1 = p0 + 2/3 (q - p0), c2 = p1 + 2/3 (q - p1).
func quadToCubic(x0, y0, qx, qy, x1, y1 float64) (c1x, c1y, c2x, c2y float64) {
	c1x = x0 + 2.0/3.0*(qx-x0)
	c1y = y0 + 2.0/3.0*(qy-y0)
	c2x = x1 + 2.0/3.0*(qx-x1)
	c2y = y1 + 2.0/3.0*(qy-y1)
	return c1x, c1y, c2x, c2y
}
