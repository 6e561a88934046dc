package sketch

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrDuplicateShape is returned when a shape id is added to a Document twice.
var ErrDuplicateShape = errors.New("sketch: duplicate shape id")

// Shape is one closed figure: an ordered list of sub-paths plus a fill color.
// The raw path data is retained for diagnostics and regeneration.
type Shape struct {
	// ID uniquely identifies the shape within its Document.
	ID string

	// Color is the fill color.
	Color RGBA

	// SubPaths holds the drawable segments of each sub-path, in path order.
	// Sub-paths contain only Line and CubicBezier segments; Move and Close
	// act as separators during grouping.
	SubPaths [][]Segment

	// Data is the raw path data the shape was parsed from.
	Data string
}

// NewShape parses path data into a Shape.
func NewShape(id, data string, color RGBA) (*Shape, error) {
	segs, err := ParsePath(data)
	if err != nil {
		return nil, fmt.Errorf("shape %q: %w", id, err)
	}
	return &Shape{
		ID:       id,
		Color:    color,
		SubPaths: GroupSubPaths(segs),
		Data:     data,
	}, nil
}

// Document is an ordered collection of shapes with a source viewport size.
// Insertion order is draw order: later shapes paint over earlier ones.
// A Document is immutable once handed to an Animator; loading a new one
// fully replaces it.
type Document struct {
	// Width and Height are the source viewport size, in source units.
	Width, Height float64

	ids    []string
	shapes map[string]*Shape
}

// NewDocument creates an empty document with the given source viewport size.
func NewDocument(width, height float64) *Document {
	return &Document{
		Width:  width,
		Height: height,
		shapes: make(map[string]*Shape),
	}
}

// Add appends a shape to the document. The shape's id must be unique.
func (d *Document) Add(s *Shape) error {
	if _, ok := d.shapes[s.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateShape, s.ID)
	}
	d.ids = append(d.ids, s.ID)
	d.shapes[s.ID] = s
	return nil
}

// Shape returns the shape with the given id, or nil.
func (d *Document) Shape(id string) *Shape {
	return d.shapes[id]
}

// Shapes returns the shapes in insertion (draw) order.
func (d *Document) Shapes() []*Shape {
	out := make([]*Shape, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, d.shapes[id])
	}
	return out
}

// Len returns the number of shapes.
func (d *Document) Len() int {
	return len(d.ids)
}

// ParsePath parses path data using the move/line/cubic-bezier/close command
// set (M, L, C, Z and their relative forms), with implicit command
// repetition. Shorthand commands (H, V, S, Q, T, A) are expected to have been
// expanded by the producing source and are rejected.
func ParsePath(data string) ([]Segment, error) {
	path := []byte(data)

	cmdLens := map[byte]int{'M': 2, 'L': 2, 'C': 6, 'Z': 0}
	var f [6]float64

	var segs []Segment
	var cur, start Point
	started := false
	prevCmd := byte('z')

	i := skipCommaWhitespace(path, 0)
	for i < len(path) {
		cmd := prevCmd
		if cmd == 'z' || cmd == 'Z' || !startsNumber(path[i]) {
			cmd = path[i]
			i++
			i = skipCommaWhitespace(path, i)
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return nil, &ParseError{Pos: i - 1, Cmd: cmd, Reason: "unknown command"}
		}
		for j := 0; j < n; j++ {
			num, w := strconv.ParseFloat(path[i:])
			if w == 0 {
				return nil, &ParseError{Pos: i, Cmd: cmd, Reason: fmt.Sprintf("expected %d numbers", n)}
			}
			f[j] = num
			i += w
			i = skipCommaWhitespace(path, i)
		}

		switch cmd {
		case 'M', 'm':
			p := Pt(f[0], f[1])
			if cmd == 'm' {
				p = p.Add(cur)
			}
			segs = append(segs, Move{Point: p})
			cur, start = p, p
			started = true
			// Implicit repetition after a move is a line.
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			if !started {
				return nil, &ParseError{Pos: i, Cmd: cmd, Reason: "line before initial move"}
			}
			p := Pt(f[0], f[1])
			if cmd == 'l' {
				p = p.Add(cur)
			}
			segs = append(segs, Line{Start: cur, End: p})
			cur = p
		case 'C', 'c':
			if !started {
				return nil, &ParseError{Pos: i, Cmd: cmd, Reason: "curve before initial move"}
			}
			c1 := Pt(f[0], f[1])
			c2 := Pt(f[2], f[3])
			p := Pt(f[4], f[5])
			if cmd == 'c' {
				c1 = c1.Add(cur)
				c2 = c2.Add(cur)
				p = p.Add(cur)
			}
			segs = append(segs, CubicBezier{Start: cur, Control1: c1, Control2: c2, End: p})
			cur = p
		case 'Z', 'z':
			if !started {
				return nil, &ParseError{Pos: i, Cmd: cmd, Reason: "close before initial move"}
			}
			segs = append(segs, Close{Start: cur, End: start})
			cur = start
		}
		prevCmd = cmd
		i = skipCommaWhitespace(path, i)
	}
	return segs, nil
}

// GroupSubPaths groups a flat segment list into sub-paths. Segments
// accumulate into a pending sub-path started by a Move; a Close, or a new
// Move while one is pending, flushes the pending sub-path. Move and Close
// themselves are separators and are not part of any sub-path.
func GroupSubPaths(segs []Segment) [][]Segment {
	var groups [][]Segment
	var pending []Segment
	open := false

	for _, s := range segs {
		switch s.(type) {
		case Close:
			if open && len(pending) > 0 {
				groups = append(groups, pending)
			}
			pending = nil
			open = false
		case Move:
			if open && len(pending) > 0 {
				// Implicit closure: a bare move flushes the pending sub-path.
				groups = append(groups, pending)
			}
			pending = nil
			open = true
		default:
			if open {
				pending = append(pending, s)
			}
		}
	}
	if open && len(pending) > 0 {
		groups = append(groups, pending)
	}
	return groups
}

func skipCommaWhitespace(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			i++
		default:
			return i
		}
	}
	return i
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
