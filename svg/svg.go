// Package svg extracts drawable shapes from SVG markup.
//
// The package is the document source for sketch: it reads the <svg>
// viewport and the ordered <path> elements (path data, id, fill color)
// and produces a sketch.Document. It is deliberately not a full SVG
// implementation; transforms, groups with inherited style, gradients and
// non-path elements are ignored.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"github.com/gogpu/sketch"
)

// Parse reads SVG markup and returns a Document with one shape per <path>
// element, in markup order. Malformed path data aborts the load with the
// underlying sketch.ParseError.
func Parse(r io.Reader) (*sketch.Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	var doc *sketch.Document
	pathIndex := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			w, h := viewport(se.Attr)
			if w == 0 || h == 0 {
				return nil, &sketch.ConfigurationError{Reason: "svg viewport has zero area"}
			}
			doc = sketch.NewDocument(w, h)
		case "path":
			if doc == nil {
				continue
			}
			id, data, fill := pathAttrs(se.Attr)
			if data == "" {
				continue
			}
			if id == "" {
				id = fmt.Sprintf("path%d", pathIndex)
			}
			shape, err := sketch.NewShape(id, data, fill)
			if err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
			if err := doc.Add(shape); err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
			pathIndex++
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("svg: no <svg> element found")
	}
	sketch.Logger().Debug("svg: parsed document", "shapes", doc.Len(), "width", doc.Width, "height", doc.Height)
	return doc, nil
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(b []byte) (*sketch.Document, error) {
	return Parse(strings.NewReader(string(b)))
}

// Open reads and parses an SVG file.
func Open(path string) (*sketch.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	defer f.Close()
	return Parse(bufio.NewReader(f))
}

// viewport resolves the document size from width/height attributes,
// falling back to the viewBox.
func viewport(attrs []xml.Attr) (w, h float64) {
	var viewBox string
	for _, a := range attrs {
		switch a.Name.Local {
		case "width":
			w = parseLength(a.Value)
		case "height":
			h = parseLength(a.Value)
		case "viewBox":
			viewBox = a.Value
		}
	}
	if (w == 0 || h == 0) && viewBox != "" {
		fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
		if len(fields) == 4 {
			if w == 0 {
				w = parseLength(fields[2])
			}
			if h == 0 {
				h = parseLength(fields[3])
			}
		}
	}
	return w, h
}

// pathAttrs extracts id, path data and fill color from a <path> element.
// A missing fill is opaque black; fill="none" keeps the geometry with a
// fully transparent color.
func pathAttrs(attrs []xml.Attr) (id, data string, fill sketch.RGBA) {
	fill = sketch.RGB(0, 0, 0)
	for _, a := range attrs {
		switch a.Name.Local {
		case "id":
			id = a.Value
		case "d":
			data = a.Value
		case "fill":
			if a.Value == "none" {
				fill = sketch.RGBA{}
			} else {
				fill = sketch.Hex(a.Value)
			}
		}
	}
	return id, data, fill
}

// parseLength parses a numeric attribute, ignoring a trailing unit
// ("100px", "12pt").
func parseLength(s string) float64 {
	v, n := strconv.ParseFloat([]byte(strings.TrimSpace(s)))
	if n == 0 {
		return 0
	}
	return v
}
