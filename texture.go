package sketch

import (
	"fmt"
	"image"
	"os"

	// Marker assets are typically PNG or JPEG.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// LoadMarkerTexture decodes the marker image asset and scales it to the
// configured marker size. Failure is non-fatal to the caller: the pen
// tracker accepts a nil texture and degrades to no-marker mode.
func LoadMarkerTexture(path string, size Point) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sketch: open marker asset: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sketch: decode marker asset: %w", err)
	}

	w, h := int(size.X), int(size.Y)
	if w <= 0 || h <= 0 {
		return nil, &ConfigurationError{Reason: "marker size must be positive"}
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}
