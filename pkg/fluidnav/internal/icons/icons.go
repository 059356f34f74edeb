// Package icons rasterises the small vector glyphs fluidnav draws itself.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon names.
const (
	ChevronLeft = "chevron-left"
	Close       = "close"
	Grabber     = "grabber"
)

//go:embed svg/*.svg
var svgFiles embed.FS

// Rasterize draws the named icon into a w×h image using tint for every
// painted pixel. Coverage from the SVG is kept as alpha.
func Rasterize(name string, w, h int, tint color.NRGBA) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icons: %s: invalid size %dx%d", name, w, h)
	}

	data, err := svgFiles.ReadFile("svg/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icons: unknown icon %q", name)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	coverage := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, coverage, coverage.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return tinted(coverage, tint), nil
}

func tinted(src *image.RGBA, tint color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := src.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{
				R: tint.R,
				G: tint.G,
				B: tint.B,
				A: uint8(uint16(a) * uint16(tint.A) / 255),
			})
		}
	}
	return out
}
