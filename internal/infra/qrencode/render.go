package qrencode

import (
	"image"
	"image/color"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
)

var palette = color.Palette{color.White, color.Black}

const (
	light uint8 = 0
	dark  uint8 = 1
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ ports.Renderer = (*Renderer)(nil)

// Render paints each module as a ModuleSize x ModuleSize square, surrounded by
// Border light modules on every side.
func (r *Renderer) Render(sym domain.Symbol, cfg domain.RenderConfig) image.Image {
	scale := cfg.ModuleSize
	if scale < 1 {
		scale = 1
	}
	border := cfg.Border
	if border < 0 {
		border = 0
	}

	modules := sym.Size() + 2*border
	px := modules * scale

	img := image.NewPaletted(image.Rect(0, 0, px, px), palette)
	// Paletted pixels start at index 0 (light), so only dark modules are drawn.
	for my := 0; my < sym.Size(); my++ {
		for mx := 0; mx < sym.Size(); mx++ {
			if !sym.Dark(mx, my) {
				continue
			}
			x0 := (mx + border) * scale
			y0 := (my + border) * scale
			for y := y0; y < y0+scale; y++ {
				row := img.Pix[y*img.Stride : y*img.Stride+px]
				for x := x0; x < x0+scale; x++ {
					row[x] = dark
				}
			}
		}
	}
	return img
}
