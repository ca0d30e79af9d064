package ports

import (
	"image"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
)

// Encoder builds a QR matrix for text at the given error-correction level,
// picking the smallest version that fits.
type Encoder interface {
	Encode(text string, level domain.Level) (domain.Symbol, error)
}

// Renderer rasterizes a symbol into a bitmap.
type Renderer interface {
	Render(sym domain.Symbol, cfg domain.RenderConfig) image.Image
}
