// Package qrdecode reads QR codes back from image files.
package qrdecode

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
)

type Decoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewDecoder returns a decoder tuned for the clean, axis-aligned images this
// tool writes.
func NewDecoder() *Decoder {
	return &Decoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

var _ ports.Decoder = (*Decoder)(nil)

func (d *Decoder) DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "qrdecode.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", &domain.OpError{
			Op:   "qrdecode.image",
			Kind: domain.KindDecode,
			Path: path,
			Err:  err,
		}
	}

	text, err := d.Decode(img)
	if err != nil {
		return "", &domain.OpError{
			Op:   "qrdecode.scan",
			Kind: domain.KindDecode,
			Path: path,
			Err:  err,
		}
	}
	return text, nil
}

func (d *Decoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}

	return result.GetText(), nil
}
