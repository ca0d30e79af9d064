// Package qrencode builds QR symbols with skip2/go-qrcode and rasterizes them
// into black-on-white bitmaps.
package qrencode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"rsc.io/qr"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
)

type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

var _ ports.Encoder = (*Encoder)(nil)

// Encode returns the symbol for text without its quiet zone; the border is
// added by the Renderer.
func (e *Encoder) Encode(text string, level domain.Level) (domain.Symbol, error) {
	rl, err := recoveryLevel(level)
	if err != nil {
		return domain.Symbol{}, &domain.OpError{
			Op:   "qrencode.level",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if text == "" {
		return encodeEmpty(level)
	}

	q, err := qrcode.New(text, rl)
	if err != nil {
		return domain.Symbol{}, &domain.OpError{
			Op:   "qrencode.new",
			Kind: domain.KindEncode,
			Err:  err,
		}
	}
	q.DisableBorder = true

	return domain.Symbol{
		Version: q.VersionNumber,
		Level:   level,
		Modules: q.Bitmap(),
	}, nil
}

// encodeEmpty builds a symbol with no data. skip2 refuses empty content, so
// rsc.io/qr is used for this one case.
func encodeEmpty(level domain.Level) (domain.Symbol, error) {
	code, err := qr.Encode("", emptyLevels[level])
	if err != nil {
		return domain.Symbol{}, &domain.OpError{
			Op:   "qrencode.empty",
			Kind: domain.KindEncode,
			Err:  err,
		}
	}

	modules := make([][]bool, code.Size)
	for y := range modules {
		modules[y] = make([]bool, code.Size)
		for x := range modules[y] {
			modules[y][x] = code.Black(x, y)
		}
	}

	return domain.Symbol{
		Version: (code.Size - 17) / 4,
		Level:   level,
		Modules: modules,
	}, nil
}

var emptyLevels = map[domain.Level]qr.Level{
	domain.LevelLow:      qr.L,
	domain.LevelMedium:   qr.M,
	domain.LevelQuartile: qr.Q,
	domain.LevelHigh:     qr.H,
}

// skip2 names the four standard levels Low/Medium/High/Highest.
func recoveryLevel(l domain.Level) (qrcode.RecoveryLevel, error) {
	switch l {
	case domain.LevelLow:
		return qrcode.Low, nil
	case domain.LevelMedium:
		return qrcode.Medium, nil
	case domain.LevelQuartile:
		return qrcode.High, nil
	case domain.LevelHigh:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unknown error-correction level %q", string(l))
	}
}
