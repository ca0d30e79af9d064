// Package termqr prints QR codes on a terminal.
package termqr

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"
	"rsc.io/qr"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
)

// Print writes a half-block rendering of text to w. The terminal encoder is
// independent from the PNG encoder, so the two may pick different versions
// for the same input; both decode to the same text.
func Print(w io.Writer, text string, level domain.Level) error {
	l, err := qrLevel(level)
	if err != nil {
		return err
	}
	if _, err := qr.Encode(text, l); err != nil {
		return &domain.OpError{Op: "termqr.encode", Kind: domain.KindEncode, Err: err}
	}
	qrterminal.GenerateHalfBlock(text, l, w)
	return nil
}

func qrLevel(l domain.Level) (qr.Level, error) {
	switch l {
	case domain.LevelLow:
		return qr.L, nil
	case domain.LevelMedium:
		return qr.M, nil
	case domain.LevelQuartile:
		return qr.Q, nil
	case domain.LevelHigh:
		return qr.H, nil
	default:
		return 0, &domain.OpError{
			Op:   "termqr.level",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown error-correction level %q", string(l)),
		}
	}
}
