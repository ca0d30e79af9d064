package usecase

import (
	"context"
	"fmt"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/infra/logger"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
	"github.com/haievyiivan/qr-code-maker/internal/usecase/naming"
)

type GenerateQR struct {
	encoder  ports.Encoder
	renderer ports.Renderer
	store    ports.ImageStore
	decoder  ports.Decoder
}

// NewGenerateQR wires the pipeline. dec may be nil, in which case written
// images are never verified.
func NewGenerateQR(enc ports.Encoder, r ports.Renderer, s ports.ImageStore, dec ports.Decoder) *GenerateQR {
	return &GenerateQR{
		encoder:  enc,
		renderer: r,
		store:    s,
		decoder:  dec,
	}
}

// Execute encodes req.Text, writes the image under req.OutputDir and, when a
// decoder is configured, reads it back. The returned Result is filled as far
// as the pipeline got, so callers can report a partial outcome.
func (uc *GenerateQR) Execute(ctx context.Context, req domain.Request, cfg domain.RenderConfig) (domain.Result, error) {
	res := domain.Result{Text: req.Text}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := cfg.Validate(); err != nil {
		return res, err
	}

	res.Filename = req.Name
	if res.Filename == "" {
		res.Filename = naming.Derive(req.Text)
	}

	sym, err := uc.encoder.Encode(req.Text, cfg.Level)
	if err != nil {
		return res, err
	}
	res.Version = sym.Version

	img := uc.renderer.Render(sym, cfg)
	res.Pixels = img.Bounds().Dx()

	logger.L().Debug("generate.encoded",
		"version", sym.Version,
		"level", string(cfg.Level),
		"modules", sym.Size(),
		"pixels", res.Pixels,
	)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	path, err := uc.store.Save(req.OutputDir, res.Filename, img)
	if err != nil {
		return res, err
	}
	res.Path = path

	if uc.decoder == nil {
		return res, nil
	}

	got, err := uc.decoder.DecodeFile(path)
	if err != nil {
		return res, err
	}
	if got != req.Text {
		return res, &domain.OpError{
			Op:   "generate.verify",
			Kind: domain.KindDecode,
			Path: path,
			Err:  fmt.Errorf("decoded text %q does not match input", got),
		}
	}
	res.Verified = true

	logger.L().Debug("generate.verified", "path", path)
	return res, nil
}
