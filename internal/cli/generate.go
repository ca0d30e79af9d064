package cli

import (
	"context"
	"io"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/infra/config"
	"github.com/haievyiivan/qr-code-maker/internal/infra/logger"
	"github.com/haievyiivan/qr-code-maker/internal/infra/pngstore"
	"github.com/haievyiivan/qr-code-maker/internal/infra/qrdecode"
	"github.com/haievyiivan/qr-code-maker/internal/infra/qrencode"
	"github.com/haievyiivan/qr-code-maker/internal/infra/termqr"
	"github.com/haievyiivan/qr-code-maker/internal/ui/console"
	"github.com/haievyiivan/qr-code-maker/internal/usecase"
)

type generateOptions struct {
	output     string
	outputSet  bool
	name       string
	configPath string

	verify bool
	show   bool
	strict bool
	debug  bool
}

func runGenerate(ctx context.Context, stdout, stderr io.Writer, args []string, opts generateOptions) error {
	cleanup, _ := logger.Setup(logger.Config{
		Writer: stderr,
		Debug:  opts.debug,
	})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	cfg, err := resolveConfig(config.NewLoader(), opts.configPath)
	if err != nil {
		return err
	}

	p := console.NewPrinter(stdout)

	text, defaulted := resolveText(args, cfg.Defaults.Text)
	if defaulted {
		p.Warn("No URL provided.", "Generating default for: "+text)
	}

	req := domain.Request{
		Text:      text,
		OutputDir: resolveOutputDir(opts, cfg),
		Name:      opts.name,
	}
	logger.L().Debug("generate.request", "output_dir", req.OutputDir, "name", req.Name, "defaulted", defaulted)

	uc := newGenerateQR(opts.verify)
	res, err := uc.Execute(ctx, req, cfg.Render)
	if err != nil {
		if !domain.IsKind(err, domain.KindWrite) && !domain.IsKind(err, domain.KindDecode) {
			return err
		}

		// I/O and verification problems are reported, not raised: the
		// process still exits 0 unless --strict is set.
		logger.L().Debug("generate.failed", "err", err)
		p.Failure(console.FailureLabel(err), console.Detail(err))
		if opts.strict {
			return errReported
		}
		return nil
	}

	p.Success("Success!", "Saved to: "+res.Path)
	if res.Verified {
		p.Info("Verified.", "Decoded text matches the input.")
	}

	if opts.show {
		if err := termqr.Print(p.Writer(), text, cfg.Render.Level); err != nil {
			p.Failure(console.FailureLabel(err), console.Detail(err))
		}
	}
	return nil
}

func newGenerateQR(verify bool) *usecase.GenerateQR {
	enc := qrencode.NewEncoder()
	r := qrencode.NewRenderer()
	store := pngstore.New()
	if verify {
		return usecase.NewGenerateQR(enc, r, store, qrdecode.NewDecoder())
	}
	return usecase.NewGenerateQR(enc, r, store, nil)
}
