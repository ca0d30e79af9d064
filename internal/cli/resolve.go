package cli

import (
	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
)

// resolveText returns the text to encode and whether the fallback was used.
// An explicit argument is taken as-is, even when empty.
func resolveText(args []string, fallback string) (string, bool) {
	if len(args) > 0 {
		return args[0], false
	}
	return fallback, true
}

// resolveConfig starts from the built-in defaults and applies the config file,
// if one was given.
func resolveConfig(loader ports.ConfigLoader, path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	return loader.Load(path, cfg)
}

func resolveOutputDir(opts generateOptions, cfg domain.Config) string {
	if opts.outputSet {
		return opts.output
	}
	return cfg.Defaults.OutputDir
}
