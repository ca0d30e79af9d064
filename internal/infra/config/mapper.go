package config

import (
	"fmt"
	"strings"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
)

// Apply maps parsed values on top of base. Unset fields keep base values.
func Apply(base domain.Config, y YAMLConfig) (domain.Config, error) {
	cfg := base

	if lv := strings.TrimSpace(y.QR.Render.Level); lv != "" {
		level, err := domain.ParseLevel(lv)
		if err != nil {
			return base, fmt.Errorf("qr.render.level: %w", err)
		}
		cfg.Render.Level = level
	}
	if y.QR.Render.ModuleSize != nil {
		cfg.Render.ModuleSize = *y.QR.Render.ModuleSize
	}
	if y.QR.Render.Border != nil {
		cfg.Render.Border = *y.QR.Render.Border
	}
	if y.QR.Defaults.Text != "" {
		cfg.Defaults.Text = y.QR.Defaults.Text
	}
	if y.QR.Defaults.OutputDir != "" {
		cfg.Defaults.OutputDir = y.QR.Defaults.OutputDir
	}

	if err := cfg.Render.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
