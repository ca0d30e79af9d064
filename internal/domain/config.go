package domain

// DefaultText is encoded when no text is supplied on the command line.
const DefaultText = "https://haievyiivan.github.io"

// Config represents the effective qr-code-maker configuration: built-in
// defaults, optionally overridden by a YAML file and then by flags.
type Config struct {
	Render   RenderConfig
	Defaults DefaultsConfig
}

// RenderConfig controls how the QR matrix is built and rasterized.
type RenderConfig struct {
	Level      Level
	ModuleSize int // pixels per module
	Border     int // quiet zone, in modules
}

type DefaultsConfig struct {
	Text      string
	OutputDir string
}

// DefaultConfig provides the behaviour of the tool when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Level:      LevelHigh,
			ModuleSize: 10,
			Border:     4,
		},
		Defaults: DefaultsConfig{
			Text:      DefaultText,
			OutputDir: ".",
		},
	}
}

// Validate reports the first invalid render setting.
func (c RenderConfig) Validate() error {
	if !c.Level.Valid() {
		return &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: errInvalidLevel(c.Level)}
	}
	if c.ModuleSize < 1 {
		return &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: errInvalidValue("module_size", c.ModuleSize)}
	}
	if c.Border < 0 {
		return &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: errInvalidValue("border", c.Border)}
	}
	return nil
}
