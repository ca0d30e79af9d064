package config

// YAMLConfig mirrors the optional qr-code-maker YAML file:
//
//	qr:
//	  render:
//	    level: H
//	    module_size: 10
//	    border: 4
//	  defaults:
//	    text: https://example.com
//	    output_dir: ./codes
type YAMLConfig struct {
	QR struct {
		Render   YAMLRender   `yaml:"render"`
		Defaults YAMLDefaults `yaml:"defaults"`
	} `yaml:"qr"`
}

type YAMLRender struct {
	Level      string `yaml:"level"`
	ModuleSize *int   `yaml:"module_size"`
	Border     *int   `yaml:"border"`
}

type YAMLDefaults struct {
	Text      string `yaml:"text"`
	OutputDir string `yaml:"output_dir"`
}
