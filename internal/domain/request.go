package domain

// Request is the resolved input of a single generation.
type Request struct {
	Text      string
	OutputDir string
	// Name overrides the derived filename when non-empty. It is used as-is;
	// the caller is responsible for the extension.
	Name string
}

// Result describes a generated image.
type Result struct {
	Text     string
	Filename string
	Path     string

	Version int // QR symbol version (1-40)
	Pixels  int // image width and height

	Verified bool
}
