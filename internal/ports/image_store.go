package ports

import "image"

// ImageStore persists rendered images.
type ImageStore interface {
	// Save creates dir if needed, writes img to dir/name (overwriting) and
	// returns the written path.
	Save(dir, name string, img image.Image) (path string, err error)
}
