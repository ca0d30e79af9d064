// Package pngstore writes rendered QR images to disk as PNG files.
package pngstore

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/infra/logger"
	"github.com/haievyiivan/qr-code-maker/internal/ports"
)

type Store struct {
	dirMode     os.FileMode
	fileMode    os.FileMode
	compression png.CompressionLevel
}

type Option func(*Store)

// WithFileMode sets the permission bits of written images.
func WithFileMode(mode os.FileMode) Option {
	return func(s *Store) { s.fileMode = mode }
}

func New(opts ...Option) *Store {
	s := &Store{
		dirMode:     0o755,
		fileMode:    0o644,
		compression: png.BestCompression,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ImageStore = (*Store)(nil)

func (s *Store) Save(dir, name string, img image.Image) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, s.dirMode); err != nil {
		return "", &domain.OpError{
			Op:   "pngstore.mkdir",
			Kind: domain.KindWrite,
			Path: dir,
			Err:  err,
		}
	}

	path := filepath.Join(dir, name)

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: s.compression}
	if err := enc.Encode(&buf, img); err != nil {
		return "", &domain.OpError{
			Op:   "pngstore.encode",
			Kind: domain.KindWrite,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: a uniquely named tmp in the target directory, then
	// rename. An existing file at path is replaced; concurrent writers never
	// share a tmp file, so the last rename wins.
	tmp, err := writeTemp(filepath.Dir(path), filepath.Base(path), buf.Bytes(), s.fileMode)
	if err != nil {
		return "", &domain.OpError{
			Op:   "pngstore.write",
			Kind: domain.KindWrite,
			Path: path,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "pngstore.rename",
			Kind: domain.KindWrite,
			Path: path,
			Err:  err,
		}
	}

	logger.L().Debug("pngstore.saved", "path", path, "bytes", buf.Len())
	return path, nil
}

func writeTemp(dir, base string, b []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	_, werr := f.Write(b)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, mode)
	}
	if werr != nil {
		_ = os.Remove(tmp)
		return "", werr
	}
	return tmp, nil
}
