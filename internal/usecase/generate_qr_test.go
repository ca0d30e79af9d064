package usecase

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
	"github.com/haievyiivan/qr-code-maker/internal/infra/pngstore"
	"github.com/haievyiivan/qr-code-maker/internal/infra/qrdecode"
	"github.com/haievyiivan/qr-code-maker/internal/infra/qrencode"
)

// --- fakes ---

type stubEncoder struct {
	sym   domain.Symbol
	err   error
	calls int
}

func (s *stubEncoder) Encode(_ string, level domain.Level) (domain.Symbol, error) {
	s.calls++
	sym := s.sym
	sym.Level = level
	return sym, s.err
}

type fakeStore struct {
	dir, name string
	err       error
	saved     bool
}

func (f *fakeStore) Save(dir, name string, _ image.Image) (string, error) {
	f.dir, f.name = dir, name
	if f.err != nil {
		return "", f.err
	}
	f.saved = true
	return filepath.Join(dir, name), nil
}

type stubDecoder struct {
	text string
	err  error
}

func (s stubDecoder) DecodeFile(_ string) (string, error) {
	return s.text, s.err
}

func smallSymbol() domain.Symbol {
	return domain.Symbol{Version: 1, Modules: [][]bool{{true, false}, {false, true}}}
}

// --- unit tests ---

func TestGenerateQR_DerivesFilename(t *testing.T) {
	store := &fakeStore{}
	uc := NewGenerateQR(&stubEncoder{sym: smallSymbol()}, qrencode.NewRenderer(), store, nil)

	res, err := uc.Execute(context.Background(), domain.Request{
		Text:      "https://example.com/a/b",
		OutputDir: "out",
	}, domain.DefaultConfig().Render)
	require.NoError(t, err)

	require.Equal(t, "example.com_a_b.png", res.Filename)
	require.Equal(t, "out", store.dir)
	require.Equal(t, "example.com_a_b.png", store.name)
	require.Equal(t, filepath.Join("out", "example.com_a_b.png"), res.Path)
	require.Equal(t, (2+8)*10, res.Pixels)
	require.False(t, res.Verified)
}

func TestGenerateQR_NameOverrideUsedAsIs(t *testing.T) {
	store := &fakeStore{}
	uc := NewGenerateQR(&stubEncoder{sym: smallSymbol()}, qrencode.NewRenderer(), store, nil)

	res, err := uc.Execute(context.Background(), domain.Request{
		Text:      "https://example.com",
		OutputDir: ".",
		Name:      "custom name",
	}, domain.DefaultConfig().Render)
	require.NoError(t, err)
	require.Equal(t, "custom name", res.Filename)
	require.Equal(t, "custom name", store.name)
}

func TestGenerateQR_EncodeErrorStopsBeforeWrite(t *testing.T) {
	encErr := &domain.OpError{Op: "qrencode.new", Kind: domain.KindEncode, Err: errors.New("content too long to encode")}
	store := &fakeStore{}
	uc := NewGenerateQR(&stubEncoder{err: encErr}, qrencode.NewRenderer(), store, nil)

	res, err := uc.Execute(context.Background(), domain.Request{Text: "x"}, domain.DefaultConfig().Render)
	require.ErrorIs(t, err, domain.ErrEncode)
	require.False(t, store.saved)
	require.Equal(t, "x.png", res.Filename)
	require.Empty(t, res.Path)
}

func TestGenerateQR_WriteErrorReturned(t *testing.T) {
	store := &fakeStore{err: &domain.OpError{Op: "pngstore.mkdir", Kind: domain.KindWrite, Err: os.ErrPermission}}
	uc := NewGenerateQR(&stubEncoder{sym: smallSymbol()}, qrencode.NewRenderer(), store, stubDecoder{text: "x"})

	res, err := uc.Execute(context.Background(), domain.Request{Text: "x", OutputDir: "/nope"}, domain.DefaultConfig().Render)
	require.True(t, domain.IsKind(err, domain.KindWrite), "got %v", err)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Equal(t, 1, res.Version)
	require.Empty(t, res.Path)
	require.False(t, res.Verified)
}

func TestGenerateQR_InvalidConfig(t *testing.T) {
	enc := &stubEncoder{sym: smallSymbol()}
	uc := NewGenerateQR(enc, qrencode.NewRenderer(), &fakeStore{}, nil)

	_, err := uc.Execute(context.Background(), domain.Request{Text: "x"}, domain.RenderConfig{Level: domain.LevelHigh})
	require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
	require.Zero(t, enc.calls)
}

func TestGenerateQR_CanceledContext(t *testing.T) {
	enc := &stubEncoder{sym: smallSymbol()}
	uc := NewGenerateQR(enc, qrencode.NewRenderer(), &fakeStore{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, domain.Request{Text: "x"}, domain.DefaultConfig().Render)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, enc.calls)
}

func TestGenerateQR_VerifyMismatch(t *testing.T) {
	uc := NewGenerateQR(&stubEncoder{sym: smallSymbol()}, qrencode.NewRenderer(), &fakeStore{}, stubDecoder{text: "other"})

	res, err := uc.Execute(context.Background(), domain.Request{Text: "x", OutputDir: "."}, domain.DefaultConfig().Render)
	require.ErrorIs(t, err, domain.ErrDecode)
	require.Contains(t, err.Error(), "other")
	require.NotEmpty(t, res.Path)
	require.False(t, res.Verified)
}

func TestGenerateQR_VerifyDecoderError(t *testing.T) {
	decErr := &domain.OpError{Op: "qrdecode.scan", Kind: domain.KindDecode, Err: errors.New("no QR code found")}
	uc := NewGenerateQR(&stubEncoder{sym: smallSymbol()}, qrencode.NewRenderer(), &fakeStore{}, stubDecoder{err: decErr})

	_, err := uc.Execute(context.Background(), domain.Request{Text: "x"}, domain.DefaultConfig().Render)
	require.True(t, domain.IsKind(err, domain.KindDecode))
}

// --- end-to-end with real adapters ---

func newRealGenerateQR(verify bool) *GenerateQR {
	if verify {
		return NewGenerateQR(qrencode.NewEncoder(), qrencode.NewRenderer(), pngstore.New(), qrdecode.NewDecoder())
	}
	return NewGenerateQR(qrencode.NewEncoder(), qrencode.NewRenderer(), pngstore.New(), nil)
}

func TestGenerateQR_EndToEnd_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	uc := newRealGenerateQR(true)

	res, err := uc.Execute(context.Background(), domain.Request{
		Text:      domain.DefaultText,
		OutputDir: filepath.Join(tmp, "nested", "dir"),
	}, domain.DefaultConfig().Render)
	require.NoError(t, err)

	require.True(t, res.Verified)
	require.Equal(t, filepath.Join(tmp, "nested", "dir", "haievyiivan.github.io.png"), res.Path)
	require.FileExists(t, res.Path)

	got, err := qrdecode.NewDecoder().DecodeFile(res.Path)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultText, got)
}

func TestGenerateQR_EndToEnd_RerunOverwrites(t *testing.T) {
	tmp := t.TempDir()
	uc := newRealGenerateQR(false)
	req := domain.Request{Text: "same input", OutputDir: tmp}

	first, err := uc.Execute(context.Background(), req, domain.DefaultConfig().Render)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req, domain.DefaultConfig().Render)
	require.NoError(t, err)
	require.Equal(t, first.Path, second.Path)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGenerateQR_EndToEnd_CapacityExceeded(t *testing.T) {
	tmp := t.TempDir()
	uc := newRealGenerateQR(false)

	_, err := uc.Execute(context.Background(), domain.Request{
		Text:      strings.Repeat("z", 4000),
		OutputDir: tmp,
	}, domain.DefaultConfig().Render)
	require.True(t, domain.IsKind(err, domain.KindEncode), "got %v", err)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Empty(t, entries)
}
