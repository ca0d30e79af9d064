package ports

// Decoder reads back the text stored in a QR image file.
type Decoder interface {
	DecodeFile(path string) (string, error)
}
