// Package naming derives filesystem-safe image names from encoded text.
package naming

import "strings"

const (
	// MaxBaseLen is the maximum length of the derived name before the extension.
	MaxBaseLen = 30
	Ext        = ".png"
)

var schemes = []string{"https://", "http://"}

// Derive turns arbitrary text (usually a URL) into a filename matching
// [A-Za-z0-9_.-]{0,30}\.png. At most one leading scheme is removed.
func Derive(s string) string {
	for _, p := range schemes {
		if strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	s = strings.ReplaceAll(s, "/", "_")

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; allowed(c) {
			b.WriteByte(c)
			if b.Len() == MaxBaseLen {
				break
			}
		}
	}

	return b.String() + Ext
}

// allowed operates on bytes: every byte of a multi-byte rune is >= 0x80 and
// therefore dropped, so the result is always ASCII.
func allowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '-':
		return true
	default:
		return false
	}
}
