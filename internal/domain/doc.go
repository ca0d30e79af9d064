// Package domain contains the core model for qr-code-maker.
//
// The domain does not depend on QR libraries, image codecs, YAML parsing, or
// the filesystem. Infra/adapters map into/from these types.
package domain
