package ports

import "github.com/haievyiivan/qr-code-maker/internal/domain"

// ConfigLoader loads a configuration file on top of base.
type ConfigLoader interface {
	Load(path string, base domain.Config) (domain.Config, error)
}
