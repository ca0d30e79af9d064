package domain

import (
	"fmt"
	"strings"
)

// Level is a QR error-correction level.
type Level string

const (
	LevelLow      Level = "L" // ~7% recovery
	LevelMedium   Level = "M" // ~15% recovery
	LevelQuartile Level = "Q" // ~25% recovery
	LevelHigh     Level = "H" // ~30% recovery
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelQuartile, LevelHigh:
		return true
	default:
		return false
	}
}

// ParseLevel accepts the single-letter form (L/M/Q/H) or the long name
// (low/medium/quartile/high), case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelLow, nil
	case "m", "medium":
		return LevelMedium, nil
	case "q", "quartile":
		return LevelQuartile, nil
	case "h", "high":
		return LevelHigh, nil
	default:
		return "", errInvalidLevel(Level(s))
	}
}

func errInvalidLevel(l Level) error {
	return fmt.Errorf("%w: unknown error-correction level %q (expected L|M|Q|H)", ErrInvalidConfig, string(l))
}

func errInvalidValue(field string, v int) error {
	return fmt.Errorf("%w: %s out of range: %d", ErrInvalidConfig, field, v)
}
