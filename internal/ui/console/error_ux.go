package console

import (
	"errors"

	"github.com/haievyiivan/qr-code-maker/internal/domain"
)

// FailureLabel returns the status label for a failed step.
func FailureLabel(err error) string {
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Error:"
	}

	switch oe.Kind {
	case domain.KindWrite:
		return "Error saving file:"
	case domain.KindDecode:
		return "Verification failed:"
	case domain.KindEncode:
		return "Error encoding text:"
	case domain.KindInvalidConfig:
		return "Invalid configuration:"
	case domain.KindNotFound:
		return "Not found:"
	default:
		return "Error:"
	}
}

// Detail returns the most useful message for err: the innermost OpError
// cause (an *fs.PathError already names the path), or err itself.
func Detail(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		var inner *domain.OpError
		if errors.As(oe.Err, &inner) {
			return Detail(inner)
		}
		return oe.Err.Error()
	}
	return err.Error()
}
